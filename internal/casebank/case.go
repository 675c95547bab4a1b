package casebank

import (
	"fmt"
	"strings"
)

// SuicideRisk is the risk assessment block of a case.
type SuicideRisk struct {
	Ideation  string
	Plan      string
	RiskLevel string
}

// Case is one clinical vignette with its answer and teaching notes.
type Case struct {
	Diagnosis           Diagnosis
	Age                 int
	Sex                 string
	PresentingComplaint string
	Duration            string
	Associated          string
	RiskFactors         []string
	MSE                 string
	Investigations      string
	SuicideRisk         SuicideRisk
	Explanation         string
	Management          string // bulleted, one item per line
}

// Field is one labelled line of a rendered section. Label is empty for
// free-text sections.
type Field struct {
	Label string
	Value string
}

// Fields projects the case onto the fields shown for a section.
func (c Case) Fields(s Section) []Field {
	switch s {
	case SectionHistory:
		return []Field{
			{Label: "Age / Sex", Value: fmt.Sprintf("%d / %s", c.Age, c.Sex)},
			{Label: "Presenting Complaint", Value: c.PresentingComplaint},
			{Label: "Duration", Value: c.Duration},
			{Label: "Associated Symptoms", Value: c.Associated},
			{Label: "Risk Factors", Value: strings.Join(c.RiskFactors, ", ")},
		}
	case SectionMSE:
		return []Field{{Value: c.MSE}}
	case SectionInvestigations:
		return []Field{{Value: c.Investigations}}
	case SectionSuicide:
		return []Field{
			{Label: "Ideation", Value: c.SuicideRisk.Ideation},
			{Label: "Plan", Value: c.SuicideRisk.Plan},
			{Label: "Overall Risk", Value: c.SuicideRisk.RiskLevel},
		}
	case SectionExplanation:
		return []Field{{Value: c.Explanation}}
	case SectionManagement:
		return []Field{{Value: c.Management}}
	}
	return nil
}

// ManagementItems splits the management plan into its bullet items,
// without the leading bullet.
func (c Case) ManagementItems() []string {
	var items []string
	for _, line := range strings.Split(c.Management, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "•"))
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

func (c Case) clone() Case {
	out := c
	out.RiskFactors = append([]string(nil), c.RiskFactors...)
	return out
}
