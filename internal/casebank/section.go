package casebank

import (
	"errors"
	"fmt"
)

// ErrUnknownSection is returned when external input names no section.
var ErrUnknownSection = errors.New("unknown section")

// Section identifies a revealable part of a case file.
type Section string

const (
	SectionHistory        Section = "history"
	SectionMSE            Section = "mse"
	SectionInvestigations Section = "investigations"
	SectionSuicide        Section = "suicide"
	SectionExplanation    Section = "explanation"
	SectionManagement     Section = "management"
)

type sectionInfo struct {
	title  string
	action string
}

var sectionTable = map[Section]sectionInfo{
	SectionHistory:        {title: "History", action: "Reveal History"},
	SectionMSE:            {title: "Mental Status Examination", action: "Reveal MSE"},
	SectionInvestigations: {title: "Investigations", action: "Reveal Investigations"},
	SectionSuicide:        {title: "Risk Assessment", action: "Assess Risk"},
	SectionExplanation:    {title: "Explanation", action: "Reveal Explanation"},
	SectionManagement:     {title: "Management", action: "Reveal Management"},
}

// sectionOrder is the case file display order. The diagnosis block sits
// between the clinical sections and the teaching sections.
var sectionOrder = []Section{
	SectionHistory,
	SectionMSE,
	SectionInvestigations,
	SectionSuicide,
	SectionExplanation,
	SectionManagement,
}

// Sections returns all sections in display order.
func Sections() []Section {
	out := make([]Section, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

// ClinicalSections returns the sections shown before the diagnosis block.
func ClinicalSections() []Section {
	return Sections()[:4]
}

// TeachingSections returns the sections shown after the diagnosis block.
func TeachingSections() []Section {
	return Sections()[4:]
}

// ParseSection converts a section key from external input.
func ParseSection(key string) (Section, error) {
	s := Section(key)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	return s, nil
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	_, ok := sectionTable[s]
	return ok
}

// Title returns the section heading.
func (s Section) Title() string {
	return sectionTable[s].title
}

// ActionLabel returns the label of the control that reveals the section.
func (s Section) ActionLabel() string {
	return sectionTable[s].action
}
