// Package export writes the case catalog as handouts for teaching:
// an XLSX workbook or a YAML document.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/casesim/internal/casebank"
)

// Format names an export format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatXLSX, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want xlsx or yaml)", s)
}

// Write renders cases to w in format f.
func Write(w io.Writer, f Format, cases []casebank.Case) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w, cases)
	case FormatYAML:
		return WriteYAML(w, cases)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

const sheetName = "Cases"

var xlsxHeaders = []string{
	"#", "Age", "Sex", "Presenting Complaint", "Duration", "Associated Symptoms",
	"Risk Factors", "Mental Status Examination", "Investigations",
	"Suicidal Ideation", "Plan", "Overall Risk",
	"Diagnosis", "Explanation", "Management",
}

// WriteXLSX writes one row per case under a header row.
func WriteXLSX(w io.Writer, cases []casebank.Case) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header %s: %w", h, err)
		}
	}

	for r, c := range cases {
		row := []any{
			r + 1, c.Age, c.Sex, c.PresentingComplaint, c.Duration, c.Associated,
			strings.Join(c.RiskFactors, ", "), c.MSE, c.Investigations,
			c.SuicideRisk.Ideation, c.SuicideRisk.Plan, c.SuicideRisk.RiskLevel,
			c.Diagnosis.String(), c.Explanation, c.Management,
		}
		start, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheetName, start, &row); err != nil {
			return fmt.Errorf("write case %d: %w", r+1, err)
		}
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(xlsxHeaders), len(cases)+1)
	if err := f.SetCellStyle(sheetName, "A2", last, wrap); err != nil {
		return fmt.Errorf("apply style: %w", err)
	}
	if err := f.SetColWidth(sheetName, "D", "O", 32); err != nil {
		return fmt.Errorf("set widths: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type yamlRisk struct {
	Ideation  string `yaml:"ideation"`
	Plan      string `yaml:"plan"`
	RiskLevel string `yaml:"risk_level"`
}

type yamlCase struct {
	Diagnosis           string   `yaml:"diagnosis"`
	Age                 int      `yaml:"age"`
	Sex                 string   `yaml:"sex"`
	PresentingComplaint string   `yaml:"presenting_complaint"`
	Duration            string   `yaml:"duration"`
	Associated          string   `yaml:"associated"`
	RiskFactors         []string `yaml:"risk_factors"`
	MSE                 string   `yaml:"mse"`
	Investigations      string   `yaml:"investigations"`
	SuicideRisk         yamlRisk `yaml:"suicide_risk"`
	Explanation         string   `yaml:"explanation"`
	Management          []string `yaml:"management"`
}

type yamlDoc struct {
	Options []string   `yaml:"options"`
	Cases   []yamlCase `yaml:"cases"`
}

// WriteYAML writes the option list and cases as a single YAML document.
func WriteYAML(w io.Writer, cases []casebank.Case) error {
	doc := yamlDoc{}
	for _, d := range casebank.Options() {
		doc.Options = append(doc.Options, d.String())
	}
	for _, c := range cases {
		doc.Cases = append(doc.Cases, yamlCase{
			Diagnosis:           c.Diagnosis.String(),
			Age:                 c.Age,
			Sex:                 c.Sex,
			PresentingComplaint: c.PresentingComplaint,
			Duration:            c.Duration,
			Associated:          c.Associated,
			RiskFactors:         c.RiskFactors,
			MSE:                 c.MSE,
			Investigations:      c.Investigations,
			SuicideRisk: yamlRisk{
				Ideation:  c.SuicideRisk.Ideation,
				Plan:      c.SuicideRisk.Plan,
				RiskLevel: c.SuicideRisk.RiskLevel,
			},
			Explanation: c.Explanation,
			Management:  c.ManagementItems(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
