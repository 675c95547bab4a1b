package casebank

import (
	"errors"
	"testing"
)

func TestSectionsOrder(t *testing.T) {
	want := []Section{
		SectionHistory, SectionMSE, SectionInvestigations,
		SectionSuicide, SectionExplanation, SectionManagement,
	}
	got := Sections()
	if len(got) != len(want) {
		t.Fatalf("got %d sections, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d = %q, want %q", i, got[i], want[i])
		}
	}
	if n := len(ClinicalSections()) + len(TeachingSections()); n != len(want) {
		t.Errorf("clinical + teaching = %d, want %d", n, len(want))
	}
	if TeachingSections()[0] != SectionExplanation {
		t.Errorf("first teaching section = %q, want explanation", TeachingSections()[0])
	}
}

func TestParseSection(t *testing.T) {
	tests := []struct {
		key     string
		want    Section
		wantErr bool
	}{
		{"history", SectionHistory, false},
		{"suicide", SectionSuicide, false},
		{"management", SectionManagement, false},
		{"diagnosis", "", true},
		{"History", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSection(tt.key)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownSection) {
				t.Errorf("ParseSection(%q) err = %v, want ErrUnknownSection", tt.key, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseSection(%q) = %q, %v; want %q", tt.key, got, err, tt.want)
		}
	}
}

func TestSectionLabels(t *testing.T) {
	for _, s := range Sections() {
		if s.Title() == "" {
			t.Errorf("section %q has no title", s)
		}
		if s.ActionLabel() == "" {
			t.Errorf("section %q has no action label", s)
		}
	}
	if SectionSuicide.ActionLabel() != "Assess Risk" {
		t.Errorf("suicide action = %q, want Assess Risk", SectionSuicide.ActionLabel())
	}
}

func TestFields_History(t *testing.T) {
	c, _ := ByDiagnosis(BipolarManic)
	fields := c.Fields(SectionHistory)
	if len(fields) != 5 {
		t.Fatalf("got %d history fields, want 5", len(fields))
	}
	if fields[0].Label != "Age / Sex" || fields[0].Value != "28 / Male" {
		t.Errorf("first field = %+v", fields[0])
	}
	if fields[4].Label != "Risk Factors" || fields[4].Value != "Past depressive episode" {
		t.Errorf("risk factors field = %+v", fields[4])
	}
}

func TestFields_RiskFactorsJoined(t *testing.T) {
	c := Case{RiskFactors: []string{"Cocaine use", "Poor sleep"}}
	fields := c.Fields(SectionHistory)
	if got := fields[4].Value; got != "Cocaine use, Poor sleep" {
		t.Errorf("risk factors = %q, want comma joined", got)
	}
}

func TestFields_Suicide(t *testing.T) {
	c, _ := ByDiagnosis(StimulantInducedMood)
	fields := c.Fields(SectionSuicide)
	want := []Field{
		{Label: "Ideation", Value: "Absent"},
		{Label: "Plan", Value: "Absent"},
		{Label: "Overall Risk", Value: "Low–Moderate (impulsivity)"},
	}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, fields[i], want[i])
		}
	}
}

func TestFields_FreeText(t *testing.T) {
	c, _ := ByDiagnosis(SchizoaffectiveManic)
	for _, s := range []Section{SectionMSE, SectionInvestigations, SectionExplanation, SectionManagement} {
		fields := c.Fields(s)
		if len(fields) != 1 || fields[0].Label != "" || fields[0].Value == "" {
			t.Errorf("Fields(%s) = %+v, want one unlabeled value", s, fields)
		}
	}
	if c.Fields(Section("bogus")) != nil {
		t.Error("unknown section should project to no fields")
	}
}

func TestManagementItems(t *testing.T) {
	c, _ := ByDiagnosis(AntidepressantInducedMania)
	items := c.ManagementItems()
	want := []string{"Stop antidepressant", "Start mood stabilizer", "Re-evaluate diagnosis (bipolarity)"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, items[i], want[i])
		}
	}
}
