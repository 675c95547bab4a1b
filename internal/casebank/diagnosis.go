package casebank

import (
	"errors"
	"fmt"
)

// ErrUnknownDiagnosis is returned when external input names no diagnosis option.
var ErrUnknownDiagnosis = errors.New("unknown diagnosis")

// Diagnosis is the closed set of answers a case can have. The same tags
// populate every selection control, so options and answers cannot drift.
type Diagnosis int

const (
	BipolarManic Diagnosis = iota + 1
	BipolarHypomanic
	StimulantInducedMood
	AntidepressantInducedMania
	SchizoaffectiveManic
)

type diagnosisInfo struct {
	label string
	slug  string
}

var diagnosisTable = map[Diagnosis]diagnosisInfo{
	BipolarManic:               {label: "Bipolar Disorder – Manic Episode", slug: "bipolar-manic"},
	BipolarHypomanic:           {label: "Bipolar Disorder – Hypomanic Episode", slug: "bipolar-hypomanic"},
	StimulantInducedMood:       {label: "Substance-Induced Mood Disorder (Stimulants)", slug: "stimulant-induced"},
	AntidepressantInducedMania: {label: "Antidepressant-Induced Mania", slug: "antidepressant-induced-mania"},
	SchizoaffectiveManic:       {label: "Schizoaffective Disorder – Manic Type", slug: "schizoaffective-manic"},
}

// options is the fixed presentation order of the selection control.
var options = []Diagnosis{
	BipolarManic,
	BipolarHypomanic,
	StimulantInducedMood,
	AntidepressantInducedMania,
	SchizoaffectiveManic,
}

// Options returns the diagnosis options in their fixed display order.
func Options() []Diagnosis {
	out := make([]Diagnosis, len(options))
	copy(out, options)
	return out
}

// Valid reports whether d is one of the defined diagnoses.
func (d Diagnosis) Valid() bool {
	_, ok := diagnosisTable[d]
	return ok
}

// String returns the canonical display label.
func (d Diagnosis) String() string {
	if info, ok := diagnosisTable[d]; ok {
		return info.label
	}
	return fmt.Sprintf("Diagnosis(%d)", int(d))
}

// Slug returns the stable machine key used in forms, APIs and snapshots.
func (d Diagnosis) Slug() string {
	return diagnosisTable[d].slug
}

// ParseDiagnosis maps a slug to its diagnosis. Matching is exact.
func ParseDiagnosis(slug string) (Diagnosis, error) {
	for _, d := range options {
		if diagnosisTable[d].slug == slug {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDiagnosis, slug)
}

// LookupLabel maps a display label to its diagnosis. Matching is exact:
// no case folding or whitespace trimming.
func LookupLabel(label string) (Diagnosis, bool) {
	for _, d := range options {
		if diagnosisTable[d].label == label {
			return d, true
		}
	}
	return 0, false
}
