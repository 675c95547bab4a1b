// Package casebank holds the fixed catalog of clinical vignettes and the
// closed set of diagnosis options they are graded against.
package casebank

// All returns a copy of every case in canonical order.
func All() []Case {
	out := make([]Case, len(seedCases))
	for i, c := range seedCases {
		out[i] = c.clone()
	}
	return out
}

// Len returns the number of cases in the catalog.
func Len() int {
	return len(seedCases)
}

// Get returns a copy of the case at index i.
func Get(i int) (Case, bool) {
	if i < 0 || i >= len(seedCases) {
		return Case{}, false
	}
	return seedCases[i].clone(), true
}

// ByDiagnosis returns the case whose answer is d.
func ByDiagnosis(d Diagnosis) (Case, bool) {
	for _, c := range seedCases {
		if c.Diagnosis == d {
			return c.clone(), true
		}
	}
	return Case{}, false
}
