package session

import (
	"github.com/abhisek/casesim/internal/casebank"
)

// fixedPicker always picks the case for one diagnosis.
type fixedPicker struct {
	diagnosis casebank.Diagnosis
	calls     int
}

func (f *fixedPicker) Pick() casebank.Case {
	f.calls++
	c, _ := casebank.ByDiagnosis(f.diagnosis)
	return c
}

// cyclePicker walks the catalog in order.
type cyclePicker struct {
	next int
}

func (c *cyclePicker) Pick() casebank.Case {
	cs, _ := casebank.Get(c.next % casebank.Len())
	c.next++
	return cs
}
