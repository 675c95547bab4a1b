package session

import (
	"math"
	"testing"

	"github.com/abhisek/casesim/internal/casebank"
)

func TestRandomPicker_Uniform(t *testing.T) {
	const draws = 50000
	p := NewSeededPicker(7)

	counts := make(map[casebank.Diagnosis]int)
	for i := 0; i < draws; i++ {
		counts[p.Pick().Diagnosis]++
	}

	if len(counts) != casebank.Len() {
		t.Fatalf("picked %d distinct cases, want %d", len(counts), casebank.Len())
	}

	expected := float64(draws) / float64(casebank.Len())
	for d, n := range counts {
		if dev := math.Abs(float64(n)-expected) / expected; dev > 0.05 {
			t.Errorf("%q picked %d times, %.1f%% from expected %.0f", d, n, dev*100, expected)
		}
	}
}

func TestRandomPicker_Unseeded(t *testing.T) {
	p := NewRandomPicker()
	seen := make(map[casebank.Diagnosis]bool)
	for i := 0; i < 1000; i++ {
		c := p.Pick()
		if !c.Diagnosis.Valid() {
			t.Fatalf("picked invalid case %+v", c)
		}
		seen[c.Diagnosis] = true
	}
	if len(seen) != casebank.Len() {
		t.Errorf("1000 draws covered %d cases, want %d", len(seen), casebank.Len())
	}
}

func TestSeededPicker_Reproducible(t *testing.T) {
	a, b := NewSeededPicker(42), NewSeededPicker(42)
	for i := 0; i < 20; i++ {
		if da, db := a.Pick().Diagnosis, b.Pick().Diagnosis; da != db {
			t.Fatalf("draw %d: %q != %q", i, da, db)
		}
	}
}

func TestRandomPicker_AllowsRepeats(t *testing.T) {
	p := NewSeededPicker(1)
	prev := p.Pick().Diagnosis
	for i := 0; i < 200; i++ {
		d := p.Pick().Diagnosis
		if d == prev {
			return
		}
		prev = d
	}
	t.Error("no consecutive repeat in 200 draws; picks should be independent")
}
