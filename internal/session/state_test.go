package session

import (
	"testing"

	"github.com/abhisek/casesim/internal/casebank"
)

func TestNew_AllHidden(t *testing.T) {
	st := New(&fixedPicker{diagnosis: casebank.BipolarManic})

	if st.ID == "" {
		t.Error("expected a session ID")
	}
	if st.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	for _, sec := range casebank.Sections() {
		if st.IsRevealed(sec) {
			t.Errorf("section %q revealed at start", sec)
		}
	}
	if st.RevealedCount() != 0 {
		t.Errorf("RevealedCount() = %d, want 0", st.RevealedCount())
	}
}

func TestNew_PicksOnce(t *testing.T) {
	p := &fixedPicker{diagnosis: casebank.SchizoaffectiveManic}
	st := New(p)
	if p.calls != 1 {
		t.Errorf("picker called %d times, want 1", p.calls)
	}
	if st.Case.Diagnosis != casebank.SchizoaffectiveManic {
		t.Errorf("case = %q, want schizoaffective", st.Case.Diagnosis)
	}
}

func TestNew_DistinctIDs(t *testing.T) {
	p := &fixedPicker{diagnosis: casebank.BipolarManic}
	a, b := New(p), New(p)
	if a.ID == b.ID {
		t.Errorf("two sessions share ID %q", a.ID)
	}
}

func TestReveal(t *testing.T) {
	st := New(&fixedPicker{diagnosis: casebank.BipolarManic})

	if st.IsRevealed(casebank.SectionHistory) {
		t.Fatal("history revealed before Reveal")
	}
	st.Reveal(casebank.SectionHistory)
	if !st.IsRevealed(casebank.SectionHistory) {
		t.Fatal("history not revealed after Reveal")
	}

	// Stays revealed across later actions.
	st.Reveal(casebank.SectionMSE)
	st.Check(casebank.BipolarHypomanic)
	if !st.IsRevealed(casebank.SectionHistory) {
		t.Error("history flag did not stay set")
	}
}

func TestReveal_Idempotent(t *testing.T) {
	once := New(&fixedPicker{diagnosis: casebank.BipolarManic})
	twice := New(&fixedPicker{diagnosis: casebank.BipolarManic})

	once.Reveal(casebank.SectionInvestigations)
	twice.Reveal(casebank.SectionInvestigations)
	twice.Reveal(casebank.SectionInvestigations)

	for _, sec := range casebank.Sections() {
		if once.IsRevealed(sec) != twice.IsRevealed(sec) {
			t.Errorf("section %q: once=%v twice=%v", sec, once.IsRevealed(sec), twice.IsRevealed(sec))
		}
	}
	if twice.RevealedCount() != 1 {
		t.Errorf("RevealedCount() = %d, want 1", twice.RevealedCount())
	}
}

func TestReveal_SectionsIndependent(t *testing.T) {
	for _, target := range casebank.Sections() {
		st := New(&fixedPicker{diagnosis: casebank.BipolarManic})
		st.Reveal(target)
		for _, other := range casebank.Sections() {
			if other == target {
				continue
			}
			if st.IsRevealed(other) {
				t.Errorf("revealing %q also revealed %q", target, other)
			}
		}
	}
}

func TestReveal_MSEDoesNotRevealManagement(t *testing.T) {
	st := New(&fixedPicker{diagnosis: casebank.BipolarManic})
	st.Reveal(casebank.SectionMSE)
	if st.IsRevealed(casebank.SectionManagement) {
		t.Error("revealing mse set management")
	}
}

func TestReveal_UnknownPanics(t *testing.T) {
	st := New(&fixedPicker{diagnosis: casebank.BipolarManic})
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown section")
		}
	}()
	st.Reveal(casebank.Section("diagnosis"))
}

func TestIsRevealed_UnknownIsFalse(t *testing.T) {
	st := New(&fixedPicker{diagnosis: casebank.BipolarManic})
	if st.IsRevealed(casebank.Section("nope")) {
		t.Error("unknown section should read as hidden")
	}
}

func TestRevealed_DisplayOrder(t *testing.T) {
	st := New(&fixedPicker{diagnosis: casebank.BipolarManic})
	st.Reveal(casebank.SectionManagement)
	st.Reveal(casebank.SectionHistory)
	st.Reveal(casebank.SectionSuicide)

	got := st.Revealed()
	want := []casebank.Section{casebank.SectionHistory, casebank.SectionSuicide, casebank.SectionManagement}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Revealed()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
