// Package session holds the per-user quiz state: one case, its reveal
// flags, and the stores that key that state by session ID.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/casesim/internal/casebank"
)

// State is one user's run through a single case.
type State struct {
	// ID keys the state in a Store.
	ID string

	// Case is fixed for the lifetime of the session.
	Case casebank.Case

	// CreatedAt is when the session was started.
	CreatedAt time.Time

	revealed map[casebank.Section]bool
}

// New starts a session on a case chosen by p.
func New(p Picker) *State {
	return newState(uuid.New().String(), p.Pick(), time.Now())
}

func newState(id string, c casebank.Case, now time.Time) *State {
	revealed := make(map[casebank.Section]bool, len(casebank.Sections()))
	for _, s := range casebank.Sections() {
		revealed[s] = false
	}
	return &State{
		ID:        id,
		Case:      c,
		CreatedAt: now,
		revealed:  revealed,
	}
}

// Reveal marks a section as shown. Revealing twice is a no-op.
// The section set is closed; an unknown section is a caller bug.
func (s *State) Reveal(sec casebank.Section) {
	if !sec.Valid() {
		panic(fmt.Sprintf("session: reveal of unknown section %q", sec))
	}
	s.revealed[sec] = true
}

// IsRevealed reports whether sec has been revealed in this session.
func (s *State) IsRevealed(sec casebank.Section) bool {
	return s.revealed[sec]
}

// Revealed returns the revealed sections in display order.
func (s *State) Revealed() []casebank.Section {
	var out []casebank.Section
	for _, sec := range casebank.Sections() {
		if s.revealed[sec] {
			out = append(out, sec)
		}
	}
	return out
}

// RevealedCount returns how many sections are currently shown.
func (s *State) RevealedCount() int {
	return len(s.Revealed())
}

// Check grades a diagnosis guess against this session's case.
func (s *State) Check(choice casebank.Diagnosis) Verdict {
	return CheckDiagnosis(choice, s.Case)
}
