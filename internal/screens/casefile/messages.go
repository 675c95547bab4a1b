package casefile

import (
	"github.com/abhisek/casesim/internal/casebank"
)

// revealSectionMsg is sent when a reveal action is chosen from the menu.
type revealSectionMsg struct {
	Section casebank.Section
}

// focusDiagnosisMsg moves keyboard focus to the diagnosis picker.
type focusDiagnosisMsg struct{}

// submitDiagnosisMsg is sent when the Submit Diagnosis button is pressed.
type submitDiagnosisMsg struct{}

// newCaseMsg discards the current case and draws another.
type newCaseMsg struct{}
