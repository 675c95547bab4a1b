package session

import "github.com/abhisek/casesim/internal/casebank"

// Verdict is the outcome of one diagnosis submission.
type Verdict struct {
	Correct bool

	// Answer is the case's true diagnosis, set for both outcomes.
	Answer casebank.Diagnosis
}

// CheckDiagnosis compares a chosen option with the case's diagnosis.
func CheckDiagnosis(choice casebank.Diagnosis, c casebank.Case) Verdict {
	return Verdict{
		Correct: choice == c.Diagnosis,
		Answer:  c.Diagnosis,
	}
}

// Message returns the feedback line shown to the user.
func (v Verdict) Message() string {
	if v.Correct {
		return "Correct diagnosis"
	}
	return "Correct answer: " + v.Answer.String()
}
