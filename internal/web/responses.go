package web

import (
	"github.com/abhisek/casesim/internal/casebank"
	"github.com/abhisek/casesim/internal/session"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ValidationErrorResponse represents validation error details
type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

type revealRequest struct {
	Section string `json:"section" binding:"required,section"`
}

type diagnosisRequest struct {
	Diagnosis string `json:"diagnosis" form:"diagnosis" binding:"required,diagnosis"`
}

type fieldResponse struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

type sectionResponse struct {
	Key      string          `json:"key"`
	Title    string          `json:"title"`
	Revealed bool            `json:"revealed"`
	Fields   []fieldResponse `json:"fields,omitempty"`
}

type optionResponse struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

type sessionResponse struct {
	ID       string            `json:"id"`
	Sections []sectionResponse `json:"sections"`
	Options  []optionResponse  `json:"options"`
}

type verdictResponse struct {
	Correct    bool   `json:"correct"`
	Answer     string `json:"answer"`
	AnswerSlug string `json:"answer_slug"`
	Message    string `json:"message"`
}

// newSessionResponse lists every section; fields are only included for
// revealed ones so hidden content never leaves the server.
func newSessionResponse(st *session.State) sessionResponse {
	resp := sessionResponse{
		ID:      st.ID,
		Options: optionResponses(),
	}
	for _, sec := range casebank.Sections() {
		sr := sectionResponse{
			Key:      string(sec),
			Title:    sec.Title(),
			Revealed: st.IsRevealed(sec),
		}
		if sr.Revealed {
			for _, f := range st.Case.Fields(sec) {
				sr.Fields = append(sr.Fields, fieldResponse{Label: f.Label, Value: f.Value})
			}
		}
		resp.Sections = append(resp.Sections, sr)
	}
	return resp
}

func optionResponses() []optionResponse {
	out := make([]optionResponse, 0, len(casebank.Options()))
	for _, d := range casebank.Options() {
		out = append(out, optionResponse{Slug: d.Slug(), Label: d.String()})
	}
	return out
}

func newVerdictResponse(v session.Verdict) verdictResponse {
	return verdictResponse{
		Correct:    v.Correct,
		Answer:     v.Answer.String(),
		AnswerSlug: v.Answer.Slug(),
		Message:    v.Message(),
	}
}
