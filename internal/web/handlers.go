package web

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/casesim/internal/casebank"
	"github.com/abhisek/casesim/internal/session"
)

type pageSection struct {
	Key      string
	Title    string
	Action   string
	Revealed bool
	Fields   []casebank.Field
	Items    []string
	Callout  string
}

type pageOption struct {
	Slug     string
	Label    string
	Selected bool
}

type pageData struct {
	Clinical      []pageSection
	Teaching      []pageSection
	Options       []pageOption
	Verdict       *verdictResponse
	RevealedCount int
	SectionCount  int
}

func newPageData(st *session.State, chosen casebank.Diagnosis, v *session.Verdict) pageData {
	data := pageData{
		RevealedCount: st.RevealedCount(),
		SectionCount:  len(casebank.Sections()),
	}
	for _, sec := range casebank.ClinicalSections() {
		data.Clinical = append(data.Clinical, newPageSection(st, sec))
	}
	for _, sec := range casebank.TeachingSections() {
		data.Teaching = append(data.Teaching, newPageSection(st, sec))
	}
	for _, d := range casebank.Options() {
		data.Options = append(data.Options, pageOption{
			Slug:     d.Slug(),
			Label:    d.String(),
			Selected: d == chosen,
		})
	}
	if v != nil {
		vr := newVerdictResponse(*v)
		data.Verdict = &vr
	}
	return data
}

func newPageSection(st *session.State, sec casebank.Section) pageSection {
	ps := pageSection{
		Key:      string(sec),
		Title:    sec.Title(),
		Action:   sec.ActionLabel(),
		Revealed: st.IsRevealed(sec),
	}
	if !ps.Revealed {
		return ps
	}
	switch sec {
	case casebank.SectionExplanation:
		ps.Callout = "info"
		ps.Fields = st.Case.Fields(sec)
	case casebank.SectionManagement:
		ps.Callout = "success"
		ps.Items = st.Case.ManagementItems()
	default:
		ps.Fields = st.Case.Fields(sec)
	}
	return ps
}

// showCase renders the case page.
func (s *Server) showCase(c *gin.Context) {
	s.render(c, http.StatusOK, newPageData(currentState(c), 0, nil))
}

// revealSection reveals one section and redirects back to the page.
func (s *Server) revealSection(c *gin.Context) {
	sec, err := casebank.ParseSection(c.Param("section"))
	if err != nil {
		c.String(http.StatusBadRequest, "unknown section %q", c.Param("section"))
		return
	}

	if err := s.manager.Reveal(c.Request.Context(), currentState(c), sec); err != nil {
		s.respondInternal(c, err, "could not save session")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// submitDiagnosis grades the posted form and renders the page with feedback.
// Feedback is not stored, so the next page load shows none.
func (s *Server) submitDiagnosis(c *gin.Context) {
	var req diagnosisRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "choose one of the listed diagnoses")
		return
	}

	st := currentState(c)
	choice, _ := casebank.ParseDiagnosis(req.Diagnosis)
	v := s.manager.Submit(c.Request.Context(), st, choice)
	s.render(c, http.StatusOK, newPageData(st, choice, &v))
}

// resetCase starts a new case under a new session cookie.
func (s *Server) resetCase(c *gin.Context) {
	st, err := s.manager.Reset(c.Request.Context(), currentState(c).ID)
	if err != nil {
		s.respondInternal(c, err, "could not reset session")
		return
	}
	s.setSessionCookie(c, st.ID)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) render(c *gin.Context, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.respondInternal(c, err, "could not render page")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
