package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/casesim/internal/casebank"
)

// apiGetSession returns the caller's session.
func (s *Server) apiGetSession(c *gin.Context) {
	c.JSON(http.StatusOK, newSessionResponse(currentState(c)))
}

// apiReveal reveals one section and returns the updated session.
func (s *Server) apiReveal(c *gin.Context) {
	var req revealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: validationDetails(err),
			Code:    "invalid_request",
		})
		return
	}

	st := currentState(c)
	sec, _ := casebank.ParseSection(req.Section)
	if err := s.manager.Reveal(c.Request.Context(), st, sec); err != nil {
		s.respondInternal(c, err, "could not save session")
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(st))
}

// apiSubmitDiagnosis grades a diagnosis guess.
func (s *Server) apiSubmitDiagnosis(c *gin.Context) {
	var req diagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: validationDetails(err),
			Code:    "invalid_request",
		})
		return
	}

	choice, _ := casebank.ParseDiagnosis(req.Diagnosis)
	v := s.manager.Submit(c.Request.Context(), currentState(c), choice)
	c.JSON(http.StatusOK, newVerdictResponse(v))
}

// apiReset replaces the caller's session with a new case.
func (s *Server) apiReset(c *gin.Context) {
	st, err := s.manager.Reset(c.Request.Context(), currentState(c).ID)
	if err != nil {
		s.respondInternal(c, err, "could not reset session")
		return
	}
	s.setSessionCookie(c, st.ID)
	c.JSON(http.StatusOK, newSessionResponse(st))
}

func (s *Server) respondInternal(c *gin.Context, err error, message string) {
	s.logger.ErrorContext(c.Request.Context(), message,
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: message,
		Code:    "internal_error",
	})
}
