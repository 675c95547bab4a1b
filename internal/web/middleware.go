package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/casesim/internal/session"
)

const stateKey = "casesim.state"

// requestLogger logs one line per request after it completes.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_addr", c.ClientIP()),
		)
	}
}

// sessionMiddleware loads the caller's session, creating one when the
// cookie is missing or stale, and stores it in the request context.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(s.opts.CookieName)

		st, created, err := s.manager.Load(c.Request.Context(), id)
		if err != nil {
			s.logger.ErrorContext(c.Request.Context(), "failed to load session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "could not load session",
				Code:    "session_unavailable",
			})
			return
		}
		if created {
			s.setSessionCookie(c, st.ID)
		}

		c.Set(stateKey, st)
		c.Next()
	}
}

func (s *Server) setSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.opts.CookieName, id, int(s.opts.CookieTTL/time.Second), "/", "", s.opts.SecureCookie, true)
}

// currentState returns the session loaded by sessionMiddleware.
func currentState(c *gin.Context) *session.State {
	return c.MustGet(stateKey).(*session.State)
}
