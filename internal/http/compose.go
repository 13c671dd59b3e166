package httpapi

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"northwind/internal/repository"
	"northwind/internal/service"
	"northwind/internal/view"
)

// listPage runs fetch and renders its rows under field in the named view,
// or renders the error view when fetch fails.
func listPage[T any](s *Server, name, field string, fetch func(c *gin.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := fetch(c)
		if err != nil {
			s.renderError(c, err)
			return
		}
		s.renderPage(c, http.StatusOK, name, gin.H{field: rows})
	}
}

// renderPage renders into a buffer first so a failing template never leaves
// a half-written page. Template failure is a build defect: log it and answer 500.
func (s *Server) renderPage(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.views.Render(&buf, name, data); err != nil {
		s.requestLog(c).Error().Err(err).Str("view", name).Msg("render failed")
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// renderError uniform error page carrying err's message
func (s *Server) renderError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	s.requestLog(c).Warn().Err(err).Int("status", status).Msg("request failed")
	_ = c.Error(err)
	s.renderPage(c, status, view.Error, gin.H{"errmsg": err.Error()})
}

func mapErrorToStatus(err error) int {
	var (
		malformed *MalformedParameterError
		zone      *service.InvalidZoneError
		store     *repository.StoreError
	)
	switch {
	case errors.As(err, &malformed), errors.As(err, &zone):
		return http.StatusBadRequest
	case errors.As(err, &store):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
