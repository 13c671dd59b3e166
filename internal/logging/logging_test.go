package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "warn"}, &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	fallback := NewWithWriter(Config{Level: "bogus"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, fallback.GetLevel())
}

func TestMiddleware_TraceIDAndLogLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Middleware(NewWithWriter(Config{Level: "debug"}, &buf)))
	r.GET("/ping/:id", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Debug().Msg("inside")
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping/7", nil)
	req.Header.Set(TraceHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(TraceHeader))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &entry))
	assert.Equal(t, "abc-123", entry["trace_id"])
	assert.Equal(t, "/ping/:id", entry["route"])
	assert.EqualValues(t, 200, entry["status"])

	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "inside", entry["message"])
	assert.Equal(t, "abc-123", entry["trace_id"])
}

func TestMiddleware_MintsTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(TraceHeader), 36)
}
