//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"barbershop-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefaultLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CustomRecovery())
	r.Use(func(c *gin.Context) {
		c.Set(httperr.RequestIDKey, "req-1")
		c.Next()
	})
	r.Use(ErrorHandler())

	r.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("state clash"), "Already confirmed", nil)
	})
	r.GET("/internal", func(c *gin.Context) {
		httperr.AbortInternal(c, errors.New("store unavailable"))
	})
	r.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(errors.New("recorded only"))
	})
	r.GET("/panic", func(c *gin.Context) {
		var m map[string]int
		m["boom"]++
	})
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperr.Response {
	t.Helper()
	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	t.Run("client errors pass through without error log", func(t *testing.T) {
		logs := captureDefaultLog(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/conflict", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Already confirmed", resp.Error.Message)
		assert.Equal(t, "req-1", resp.RequestID)
		assert.NotContains(t, logs.String(), "level=ERROR")
	})

	t.Run("server errors are logged with cause", func(t *testing.T) {
		logs := captureDefaultLog(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, httperr.MessageInternal, decodeError(t, w).Error.Message)
		assert.NotContains(t, w.Body.String(), "store unavailable")
		assert.Contains(t, logs.String(), "store unavailable")
	})

	t.Run("recorded error without response becomes 500", func(t *testing.T) {
		captureDefaultLog(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recorded", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "req-1", decodeError(t, w).RequestID)
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter()
	logs := captureDefaultLog(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, httperr.MessageInternal, resp.Error.Message)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Contains(t, logs.String(), "recovered from panic")
	assert.Contains(t, logs.String(), "assignment to entry in nil map")
}
