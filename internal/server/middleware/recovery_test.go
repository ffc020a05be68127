package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddleware_RecoversPanic(t *testing.T) {
	logger, buf := captureLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went horribly wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes/changes", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		RecoveryMiddleware(logger)(next).ServeHTTP(w, req)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
	assert.NotContains(t, w.Body.String(), "something went horribly wrong",
		"panic details must not leak to the client")

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "something went horribly wrong")
}

func TestRecoveryMiddleware_PassesThroughNormally(t *testing.T) {
	logger, buf := captureLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("done"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	RecoveryMiddleware(logger)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "done", w.Body.String())
	assert.NotContains(t, buf.String(), "panic recovered")
}
