package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLogging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	h := MiddlewareLogging(&log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("nope"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/encode", nil))

	out := buf.String()
	assert.Contains(t, out, `"status":422`)
	assert.Contains(t, out, `"path":"/api/encode"`)
	assert.Contains(t, out, `"error_type":"client_error"`)
	assert.Contains(t, out, `"bytes":4`)
}

func TestMiddlewareLogging_Panic(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	h := MiddlewareLogging(&log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, buf.String(), `"panic":"boom"`)
	assert.Contains(t, buf.String(), `"error_type":"server_error"`)
}
