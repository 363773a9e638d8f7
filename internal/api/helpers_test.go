package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	badRequestBody     = `{"status":400,"error":"Bad Request","message":"Invalid query"}`
	invalidBodyBody    = `{"status":400,"error":"Bad Request","message":"Invalid request body"}`
	notFoundBody       = `{"status":404,"error":"Not Found","message":"Not found"}`
	internalServerBody = `{"status":500,"error":"Internal Server Error"}`
)

var fixedTime = time.Date(2020, time.July, 9, 20, 11, 0, 0, time.UTC)

// serve routes a single request through a chi router that only knows pattern,
// so URL parameters resolve exactly as they do in production.
func serve(h http.HandlerFunc, method, pattern, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals the recorder's body into v.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

// assertErrorBody checks status and exact error envelope.
func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, status int, body string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	assert.JSONEq(t, body, w.Body.String())
}
