package shared

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/nc-news-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusCreated, map[string]int{"votes": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"votes":1}`, w.Body.String())
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		expected string
	}{
		{
			name:     "bad request",
			status:   http.StatusBadRequest,
			message:  "Invalid query",
			expected: `{"status":400,"error":"Bad Request","message":"Invalid query"}` + "\n",
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			message:  "Not found",
			expected: `{"status":404,"error":"Not Found","message":"Not found"}` + "\n",
		},
		{
			name:     "server error drops the message",
			status:   http.StatusInternalServerError,
			message:  "pq: relation does not exist",
			expected: `{"status":500,"error":"Internal Server Error"}` + "\n",
		},
		{
			name:     "too many requests",
			status:   http.StatusTooManyRequests,
			expected: `{"status":429,"error":"Too Many Requests"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithError(w, req, tt.status, tt.message)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.expected, w.Body.String())
		})
	}
}

func TestRespondWithErrorSetsTraceHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(WithTraceID(context.Background(), "trace-1"))
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Not found")

	assert.Equal(t, "trace-1", w.Header().Get(TraceIDHeader))
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		message          string
		err              error
		elevate          bool
		expectedLogLevel string
	}{
		{
			name:             "server error",
			statusCode:       http.StatusInternalServerError,
			err:              errors.New("dial tcp: connection refused"),
			expectedLogLevel: "ERROR",
		},
		{
			name:             "client error",
			statusCode:       http.StatusBadRequest,
			message:          "Invalid query",
			err:              errors.New("article_id must be an integer"),
			expectedLogLevel: "DEBUG",
		},
		{
			name:             "elevated client error",
			statusCode:       http.StatusNotFound,
			message:          "Not found",
			err:              errors.New("article not found"),
			elevate:          true,
			expectedLogLevel: "WARN",
		},
		{
			name:             "rate limited",
			statusCode:       http.StatusTooManyRequests,
			err:              errors.New("rate limit exceeded"),
			expectedLogLevel: "WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			req := httptest.NewRequest(http.MethodGet, "/api/articles/1", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))
			w := httptest.NewRecorder()

			var opts []ResponseOption
			if tt.elevate {
				opts = append(opts, WithElevatedLogLevel())
			}
			RespondWithErrorAndLog(w, req, tt.statusCode, tt.message, tt.err, opts...)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Contains(t, logBuf.String(), "level="+tt.expectedLogLevel)
			assert.Contains(t, logBuf.String(), tt.err.Error())
			assert.NotContains(t, w.Body.String(), tt.err.Error())
		})
	}
}

func TestRespondWithErrorAndLogRedactsDetails(t *testing.T) {
	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	err := errors.New("connect postgres://nc:secret@db:5432/nc_news failed")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "", err)

	assert.NotContains(t, logBuf.String(), "secret")
	assert.Contains(t, logBuf.String(), "[REDACTED_CREDENTIAL]")
	assert.JSONEq(t, `{"status":500,"error":"Internal Server Error"}`, w.Body.String())
}
