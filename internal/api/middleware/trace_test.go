package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/nc-news-api/internal/api/shared"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
	"github.com/phrazzld/nc-news-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	validID := "3f1b2c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"

	tests := []struct {
		name      string
		inbound   string
		wantReuse bool
	}{
		{name: "no inbound header", inbound: ""},
		{name: "valid inbound id is reused", inbound: validID, wantReuse: true},
		{name: "malformed inbound id is replaced", inbound: "not-a-uuid"},
		{name: "oversized inbound id is replaced", inbound: validID + validID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenID string
			var hasLogger bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = shared.GetTraceID(r.Context())
				hasLogger = logger.FromContextOrDefault(r.Context(), nil) != nil
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
			if tt.inbound != "" {
				req.Header.Set(shared.TraceIDHeader, tt.inbound)
			}
			w := httptest.NewRecorder()

			Trace(nil)(next).ServeHTTP(w, req)

			require.NotEmpty(t, seenID)
			assert.True(t, hasLogger)
			assert.Equal(t, seenID, w.Header().Get(shared.TraceIDHeader))
			_, err := uuid.Parse(seenID)
			assert.NoError(t, err)
			if tt.wantReuse {
				assert.Equal(t, tt.inbound, seenID)
			} else {
				assert.NotEqual(t, tt.inbound, seenID)
			}
		})
	}
}

func TestTraceLogsWithTraceID(t *testing.T) {
	capture, log := testutils.NewLogCapture()
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("handled")
	})

	Trace(log)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/users", nil))

	started, ok := capture.Find("request started")
	require.True(t, ok)
	assert.Equal(t, seenID, started["trace_id"])
	assert.Equal(t, "/api/users", started["path"])

	handled, ok := capture.Find("handled")
	require.True(t, ok)
	assert.Equal(t, seenID, handled["trace_id"])
}
