package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/nc-news-api/internal/api/shared"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
)

// Recover converts a handler panic into the standard 500 error envelope.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}

			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "", err)
			logger.FromContextOrDefault(r.Context(), slog.Default()).
				Debug("recovered panic stack", slog.String("stack", string(debug.Stack())))
		}()

		next.ServeHTTP(w, r)
	})
}
