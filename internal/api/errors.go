package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/nc-news-api/internal/api/shared"
	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// Client-facing messages for each error category.
const (
	MessageInvalidQuery = "Invalid query"
	MessageInvalidBody  = "Invalid request body"
	MessageNotFound     = "Not found"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Anything unrecognised is a server error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery),
		errors.Is(err, domain.ErrInvalidBody):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-safe message for err.
// Server errors get no message at all.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		return MessageInvalidQuery
	case errors.Is(err, domain.ErrInvalidBody):
		return MessageInvalidBody
	case errors.Is(err, store.ErrNotFound):
		return MessageNotFound
	default:
		return ""
	}
}

// HandleAPIError writes the error envelope for err and logs the detail.
// Not-found and bad-request errors are routine and logged at debug level.
// A write naming a missing topic, article or user is logged at warn level.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var opts []shared.ResponseOption
	if errors.Is(err, store.ErrMissingReference) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}
