package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/phrazzld/nc-news-api/internal/api/shared"
	"golang.org/x/time/rate"
)

// errRateLimited is logged when a request is turned away.
var errRateLimited = errors.New("request rate limit exceeded")

// RateLimit returns middleware sharing one token bucket across all clients.
// rps <= 0 disables limiting. A burst below 1 is raised to 1.
// Rejected requests get 429 with a Retry-After header in whole seconds.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	retryAfter := strconv.Itoa(int(math.Max(1, math.Ceil(1/rps))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
					"Rate limit exceeded, retry later", errRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
