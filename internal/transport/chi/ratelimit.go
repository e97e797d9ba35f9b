package chi

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	gen "github.com/kailas-cloud/okrsearch/internal/transport/openapi"
)

// RateLimitMiddleware applies one process-wide token bucket to every
// non-exempt route. rps <= 0 disables limiting (pass-through).
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rps <= 0 {
			return next
		}
		if burst <= 0 {
			burst = 1
		}
		limiter := rate.NewLimiter(rate.Limit(rps), burst)
		retryAfter := strconv.Itoa(int(math.Ceil(1 / rps)))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExempt(r) {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, gen.ErrorResponseCodeRateLimited, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
