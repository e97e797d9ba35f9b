package chi

import (
	"crypto/subtle"
	"net/http"
	"strings"

	gen "github.com/kailas-cloud/okrsearch/internal/transport/openapi"
)

// exemptPaths are routes that bypass authentication and rate limiting.
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

func isExempt(r *http.Request) bool {
	_, ok := exemptPaths[r.URL.Path]
	return ok
}

// BearerAuthMiddleware returns a middleware that validates Bearer tokens
// against apiKeys. An empty key list disables authentication.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := make([][]byte, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExempt(r) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="okrsearch"`)
				writeError(w, http.StatusUnauthorized, gen.ErrorResponseCodeUnauthorized,
					`authorization header must be "Bearer <api key>"`)
				return
			}
			if !validKey(keys, token) {
				writeError(w, http.StatusUnauthorized, gen.ErrorResponseCodeUnauthorized, "invalid api key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token of a "Bearer <token>" header. The scheme is case-insensitive.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// validKey compares against every key in constant time.
func validKey(keys [][]byte, token string) bool {
	t := []byte(token)
	match := 0
	for _, k := range keys {
		match |= subtle.ConstantTimeCompare(k, t)
	}
	return match == 1
}
