package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/driftboard/founder-ledger/internal/logging"
)

// Recovery converts a handler panic into a 500. The stack goes to the log,
// never to the response body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log := logging.FromContext(r.Context())
				log.Error("panic recovered", "error", err, "stack", string(debug.Stack()))
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
