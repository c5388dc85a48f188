// Package recovery turns handler panics into 500 responses so one bad
// request cannot take the admin API down.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/tonearm/tonearm/internal/api/respond"
)

// Middleware recovers a panicking handler, logs the value with its stack,
// and answers with the standard error envelope.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote", r.RemoteAddr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from handler panic")
			respond.WriteInternalError(w, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
