package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
)

const corsAllowedHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-MCP-Secret, MCP-Protocol-Version, MCP-Session-Id"

// Cors allows browser requests from the configured origins. Requests without
// an Origin header (mobile app, curl, MCP clients) are not browser requests and pass.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimSuffix(o, "/")] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !allowed[origin] {
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				pkg.WriteError(w, http.StatusForbidden, pkg.MsgForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
