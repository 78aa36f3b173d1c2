package auth

import (
	"net/http"
	"strings"
)

// BearerToken returns the session token from the Authorization header, or "".
func BearerToken(r *http.Request) string {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
