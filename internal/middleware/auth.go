package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type sessionResolver interface {
	Session(ctx context.Context, token string) (*auth.Session, error)
}

type userLoader interface {
	GetByID(ctx context.Context, id string) (*users.User, error)
}

const mcpPathPrefix = "/mcp"

type AuthMiddlewareHandler struct {
	sessions     sessionResolver
	users        userLoader
	mcpSecret    string
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(
	sessions sessionResolver,
	users userLoader,
	mcpSecret string,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		sessions:  sessions,
		users:     users,
		mcpSecret: mcpSecret,
		allowedPaths: map[string]bool{
			"/health":        true,
			"/auth/login":    true,
			"/auth/register": true,
		},
	}
}

// AuthCheck resolves the bearer token into the session user and puts it
// into the request context. The MCP endpoint uses a shared secret instead.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions || h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(r.URL.Path, mcpPathPrefix) {
				secret := r.Header.Get("X-MCP-Secret")
				if h.mcpSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.mcpSecret)) != 1 {
					log.Warnf("[auth middleware] unauthorized mcp request => %s", r.URL.Path)
					pkg.WriteError(w, http.StatusUnauthorized, pkg.MsgUnauthorized)
					span.SetStatus(codes.Error, "mcp-secret-invalid")
					return
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := auth.BearerToken(r)
			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteError(w, http.StatusUnauthorized, pkg.MsgUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			session, err := h.sessions.Session(ctx, token)
			if err != nil {
				if !errors.Is(err, auth.ErrSessionNotFound) {
					log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
					span.RecordError(err)
				}
				pkg.WriteError(w, http.StatusUnauthorized, pkg.MsgUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}

			user, err := h.users.GetByID(ctx, session.UserID)
			if err != nil {
				// account removed while the session was still around
				log.Debugf("[auth middleware] session user %s not loaded: %s", session.UserID, err)
				pkg.WriteError(w, http.StatusUnauthorized, pkg.MsgUnauthorized)
				span.SetStatus(codes.Error, "session-user-missing")
				return
			}

			span.SetAttributes(
				attribute.String("user.id", user.ID),
				attribute.String("user.role", string(user.Role)),
			)
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(users.NewContext(r.Context(), user)))
		})
	}
}
