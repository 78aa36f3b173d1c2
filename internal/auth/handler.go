package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type accountService interface {
	RegisterCoach(ctx context.Context, email, name, password string) (*users.User, error)
	Authenticate(ctx context.Context, email, password string) (*users.User, error)
}

type sessionService interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

type Handler struct {
	accounts accountService
	sessions sessionService
}

func NewHandler(accounts accountService, sessions sessionService) *Handler {
	return &Handler{
		accounts: accounts,
		sessions: sessions,
	}
}

// HandleRegister signs up a new coach and logs them in right away.
func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var req RegisterRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}

	coach, err := handler.accounts.RegisterCoach(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		log.Debugf("register failed: %s", err)
		users.WriteError(w, err)
		return
	}

	token, err := handler.sessions.Login(ctx, coach.ID, time.Now())
	if err != nil {
		log.Errorf("register, login new coach %s: %s", coach.ID, err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.MsgInternal)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, LoginResponse{Token: token, User: coach})
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var req LoginRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}

	u, err := handler.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		log.Tracef("failed login attempt for [%s]: %s", req.Email, err)
		users.WriteAuthError(w, err)
		return
	}

	token, err := handler.sessions.Login(ctx, u.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, create session for %s: %s", u.ID, err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.MsgInternal)
		return
	}

	log.Debugf("user %s logged in", u.ID)
	pkg.WriteJSONOK(w, LoginResponse{Token: token, User: u})
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := BearerToken(r)
	if token == "" {
		pkg.WriteError(w, http.StatusUnauthorized, pkg.MsgUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		pkg.WriteError(w, http.StatusInternalServerError, pkg.MsgInternal)
		return
	}

	pkg.WriteJSONOK(w, map[string]bool{"loggedOut": loggedOut})
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	u, ok := users.FromContext(r.Context())
	if !ok {
		pkg.WriteError(w, http.StatusUnauthorized, pkg.MsgUnauthorized)
		return
	}

	pkg.WriteJSONOK(w, u)
}
