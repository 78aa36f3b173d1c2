package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByCoach(ctx context.Context, coachID string) ([]User, error)
	UpdateProfile(ctx context.Context, id string, profile Profile, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type sessionRevoker interface {
	LogoutAll(ctx context.Context, userID string) (int, error)
}

type Service struct {
	repo     usersRepo
	sessions sessionRevoker

	hashPassword  func(password string) (string, error)
	checkPassword func(password, hash string) bool
	nowFunc       func() time.Time
}

func NewService(repo usersRepo, sessions sessionRevoker) *Service {
	return &Service{
		repo:          repo,
		sessions:      sessions,
		hashPassword:  pkg.HashPassword,
		checkPassword: pkg.CheckPasswordHash,
		nowFunc:       time.Now,
	}
}

// WithPasswordHasher replaces the bcrypt functions, tests use it to skip the slow hashing.
func (s *Service) WithPasswordHasher(
	hash func(password string) (string, error),
	check func(password, hash string) bool,
) *Service {
	s.hashPassword = hash
	s.checkPassword = check
	return s
}

func (s *Service) newUser(email, name, password string, role Role) (User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if err := validateCredentials(email, name, password); err != nil {
		return User{}, err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.nowFunc().UTC()
	return User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *Service) RegisterCoach(ctx context.Context, email, name, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersService.registerCoach")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	coach, err := s.newUser(email, name, password, RoleCoach)
	if err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, coach)
	if err != nil {
		return nil, err
	}

	log.Debugf("new coach registered: %s", added.ID)
	return added, nil
}

func (s *Service) CreateAthlete(ctx context.Context, coach *User, email, name, password string, profile Profile) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersService.createAthlete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !coach.IsCoach() {
		return nil, ErrForbidden
	}
	span.SetAttributes(attribute.String("coach.id", coach.ID))

	athlete, err := s.newUser(email, name, password, RoleAthlete)
	if err != nil {
		return nil, err
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	athlete.CoachID = coach.ID
	athlete.Profile = profile

	added, err := s.repo.Add(ctx, athlete)
	if err != nil {
		return nil, err
	}

	log.Debugf("coach %s created athlete %s", coach.ID, added.ID)
	return added, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersService.authenticate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	email = normalizeEmail(email)
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.checkPassword(password, u.PasswordHash) {
		return nil, ErrWrongPassword
	}

	return u, nil
}

// GetByID loads a user without any authorization check, used to resolve sessions.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

// Get returns the user if the actor is allowed to see it: themselves,
// one of their athletes, or their own coach.
func (s *Service) Get(ctx context.Context, actor *User, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersService.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", id))

	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if actor.ID == id {
		return actor, nil
	}

	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if CanAccessAthlete(actor, u) || (actor.IsAthlete() && actor.CoachID == u.ID) {
		return u, nil
	}
	return nil, ErrForbidden
}

// Athlete loads the athlete and checks the actor may access it.
func (s *Service) Athlete(ctx context.Context, actor *User, athleteID string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersService.athlete")
	defer func() {
		if errors.Is(err, ErrForbidden) {
			span.SetAttributes(attribute.Bool("forbidden", true))
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	if actor == nil {
		return nil, ErrUnauthenticated
	}

	athlete := actor
	if actor.ID != athleteID {
		athlete, err = s.repo.Get(ctx, athleteID)
		if err != nil {
			return nil, err
		}
	}

	if !CanAccessAthlete(actor, athlete) {
		return nil, ErrForbidden
	}
	return athlete, nil
}

// CoachedAthlete is like Athlete, but only the athlete's own coach passes.
func (s *Service) CoachedAthlete(ctx context.Context, coach *User, athleteID string) (*User, error) {
	if !coach.IsCoach() {
		return nil, ErrForbidden
	}
	return s.Athlete(ctx, coach, athleteID)
}

func (s *Service) ListAthletes(ctx context.Context, coach *User) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersService.listAthletes")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !coach.IsCoach() {
		return nil, ErrForbidden
	}
	return s.repo.ListByCoach(ctx, coach.ID)
}

func (s *Service) UpdateProfile(ctx context.Context, actor *User, athleteID string, profile Profile) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersService.updateProfile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	athlete, err := s.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	if err := s.repo.UpdateProfile(ctx, athlete.ID, profile, now); err != nil {
		return nil, err
	}

	updated := *athlete
	updated.Profile = profile
	updated.UpdatedAt = now
	return &updated, nil
}

// RemoveAthlete deletes the athlete account and drops all of its sessions.
// Training data stays in place, the coach keeps it for history.
func (s *Service) RemoveAthlete(ctx context.Context, coach *User, athleteID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "usersService.removeAthlete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	athlete, err := s.CoachedAthlete(ctx, coach, athleteID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, athlete.ID); err != nil {
		return err
	}

	if s.sessions != nil {
		dropped, err := s.sessions.LogoutAll(ctx, athlete.ID)
		if err != nil {
			// account is gone already, sessions will fail to resolve the user anyway
			log.Errorf("remove athlete %s, drop sessions: %s", athlete.ID, err)
		} else {
			log.Debugf("remove athlete %s, dropped %d sessions", athlete.ID, dropped)
		}
	}

	return nil
}
