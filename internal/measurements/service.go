package measurements

import (
	"context"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=measurements_mocks_test.go -package=measurements_test

type measurementsRepo interface {
	Add(ctx context.Context, measurement BodyMeasurement) (*BodyMeasurement, error)
	Get(ctx context.Context, id string) (*BodyMeasurement, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, athleteID string, from, to time.Time, limit int) ([]BodyMeasurement, error)
	AddCheckIn(ctx context.Context, c CheckIn) (*CheckIn, error)
	ListCheckIns(ctx context.Context, athleteID string, from, to time.Time, limit int) ([]CheckIn, error)
}

type athleteAuthorizer interface {
	Athlete(ctx context.Context, actor *users.User, athleteID string) (*users.User, error)
}

type Service struct {
	repo     measurementsRepo
	athletes athleteAuthorizer
	nowFunc  func() time.Time
}

func NewService(repo measurementsRepo, athletes athleteAuthorizer) *Service {
	return &Service{
		repo:     repo,
		athletes: athletes,
		nowFunc:  time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.nowFunc = now
	return s
}

// Add stores a measurement for the athlete, dated today when no date is given.
func (s *Service) Add(ctx context.Context, actor *users.User, athleteID string, m BodyMeasurement) (_ *BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "measurementsService.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	if m.Date.IsZero() {
		m.Date = now
	}
	m.Date = pkg.StartOfDay(m.Date)
	m.AthleteID = athlete.ID
	m.Notes = strings.TrimSpace(m.Notes)
	m.CreatedAt = now

	return s.repo.Add(ctx, m)
}

func (s *Service) List(ctx context.Context, actor *users.User, athleteID string, from, to time.Time) (_ []BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "measurementsService.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, athlete.ID, pkg.StartOfDay(from), pkg.StartOfDay(to), 0)
}

func (s *Service) Delete(ctx context.Context, actor *users.User, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "measurementsService.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("measurement.id", id))

	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.athletes.Athlete(ctx, actor, m.AthleteID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) AddCheckIn(ctx context.Context, actor *users.User, athleteID string, c CheckIn) (_ *CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "measurementsService.addCheckIn")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	if c.Date.IsZero() {
		c.Date = now
	}
	c.Date = pkg.StartOfDay(c.Date)
	c.AthleteID = athlete.ID
	c.Notes = strings.TrimSpace(c.Notes)
	c.CreatedAt = now

	return s.repo.AddCheckIn(ctx, c)
}

func (s *Service) ListCheckIns(ctx context.Context, actor *users.User, athleteID string, from, to time.Time) (_ []CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "measurementsService.listCheckIns")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListCheckIns(ctx, athlete.ID, pkg.StartOfDay(from), pkg.StartOfDay(to), 0)
}
