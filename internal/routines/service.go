package routines

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesRepo interface {
	Add(ctx context.Context, routine Routine) (*Routine, error)
	Get(ctx context.Context, id string) (*Routine, error)
	Update(ctx context.Context, routine *Routine) error
	Delete(ctx context.Context, id string) error
	ListTemplates(ctx context.Context, coachID string) ([]Routine, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]Routine, error)
	FindCopy(ctx context.Context, athleteID, sourceID string) (*Routine, error)
}

type athleteAuthorizer interface {
	Athlete(ctx context.Context, actor *users.User, athleteID string) (*users.User, error)
	CoachedAthlete(ctx context.Context, coach *users.User, athleteID string) (*users.User, error)
}

type Service struct {
	repo     routinesRepo
	athletes athleteAuthorizer
	nowFunc  func() time.Time
}

func NewService(repo routinesRepo, athletes athleteAuthorizer) *Service {
	return &Service{
		repo:     repo,
		athletes: athletes,
		nowFunc:  time.Now,
	}
}

// Create stores a new template owned by the coach.
func (s *Service) Create(ctx context.Context, coach *users.User, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routinesService.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !coach.IsCoach() {
		return nil, users.ErrForbidden
	}

	normalize(&routine)
	if err := Validate(routine); err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	routine.CoachID = coach.ID
	routine.AthleteID = ""
	routine.SourceID = ""
	routine.CreatedAt = now
	routine.UpdatedAt = now

	return s.repo.Add(ctx, routine)
}

// owned loads the routine and checks the coach owns it.
func (s *Service) owned(ctx context.Context, coach *users.User, id string) (*Routine, error) {
	if !coach.IsCoach() {
		return nil, users.ErrForbidden
	}
	routine, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if routine.CoachID != coach.ID {
		return nil, users.ErrForbidden
	}
	return routine, nil
}

func (s *Service) Update(ctx context.Context, coach *users.User, id string, changes Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routinesService.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("routine.id", id))

	routine, err := s.owned(ctx, coach, id)
	if err != nil {
		return nil, err
	}

	normalize(&changes)
	if err := Validate(changes); err != nil {
		return nil, err
	}

	routine.Name = changes.Name
	routine.Description = changes.Description
	routine.Days = changes.Days
	routine.UpdatedAt = s.nowFunc().UTC()
	if err := s.repo.Update(ctx, routine); err != nil {
		return nil, err
	}

	return routine, nil
}

// Delete removes the routine. Training logs keep their own copy of the
// routine name and exercises, so history is unaffected.
func (s *Service) Delete(ctx context.Context, coach *users.User, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routinesService.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("routine.id", id))

	if _, err := s.owned(ctx, coach, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Get returns the routine to its coach, or to the athlete owning the copy.
func (s *Service) Get(ctx context.Context, actor *users.User, id string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routinesService.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("routine.id", id))

	if actor == nil {
		return nil, users.ErrUnauthenticated
	}

	routine, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.IsCoach() && routine.CoachID == actor.ID:
		return routine, nil
	case actor.IsAthlete() && routine.AthleteID == actor.ID:
		return routine, nil
	default:
		return nil, users.ErrForbidden
	}
}

func (s *Service) ListTemplates(ctx context.Context, coach *users.User) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routinesService.listTemplates")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !coach.IsCoach() {
		return nil, users.ErrForbidden
	}
	return s.repo.ListTemplates(ctx, coach.ID)
}

func (s *Service) ListForAthlete(ctx context.Context, actor *users.User, athleteID string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routinesService.listForAthlete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByAthlete(ctx, athlete.ID)
}

// Duplicate makes a new template out of any routine the coach owns.
func (s *Service) Duplicate(ctx context.Context, coach *users.User, id string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routinesService.duplicate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("routine.id", id))

	src, err := s.owned(ctx, coach, id)
	if err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	return s.repo.Add(ctx, Routine{
		CoachID:     coach.ID,
		Name:        src.Name + copySuffix,
		Description: src.Description,
		Days:        cloneDays(src.Days),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Assign gives the athlete its own copy of the template. If the athlete already
// has a copy of it, that one is returned and created is false.
func (s *Service) Assign(ctx context.Context, coach *users.User, templateID, athleteID string) (_ *Routine, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "routinesService.assign")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("routine.id", templateID),
		attribute.String("athlete.id", athleteID),
	)

	template, err := s.owned(ctx, coach, templateID)
	if err != nil {
		return nil, false, err
	}
	if !template.IsTemplate() {
		return nil, false, ErrNotTemplate
	}

	athlete, err := s.athletes.CoachedAthlete(ctx, coach, athleteID)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.repo.FindCopy(ctx, athlete.ID, template.ID)
	if err == nil {
		log.Debugf("routine %s already assigned to %s as %s", template.ID, athlete.ID, existing.ID)
		return existing, false, nil
	}
	if !errors.Is(err, ErrRoutineNotFound) {
		return nil, false, err
	}

	now := s.nowFunc().UTC()
	copied, err := s.repo.Add(ctx, Routine{
		CoachID:     coach.ID,
		AthleteID:   athlete.ID,
		SourceID:    template.ID,
		Name:        template.Name,
		Description: template.Description,
		Days:        cloneDays(template.Days),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, false, err
	}

	span.SetAttributes(attribute.String("copy.id", copied.ID))
	return copied, true, nil
}
