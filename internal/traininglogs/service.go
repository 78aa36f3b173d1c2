package traininglogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=traininglogs_mocks_test.go -package=traininglogs_test

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type logsRepo interface {
	Add(ctx context.Context, log TrainingLog) (*TrainingLog, error)
	Get(ctx context.Context, id string) (*TrainingLog, error)
	FindInProgress(ctx context.Context, athleteID, routineID string, dayIndex int, date time.Time) (*TrainingLog, error)
	UpdateExercises(ctx context.Context, id string, exercises []Exercise, updatedAt time.Time) error
	Complete(ctx context.Context, log *TrainingLog) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, athleteID string, filter Filter) ([]TrainingLog, int, error)
	ListRecentCompletedByAthletes(ctx context.Context, athleteIDs []string, limit int) ([]TrainingLog, error)
}

type routineGetter interface {
	Get(ctx context.Context, id string) (*routines.Routine, error)
}

type athleteAuthorizer interface {
	Athlete(ctx context.Context, actor *users.User, athleteID string) (*users.User, error)
	ListAthletes(ctx context.Context, coach *users.User) ([]users.User, error)
}

// FeedItem is a completed session as shown in the coach feed.
type FeedItem struct {
	TrainingLog
	AthleteName string `json:"athleteName"`
}

type Service struct {
	repo           logsRepo
	routines       routineGetter
	athletes       athleteAuthorizer
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewService(
	repo logsRepo,
	routines routineGetter,
	athletes athleteAuthorizer,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		routines:       routines,
		athletes:       athletes,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.nowFunc = now
	return s
}

// Start opens a log for a routine day, or resumes the one already in progress
// for the same routine, day and date. created is false when resuming.
func (s *Service) Start(ctx context.Context, actor *users.User, routineID string, dayIndex int, date time.Time) (_ *TrainingLog, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logsService.start")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("routine.id", routineID))

	if !actor.IsAthlete() {
		return nil, false, users.ErrForbidden
	}

	routine, err := s.routines.Get(ctx, routineID)
	if err != nil {
		return nil, false, err
	}
	if routine.AthleteID != actor.ID {
		return nil, false, users.ErrForbidden
	}
	day, ok := routine.Day(dayIndex)
	if !ok {
		return nil, false, pkg.NewValidationError(ErrInvalidLog, "La rutina no tiene el día %d.", dayIndex+1)
	}

	now := s.nowFunc().UTC()
	if date.IsZero() {
		date = now
	}
	date = pkg.StartOfDay(date)

	existing, err := s.repo.FindInProgress(ctx, actor.ID, routine.ID, dayIndex, date)
	if err == nil {
		log.Debugf("resuming log %s for athlete %s", existing.ID, actor.ID)
		return existing, false, nil
	}
	if !errors.Is(err, ErrLogNotFound) {
		return nil, false, err
	}

	started, err := s.repo.Add(ctx, TrainingLog{
		AthleteID:   actor.ID,
		CoachID:     routine.CoachID,
		RoutineID:   routine.ID,
		RoutineName: routine.Name,
		DayIndex:    dayIndex,
		DayName:     day.Name,
		Date:        date,
		Status:      StatusInProgress,
		Exercises:   prefill(day),
		StartedAt:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, false, err
	}

	return started, true, nil
}

// editable loads a log the actor may still write to: their own, in progress.
func (s *Service) editable(ctx context.Context, actor *users.User, id string) (*TrainingLog, error) {
	if actor == nil {
		return nil, users.ErrUnauthenticated
	}
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.AthleteID != actor.ID {
		return nil, users.ErrForbidden
	}
	if l.Status != StatusInProgress {
		return nil, ErrLogNotInProgress
	}
	return l, nil
}

func (s *Service) UpdateSet(ctx context.Context, actor *users.User, id string, exerciseIdx, setIdx int, input SetInput) (_ *TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logsService.updateSet")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("log.id", id))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.editable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if exerciseIdx < 0 || exerciseIdx >= len(l.Exercises) {
		return nil, pkg.NewValidationError(ErrInvalidSet, "El ejercicio %d no existe.", exerciseIdx+1)
	}
	sets := l.Exercises[exerciseIdx].Sets
	if setIdx < 0 || setIdx >= len(sets) {
		return nil, pkg.NewValidationError(ErrInvalidSet, "La serie %d no existe.", setIdx+1)
	}

	newlyCompleted := input.Completed && !sets[setIdx].Completed
	sets[setIdx].Weight = input.Weight
	sets[setIdx].Reps = input.Reps
	sets[setIdx].RPE = input.RPE
	sets[setIdx].Completed = input.Completed

	l.UpdatedAt = s.nowFunc().UTC()
	if err := s.repo.UpdateExercises(ctx, l.ID, l.Exercises, l.UpdatedAt); err != nil {
		return nil, err
	}

	if newlyCompleted && s.metricsManager != nil {
		s.metricsManager.CounterLoggedSets.Inc()
	}

	return l, nil
}

// AddSet appends a set with the same targets as the last one of the exercise.
func (s *Service) AddSet(ctx context.Context, actor *users.User, id string, exerciseIdx int) (_ *TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logsService.addSet")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("log.id", id))

	l, err := s.editable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if exerciseIdx < 0 || exerciseIdx >= len(l.Exercises) {
		return nil, pkg.NewValidationError(ErrInvalidSet, "El ejercicio %d no existe.", exerciseIdx+1)
	}

	ex := &l.Exercises[exerciseIdx]
	var next Set
	if n := len(ex.Sets); n > 0 {
		prev := ex.Sets[n-1]
		next = Set{
			TargetReps:   prev.TargetReps,
			TargetWeight: prev.TargetWeight,
			TargetRPE:    prev.TargetRPE,
		}
	}
	ex.Sets = append(ex.Sets, next)

	l.UpdatedAt = s.nowFunc().UTC()
	if err := s.repo.UpdateExercises(ctx, l.ID, l.Exercises, l.UpdatedAt); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) Finish(ctx context.Context, actor *users.User, id, notes string, sessionRPE float64) (_ *TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logsService.finish")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("log.id", id))

	if sessionRPE != 0 && (sessionRPE < 1 || sessionRPE > 10) {
		return nil, pkg.NewValidationError(ErrInvalidLog, "El RPE de la sesión debe estar entre 1 y 10.")
	}

	l, err := s.editable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	completedAt := s.nowFunc().UTC()
	minutes := int(completedAt.Sub(l.StartedAt) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}

	l.Status = StatusCompleted
	l.Notes = strings.TrimSpace(notes)
	l.SessionRPE = sessionRPE
	l.DurationMinutes = minutes
	l.CompletedAt = &completedAt
	l.UpdatedAt = completedAt
	if err := s.repo.Complete(ctx, l); err != nil {
		return nil, err
	}

	log.Debugf("athlete %s finished log %s in %d min", l.AthleteID, l.ID, minutes)
	return l, nil
}

func (s *Service) Get(ctx context.Context, actor *users.User, id string) (_ *TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logsService.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("log.id", id))

	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.athletes.Athlete(ctx, actor, l.AthleteID); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, actor *users.User, athleteID string, filter Filter) (_ *Page, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logsService.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, pkg.NewValidationError(ErrInvalidLog, "El estado %q no es válido.", filter.Status)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = DefaultPageSize
	}
	if filter.Size > MaxPageSize {
		filter.Size = MaxPageSize
	}

	logs, total, err := s.repo.List(ctx, athlete.ID, filter)
	if err != nil {
		return nil, err
	}

	return &Page{
		Logs:  logs,
		Total: total,
		Page:  filter.Page,
		Size:  filter.Size,
	}, nil
}

// Delete is allowed to the athlete and to their coach.
func (s *Service) Delete(ctx context.Context, actor *users.User, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logsService.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("log.id", id))

	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.athletes.Athlete(ctx, actor, l.AthleteID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// CoachFeed lists the latest completed sessions across the coach's athletes.
func (s *Service) CoachFeed(ctx context.Context, coach *users.User, limit int) (_ []FeedItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logsService.coachFeed")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	athletes, err := s.athletes.ListAthletes(ctx, coach)
	if err != nil {
		return nil, err
	}
	if len(athletes) == 0 {
		return []FeedItem{}, nil
	}

	// logs of removed athletes stay in the table but leave the feed
	ids := make([]string, 0, len(athletes))
	names := make(map[string]string, len(athletes))
	for _, a := range athletes {
		ids = append(ids, a.ID)
		names[a.ID] = a.Name
	}

	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	logs, err := s.repo.ListRecentCompletedByAthletes(ctx, ids, limit)
	if err != nil {
		return nil, err
	}

	feed := make([]FeedItem, 0, len(logs))
	for _, l := range logs {
		feed = append(feed, FeedItem{TrainingLog: l, AthleteName: names[l.AthleteID]})
	}

	return feed, nil
}
