package schedules

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=schedules_mocks_test.go -package=schedules_test

type schedulesRepo interface {
	Replace(ctx context.Context, schedule Schedule) (*Schedule, error)
	Active(ctx context.Context, athleteID string) (*Schedule, error)
	Deactivate(ctx context.Context, athleteID string) error
}

type routineGetter interface {
	Get(ctx context.Context, id string) (*routines.Routine, error)
}

type completedLogs interface {
	ListCompleted(ctx context.Context, athleteID string, from, to time.Time) ([]traininglogs.TrainingLog, error)
}

type athleteAuthorizer interface {
	Athlete(ctx context.Context, actor *users.User, athleteID string) (*users.User, error)
	CoachedAthlete(ctx context.Context, coach *users.User, athleteID string) (*users.User, error)
}

type SetParams struct {
	RoutineID string
	StartDate time.Time
	EndDate   *time.Time
	Slots     []Slot
}

type Service struct {
	repo     schedulesRepo
	routines routineGetter
	logs     completedLogs
	athletes athleteAuthorizer
	nowFunc  func() time.Time
}

func NewService(
	repo schedulesRepo,
	routines routineGetter,
	logs completedLogs,
	athletes athleteAuthorizer,
) *Service {
	return &Service{
		repo:     repo,
		routines: routines,
		logs:     logs,
		athletes: athletes,
		nowFunc:  time.Now,
	}
}

// Set makes a new active schedule for the athlete, replacing the previous one.
func (s *Service) Set(ctx context.Context, coach *users.User, athleteID string, params SetParams) (_ *Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "schedulesService.set")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("athlete.id", athleteID),
		attribute.String("routine.id", params.RoutineID),
	)

	athlete, err := s.athletes.CoachedAthlete(ctx, coach, athleteID)
	if err != nil {
		return nil, err
	}

	if params.StartDate.IsZero() {
		return nil, pkg.NewValidationError(ErrInvalidSchedule, "Falta la fecha de inicio.")
	}
	start := pkg.StartOfDay(params.StartDate)
	var end *time.Time
	if params.EndDate != nil {
		e := pkg.StartOfDay(*params.EndDate)
		if e.Before(start) {
			return nil, pkg.NewValidationError(ErrInvalidSchedule, "La fecha de fin no puede ser anterior a la de inicio.")
		}
		end = &e
	}

	routine, err := s.routines.Get(ctx, params.RoutineID)
	if err != nil {
		return nil, err
	}
	if routine.AthleteID != athlete.ID {
		return nil, pkg.NewValidationError(ErrInvalidSchedule, "La rutina no está asignada a este atleta.")
	}
	if err := validateSlots(routine, params.Slots); err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	return s.repo.Replace(ctx, Schedule{
		AthleteID: athlete.ID,
		CoachID:   coach.ID,
		RoutineID: routine.ID,
		StartDate: start,
		EndDate:   end,
		Slots:     params.Slots,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) Active(ctx context.Context, actor *users.User, athleteID string) (_ *Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "schedulesService.active")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	return s.repo.Active(ctx, athlete.ID)
}

func (s *Service) Clear(ctx context.Context, coach *users.User, athleteID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "schedulesService.clear")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.CoachedAthlete(ctx, coach, athleteID)
	if err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, athlete.ID)
}

// Today returns the routine day planned for date, nil on rest days, outside
// the schedule range or when there is no active schedule.
func (s *Service) Today(ctx context.Context, actor *users.User, athleteID string, date time.Time) (_ *ScheduledDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "schedulesService.today")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}

	schedule, routine, err := s.activeWithRoutine(ctx, athlete.ID)
	if err != nil || schedule == nil {
		return nil, err
	}

	return scheduledOn(schedule, routine, date), nil
}

// Week lists the seven days, Monday to Sunday, of the ISO week containing date.
func (s *Service) Week(ctx context.Context, actor *users.User, athleteID string, date time.Time) (_ []WeekEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "schedulesService.week")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}

	schedule, routine, err := s.activeWithRoutine(ctx, athlete.ID)
	if err != nil {
		return nil, err
	}

	monday := pkg.StartOfWeek(date)
	sunday := monday.AddDate(0, 0, 6)
	logs, err := s.logs.ListCompleted(ctx, athlete.ID, monday, sunday)
	if err != nil {
		return nil, err
	}

	week := make([]WeekEntry, 7)
	for i := range week {
		day := monday.AddDate(0, 0, i)
		entry := WeekEntry{
			Date:    day.Format(pkg.DateLayout),
			Weekday: int(day.Weekday()),
		}
		if schedule != nil {
			entry.Scheduled = scheduledOn(schedule, routine, day)
		}
		for _, l := range logs {
			if pkg.SameDay(l.Date, day) {
				entry.CompletedLogID = l.ID
				break
			}
		}
		week[i] = entry
	}

	return week, nil
}

// Adherence compares the sessions planned by the active schedule between from
// and to (inclusive) with the planned days that have a completed log. Sessions
// on unplanned days, or before the schedule started, do not count.
func (s *Service) Adherence(ctx context.Context, athleteID string, from, to time.Time) (_ *Adherence, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "schedulesService.adherence")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	from, to = pkg.StartOfDay(from), pkg.StartOfDay(to)

	schedule, err := s.repo.Active(ctx, athleteID)
	if err != nil && !errors.Is(err, ErrNoSchedule) {
		return nil, err
	}

	adherence := &Adherence{}
	if schedule == nil {
		return adherence, nil
	}

	logs, err := s.logs.ListCompleted(ctx, athleteID, from, to)
	if err != nil {
		return nil, err
	}
	trainedOn := make(map[string]bool, len(logs))
	for _, l := range logs {
		trainedOn[l.Date.UTC().Format(pkg.DateLayout)] = true
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if !schedule.Covers(day) {
			continue
		}
		if _, ok := schedule.SlotFor(day); !ok {
			continue
		}
		adherence.Scheduled++
		if trainedOn[day.Format(pkg.DateLayout)] {
			adherence.Completed++
		}
	}

	if adherence.Scheduled > 0 {
		pct := math.Round(float64(adherence.Completed) / float64(adherence.Scheduled) * 100)
		adherence.Percent = int(math.Min(pct, 100))
	}

	return adherence, nil
}

// activeWithRoutine returns nils when the athlete has no active schedule.
func (s *Service) activeWithRoutine(ctx context.Context, athleteID string) (*Schedule, *routines.Routine, error) {
	schedule, err := s.repo.Active(ctx, athleteID)
	if errors.Is(err, ErrNoSchedule) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	routine, err := s.routines.Get(ctx, schedule.RoutineID)
	if errors.Is(err, routines.ErrRoutineNotFound) {
		// routine deleted after the schedule was made
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return schedule, routine, nil
}

func scheduledOn(schedule *Schedule, routine *routines.Routine, date time.Time) *ScheduledDay {
	if !schedule.Covers(date) {
		return nil
	}
	slot, ok := schedule.SlotFor(date)
	if !ok {
		return nil
	}
	day, ok := routine.Day(slot.DayIndex)
	if !ok {
		return nil
	}
	return &ScheduledDay{
		RoutineID:   routine.ID,
		RoutineName: routine.Name,
		DayIndex:    slot.DayIndex,
		Day:         day,
	}
}

// AthleteAdherence is Adherence for callers acting on behalf of a user.
func (s *Service) AthleteAdherence(ctx context.Context, actor *users.User, athleteID string, from, to time.Time) (*Adherence, error) {
	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	return s.Adherence(ctx, athlete.ID, from, to)
}
