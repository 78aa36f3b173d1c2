package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/schedules"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analytics_mocks_test.go -package=analytics_test

const (
	megabyte = 1024 * 1024

	// seconds
	dashboardCacheExpire = 60
	// days counted by the dashboard adherence
	adherenceWindowDays = 28
)

type completedLogs interface {
	ListCompleted(ctx context.Context, athleteID string, from, to time.Time) ([]traininglogs.TrainingLog, error)
	LatestCompleted(ctx context.Context, athleteID string, to time.Time) (*traininglogs.TrainingLog, error)
}

type athleteAuthorizer interface {
	Athlete(ctx context.Context, actor *users.User, athleteID string) (*users.User, error)
	ListAthletes(ctx context.Context, coach *users.User) ([]users.User, error)
}

type adherenceSource interface {
	Adherence(ctx context.Context, athleteID string, from, to time.Time) (*schedules.Adherence, error)
}

type readinessSource interface {
	LatestReadinessScore(ctx context.Context, athleteID string) (score int, found bool, err error)
}

type DashboardEntry struct {
	AthleteID        string     `json:"athleteId"`
	Name             string     `json:"name"`
	LastSessionAt    *time.Time `json:"lastSessionAt"`
	SessionsThisWeek int        `json:"sessionsThisWeek"`
	AdherencePct     int        `json:"adherencePct"`
	ReadinessScore   *int       `json:"readinessScore"`
}

type Service struct {
	logs      completedLogs
	athletes  athleteAuthorizer
	adherence adherenceSource
	readiness readinessSource
	cache     *freecache.Cache
	nowFunc   func() time.Time
}

// NewService keeps coach dashboards in a freecache of cacheSizeMB megabytes.
func NewService(
	logs completedLogs,
	athletes athleteAuthorizer,
	adherence adherenceSource,
	readiness readinessSource,
	cacheSizeMB int,
) *Service {
	return &Service{
		logs:      logs,
		athletes:  athletes,
		adherence: adherence,
		readiness: readiness,
		cache:     freecache.NewCache(cacheSizeMB * megabyte),
		nowFunc:   time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.nowFunc = now
	return s
}

// Progression returns one progression per exercise over the athlete's
// completed logs dated from since to today.
func (s *Service) Progression(ctx context.Context, actor *users.User, athleteID string, since time.Time) (_ []Progression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.progression")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	return s.ProgressionFor(ctx, athlete.ID, since)
}

// ProgressionFor skips the access check, callers must have done it.
func (s *Service) ProgressionFor(ctx context.Context, athleteID string, since time.Time) ([]Progression, error) {
	logs, err := s.logs.ListCompleted(ctx, athleteID, pkg.StartOfDay(since), pkg.StartOfDay(s.nowFunc()))
	if err != nil {
		return nil, err
	}
	return progressions(logs), nil
}

// WeekComparison compares the ISO week containing date with the previous one.
func (s *Service) WeekComparison(ctx context.Context, actor *users.User, athleteID string, date time.Time) (_ *WeekComparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.weekComparison")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	return s.WeekComparisonFor(ctx, athlete.ID, date)
}

// WeekComparisonFor skips the access check, callers must have done it.
func (s *Service) WeekComparisonFor(ctx context.Context, athleteID string, date time.Time) (*WeekComparison, error) {
	monday := pkg.StartOfWeek(date)
	logs, err := s.logs.ListCompleted(ctx, athleteID, monday.AddDate(0, 0, -7), monday.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	cmp := CompareWeeks(logs, date)
	return &cmp, nil
}

// CoachDashboard summarizes every athlete of the coach. Results are cached per
// coach and day for a minute.
func (s *Service) CoachDashboard(ctx context.Context, coach *users.User, date time.Time) (_ []DashboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyticsService.coachDashboard")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if !coach.IsCoach() {
		return nil, users.ErrForbidden
	}
	day := pkg.StartOfDay(date)
	span.SetAttributes(attribute.String("coach.id", coach.ID))

	cacheKey := []byte(fmt.Sprintf("dashboard::%s::%s", coach.ID, day.Format(pkg.DateLayout)))
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var entries []DashboardEntry
		unmarshalErr := json.Unmarshal(cached, &entries)
		if unmarshalErr == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return entries, nil
		}
		log.Errorf("unmarshal cached dashboard for coach %s: %s", coach.ID, unmarshalErr)
	}

	athletes, err := s.athletes.ListAthletes(ctx, coach)
	if err != nil {
		return nil, err
	}

	entries := make([]DashboardEntry, 0, len(athletes))
	for _, a := range athletes {
		entry, err := s.dashboardEntry(ctx, a, day)
		if err != nil {
			return nil, fmt.Errorf("dashboard entry for %s: %w", a.ID, err)
		}
		entries = append(entries, entry)
	}

	if entriesJson, err := json.Marshal(entries); err == nil {
		if err := s.cache.Set(cacheKey, entriesJson, dashboardCacheExpire); err != nil {
			log.Errorf("failed to cache dashboard for coach %s: %s", coach.ID, err)
		}
	}

	return entries, nil
}

func (s *Service) dashboardEntry(ctx context.Context, athlete users.User, day time.Time) (DashboardEntry, error) {
	entry := DashboardEntry{
		AthleteID: athlete.ID,
		Name:      athlete.Name,
	}

	from := day.AddDate(0, 0, -(adherenceWindowDays - 1))
	logs, err := s.logs.ListCompleted(ctx, athlete.ID, from, day)
	if err != nil {
		return entry, err
	}

	monday := pkg.StartOfWeek(day)
	for _, l := range logs {
		if !l.Date.Before(monday) {
			entry.SessionsThisWeek++
		}
	}

	// looked up apart from the window so idle athletes still show their last session
	latest, err := s.logs.LatestCompleted(ctx, athlete.ID, day)
	switch {
	case errors.Is(err, traininglogs.ErrLogNotFound):
	case err != nil:
		return entry, err
	default:
		last := latest.Date
		if latest.CompletedAt != nil {
			last = *latest.CompletedAt
		}
		entry.LastSessionAt = &last
	}

	adherence, err := s.adherence.Adherence(ctx, athlete.ID, from, day)
	if err != nil {
		return entry, err
	}
	entry.AdherencePct = adherence.Percent

	score, found, err := s.readiness.LatestReadinessScore(ctx, athlete.ID)
	if err != nil {
		return entry, err
	}
	if found {
		entry.ReadinessScore = &score
	}

	return entry, nil
}
