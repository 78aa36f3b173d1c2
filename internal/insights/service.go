package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/llm"
	"github.com/2beens/fitcoach/internal/measurements"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=insights_mocks_test.go -package=insights_test

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	MaxQuestionLength = 1000

	jsonTemperature = 0.4
	askTemperature  = 0.7
	maxTokens       = 800
)

type insightsRepo interface {
	Add(ctx context.Context, in Insight) (*Insight, error)
	List(ctx context.Context, athleteID string, insightType Type, limit int) ([]Insight, error)
	Latest(ctx context.Context, athleteID string, insightType Type) (*Insight, error)
}

type athleteAuthorizer interface {
	Athlete(ctx context.Context, actor *users.User, athleteID string) (*users.User, error)
	GetByID(ctx context.Context, id string) (*users.User, error)
}

type logReader interface {
	Get(ctx context.Context, actor *users.User, id string) (*traininglogs.TrainingLog, error)
}

type completedLogs interface {
	ListCompleted(ctx context.Context, athleteID string, from, to time.Time) ([]traininglogs.TrainingLog, error)
}

type measurementsReader interface {
	List(ctx context.Context, athleteID string, from, to time.Time, limit int) ([]measurements.BodyMeasurement, error)
	ListCheckIns(ctx context.Context, athleteID string, from, to time.Time, limit int) ([]measurements.CheckIn, error)
}

type analyticsReader interface {
	ProgressionFor(ctx context.Context, athleteID string, since time.Time) ([]analytics.Progression, error)
	WeekComparisonFor(ctx context.Context, athleteID string, date time.Time) (*analytics.WeekComparison, error)
}

// Deps are the data sources insights are built from.
type Deps struct {
	Repo         insightsRepo
	Athletes     athleteAuthorizer
	Logs         logReader
	Completed    completedLogs
	Measurements measurementsReader
	Analytics    analyticsReader
}

type Service struct {
	repo         insightsRepo
	completer    llm.Completer
	provider     string
	athletes     athleteAuthorizer
	logs         completedLogs
	logReader    logReader
	measurements measurementsReader
	analytics    analyticsReader
	metrics      *metrics.Manager
	nowFunc      func() time.Time
}

// NewService uses provider only to label metrics.
func NewService(deps Deps, completer llm.Completer, provider string, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:         deps.Repo,
		completer:    completer,
		provider:     provider,
		athletes:     deps.Athletes,
		logs:         deps.Completed,
		logReader:    deps.Logs,
		measurements: deps.Measurements,
		analytics:    deps.Analytics,
		metrics:      metricsManager,
		nowFunc:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.nowFunc = now
	return s
}

func (s *Service) complete(ctx context.Context, kind string, req llm.Request) (*llm.Response, error) {
	start := time.Now()
	resp, err := s.completer.Complete(ctx, req)

	outcome := "ok"
	switch {
	case errors.Is(err, llm.ErrDisabled):
		outcome = "disabled"
	case err != nil:
		outcome = "error"
		log.Errorf("ai %s completion: %s", kind, err)
	}
	if s.metrics != nil {
		s.metrics.CounterAIRequests.WithLabelValues(s.provider, kind, outcome).Inc()
		if outcome != "disabled" {
			s.metrics.HistogramAIDuration.WithLabelValues(s.provider, kind).Observe(time.Since(start).Seconds())
		}
	}
	return resp, err
}

func jsonRequest(instructions string, parts ...string) llm.Request {
	return llm.Request{
		System:      systemCoach,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: strings.Join(append(parts, instructions), "\n")}},
		JSON:        true,
		Temperature: jsonTemperature,
		MaxTokens:   maxTokens,
	}
}

// WorkoutFeedback reviews a completed training log and stores the review.
func (s *Service) WorkoutFeedback(ctx context.Context, actor *users.User, logID string) (_ *Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insightsService.workoutFeedback")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("log.id", logID))

	trainingLog, err := s.logReader.Get(ctx, actor, logID)
	if err != nil {
		return nil, err
	}
	if !trainingLog.IsCompleted() {
		return nil, ErrLogNotCompleted
	}

	ac, err := s.BuildContext(ctx, trainingLog.AthleteID, s.nowFunc())
	if err != nil {
		return nil, err
	}

	resp, err := s.complete(ctx, string(TypeWorkoutFeedback), jsonRequest(promptWorkoutFeedback, ac.Render(), renderLog(trainingLog)))
	if err != nil {
		return nil, err
	}

	var answer feedbackAnswer
	if err := parseJSON(resp.Content, &answer); err != nil {
		return nil, err
	}
	if strings.TrimSpace(answer.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrInvalidAIResponse)
	}

	return s.repo.Add(ctx, Insight{
		AthleteID:       trainingLog.AthleteID,
		CoachID:         ac.Athlete.CoachID,
		Type:            TypeWorkoutFeedback,
		TrainingLogID:   trainingLog.ID,
		Summary:         strings.TrimSpace(answer.Summary),
		Highlights:      cleanList(answer.Highlights),
		Recommendations: cleanList(answer.Recommendations),
		Provider:        resp.Provider,
		Model:           resp.Model,
		CreatedAt:       s.nowFunc().UTC(),
	})
}

// Readiness scores from 0 to 100 how ready the athlete is to train today.
func (s *Service) Readiness(ctx context.Context, actor *users.User, athleteID string) (_ *Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insightsService.readiness")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}

	ac, err := s.BuildContext(ctx, athlete.ID, s.nowFunc())
	if err != nil {
		return nil, err
	}

	resp, err := s.complete(ctx, string(TypeReadiness), jsonRequest(promptReadiness, ac.Render()))
	if err != nil {
		return nil, err
	}

	var answer readinessAnswer
	if err := parseJSON(resp.Content, &answer); err != nil {
		return nil, err
	}
	if strings.TrimSpace(answer.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrInvalidAIResponse)
	}
	score := clampScore(answer.ReadinessScore)
	span.SetAttributes(attribute.Int("readiness.score", score))

	return s.repo.Add(ctx, Insight{
		AthleteID:       athlete.ID,
		CoachID:         athlete.CoachID,
		Type:            TypeReadiness,
		Summary:         strings.TrimSpace(answer.Summary),
		Highlights:      []string{},
		Recommendations: cleanList(answer.Recommendations),
		ReadinessScore:  &score,
		Provider:        resp.Provider,
		Model:           resp.Model,
		CreatedAt:       s.nowFunc().UTC(),
	})
}

// WeeklyReport compares the current week with the previous one.
func (s *Service) WeeklyReport(ctx context.Context, actor *users.User, athleteID string) (_ *Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insightsService.weeklyReport")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}

	now := s.nowFunc()
	ac, err := s.BuildContext(ctx, athlete.ID, now)
	if err != nil {
		return nil, err
	}
	week, err := s.analytics.WeekComparisonFor(ctx, athlete.ID, now)
	if err != nil {
		return nil, fmt.Errorf("week comparison: %w", err)
	}

	resp, err := s.complete(ctx, string(TypeWeeklyReport), jsonRequest(promptWeeklyReport, ac.Render(), renderWeek(week)))
	if err != nil {
		return nil, err
	}

	var answer feedbackAnswer
	if err := parseJSON(resp.Content, &answer); err != nil {
		return nil, err
	}
	if strings.TrimSpace(answer.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrInvalidAIResponse)
	}

	return s.repo.Add(ctx, Insight{
		AthleteID:       athlete.ID,
		CoachID:         athlete.CoachID,
		Type:            TypeWeeklyReport,
		Summary:         strings.TrimSpace(answer.Summary),
		Highlights:      cleanList(answer.Highlights),
		Recommendations: cleanList(answer.Recommendations),
		Provider:        resp.Provider,
		Model:           resp.Model,
		CreatedAt:       now.UTC(),
	})
}

// Ask answers a free question about the athlete. Nothing is stored.
func (s *Service) Ask(ctx context.Context, actor *users.User, athleteID, question string) (_ *Answer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insightsService.ask")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	question = strings.TrimSpace(question)
	if n := utf8.RuneCountInString(question); n == 0 || n > MaxQuestionLength {
		return nil, pkg.NewValidationError(ErrInvalidQuestion, "La pregunta debe tener entre 1 y %d caracteres.", MaxQuestionLength)
	}

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}

	ac, err := s.BuildContext(ctx, athlete.ID, s.nowFunc())
	if err != nil {
		return nil, err
	}

	resp, err := s.complete(ctx, "ask", llm.Request{
		System: systemCoach,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: ac.Render() + "\n" + promptAsk + "\n\nPregunta: " + question},
		},
		Temperature: askTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, err
	}

	answer := strings.TrimSpace(resp.Content)
	if answer == "" {
		return nil, llm.ErrEmptyCompletion
	}
	return &Answer{
		Question: question,
		Answer:   answer,
		Provider: resp.Provider,
		Model:    resp.Model,
	}, nil
}

// List returns the athlete's insights newest first. An empty insightType
// returns every type.
func (s *Service) List(ctx context.Context, actor *users.User, athleteID string, insightType Type, limit int) (_ []Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insightsService.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	if insightType != "" && !insightType.Valid() {
		return nil, pkg.NewValidationError(ErrInvalidType, "El tipo de informe no es válido.")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	athlete, err := s.athletes.Athlete(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, athlete.ID, insightType, limit)
}

// LatestReadiness skips the access check. It returns nil when the athlete
// was never scored.
func (s *Service) LatestReadiness(ctx context.Context, athleteID string) (*Insight, error) {
	return s.repo.Latest(ctx, athleteID, TypeReadiness)
}
