package coachmcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/insights"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"
)

// most logs a single get_training_logs call returns
const maxToolLogs = 100

var ErrNotAthlete = errors.New("not an athlete")

type usersRepo interface {
	Get(ctx context.Context, id string) (*users.User, error)
	ListByCoach(ctx context.Context, coachID string) ([]users.User, error)
}

type athleteContextBuilder interface {
	BuildContext(ctx context.Context, athleteID string, now time.Time) (*insights.AthleteContext, error)
	LatestReadiness(ctx context.Context, athleteID string) (*insights.Insight, error)
}

type logsRepo interface {
	List(ctx context.Context, athleteID string, filter traininglogs.Filter) ([]traininglogs.TrainingLog, int, error)
}

type analyticsReader interface {
	ProgressionFor(ctx context.Context, athleteID string, since time.Time) ([]analytics.Progression, error)
	WeekComparisonFor(ctx context.Context, athleteID string, date time.Time) (*analytics.WeekComparison, error)
}

// contextService is what the tool handlers read from.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListAthletes(ctx context.Context, coachID string) ([]users.User, error)
	AthleteContext(ctx context.Context, athleteID string) (string, error)
	TrainingLogs(ctx context.Context, athleteID string, from, to time.Time) ([]traininglogs.TrainingLog, error)
	Progression(ctx context.Context, athleteID string, since time.Time) ([]analytics.Progression, error)
	WeekComparison(ctx context.Context, athleteID string, date time.Time) (*analytics.WeekComparison, error)
}

// ContextService reads coaching data without an acting user. Access is
// granted by the MCP transport (stdio, or the secret on the HTTP mount).
type ContextService struct {
	schema    SchemaRepo
	users     usersRepo
	insights  athleteContextBuilder
	logs      logsRepo
	analytics analyticsReader
	nowFunc   func() time.Time
}

func NewContextService(
	schemaRepo SchemaRepo,
	usersRepo usersRepo,
	insightsService athleteContextBuilder,
	logsRepo logsRepo,
	analyticsService analyticsReader,
) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		users:     usersRepo,
		insights:  insightsService,
		logs:      logsRepo,
		analytics: analyticsService,
		nowFunc:   time.Now,
	}
}

func (s *ContextService) athlete(ctx context.Context, athleteID string) (*users.User, error) {
	u, err := s.users.Get(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("athlete %q: %w", athleteID, err)
	}
	if !u.IsAthlete() {
		return nil, fmt.Errorf("user %q: %w", athleteID, ErrNotAthlete)
	}
	return u, nil
}

// GetSchema renders the coaching tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# fitcoach DB Schema\n\nNo coaching tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# fitcoach DB Schema\n\n")
	b.WriteString("Nested documents (routine days, log exercises, insight lists) are JSONB columns.\n\n")
	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) ListAthletes(ctx context.Context, coachID string) ([]users.User, error) {
	return s.users.ListByCoach(ctx, coachID)
}

// AthleteContext is the same text the AI coach is prompted with, plus the
// latest readiness score.
func (s *ContextService) AthleteContext(ctx context.Context, athleteID string) (string, error) {
	a, err := s.athlete(ctx, athleteID)
	if err != nil {
		return "", err
	}

	ac, err := s.insights.BuildContext(ctx, a.ID, s.nowFunc())
	if err != nil {
		return "", err
	}
	text := ac.Render()

	readiness, err := s.insights.LatestReadiness(ctx, a.ID)
	if err != nil {
		return "", err
	}
	if readiness != nil && readiness.ReadinessScore != nil {
		text += fmt.Sprintf("\n## Última valoración de disponibilidad\n%d/100 (%s): %s\n",
			*readiness.ReadinessScore, readiness.CreatedAt.Format(pkg.DateLayout), readiness.Summary)
	}
	return text, nil
}

// TrainingLogs returns logs of any status dated from..to, newest first.
func (s *ContextService) TrainingLogs(ctx context.Context, athleteID string, from, to time.Time) ([]traininglogs.TrainingLog, error) {
	a, err := s.athlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	logs, _, err := s.logs.List(ctx, a.ID, traininglogs.Filter{
		From: &from,
		To:   &to,
		Page: 1,
		Size: maxToolLogs,
	})
	return logs, err
}

func (s *ContextService) Progression(ctx context.Context, athleteID string, since time.Time) ([]analytics.Progression, error) {
	a, err := s.athlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return s.analytics.ProgressionFor(ctx, a.ID, since)
}

func (s *ContextService) WeekComparison(ctx context.Context, athleteID string, date time.Time) (*analytics.WeekComparison, error) {
	a, err := s.athlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return s.analytics.WeekComparisonFor(ctx, a.ID, date)
}
