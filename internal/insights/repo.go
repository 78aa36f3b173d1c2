package insights

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const insightColumns = `id, athlete_id, coach_id, type, training_log_id, summary, highlights, recommendations, readiness_score, provider, model, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, in Insight) (_ *Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.insights.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	in.ID = uuid.NewString()
	span.SetAttributes(
		attribute.String("insight.id", in.ID),
		attribute.String("insight.type", string(in.Type)),
	)

	if in.Highlights == nil {
		in.Highlights = []string{}
	}
	if in.Recommendations == nil {
		in.Recommendations = []string{}
	}
	highlightsJson, err := json.Marshal(in.Highlights)
	if err != nil {
		return nil, fmt.Errorf("marshal highlights: %w", err)
	}
	recommendationsJson, err := json.Marshal(in.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO insights (`+insightColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		in.ID, in.AthleteID, in.CoachID, in.Type, in.TrainingLogID, in.Summary,
		highlightsJson, recommendationsJson, in.ReadinessScore, in.Provider, in.Model, in.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &in, nil
}

// List returns the newest insights first. An empty insightType matches all types.
func (r *Repo) List(ctx context.Context, athleteID string, insightType Type, limit int) (_ []Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.insights.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+insightColumns+` FROM insights
			WHERE athlete_id = $1 AND ($2 = '' OR type = $2)
			ORDER BY created_at DESC
			LIMIT $3;`,
		athleteID, string(insightType), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	list := make([]Insight, 0)
	for rows.Next() {
		in, err := scanInsight(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return list, nil
}

// Latest returns nil and no error when the athlete has no insight of the type.
func (r *Repo) Latest(ctx context.Context, athleteID string, insightType Type) (_ *Insight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.insights.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+insightColumns+` FROM insights
			WHERE athlete_id = $1 AND type = $2
			ORDER BY created_at DESC
			LIMIT 1;`,
		athleteID, insightType,
	)
	in, err := scanInsight(row)
	if pkg.IsNoRows(err) {
		return nil, nil
	}
	return in, err
}

// LatestReadinessScore feeds the coach dashboard.
func (r *Repo) LatestReadinessScore(ctx context.Context, athleteID string) (int, bool, error) {
	in, err := r.Latest(ctx, athleteID, TypeReadiness)
	if err != nil || in == nil || in.ReadinessScore == nil {
		return 0, false, err
	}
	return *in.ReadinessScore, true, nil
}

func scanInsight(row pgx.Row) (*Insight, error) {
	var (
		in                  Insight
		highlightsJson      []byte
		recommendationsJson []byte
	)
	if err := row.Scan(
		&in.ID, &in.AthleteID, &in.CoachID, &in.Type, &in.TrainingLogID, &in.Summary,
		&highlightsJson, &recommendationsJson, &in.ReadinessScore, &in.Provider, &in.Model, &in.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(highlightsJson, &in.Highlights); err != nil {
		return nil, fmt.Errorf("unmarshal highlights: %w", err)
	}
	if err := json.Unmarshal(recommendationsJson, &in.Recommendations); err != nil {
		return nil, fmt.Errorf("unmarshal recommendations: %w", err)
	}
	return &in, nil
}
