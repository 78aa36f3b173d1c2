package schedules

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

const scheduleColumns = `id, athlete_id, coach_id, routine_id, start_date, end_date, slots, active, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Replace deactivates the athlete's active schedule and stores the new one,
// both in one transaction.
func (r *Repo) Replace(ctx context.Context, schedule Schedule) (_ *Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedules.replace")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	schedule.ID = uuid.NewString()
	schedule.Active = true
	span.SetAttributes(
		attribute.String("schedule.id", schedule.ID),
		attribute.String("athlete.id", schedule.AthleteID),
	)

	slotsJson, err := json.Marshal(schedule.Slots)
	if err != nil {
		return nil, fmt.Errorf("marshal slots: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		// no-op after commit
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(
		ctx,
		`UPDATE schedules SET active = false, updated_at = $1 WHERE athlete_id = $2 AND active;`,
		schedule.UpdatedAt, schedule.AthleteID,
	); err != nil {
		return nil, fmt.Errorf("deactivate: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO schedules (`+scheduleColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		schedule.ID, schedule.AthleteID, schedule.CoachID, schedule.RoutineID,
		schedule.StartDate, schedule.EndDate, slotsJson, schedule.Active,
		schedule.CreatedAt, schedule.UpdatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			// another Replace for the same athlete committed first
			return nil, ErrScheduleConflict
		}
		return nil, fmt.Errorf("insert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrScheduleConflict
		}
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &schedule, nil
}

func (r *Repo) Active(ctx context.Context, athleteID string) (_ *Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedules.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+scheduleColumns+` FROM schedules
			WHERE athlete_id = $1 AND active
			ORDER BY created_at DESC
			LIMIT 1;`,
		athleteID,
	)
	return scanSchedule(row)
}

// Deactivate returns ErrNoSchedule if the athlete had no active schedule.
func (r *Repo) Deactivate(ctx context.Context, athleteID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedules.deactivate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE schedules SET active = false, updated_at = now() WHERE athlete_id = $1 AND active;`,
		athleteID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoSchedule
	}
	return nil
}

func scanSchedule(row pgx.Row) (*Schedule, error) {
	var s Schedule
	var slotsBytes []byte
	if err := row.Scan(
		&s.ID, &s.AthleteID, &s.CoachID, &s.RoutineID,
		&s.StartDate, &s.EndDate, &slotsBytes, &s.Active,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrNoSchedule
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	if err := json.Unmarshal(slotsBytes, &s.Slots); err != nil {
		return nil, fmt.Errorf("unmarshal slots for schedule %s: %w", s.ID, err)
	}

	return &s, nil
}
