package routines

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

const routineColumns = `id, coach_id, athlete_id, source_id, name, description, days, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routine.ID = uuid.NewString()
	span.SetAttributes(attribute.String("routine.id", routine.ID))

	daysJson, err := json.Marshal(routine.Days)
	if err != nil {
		return nil, fmt.Errorf("marshal days: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO routines (`+routineColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		routine.ID, routine.CoachID, routine.AthleteID, routine.SourceID,
		routine.Name, routine.Description, daysJson, routine.CreatedAt, routine.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &routine, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	row := r.db.QueryRow(ctx, `SELECT `+routineColumns+` FROM routines WHERE id = $1;`, id)
	return scanRoutine(row)
}

// Update overwrites the editable fields: name, description and days.
func (r *Repo) Update(ctx context.Context, routine *Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", routine.ID))

	daysJson, err := json.Marshal(routine.Days)
	if err != nil {
		return fmt.Errorf("marshal days: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE routines SET name = $1, description = $2, days = $3, updated_at = $4 WHERE id = $5;`,
		routine.Name, routine.Description, daysJson, routine.UpdatedAt, routine.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM routines WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

// ListTemplates returns the coach's templates, newest first.
func (r *Repo) ListTemplates(ctx context.Context, coachID string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.listTemplates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("coach.id", coachID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+routineColumns+` FROM routines
			WHERE coach_id = $1 AND athlete_id = ''
			ORDER BY updated_at DESC;`,
		coachID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2routines(rows)
}

// ListByAthlete returns the athlete's copies, newest first.
func (r *Repo) ListByAthlete(ctx context.Context, athleteID string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.listByAthlete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+routineColumns+` FROM routines
			WHERE athlete_id = $1
			ORDER BY updated_at DESC;`,
		athleteID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2routines(rows)
}

// FindCopy returns the athlete's copy of the template, ErrRoutineNotFound if there is none.
func (r *Repo) FindCopy(ctx context.Context, athleteID, sourceID string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.findCopy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("athlete.id", athleteID),
		attribute.String("source.id", sourceID),
	)

	row := r.db.QueryRow(
		ctx,
		`SELECT `+routineColumns+` FROM routines
			WHERE athlete_id = $1 AND source_id = $2
			ORDER BY created_at
			LIMIT 1;`,
		athleteID, sourceID,
	)
	return scanRoutine(row)
}

func rows2routines(rows pgx.Rows) ([]Routine, error) {
	defer rows.Close()

	routines := make([]Routine, 0)
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		routines = append(routines, *routine)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return routines, nil
}

func scanRoutine(row pgx.Row) (*Routine, error) {
	var routine Routine
	var daysBytes []byte
	if err := row.Scan(
		&routine.ID, &routine.CoachID, &routine.AthleteID, &routine.SourceID,
		&routine.Name, &routine.Description, &daysBytes, &routine.CreatedAt, &routine.UpdatedAt,
	); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrRoutineNotFound
		}
		return nil, fmt.Errorf("scan routine: %w", err)
	}

	if err := json.Unmarshal(daysBytes, &routine.Days); err != nil {
		return nil, fmt.Errorf("unmarshal days for routine %s: %w", routine.ID, err)
	}
	if routine.Days == nil {
		routine.Days = make([]Day, 0)
	}

	return &routine, nil
}
