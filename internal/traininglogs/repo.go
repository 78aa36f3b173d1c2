package traininglogs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const logColumns = `id, athlete_id, coach_id, routine_id, routine_name, day_index, day_name, date, status,
	exercises, notes, session_rpe, duration_minutes, started_at, completed_at, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, log TrainingLog) (_ *TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	log.ID = uuid.NewString()
	span.SetAttributes(attribute.String("log.id", log.ID))

	exercisesJson, err := json.Marshal(log.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO training_logs (`+logColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`,
		log.ID, log.AthleteID, log.CoachID, log.RoutineID, log.RoutineName, log.DayIndex, log.DayName,
		log.Date, log.Status, exercisesJson, log.Notes, log.SessionRPE, log.DurationMinutes,
		log.StartedAt, log.CompletedAt, log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &log, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	row := r.db.QueryRow(ctx, `SELECT `+logColumns+` FROM training_logs WHERE id = $1;`, id)
	return scanLog(row)
}

// FindInProgress returns ErrLogNotFound when there is nothing to resume.
func (r *Repo) FindInProgress(ctx context.Context, athleteID, routineID string, dayIndex int, date time.Time) (_ *TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.findInProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("athlete.id", athleteID),
		attribute.String("routine.id", routineID),
	)

	row := r.db.QueryRow(
		ctx,
		`SELECT `+logColumns+` FROM training_logs
			WHERE athlete_id = $1 AND routine_id = $2 AND day_index = $3 AND date = $4 AND status = $5
			ORDER BY started_at DESC
			LIMIT 1;`,
		athleteID, routineID, dayIndex, date, StatusInProgress,
	)
	return scanLog(row)
}

func (r *Repo) UpdateExercises(ctx context.Context, id string, exercises []Exercise, updatedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.updateExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	exercisesJson, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_logs SET exercises = $1, updated_at = $2 WHERE id = $3;`,
		exercisesJson, updatedAt, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

// Complete stores the fields set when a session is finished.
func (r *Repo) Complete(ctx context.Context, log *TrainingLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", log.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_logs
			SET status = $1, notes = $2, session_rpe = $3, duration_minutes = $4, completed_at = $5, updated_at = $6
			WHERE id = $7 AND status = $8;`,
		log.Status, log.Notes, log.SessionRPE, log.DurationMinutes, log.CompletedAt, log.UpdatedAt,
		log.ID, StatusInProgress,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotInProgress
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("log.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM training_logs WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

// List returns one page of the athlete's logs, newest first, and the total
// count of logs matching the filter.
func (r *Repo) List(ctx context.Context, athleteID string, filter Filter) (_ []TrainingLog, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	where := []string{"athlete_id = $1"}
	args := []any{athleteID}
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("date <= $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	whereSql := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM training_logs WHERE `+whereSql+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	limit := filter.Size
	offset := (filter.Page - 1) * filter.Size
	args = append(args, limit, offset)
	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf(
			`SELECT %s FROM training_logs WHERE %s ORDER BY date DESC, started_at DESC LIMIT $%d OFFSET $%d;`,
			logColumns, whereSql, len(args)-1, len(args),
		),
		args...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query: %w", err)
	}

	logs, err := rows2logs(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// ListCompleted returns completed logs dated between from and to (inclusive), newest first.
func (r *Repo) ListCompleted(ctx context.Context, athleteID string, from, to time.Time) (_ []TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.listCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+logColumns+` FROM training_logs
			WHERE athlete_id = $1 AND status = $2 AND date >= $3 AND date <= $4
			ORDER BY date DESC, completed_at DESC;`,
		athleteID, StatusCompleted, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2logs(rows)
}

// LatestCompleted returns the newest completed log dated on or before to,
// ErrLogNotFound when the athlete never finished one.
func (r *Repo) LatestCompleted(ctx context.Context, athleteID string, to time.Time) (_ *TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.latestCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+logColumns+` FROM training_logs
			WHERE athlete_id = $1 AND status = $2 AND date <= $3
			ORDER BY date DESC, completed_at DESC
			LIMIT 1;`,
		athleteID, StatusCompleted, to,
	)
	return scanLog(row)
}

// ListRecentCompletedByAthletes feeds the coach's activity view, newest first.
func (r *Repo) ListRecentCompletedByAthletes(ctx context.Context, athleteIDs []string, limit int) (_ []TrainingLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglogs.listRecentCompletedByAthletes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athletes.count", len(athleteIDs)))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+logColumns+` FROM training_logs
			WHERE athlete_id = ANY($1) AND status = $2
			ORDER BY completed_at DESC
			LIMIT $3;`,
		athleteIDs, StatusCompleted, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows2logs(rows)
}

func rows2logs(rows pgx.Rows) ([]TrainingLog, error) {
	defer rows.Close()

	logs := make([]TrainingLog, 0)
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return logs, nil
}

func scanLog(row pgx.Row) (*TrainingLog, error) {
	var log TrainingLog
	var exercisesBytes []byte
	var status string
	if err := row.Scan(
		&log.ID, &log.AthleteID, &log.CoachID, &log.RoutineID, &log.RoutineName, &log.DayIndex, &log.DayName,
		&log.Date, &status, &exercisesBytes, &log.Notes, &log.SessionRPE, &log.DurationMinutes,
		&log.StartedAt, &log.CompletedAt, &log.CreatedAt, &log.UpdatedAt,
	); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("scan training log: %w", err)
	}
	log.Status = Status(status)

	if err := json.Unmarshal(exercisesBytes, &log.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises for log %s: %w", log.ID, err)
	}
	if log.Exercises == nil {
		log.Exercises = make([]Exercise, 0)
	}

	return &log, nil
}
