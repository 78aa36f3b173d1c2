package measurements

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	measurementColumns = `id, athlete_id, date, weight_kg, body_fat_pct, chest_cm, waist_cm, hips_cm, arm_cm, thigh_cm, notes, created_at`
	checkInColumns     = `id, athlete_id, date, sleep_hours, sleep_quality, energy, stress, soreness, notes, created_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, m BodyMeasurement) (_ *BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m.ID = uuid.NewString()
	span.SetAttributes(attribute.String("measurement.id", m.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO body_measurements (`+measurementColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.ID, m.AthleteID, m.Date, m.WeightKg, m.BodyFatPct, m.ChestCm, m.WaistCm,
		m.HipsCm, m.ArmCm, m.ThighCm, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("measurement.id", id))

	row := r.db.QueryRow(ctx, `SELECT `+measurementColumns+` FROM body_measurements WHERE id = $1;`, id)
	return scanMeasurement(row)
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("measurement.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM body_measurements WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}

// List returns measurements dated between from and to (inclusive), newest
// first. limit <= 0 means no limit.
func (r *Repo) List(ctx context.Context, athleteID string, from, to time.Time, limit int) (_ []BodyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+measurementColumns+` FROM body_measurements
			WHERE athlete_id = $1 AND date >= $2 AND date <= $3
			ORDER BY date DESC, created_at DESC
			LIMIT NULLIF($4, 0);`,
		athleteID, from, to, max(limit, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	list := make([]BodyMeasurement, 0)
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return list, nil
}

func (r *Repo) AddCheckIn(ctx context.Context, c CheckIn) (_ *CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.addCheckIn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	c.ID = uuid.NewString()
	span.SetAttributes(attribute.String("checkin.id", c.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO check_ins (`+checkInColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		c.ID, c.AthleteID, c.Date, c.SleepHours, c.SleepQuality, c.Energy, c.Stress, c.Soreness, c.Notes, c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ListCheckIns has the same range and limit semantics as List.
func (r *Repo) ListCheckIns(ctx context.Context, athleteID string, from, to time.Time, limit int) (_ []CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.listCheckIns")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+checkInColumns+` FROM check_ins
			WHERE athlete_id = $1 AND date >= $2 AND date <= $3
			ORDER BY date DESC, created_at DESC
			LIMIT NULLIF($4, 0);`,
		athleteID, from, to, max(limit, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	list := make([]CheckIn, 0)
	for rows.Next() {
		var c CheckIn
		if err := rows.Scan(
			&c.ID, &c.AthleteID, &c.Date, &c.SleepHours, &c.SleepQuality,
			&c.Energy, &c.Stress, &c.Soreness, &c.Notes, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return list, nil
}

func scanMeasurement(row pgx.Row) (*BodyMeasurement, error) {
	var m BodyMeasurement
	if err := row.Scan(
		&m.ID, &m.AthleteID, &m.Date, &m.WeightKg, &m.BodyFatPct, &m.ChestCm, &m.WaistCm,
		&m.HipsCm, &m.ArmCm, &m.ThighCm, &m.Notes, &m.CreatedAt,
	); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrMeasurementNotFound
		}
		return nil, fmt.Errorf("scan measurement: %w", err)
	}
	return &m, nil
}
