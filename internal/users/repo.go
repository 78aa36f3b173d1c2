package users

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const userColumns = `id, email, name, role, coach_id, password_hash, profile, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user.ID = uuid.NewString()
	span.SetAttributes(attribute.String("user.id", user.ID))
	span.SetAttributes(attribute.String("user.role", string(user.Role)))

	profileJson, err := json.Marshal(user.Profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO users (`+userColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		user.ID, user.Email, user.Name, user.Role, user.CoachID, user.PasswordHash,
		profileJson, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id)
	return scanUser(row)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
	return scanUser(row)
}

// ListByCoach returns all athletes of the coach, sorted by name.
func (r *Repo) ListByCoach(ctx context.Context, coachID string) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listByCoach")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("coach.id", coachID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+userColumns+` FROM users
			WHERE coach_id = $1 AND role = $2
			ORDER BY lower(name), created_at;`,
		coachID, RoleAthlete,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	athletes := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("athletes.count", len(athletes)))
	return athletes, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, id string, profile Profile, updatedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	profileJson, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET profile = $1, updated_at = $2 WHERE id = $3;`,
		profileJson, updatedAt, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var profileBytes []byte
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.CoachID, &u.PasswordHash,
		&profileBytes, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	if len(profileBytes) > 0 {
		if err := json.Unmarshal(profileBytes, &u.Profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile for user %s: %w", u.ID, err)
		}
	}

	return &u, nil
}
