package users

import (
	"context"
	"time"
)

type Role string

const (
	RoleCoach   Role = "coach"
	RoleAthlete Role = "athlete"
)

type ExperienceLevel string

const (
	ExperienceNone         ExperienceLevel = ""
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

type Profile struct {
	// BirthDate is in the YYYY-MM-DD layout, empty when unknown.
	BirthDate       string          `json:"birthDate,omitempty"`
	HeightCm        float64         `json:"heightCm"`
	WeightKg        float64         `json:"weightKg"`
	Goals           string          `json:"goals"`
	Injuries        string          `json:"injuries"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Notes           string          `json:"notes"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CoachID      string    `json:"coachId,omitempty"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsCoach() bool {
	return u != nil && u.Role == RoleCoach
}

func (u *User) IsAthlete() bool {
	return u != nil && u.Role == RoleAthlete
}

// CanAccessAthlete reports whether the actor may read or act on the athlete's data:
// the athlete themselves, or the coach the athlete belongs to.
func CanAccessAthlete(actor, athlete *User) bool {
	if actor == nil || athlete == nil || !athlete.IsAthlete() {
		return false
	}
	if actor.ID == athlete.ID {
		return true
	}
	return actor.IsCoach() && athlete.CoachID == actor.ID
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying the authenticated user.
func NewContext(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext returns the authenticated user set by the auth middleware.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*User)
	return u, ok && u != nil
}
