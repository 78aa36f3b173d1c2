// Package userstest provides an in-memory athlete authorizer for tests of the
// packages that guard athlete data.
package userstest

import (
	"context"
	"sort"

	"github.com/2beens/fitcoach/internal/users"
)

// Authorizer resolves athletes from a fixed set of users and applies the
// same access rules as users.Service.
type Authorizer struct {
	users map[string]*users.User
}

func NewAuthorizer(all ...*users.User) *Authorizer {
	a := &Authorizer{users: make(map[string]*users.User, len(all))}
	for _, u := range all {
		a.users[u.ID] = u
	}
	return a
}

func (a *Authorizer) Athlete(_ context.Context, actor *users.User, athleteID string) (*users.User, error) {
	if actor == nil {
		return nil, users.ErrUnauthenticated
	}
	athlete, ok := a.users[athleteID]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	if !users.CanAccessAthlete(actor, athlete) {
		return nil, users.ErrForbidden
	}
	return athlete, nil
}

func (a *Authorizer) CoachedAthlete(ctx context.Context, coach *users.User, athleteID string) (*users.User, error) {
	if !coach.IsCoach() {
		return nil, users.ErrForbidden
	}
	return a.Athlete(ctx, coach, athleteID)
}

func (a *Authorizer) GetByID(_ context.Context, id string) (*users.User, error) {
	u, ok := a.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func (a *Authorizer) ListAthletes(_ context.Context, coach *users.User) ([]users.User, error) {
	if !coach.IsCoach() {
		return nil, users.ErrForbidden
	}
	var out []users.User
	for _, u := range a.users {
		if u.IsAthlete() && u.CoachID == coach.ID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var (
	Coach = &users.User{
		ID:    "coach-1",
		Email: "carla@fit.es",
		Name:  "Carla",
		Role:  users.RoleCoach,
	}
	OtherCoach = &users.User{
		ID:    "coach-2",
		Email: "otro@fit.es",
		Name:  "Otro",
		Role:  users.RoleCoach,
	}
	Athlete = &users.User{
		ID:      "athlete-1",
		Email:   "ana@fit.es",
		Name:    "Ana",
		Role:    users.RoleAthlete,
		CoachID: "coach-1",
		Profile: users.Profile{
			HeightCm:        168,
			WeightKg:        61.5,
			Goals:           "Subir la sentadilla a 100 kg",
			Injuries:        "Molestias en el hombro derecho",
			ExperienceLevel: users.ExperienceIntermediate,
		},
	}
	OtherAthlete = &users.User{
		ID:      "athlete-2",
		Email:   "luis@fit.es",
		Name:    "Luis",
		Role:    users.RoleAthlete,
		CoachID: "coach-2",
	}
)

// Default returns an authorizer knowing the fixture users above.
func Default() *Authorizer {
	return NewAuthorizer(Coach, OtherCoach, Athlete, OtherAthlete)
}
