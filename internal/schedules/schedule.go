package schedules

import (
	"errors"
	"time"

	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/pkg"
)

var (
	ErrNoSchedule       = errors.New("no active schedule")
	ErrInvalidSchedule  = errors.New("invalid schedule")
	ErrScheduleConflict = errors.New("schedule replaced concurrently")
)

// Slot maps a weekday (Sunday = 0) to a day of the routine.
type Slot struct {
	Weekday  int `json:"weekday"`
	DayIndex int `json:"dayIndex"`
}

type Schedule struct {
	ID        string     `json:"id"`
	AthleteID string     `json:"athleteId"`
	CoachID   string     `json:"coachId"`
	RoutineID string     `json:"routineId"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Slots     []Slot     `json:"slots"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Covers reports whether date falls inside the start..end range.
func (s *Schedule) Covers(date time.Time) bool {
	day := pkg.StartOfDay(date)
	if day.Before(pkg.StartOfDay(s.StartDate)) {
		return false
	}
	if s.EndDate != nil && day.After(pkg.StartOfDay(*s.EndDate)) {
		return false
	}
	return true
}

// SlotFor returns the slot planned for the weekday of date, ignoring the range.
func (s *Schedule) SlotFor(date time.Time) (Slot, bool) {
	wd := int(date.UTC().Weekday())
	for _, slot := range s.Slots {
		if slot.Weekday == wd {
			return slot, true
		}
	}
	return Slot{}, false
}

// ScheduledDay is the routine day an athlete should train on a given date.
type ScheduledDay struct {
	RoutineID   string       `json:"routineId"`
	RoutineName string       `json:"routineName"`
	DayIndex    int          `json:"dayIndex"`
	Day         routines.Day `json:"day"`
}

type WeekEntry struct {
	Date           string        `json:"date"`
	Weekday        int           `json:"weekday"`
	Scheduled      *ScheduledDay `json:"scheduled"`
	CompletedLogID string        `json:"completedLogId,omitempty"`
}

type Adherence struct {
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	// Percent is 0..100, 0 when nothing was scheduled.
	Percent int `json:"percent"`
}

func validateSlots(routine *routines.Routine, slots []Slot) error {
	if len(slots) == 0 {
		return pkg.NewValidationError(ErrInvalidSchedule, "El calendario necesita al menos un día de entrenamiento.")
	}
	seen := make(map[int]bool, len(slots))
	for _, slot := range slots {
		if slot.Weekday < 0 || slot.Weekday > 6 {
			return pkg.NewValidationError(ErrInvalidSchedule, "El día de la semana %d no es válido.", slot.Weekday)
		}
		if seen[slot.Weekday] {
			return pkg.NewValidationError(ErrInvalidSchedule, "El día de la semana %d está repetido.", slot.Weekday)
		}
		seen[slot.Weekday] = true
		if _, ok := routine.Day(slot.DayIndex); !ok {
			return pkg.NewValidationError(ErrInvalidSchedule, "La rutina no tiene el día %d.", slot.DayIndex+1)
		}
	}
	return nil
}
