package traininglogs

import (
	"errors"
	"time"

	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/pkg"
)

var (
	ErrLogNotFound      = errors.New("training log not found")
	ErrLogNotInProgress = errors.New("training log is not in progress")
	ErrInvalidSet       = errors.New("invalid set")
	ErrInvalidLog       = errors.New("invalid training log")
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusInProgress || s == StatusCompleted
}

type Set struct {
	TargetReps   int     `json:"targetReps"`
	TargetWeight float64 `json:"targetWeight"`
	TargetRPE    float64 `json:"targetRpe"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	RPE          float64 `json:"rpe"`
	Completed    bool    `json:"completed"`
}

// Volume is weight times reps, only for completed sets.
func (s Set) Volume() float64 {
	if !s.Completed {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

type Exercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Sets        []Set  `json:"sets"`
}

// TrainingLog keeps its own copy of the routine name, day and exercises so it
// outlives edits and deletion of the routine it was started from.
type TrainingLog struct {
	ID              string     `json:"id"`
	AthleteID       string     `json:"athleteId"`
	CoachID         string     `json:"coachId"`
	RoutineID       string     `json:"routineId"`
	RoutineName     string     `json:"routineName"`
	DayIndex        int        `json:"dayIndex"`
	DayName         string     `json:"dayName"`
	Date            time.Time  `json:"date"`
	Status          Status     `json:"status"`
	Exercises       []Exercise `json:"exercises"`
	Notes           string     `json:"notes"`
	SessionRPE      float64    `json:"sessionRpe"`
	DurationMinutes int        `json:"durationMinutes"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (l *TrainingLog) IsCompleted() bool {
	return l.Status == StatusCompleted
}

func (l *TrainingLog) CompletedSets() int {
	n := 0
	for _, ex := range l.Exercises {
		for _, set := range ex.Sets {
			if set.Completed {
				n++
			}
		}
	}
	return n
}

func (l *TrainingLog) Volume() float64 {
	var v float64
	for _, ex := range l.Exercises {
		for _, set := range ex.Sets {
			v += set.Volume()
		}
	}
	return v
}

// SetInput carries the actual values the athlete logged for a set.
type SetInput struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	RPE       float64 `json:"rpe"`
	Completed bool    `json:"completed"`
}

func (in SetInput) Validate() error {
	switch {
	case in.Weight < 0:
		return pkg.NewValidationError(ErrInvalidSet, "El peso no puede ser negativo.")
	case in.Reps < 0:
		return pkg.NewValidationError(ErrInvalidSet, "Las repeticiones no pueden ser negativas.")
	case in.RPE != 0 && (in.RPE < 1 || in.RPE > 10):
		return pkg.NewValidationError(ErrInvalidSet, "El RPE debe estar entre 1 y 10.")
	}
	return nil
}

// Filter narrows List. Zero values mean no restriction, pages start at 1.
type Filter struct {
	From   *time.Time
	To     *time.Time
	Status Status
	Page   int
	Size   int
}

type Page struct {
	Logs  []TrainingLog `json:"logs"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
}

// prefill builds the exercises of a new log out of a routine day: targets are
// copied, actual values start at zero.
func prefill(day routines.Day) []Exercise {
	exercises := make([]Exercise, 0, len(day.Exercises))
	for _, ex := range day.Exercises {
		sets := make([]Set, ex.Sets)
		for i := range sets {
			sets[i] = Set{
				TargetReps:   ex.Reps,
				TargetWeight: ex.TargetWeight,
				TargetRPE:    ex.TargetRPE,
			}
		}
		exercises = append(exercises, Exercise{
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Sets:        sets,
		})
	}
	return exercises
}
