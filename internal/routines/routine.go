package routines

import (
	"errors"
	"strings"
	"time"

	"github.com/2beens/fitcoach/pkg"
)

var (
	ErrRoutineNotFound = errors.New("routine not found")
	ErrInvalidRoutine  = errors.New("invalid routine")
	ErrNotTemplate     = errors.New("routine is not a template")
)

const copySuffix = " (copia)"

type Exercise struct {
	Name         string  `json:"name"`
	MuscleGroup  string  `json:"muscleGroup"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	TargetWeight float64 `json:"targetWeight"`
	// TargetRPE 0 means no target.
	TargetRPE   float64 `json:"targetRpe"`
	RestSeconds int     `json:"restSeconds"`
	Notes       string  `json:"notes"`
}

type Day struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// Routine is a template when AthleteID is empty, otherwise an athlete copy
// made from the template with id SourceID.
type Routine struct {
	ID          string    `json:"id"`
	CoachID     string    `json:"coachId"`
	AthleteID   string    `json:"athleteId"`
	SourceID    string    `json:"sourceId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Days        []Day     `json:"days"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (r *Routine) IsTemplate() bool {
	return r.AthleteID == ""
}

// Day returns the day at index or false if out of range.
func (r *Routine) Day(index int) (Day, bool) {
	if index < 0 || index >= len(r.Days) {
		return Day{}, false
	}
	return r.Days[index], true
}

func (r *Routine) ExerciseCount() int {
	n := 0
	for _, d := range r.Days {
		n += len(d.Exercises)
	}
	return n
}

func Validate(r Routine) error {
	if strings.TrimSpace(r.Name) == "" {
		return pkg.NewValidationError(ErrInvalidRoutine, "La rutina necesita un nombre.")
	}
	if len(r.Days) == 0 {
		return pkg.NewValidationError(ErrInvalidRoutine, "La rutina necesita al menos un día.")
	}
	for di, day := range r.Days {
		if len(day.Exercises) == 0 {
			return pkg.NewValidationError(ErrInvalidRoutine, "El día %d no tiene ejercicios.", di+1)
		}
		for ei, ex := range day.Exercises {
			if err := validateExercise(di, ei, ex); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateExercise(di, ei int, ex Exercise) error {
	switch {
	case strings.TrimSpace(ex.Name) == "":
		return pkg.NewValidationError(ErrInvalidRoutine, "Día %d, ejercicio %d: falta el nombre.", di+1, ei+1)
	case ex.Sets < 1 || ex.Sets > 20:
		return pkg.NewValidationError(ErrInvalidRoutine, "Día %d, %s: las series deben estar entre 1 y 20.", di+1, ex.Name)
	case ex.Reps < 1 || ex.Reps > 100:
		return pkg.NewValidationError(ErrInvalidRoutine, "Día %d, %s: las repeticiones deben estar entre 1 y 100.", di+1, ex.Name)
	case ex.TargetRPE != 0 && (ex.TargetRPE < 1 || ex.TargetRPE > 10):
		return pkg.NewValidationError(ErrInvalidRoutine, "Día %d, %s: el RPE objetivo debe estar entre 1 y 10.", di+1, ex.Name)
	case ex.TargetWeight < 0:
		return pkg.NewValidationError(ErrInvalidRoutine, "Día %d, %s: el peso no puede ser negativo.", di+1, ex.Name)
	case ex.RestSeconds < 0:
		return pkg.NewValidationError(ErrInvalidRoutine, "Día %d, %s: el descanso no puede ser negativo.", di+1, ex.Name)
	}
	return nil
}

// normalize trims the free text fields.
func normalize(r *Routine) {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	for di := range r.Days {
		r.Days[di].Name = strings.TrimSpace(r.Days[di].Name)
		for ei := range r.Days[di].Exercises {
			ex := &r.Days[di].Exercises[ei]
			ex.Name = strings.TrimSpace(ex.Name)
			ex.MuscleGroup = strings.TrimSpace(ex.MuscleGroup)
		}
	}
}

func cloneDays(days []Day) []Day {
	out := make([]Day, len(days))
	for i, d := range days {
		out[i] = Day{
			Name:      d.Name,
			Exercises: append([]Exercise(nil), d.Exercises...),
		}
	}
	return out
}
