package insights

import (
	"errors"
	"time"
)

var (
	ErrInvalidAIResponse = errors.New("invalid ai response")
	ErrLogNotCompleted   = errors.New("training log not completed")
	ErrInvalidQuestion   = errors.New("invalid question")
	ErrInvalidType       = errors.New("invalid insight type")
)

type Type string

const (
	TypeWorkoutFeedback Type = "workout_feedback"
	TypeReadiness       Type = "readiness"
	TypeWeeklyReport    Type = "weekly_report"
)

func (t Type) Valid() bool {
	switch t {
	case TypeWorkoutFeedback, TypeReadiness, TypeWeeklyReport:
		return true
	}
	return false
}

type Insight struct {
	ID              string    `json:"id"`
	AthleteID       string    `json:"athleteId"`
	CoachID         string    `json:"coachId"`
	Type            Type      `json:"type"`
	TrainingLogID   string    `json:"trainingLogId,omitempty"`
	Summary         string    `json:"summary"`
	Highlights      []string  `json:"highlights"`
	Recommendations []string  `json:"recommendations"`
	ReadinessScore  *int      `json:"readinessScore,omitempty"`
	Provider        string    `json:"provider"`
	Model           string    `json:"model"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Answer is the reply to a free question. It is never stored.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}
