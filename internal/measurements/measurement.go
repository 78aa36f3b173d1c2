package measurements

import (
	"errors"
	"time"

	"github.com/2beens/fitcoach/pkg"
)

var (
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrInvalidMeasurement  = errors.New("invalid measurement")
	ErrInvalidCheckIn      = errors.New("invalid check-in")
)

// BodyMeasurement values of 0 mean not measured, except for the weight.
type BodyMeasurement struct {
	ID         string    `json:"id"`
	AthleteID  string    `json:"athleteId"`
	Date       time.Time `json:"date"`
	WeightKg   float64   `json:"weightKg"`
	BodyFatPct float64   `json:"bodyFatPct"`
	ChestCm    float64   `json:"chestCm"`
	WaistCm    float64   `json:"waistCm"`
	HipsCm     float64   `json:"hipsCm"`
	ArmCm      float64   `json:"armCm"`
	ThighCm    float64   `json:"thighCm"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (m BodyMeasurement) Validate() error {
	if m.WeightKg <= 0 {
		return pkg.NewValidationError(ErrInvalidMeasurement, "El peso es obligatorio.")
	}
	if m.BodyFatPct < 0 || m.BodyFatPct > 100 {
		return pkg.NewValidationError(ErrInvalidMeasurement, "El porcentaje de grasa debe estar entre 0 y 100.")
	}
	for _, v := range []float64{m.ChestCm, m.WaistCm, m.HipsCm, m.ArmCm, m.ThighCm} {
		if v < 0 {
			return pkg.NewValidationError(ErrInvalidMeasurement, "Las medidas no pueden ser negativas.")
		}
	}
	return nil
}

// CheckIn is the athlete's daily self report.
type CheckIn struct {
	ID           string    `json:"id"`
	AthleteID    string    `json:"athleteId"`
	Date         time.Time `json:"date"`
	SleepHours   float64   `json:"sleepHours"`
	SleepQuality int       `json:"sleepQuality"`
	Energy       int       `json:"energy"`
	Stress       int       `json:"stress"`
	Soreness     int       `json:"soreness"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (c CheckIn) Validate() error {
	switch {
	case c.SleepHours < 0 || c.SleepHours > 24:
		return pkg.NewValidationError(ErrInvalidCheckIn, "Las horas de sueño deben estar entre 0 y 24.")
	case c.SleepQuality < 1 || c.SleepQuality > 5:
		return pkg.NewValidationError(ErrInvalidCheckIn, "La calidad del sueño debe estar entre 1 y 5.")
	case c.Energy < 1 || c.Energy > 10:
		return pkg.NewValidationError(ErrInvalidCheckIn, "La energía debe estar entre 1 y 10.")
	case c.Stress < 1 || c.Stress > 10:
		return pkg.NewValidationError(ErrInvalidCheckIn, "El estrés debe estar entre 1 y 10.")
	case c.Soreness < 1 || c.Soreness > 10:
		return pkg.NewValidationError(ErrInvalidCheckIn, "Las agujetas deben estar entre 1 y 10.")
	}
	return nil
}
