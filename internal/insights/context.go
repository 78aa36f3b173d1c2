package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/measurements"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	contextLogsWindowDays = 28
	contextMaxLogs        = 10
	contextMaxMeasures    = 5
	contextMaxCheckIns    = 7
	// progression window of the context
	contextProgressionDays = 90
)

// AthleteContext is everything the model is told about an athlete.
type AthleteContext struct {
	Athlete      *users.User
	Logs         []traininglogs.TrainingLog
	Measurements []measurements.BodyMeasurement
	CheckIns     []measurements.CheckIn
	Progressions []analytics.Progression
}

// BuildContext reads the athlete data concurrently. Callers must have checked
// that the actor may see the athlete.
func (s *Service) BuildContext(ctx context.Context, athleteID string, now time.Time) (_ *AthleteContext, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insightsService.buildContext")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	today := pkg.StartOfDay(now)
	ac := &AthleteContext{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		athlete, err := s.athletes.GetByID(egCtx, athleteID)
		if err != nil {
			return fmt.Errorf("athlete: %w", err)
		}
		ac.Athlete = athlete
		return nil
	})
	eg.Go(func() error {
		logs, err := s.logs.ListCompleted(egCtx, athleteID, today.AddDate(0, 0, -contextLogsWindowDays), today)
		if err != nil {
			return fmt.Errorf("logs: %w", err)
		}
		if len(logs) > contextMaxLogs {
			logs = logs[:contextMaxLogs]
		}
		ac.Logs = logs
		return nil
	})
	eg.Go(func() error {
		list, err := s.measurements.List(egCtx, athleteID, time.Time{}, today, contextMaxMeasures)
		if err != nil {
			return fmt.Errorf("measurements: %w", err)
		}
		ac.Measurements = list
		return nil
	})
	eg.Go(func() error {
		list, err := s.measurements.ListCheckIns(egCtx, athleteID, time.Time{}, today, contextMaxCheckIns)
		if err != nil {
			return fmt.Errorf("check-ins: %w", err)
		}
		ac.CheckIns = list
		return nil
	})
	eg.Go(func() error {
		list, err := s.analytics.ProgressionFor(egCtx, athleteID, today.AddDate(0, 0, -contextProgressionDays))
		if err != nil {
			return fmt.Errorf("progression: %w", err)
		}
		ac.Progressions = list
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return ac, nil
}

// Render writes the context as plain text under fixed headings.
func (ac *AthleteContext) Render() string {
	var sb strings.Builder

	sb.WriteString("## Atleta\n")
	if a := ac.Athlete; a != nil {
		p := a.Profile
		fmt.Fprintf(&sb, "Nombre: %s\n", a.Name)
		if p.BirthDate != "" {
			fmt.Fprintf(&sb, "Fecha de nacimiento: %s\n", p.BirthDate)
		}
		if p.HeightCm > 0 {
			fmt.Fprintf(&sb, "Altura: %s cm\n", num(p.HeightCm))
		}
		if p.WeightKg > 0 {
			fmt.Fprintf(&sb, "Peso: %s kg\n", num(p.WeightKg))
		}
		if p.ExperienceLevel != users.ExperienceNone {
			fmt.Fprintf(&sb, "Experiencia: %s\n", p.ExperienceLevel)
		}
		writeField(&sb, "Objetivos", p.Goals)
		writeField(&sb, "Lesiones", p.Injuries)
		writeField(&sb, "Notas", p.Notes)
	}

	sb.WriteString("\n## Entrenamientos recientes\n")
	if len(ac.Logs) == 0 {
		sb.WriteString("Sin entrenamientos en las últimas 4 semanas.\n")
	}
	for i := range ac.Logs {
		l := &ac.Logs[i]
		fmt.Fprintf(&sb, "- %s %s (%s): %d series, volumen %s kg",
			l.Date.Format(pkg.DateLayout), l.RoutineName, l.DayName, l.CompletedSets(), num(l.Volume()))
		if l.SessionRPE > 0 {
			fmt.Fprintf(&sb, ", RPE sesión %s", num(l.SessionRPE))
		}
		if l.DurationMinutes > 0 {
			fmt.Fprintf(&sb, ", %d min", l.DurationMinutes)
		}
		sb.WriteString("\n")
		if notes := strings.TrimSpace(l.Notes); notes != "" {
			fmt.Fprintf(&sb, "  Notas: %s\n", notes)
		}
	}

	sb.WriteString("\n## Medidas corporales\n")
	if len(ac.Measurements) == 0 {
		sb.WriteString("Sin medidas registradas.\n")
	}
	for _, m := range ac.Measurements {
		fmt.Fprintf(&sb, "- %s: peso %s kg", m.Date.Format(pkg.DateLayout), num(m.WeightKg))
		if m.BodyFatPct > 0 {
			fmt.Fprintf(&sb, ", grasa %s%%", num(m.BodyFatPct))
		}
		if m.WaistCm > 0 {
			fmt.Fprintf(&sb, ", cintura %s cm", num(m.WaistCm))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n## Check-ins\n")
	if len(ac.CheckIns) == 0 {
		sb.WriteString("Sin check-ins registrados.\n")
	}
	for _, c := range ac.CheckIns {
		fmt.Fprintf(&sb, "- %s: sueño %sh (calidad %d/5), energía %d/10, estrés %d/10, agujetas %d/10\n",
			c.Date.Format(pkg.DateLayout), num(c.SleepHours), c.SleepQuality, c.Energy, c.Stress, c.Soreness)
		if notes := strings.TrimSpace(c.Notes); notes != "" {
			fmt.Fprintf(&sb, "  Notas: %s\n", notes)
		}
	}

	sb.WriteString("\n## Progresión (1RM estimado)\n")
	if len(ac.Progressions) == 0 {
		sb.WriteString("Sin datos de progresión.\n")
	}
	for _, p := range ac.Progressions {
		fmt.Fprintf(&sb, "- %s: %s kg", p.Exercise, num(p.Latest))
		if len(p.Points) > 1 {
			fmt.Fprintf(&sb, " (anterior %s kg, %+.2f%%)", num(p.Previous), p.DeltaPct)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderLog(l *traininglogs.TrainingLog) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Entrenamiento del %s\n", l.Date.Format(pkg.DateLayout))
	fmt.Fprintf(&sb, "Rutina: %s, día: %s\n", l.RoutineName, l.DayName)
	if l.SessionRPE > 0 {
		fmt.Fprintf(&sb, "RPE de la sesión: %s\n", num(l.SessionRPE))
	}
	if l.DurationMinutes > 0 {
		fmt.Fprintf(&sb, "Duración: %d min\n", l.DurationMinutes)
	}
	writeField(&sb, "Notas", l.Notes)
	for _, ex := range l.Exercises {
		fmt.Fprintf(&sb, "- %s\n", ex.Name)
		for i, set := range ex.Sets {
			if !set.Completed {
				fmt.Fprintf(&sb, "  Serie %d: no completada (objetivo %d x %s kg)\n", i+1, set.TargetReps, num(set.TargetWeight))
				continue
			}
			fmt.Fprintf(&sb, "  Serie %d: %d x %s kg", i+1, set.Reps, num(set.Weight))
			if set.RPE > 0 {
				fmt.Fprintf(&sb, " @ RPE %s", num(set.RPE))
			}
			fmt.Fprintf(&sb, " (objetivo %d x %s kg)\n", set.TargetReps, num(set.TargetWeight))
		}
	}
	return sb.String()
}

func renderWeek(cmp *analytics.WeekComparison) string {
	var sb strings.Builder
	sb.WriteString("## Semana actual frente a la anterior\n")
	fmt.Fprintf(&sb, "Sesiones: %d (anterior %d, %+.2f%%)\n", cmp.Current.Sessions, cmp.Previous.Sessions, cmp.SessionsDeltaPct)
	fmt.Fprintf(&sb, "Series completadas: %d (anterior %d)\n", cmp.Current.TotalSets, cmp.Previous.TotalSets)
	fmt.Fprintf(&sb, "Volumen: %s kg (anterior %s kg, %+.2f%%)\n",
		num(cmp.Current.TotalVolume), num(cmp.Previous.TotalVolume), cmp.VolumeDeltaPct)
	if cmp.Current.AvgSessionRPE > 0 {
		fmt.Fprintf(&sb, "RPE medio: %s\n", num(cmp.Current.AvgSessionRPE))
	}
	for _, ex := range cmp.Exercises {
		fmt.Fprintf(&sb, "- %s: %s kg (anterior %s kg, %+.2f%%)\n", ex.Name, num(ex.Current), num(ex.Previous), ex.DeltaPct)
	}
	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	if value = strings.TrimSpace(value); value != "" {
		fmt.Fprintf(sb, "%s: %s\n", label, value)
	}
}

// num prints at most one decimal and drops a trailing .0
func num(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
