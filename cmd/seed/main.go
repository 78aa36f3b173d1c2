// Package main fills a local database with a demo coach, a few athletes and
// some weeks of generated training history.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/db"
	"github.com/2beens/fitcoach/internal/measurements"
	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/internal/schedules"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const (
	coachEmail    = "coach@fitcoach.dev"
	demoPassword  = "fitcoach123"
	trainingStart = 18 // hour of day, UTC
)

// training days of the demo schedule, Sunday = 0
var scheduleSlots = []schedules.Slot{
	{Weekday: 1, DayIndex: 0},
	{Weekday: 3, DayIndex: 1},
	{Weekday: 5, DayIndex: 2},
}

func demoTemplate() routines.Routine {
	return routines.Routine{
		Name:        "Fuerza 3 días",
		Description: "Rutina de cuerpo completo en tres sesiones semanales.",
		Days: []routines.Day{
			{
				Name: "Día A - Empuje",
				Exercises: []routines.Exercise{
					{Name: "Press banca", MuscleGroup: "pecho", Sets: 4, Reps: 6, TargetWeight: 60, TargetRPE: 8, RestSeconds: 180},
					{Name: "Press militar", MuscleGroup: "hombros", Sets: 3, Reps: 8, TargetWeight: 35, TargetRPE: 8, RestSeconds: 120},
					{Name: "Fondos", MuscleGroup: "tríceps", Sets: 3, Reps: 10, RestSeconds: 90},
				},
			},
			{
				Name: "Día B - Pierna",
				Exercises: []routines.Exercise{
					{Name: "Sentadilla", MuscleGroup: "piernas", Sets: 4, Reps: 5, TargetWeight: 80, TargetRPE: 8, RestSeconds: 180},
					{Name: "Peso muerto rumano", MuscleGroup: "isquios", Sets: 3, Reps: 8, TargetWeight: 60, TargetRPE: 7, RestSeconds: 120},
					{Name: "Zancadas", MuscleGroup: "piernas", Sets: 3, Reps: 12, TargetWeight: 20, RestSeconds: 90},
				},
			},
			{
				Name: "Día C - Tirón",
				Exercises: []routines.Exercise{
					{Name: "Dominadas", MuscleGroup: "espalda", Sets: 4, Reps: 6, TargetRPE: 8, RestSeconds: 150},
					{Name: "Remo con barra", MuscleGroup: "espalda", Sets: 3, Reps: 8, TargetWeight: 50, TargetRPE: 8, RestSeconds: 120},
					{Name: "Curl de bíceps", MuscleGroup: "bíceps", Sets: 3, Reps: 12, TargetWeight: 12, RestSeconds: 60},
				},
			},
		},
	}
}

type seeder struct {
	faker        *gofakeit.Faker
	clock        time.Time
	users        *users.Service
	routines     *routines.Service
	schedules    *schedules.Service
	logs         *traininglogs.Service
	measurements *measurements.Service
}

func newSeeder(pool *pgxpool.Pool, seed int64) *seeder {
	s := &seeder{
		faker: gofakeit.New(seed),
		clock: time.Now().UTC(),
	}
	now := func() time.Time { return s.clock }

	usersRepo := users.NewRepo(pool)
	routinesRepo := routines.NewRepo(pool)
	logsRepo := traininglogs.NewRepo(pool)

	s.users = users.NewService(usersRepo, nil)
	s.routines = routines.NewService(routinesRepo, s.users)
	s.schedules = schedules.NewService(schedules.NewRepo(pool), routinesRepo, logsRepo, s.users)
	s.logs = traininglogs.NewService(logsRepo, routinesRepo, s.users, nil).WithClock(now)
	s.measurements = measurements.NewService(measurements.NewRepo(pool), s.users).WithClock(now)
	return s
}

func (s *seeder) coach(ctx context.Context) (*users.User, error) {
	coach, err := s.users.RegisterCoach(ctx, coachEmail, "Carla Entrenadora", demoPassword)
	if errors.Is(err, users.ErrEmailInUse) {
		log.Infof("coach %s already there, reusing it", coachEmail)
		return s.users.Authenticate(ctx, coachEmail, demoPassword)
	}
	return coach, err
}

func (s *seeder) athlete(ctx context.Context, coach *users.User, n int) (*users.User, error) {
	first := s.faker.FirstName()
	profile := users.Profile{
		BirthDate: s.faker.DateRange(
			time.Date(1975, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2004, 12, 31, 0, 0, 0, 0, time.UTC),
		).Format(pkg.DateLayout),
		HeightCm:        math.Round(s.faker.Float64Range(155, 195)),
		WeightKg:        math.Round(s.faker.Float64Range(55, 100)*10) / 10,
		Goals:           s.faker.RandomString([]string{"Ganar fuerza", "Perder grasa", "Preparar una carrera de 10 km", "Ganar masa muscular"}),
		Injuries:        s.faker.RandomString([]string{"", "", "Molestias en la rodilla derecha", "Hombro izquierdo operado hace dos años"}),
		ExperienceLevel: users.ExperienceLevel(s.faker.RandomString([]string{"beginner", "intermediate", "advanced"})),
	}
	email := fmt.Sprintf("%s.%d@fitcoach.dev", strings.ToLower(first), n)
	return s.users.CreateAthlete(ctx, coach, email, first+" "+s.faker.LastName(), demoPassword, profile)
}

// history logs the scheduled sessions of the last weeks, skipping some of
// them, with a slow progression on the target weights.
func (s *seeder) history(ctx context.Context, athlete *users.User, routine *routines.Routine, weeks int, today time.Time) (int, error) {
	planned := make(map[int]int, len(scheduleSlots))
	for _, slot := range scheduleSlots {
		planned[slot.Weekday] = slot.DayIndex
	}

	logged := 0
	start := today.AddDate(0, 0, -7*weeks)
	for date := start; date.Before(today); date = date.AddDate(0, 0, 1) {
		dayIndex, ok := planned[int(date.Weekday())]
		if !ok || s.faker.Float64Range(0, 1) < 0.2 {
			continue
		}

		progress := 1 + 0.01*float64(int(date.Sub(start).Hours()/24)/7)
		if err := s.session(ctx, athlete, routine, dayIndex, date, progress); err != nil {
			return logged, fmt.Errorf("session %s: %w", date.Format(pkg.DateLayout), err)
		}
		logged++
	}
	return logged, nil
}

func (s *seeder) session(ctx context.Context, athlete *users.User, routine *routines.Routine, dayIndex int, date time.Time, progress float64) error {
	s.clock = date.Add(trainingStart * time.Hour)
	started, _, err := s.logs.Start(ctx, athlete, routine.ID, dayIndex, date)
	if err != nil {
		return err
	}

	for ei, ex := range started.Exercises {
		for si, set := range ex.Sets {
			weight := math.Round(set.TargetWeight*progress*2) / 2
			reps := set.TargetReps - s.faker.IntRange(0, 2)
			if reps < 1 {
				reps = 1
			}
			if _, err := s.logs.UpdateSet(ctx, athlete, started.ID, ei, si, traininglogs.SetInput{
				Weight:    weight,
				Reps:      reps,
				RPE:       float64(s.faker.IntRange(6, 9)),
				Completed: true,
			}); err != nil {
				return err
			}
		}
	}

	s.clock = s.clock.Add(time.Duration(s.faker.IntRange(45, 80)) * time.Minute)
	_, err = s.logs.Finish(ctx, athlete, started.ID, s.faker.Sentence(6), float64(s.faker.IntRange(6, 9)))
	return err
}

func (s *seeder) body(ctx context.Context, athlete *users.User, weeks int, today time.Time) error {
	weight := athlete.Profile.WeightKg
	for w := weeks; w >= 0; w-- {
		date := today.AddDate(0, 0, -7*w)
		weight += s.faker.Float64Range(-0.6, 0.4)
		if _, err := s.measurements.Add(ctx, athlete, athlete.ID, measurements.BodyMeasurement{
			Date:       date,
			WeightKg:   math.Round(weight*10) / 10,
			BodyFatPct: math.Round(s.faker.Float64Range(12, 25)*10) / 10,
			WaistCm:    math.Round(s.faker.Float64Range(72, 95)),
		}); err != nil {
			return fmt.Errorf("measurement: %w", err)
		}
	}

	for d := 7; d >= 1; d-- {
		if _, err := s.measurements.AddCheckIn(ctx, athlete, athlete.ID, measurements.CheckIn{
			Date:         today.AddDate(0, 0, -d),
			SleepHours:   math.Round(s.faker.Float64Range(5, 9)*2) / 2,
			SleepQuality: s.faker.IntRange(2, 5),
			Energy:       s.faker.IntRange(4, 9),
			Stress:       s.faker.IntRange(2, 8),
			Soreness:     s.faker.IntRange(1, 7),
		}); err != nil {
			return fmt.Errorf("check-in: %w", err)
		}
	}
	return nil
}

func main() {
	env := flag.String("env", "development", "environment [dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	athletesCount := flag.Int("athletes", 3, "number of athletes to create")
	weeks := flag.Int("weeks", 6, "weeks of training history per athlete")
	seed := flag.Int64("seed", 42, "random seed for the generated data")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	if cfg.Environment == "production" {
		log.Fatalln("refusing to seed a production database")
	}

	ctx := context.Background()
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: cfg.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("ensure schema: %s", err)
	}

	s := newSeeder(pool, *seed)
	today := pkg.StartOfDay(s.clock)
	historyDays := *weeks * 7

	coach, err := s.coach(ctx)
	if err != nil {
		log.Fatalf("coach: %s", err)
	}

	template, err := s.routines.Create(ctx, coach, demoTemplate())
	if err != nil {
		log.Fatalf("template routine: %s", err)
	}

	for i := 1; i <= *athletesCount; i++ {
		athlete, err := s.athlete(ctx, coach, i)
		if err != nil {
			log.Fatalf("athlete %d: %s", i, err)
		}

		routine, _, err := s.routines.Assign(ctx, coach, template.ID, athlete.ID)
		if err != nil {
			log.Fatalf("assign routine to %s: %s", athlete.ID, err)
		}

		if _, err := s.schedules.Set(ctx, coach, athlete.ID, schedules.SetParams{
			RoutineID: routine.ID,
			StartDate: today.AddDate(0, 0, -historyDays),
			Slots:     scheduleSlots,
		}); err != nil {
			log.Fatalf("schedule for %s: %s", athlete.ID, err)
		}

		logged, err := s.history(ctx, athlete, routine, *weeks, today)
		if err != nil {
			log.Fatalf("history for %s: %s", athlete.ID, err)
		}
		if err := s.body(ctx, athlete, *weeks, today); err != nil {
			log.Fatalf("body data for %s: %s", athlete.ID, err)
		}

		log.Infof("athlete %s <%s>: %d sessions logged", athlete.Name, athlete.Email, logged)
	}

	log.Infof("done, log in as %s / %s", coachEmail, demoPassword)
}
