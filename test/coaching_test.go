//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/measurements"
	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/internal/schedules"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"
)

func (s *IntegrationTestSuite) TestAuth() {
	s.truncate()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	registered := s.registerCoach(ctx, "carla@fitcoach.dev", "Carla")
	s.Equal(users.RoleCoach, registered.User.Role)

	var me users.User
	status, _ := s.do(ctx, http.MethodGet, "/auth/me", registered.Token, nil, &me)
	s.Equal(http.StatusOK, status)
	s.Equal(registered.User.ID, me.ID)

	status, env := s.do(ctx, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "CARLA@fitcoach.dev",
		"name":     "Carla bis",
		"password": "secret123",
	}, nil)
	s.Equal(http.StatusConflict, status)
	s.False(env.Success)

	status, _ = s.do(ctx, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "carla@fitcoach.dev",
		"password": "wrong-pass",
	}, nil)
	s.Equal(http.StatusUnauthorized, status)

	loggedIn := s.login(ctx, "carla@fitcoach.dev", "secret123")
	s.NotEqual(registered.Token, loggedIn.Token)

	status, _ = s.do(ctx, http.MethodPost, "/auth/logout", loggedIn.Token, nil, nil)
	s.Equal(http.StatusOK, status)

	status, env = s.do(ctx, http.MethodGet, "/auth/me", loggedIn.Token, nil, nil)
	s.Equal(http.StatusUnauthorized, status)
	s.Equal(pkg.MsgUnauthorized, env.Error)

	// the first session is still alive
	status, _ = s.do(ctx, http.MethodGet, "/auth/me", registered.Token, nil, nil)
	s.Equal(http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestCoachingFlow() {
	s.truncate()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	coach := s.registerCoach(ctx, "coach@fitcoach.dev", "Carla")
	athlete := s.createAthlete(ctx, coach.Token, "ana@fitcoach.dev", "Ana")
	s.Equal(coach.User.ID, athlete.CoachID)

	// template routine, assigned to the athlete
	var template routines.Routine
	status, env := s.do(ctx, http.MethodPost, "/routines", coach.Token, routines.Routine{
		Name: "Fuerza",
		Days: []routines.Day{{
			Name: "Pierna",
			Exercises: []routines.Exercise{
				{Name: "Sentadilla", MuscleGroup: "piernas", Sets: 3, Reps: 5, TargetWeight: 100, TargetRPE: 8},
			},
		}},
	}, &template)
	s.Require().Equal(http.StatusCreated, status, env.Error)
	s.True(template.IsTemplate())

	var assigned routines.AssignResponse
	status, _ = s.do(ctx, http.MethodPost, path("/routines/%s/assign", template.ID), coach.Token,
		routines.AssignRequest{AthleteID: athlete.ID}, &assigned)
	s.Require().Equal(http.StatusCreated, status)
	s.True(assigned.Created)
	s.Equal(athlete.ID, assigned.Routine.AthleteID)
	s.Equal(template.ID, assigned.Routine.SourceID)

	status, _ = s.do(ctx, http.MethodPost, path("/routines/%s/assign", template.ID), coach.Token,
		routines.AssignRequest{AthleteID: athlete.ID}, &assigned)
	s.Equal(http.StatusOK, status)
	s.False(assigned.Created)

	// schedule with today as a training day
	today := pkg.StartOfDay(time.Now().UTC())
	status, env = s.do(ctx, http.MethodPut, path("/athletes/%s/schedule", athlete.ID), coach.Token, schedules.SetRequest{
		RoutineID: assigned.Routine.ID,
		StartDate: today.AddDate(0, 0, -14).Format(pkg.DateLayout),
		Slots:     []schedules.Slot{{Weekday: int(today.Weekday()), DayIndex: 0}},
	}, nil)
	s.Require().Equal(http.StatusOK, status, env.Error)

	athleteSession := s.login(ctx, "ana@fitcoach.dev", "athlete123")

	var scheduled schedules.ScheduledDay
	status, _ = s.do(ctx, http.MethodGet, path("/athletes/%s/schedule/today", athlete.ID), athleteSession.Token, nil, &scheduled)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(assigned.Routine.ID, scheduled.RoutineID)
	s.Equal("Pierna", scheduled.Day.Name)

	// the athlete trains
	var started traininglogs.TrainingLog
	status, env = s.do(ctx, http.MethodPost, "/logs/start", athleteSession.Token, traininglogs.StartRequest{
		RoutineID: assigned.Routine.ID,
	}, &started)
	s.Require().Equal(http.StatusCreated, status, env.Error)
	s.Equal(traininglogs.StatusInProgress, started.Status)
	s.Require().Len(started.Exercises, 1)
	s.Len(started.Exercises[0].Sets, 3)

	var resumed traininglogs.TrainingLog
	status, _ = s.do(ctx, http.MethodPost, "/logs/start", athleteSession.Token, traininglogs.StartRequest{
		RoutineID: assigned.Routine.ID,
	}, &resumed)
	s.Equal(http.StatusOK, status)
	s.Equal(started.ID, resumed.ID)

	for set := 0; set < 3; set++ {
		status, env = s.do(ctx, http.MethodPut, path("/logs/%s/exercises/0/sets/%d", started.ID, set), athleteSession.Token,
			traininglogs.SetInput{Weight: 100, Reps: 5, RPE: 8, Completed: true}, nil)
		s.Require().Equal(http.StatusOK, status, env.Error)
	}

	// coaches cannot write the athlete's log
	status, _ = s.do(ctx, http.MethodPost, path("/logs/%s/finish", started.ID), coach.Token,
		traininglogs.FinishRequest{SessionRPE: 8}, nil)
	s.Equal(http.StatusForbidden, status)

	var finished traininglogs.TrainingLog
	status, _ = s.do(ctx, http.MethodPost, path("/logs/%s/finish", started.ID), athleteSession.Token,
		traininglogs.FinishRequest{Notes: "Buenas sensaciones", SessionRPE: 8}, &finished)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(traininglogs.StatusCompleted, finished.Status)
	s.NotNil(finished.CompletedAt)
	s.Equal(1500.0, finished.Volume())

	// the coach sees it in the feed and analytics
	var feed []traininglogs.FeedItem
	status, _ = s.do(ctx, http.MethodGet, "/coach/feed", coach.Token, nil, &feed)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Len(feed, 1)
	s.Equal("Ana", feed[0].AthleteName)
	s.Equal(started.ID, feed[0].ID)

	var progressions []analytics.Progression
	status, _ = s.do(ctx, http.MethodGet, path("/athletes/%s/analytics/progression?exercise=sentadilla", athlete.ID),
		coach.Token, nil, &progressions)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Len(progressions, 1)
	s.Len(progressions[0].Points, 1)
	s.Greater(progressions[0].Latest, 100.0)

	var adherence schedules.Adherence
	status, _ = s.do(ctx, http.MethodGet, path("/athletes/%s/schedule/adherence?from=%s&to=%s",
		athlete.ID, today.Format(pkg.DateLayout), today.Format(pkg.DateLayout)), coach.Token, nil, &adherence)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(schedules.Adherence{Scheduled: 1, Completed: 1, Percent: 100}, adherence)

	var dashboard []analytics.DashboardEntry
	status, _ = s.do(ctx, http.MethodGet, "/coach/dashboard", coach.Token, nil, &dashboard)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Len(dashboard, 1)
	s.Equal(athlete.ID, dashboard[0].AthleteID)
	s.Equal(1, dashboard[0].SessionsThisWeek)
	s.NotNil(dashboard[0].LastSessionAt)
	s.Nil(dashboard[0].ReadinessScore)

	// body data
	var m measurements.BodyMeasurement
	status, env = s.do(ctx, http.MethodPost, path("/athletes/%s/measurements", athlete.ID), athleteSession.Token,
		measurements.MeasurementRequest{WeightKg: 72.1, WaistCm: 80}, &m)
	s.Require().Equal(http.StatusCreated, status, env.Error)
	s.Equal(athlete.ID, m.AthleteID)

	status, _ = s.do(ctx, http.MethodPost, path("/athletes/%s/checkins", athlete.ID), athleteSession.Token,
		measurements.CheckInRequest{SleepHours: 7.5, SleepQuality: 4, Energy: 7, Stress: 3, Soreness: 4}, nil)
	s.Equal(http.StatusCreated, status)

	var list []measurements.BodyMeasurement
	status, _ = s.do(ctx, http.MethodGet, path("/athletes/%s/measurements", athlete.ID), coach.Token, nil, &list)
	s.Require().Equal(http.StatusOK, status)
	s.Len(list, 1)

	// no AI key configured in tests
	status, env = s.do(ctx, http.MethodPost, path("/athletes/%s/insights/readiness", athlete.ID), coach.Token, nil, nil)
	s.Equal(http.StatusServiceUnavailable, status)
	s.False(env.Success)

	// another coach has no access
	other := s.registerCoach(ctx, "otro@fitcoach.dev", "Otro")
	status, _ = s.do(ctx, http.MethodGet, path("/athletes/%s", athlete.ID), other.Token, nil, nil)
	s.Equal(http.StatusForbidden, status)
	status, _ = s.do(ctx, http.MethodGet, path("/logs/%s", started.ID), other.Token, nil, nil)
	s.Equal(http.StatusForbidden, status)

	// removing the athlete drops their sessions, the history stays
	status, _ = s.do(ctx, http.MethodDelete, path("/athletes/%s", athlete.ID), coach.Token, nil, nil)
	s.Require().Equal(http.StatusOK, status)

	status, _ = s.do(ctx, http.MethodGet, "/auth/me", athleteSession.Token, nil, nil)
	s.Equal(http.StatusUnauthorized, status)

	var logsLeft int
	s.Require().NoError(s.DB.QueryRow(`SELECT count(*) FROM training_logs WHERE athlete_id = $1`, athlete.ID).Scan(&logsLeft))
	s.Equal(1, logsLeft)
}

func (s *IntegrationTestSuite) TestConcurrentScheduleSet() {
	s.truncate()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	coach := s.registerCoach(ctx, "coach@fitcoach.dev", "Carla")
	athlete := s.createAthlete(ctx, coach.Token, "ana@fitcoach.dev", "Ana")

	var template routines.Routine
	status, env := s.do(ctx, http.MethodPost, "/routines", coach.Token, routines.Routine{
		Name: "Fuerza",
		Days: []routines.Day{{
			Name:      "Pierna",
			Exercises: []routines.Exercise{{Name: "Sentadilla", Sets: 3, Reps: 5}},
		}},
	}, &template)
	s.Require().Equal(http.StatusCreated, status, env.Error)

	var assigned routines.AssignResponse
	status, _ = s.do(ctx, http.MethodPost, path("/routines/%s/assign", template.ID), coach.Token,
		routines.AssignRequest{AthleteID: athlete.ID}, &assigned)
	s.Require().Equal(http.StatusCreated, status)

	body, err := json.Marshal(schedules.SetRequest{
		RoutineID: assigned.Routine.ID,
		StartDate: time.Now().UTC().Format(pkg.DateLayout),
		Slots:     []schedules.Slot{{Weekday: 1, DayIndex: 0}},
	})
	s.Require().NoError(err)

	const requests = 8
	statuses := make(chan int, requests)
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, err := http.NewRequestWithContext(ctx, http.MethodPut,
				serverEndpoint+path("/athletes/%s/schedule", athlete.ID), bytes.NewReader(body))
			if err != nil {
				statuses <- 0
				return
			}
			req.Header.Set("Authorization", "Bearer "+coach.Token)
			req.Header.Set("Content-Type", "application/json")
			resp, err := s.httpClient.Do(req)
			if err != nil {
				statuses <- 0
				return
			}
			_ = resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	for st := range statuses {
		s.Contains([]int{http.StatusOK, http.StatusConflict}, st)
	}

	var active int
	s.Require().NoError(s.DB.QueryRow(
		`SELECT count(*) FROM schedules WHERE athlete_id = $1 AND active`, athlete.ID,
	).Scan(&active))
	s.Equal(1, active)

	// the index itself refuses a second active row
	_, err = s.DB.Exec(`INSERT INTO schedules (id, athlete_id, coach_id, routine_id, start_date, active, created_at, updated_at)
		VALUES ('manual', $1, $2, $3, now(), true, now(), now())`, athlete.ID, coach.User.ID, assigned.Routine.ID)
	s.Error(err)
}

func (s *IntegrationTestSuite) TestHealthAndUnknownRoutes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var health struct {
		Status  string            `json:"status"`
		Version string            `json:"version"`
		Checks  map[string]string `json:"checks"`
	}
	status, _ := s.do(ctx, http.MethodGet, "/health", "", nil, &health)
	s.Equal(http.StatusOK, status)
	s.Equal("ok", health.Status)
	s.Equal("test-version-info", health.Version)
	s.Equal(map[string]string{"postgres": "ok", "redis": "ok"}, health.Checks)

	status, _ = s.do(ctx, http.MethodGet, "/athletes", "", nil, nil)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.do(ctx, http.MethodGet, "/athletes", "not-a-token", nil, nil)
	s.Equal(http.StatusUnauthorized, status)
}
