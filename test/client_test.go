//go:build integration

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/users"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// do sends a JSON request and decodes the envelope. data, if not nil,
// receives the payload of a successful answer.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body any, data any) (int, envelope) {
	t := s.T()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var env envelope
	if len(respBytes) > 0 {
		s.Require().NoError(json.Unmarshal(respBytes, &env), "body: %s", respBytes)
	}
	if data != nil && env.Success {
		s.Require().NoError(json.Unmarshal(env.Data, data))
	}
	t.Logf("%s %s -> %d", method, path, resp.StatusCode)
	return resp.StatusCode, env
}

func (s *IntegrationTestSuite) registerCoach(ctx context.Context, email, name string) auth.LoginResponse {
	var loginResp auth.LoginResponse
	status, env := s.do(ctx, http.MethodPost, "/auth/register", "", auth.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: "secret123",
	}, &loginResp)
	s.Require().Equal(http.StatusCreated, status, env.Error)
	s.Require().NotEmpty(loginResp.Token)
	return loginResp
}

func (s *IntegrationTestSuite) login(ctx context.Context, email, password string) auth.LoginResponse {
	var loginResp auth.LoginResponse
	status, env := s.do(ctx, http.MethodPost, "/auth/login", "", auth.LoginRequest{
		Email:    email,
		Password: password,
	}, &loginResp)
	s.Require().Equal(http.StatusOK, status, env.Error)
	return loginResp
}

func (s *IntegrationTestSuite) createAthlete(ctx context.Context, coachToken, email, name string) *users.User {
	var athlete users.User
	status, env := s.do(ctx, http.MethodPost, "/athletes", coachToken, users.CreateAthleteRequest{
		Email:    email,
		Name:     name,
		Password: "athlete123",
		Profile: users.Profile{
			HeightCm:        175,
			WeightKg:        72.5,
			Goals:           "Ganar fuerza",
			ExperienceLevel: users.ExperienceIntermediate,
		},
	}, &athlete)
	s.Require().Equal(http.StatusCreated, status, env.Error)
	return &athlete
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
