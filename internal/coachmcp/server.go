// Package coachmcp exposes read-only coaching context to AI tools over MCP.
package coachmcp

import (
	"crypto/subtle"
	"net/http"

	"github.com/2beens/fitcoach/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

const SecretHeader = "X-MCP-Secret"

// NewServer builds the MCP server. It is run over stdio by cmd/coach_mcp and
// mounted at /mcp by the main backend.
func NewServer(svc contextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitcoach-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitcoach_schema",
		Description: "Returns the DB schema of the coaching tables (users, routines, schedules, training_logs, body_measurements, check_ins, insights): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_athletes",
		Description: "Returns the athletes of a coach (id, name, email, profile). Arg: coach_id. Use it to find the athlete_id the other tools need.",
	}, h.ListAthletesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_athlete_context",
		Description: "Returns the plain-text context the AI coach works with: profile, recent completed sessions, body measurements, check-ins, estimated 1RM progression and the latest readiness score. Arg: athlete_id.",
	}, h.GetAthleteContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_logs",
		Description: "Returns the athlete's training logs (in progress and completed) with every set, newest first. Args: athlete_id; optional from_date, to_date (YYYY-MM-DD).",
	}, h.GetTrainingLogsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progression",
		Description: "Returns the estimated 1RM progression per exercise: session bests newest first, latest, previous and delta percent. Args: athlete_id; optional since_date (YYYY-MM-DD), exercise.",
	}, h.GetProgressionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_week_comparison",
		Description: "Compares an ISO week (Monday to Sunday) with the previous one: sessions, completed sets, volume, average session RPE and best 1RM per exercise. Args: athlete_id; optional date (YYYY-MM-DD).",
	}, h.GetWeekComparisonTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP to clients
// sending the shared secret in the X-MCP-Secret header.
func NewHTTPHandler(s *mcp.Server, secret string) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		got := r.Header.Get(SecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			log.Debugf("mcp: rejected request from %s", r.RemoteAddr)
			pkg.WriteError(w, http.StatusUnauthorized, pkg.MsgUnauthorized)
			return
		}
		streamable.ServeHTTP(w, r)
	})
}
