package coachmcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/fitcoach/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultLogsDays        = 28
	defaultProgressionDays = 90
)

// Handler turns tool calls into ContextService reads and formats the results.
// Failures are reported as tool errors, never as protocol errors.
type Handler struct {
	service contextService
	nowFunc func() time.Time
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
		nowFunc: time.Now,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

// optionalDate parses a YYYY-MM-DD argument, empty means fallback.
func optionalDate(raw string, fallback time.Time) (time.Time, bool) {
	if raw == "" {
		return fallback, true
	}
	d, err := pkg.ParseDate(raw)
	return d, err == nil
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

type CoachInput struct {
	CoachID string `json:"coach_id" jsonschema:"Coach user id"`
}

func (h *Handler) ListAthletesTool() func(context.Context, *mcp.CallToolRequest, CoachInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CoachInput) (*mcp.CallToolResult, any, error) {
		if in.CoachID == "" {
			return errorResult("coach_id is required"), nil, nil
		}
		list, err := h.service.ListAthletes(ctx, in.CoachID)
		if err != nil {
			return errorResult("Error listing athletes: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

type AthleteInput struct {
	AthleteID string `json:"athlete_id" jsonschema:"Athlete user id"`
}

func (h *Handler) GetAthleteContextTool() func(context.Context, *mcp.CallToolRequest, AthleteInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AthleteInput) (*mcp.CallToolResult, any, error) {
		if in.AthleteID == "" {
			return errorResult("athlete_id is required"), nil, nil
		}
		text, err := h.service.AthleteContext(ctx, in.AthleteID)
		if err != nil {
			return errorResult("Error building athlete context: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

type TrainingLogsInput struct {
	AthleteID string `json:"athlete_id" jsonschema:"Athlete user id"`
	FromDate  string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), defaults to 28 days ago"`
	ToDate    string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), defaults to today"`
}

func (h *Handler) GetTrainingLogsTool() func(context.Context, *mcp.CallToolRequest, TrainingLogsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in TrainingLogsInput) (*mcp.CallToolResult, any, error) {
		if in.AthleteID == "" {
			return errorResult("athlete_id is required"), nil, nil
		}
		today := pkg.StartOfDay(h.nowFunc())
		from, ok := optionalDate(in.FromDate, today.AddDate(0, 0, -defaultLogsDays))
		if !ok {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, ok := optionalDate(in.ToDate, today)
		if !ok {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		if to.Before(from) {
			return errorResult("to_date must not be before from_date"), nil, nil
		}

		logs, err := h.service.TrainingLogs(ctx, in.AthleteID, from, to)
		if err != nil {
			return errorResult("Error listing training logs: " + err.Error()), nil, nil
		}
		return jsonResult(logs), nil, nil
	}
}

type ProgressionInput struct {
	AthleteID string `json:"athlete_id" jsonschema:"Athlete user id"`
	SinceDate string `json:"since_date,omitempty" jsonschema:"First date considered (YYYY-MM-DD), defaults to 90 days ago"`
	Exercise  string `json:"exercise,omitempty" jsonschema:"Only this exercise (case insensitive name)"`
}

func (h *Handler) GetProgressionTool() func(context.Context, *mcp.CallToolRequest, ProgressionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressionInput) (*mcp.CallToolResult, any, error) {
		if in.AthleteID == "" {
			return errorResult("athlete_id is required"), nil, nil
		}
		since, ok := optionalDate(in.SinceDate, pkg.StartOfDay(h.nowFunc()).AddDate(0, 0, -defaultProgressionDays))
		if !ok {
			return errorResult("Invalid since_date: use YYYY-MM-DD"), nil, nil
		}

		list, err := h.service.Progression(ctx, in.AthleteID, since)
		if err != nil {
			return errorResult("Error computing progression: " + err.Error()), nil, nil
		}
		if in.Exercise != "" {
			list = filterProgressions(list, in.Exercise)
		}
		return jsonResult(list), nil, nil
	}
}

type WeekComparisonInput struct {
	AthleteID string `json:"athlete_id" jsonschema:"Athlete user id"`
	Date      string `json:"date,omitempty" jsonschema:"Any date of the week to compare (YYYY-MM-DD), defaults to today"`
}

func (h *Handler) GetWeekComparisonTool() func(context.Context, *mcp.CallToolRequest, WeekComparisonInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeekComparisonInput) (*mcp.CallToolResult, any, error) {
		if in.AthleteID == "" {
			return errorResult("athlete_id is required"), nil, nil
		}
		date, ok := optionalDate(in.Date, h.nowFunc())
		if !ok {
			return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}

		cmp, err := h.service.WeekComparison(ctx, in.AthleteID, date)
		if err != nil {
			return errorResult("Error comparing weeks: " + err.Error()), nil, nil
		}
		return jsonResult(cmp), nil, nil
	}
}
