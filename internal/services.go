package internal

import (
	"context"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/coachmcp"
	"github.com/2beens/fitcoach/internal/insights"
	"github.com/2beens/fitcoach/internal/llm"
	"github.com/2beens/fitcoach/internal/measurements"
	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/internal/schedules"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type sessionRevoker interface {
	LogoutAll(ctx context.Context, userID string) (int, error)
}

// noSessions is used where no session store exists.
type noSessions struct{}

func (noSessions) LogoutAll(context.Context, string) (int, error) {
	return 0, nil
}

// services holds the domain services built on a single db pool.
type services struct {
	users        *users.Service
	routines     *routines.Service
	schedules    *schedules.Service
	logs         *traininglogs.Service
	measurements *measurements.Service
	analytics    *analytics.Service
	insights     *insights.Service
	coachContext *coachmcp.ContextService
}

type servicesParams struct {
	DBPool               *pgxpool.Pool
	Sessions             sessionRevoker
	Completer            llm.Completer
	AIProvider           string
	AnalyticsCacheSizeMB int
	MetricsManager       *metrics.Manager
}

func newServices(params servicesParams) *services {
	usersRepo := users.NewRepo(params.DBPool)
	routinesRepo := routines.NewRepo(params.DBPool)
	logsRepo := traininglogs.NewRepo(params.DBPool)
	measurementsRepo := measurements.NewRepo(params.DBPool)
	insightsRepo := insights.NewRepo(params.DBPool)

	usersService := users.NewService(usersRepo, params.Sessions)
	logsService := traininglogs.NewService(logsRepo, routinesRepo, usersService, params.MetricsManager)
	schedulesService := schedules.NewService(schedules.NewRepo(params.DBPool), routinesRepo, logsRepo, usersService)
	analyticsService := analytics.NewService(
		logsRepo,
		usersService,
		schedulesService,
		insightsRepo,
		params.AnalyticsCacheSizeMB,
	)

	insightsService := insights.NewService(insights.Deps{
		Repo:         insightsRepo,
		Athletes:     usersService,
		Logs:         logsService,
		Completed:    logsRepo,
		Measurements: measurementsRepo,
		Analytics:    analyticsService,
	}, params.Completer, params.AIProvider, params.MetricsManager)

	return &services{
		users:        usersService,
		routines:     routines.NewService(routinesRepo, usersService),
		schedules:    schedulesService,
		logs:         logsService,
		measurements: measurements.NewService(measurementsRepo, usersService),
		analytics:    analyticsService,
		insights:     insightsService,
		coachContext: coachmcp.NewContextService(
			coachmcp.NewPoolSchemaRepo(params.DBPool),
			usersRepo,
			insightsService,
			logsRepo,
			analyticsService,
		),
	}
}

// NewCoachMCPServer builds the read-only MCP server used by the stdio command.
// It never calls the AI provider nor touches sessions.
func NewCoachMCPServer(dbPool *pgxpool.Pool, analyticsCacheSizeMB int, metricsManager *metrics.Manager) *mcp.Server {
	svc := newServices(servicesParams{
		DBPool:               dbPool,
		Sessions:             noSessions{},
		Completer:            llm.Disabled{},
		AnalyticsCacheSizeMB: analyticsCacheSizeMB,
		MetricsManager:       metricsManager,
	})
	return coachmcp.NewServer(svc.coachContext)
}
