package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/fitcoach/internal/analytics"
	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/coachmcp"
	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/db"
	"github.com/2beens/fitcoach/internal/insights"
	"github.com/2beens/fitcoach/internal/llm"
	"github.com/2beens/fitcoach/internal/measurements"
	"github.com/2beens/fitcoach/internal/middleware"
	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/internal/schedules"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	authService *auth.Service
	completer   llm.Completer

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.Config.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.EnsureSchema(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitcoach", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.Config.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go authService.RunCleaner(ctx, sessionsCleanupInterval)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled)
	if err != nil {
		return nil, err
	}

	completer, err := llm.New(ctx, llm.Params{
		Provider: params.Config.AIProvider,
		Model:    params.Config.AIModel,
		BaseURL:  params.Config.AIBaseURL,
		APIKey:   params.Config.AIAPIKey,
		Timeout:  time.Duration(params.Config.AITimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("new ai completer: %w", err)
	}
	if _, disabled := completer.(llm.Disabled); disabled {
		log.Warnln("ai api key not set, insights disabled")
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		redisClient: rdb,
		authService: authService,
		completer:   completer,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	svc := newServices(servicesParams{
		DBPool:               s.dbPool,
		Sessions:             s.authService,
		Completer:            s.completer,
		AIProvider:           s.config.AIProvider,
		AnalyticsCacheSizeMB: s.config.AnalyticsCacheSizeMB,
		MetricsManager:       s.metricsManager,
	})

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	loginRateLimit := middleware.RateLimit(
		reqRateLimiter,
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		middleware.KeyByIP,
		s.metricsManager,
	)
	aiRateLimit := middleware.RateLimit(
		reqRateLimiter,
		"ai",
		s.config.AIRateLimitAllowedPerMin,
		middleware.KeyByUser,
		s.metricsManager,
	)

	authHandler := auth.NewHandler(svc.users, s.authService)
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.Handle("/register", loginRateLimit(http.HandlerFunc(authHandler.HandleRegister))).Methods("POST", "OPTIONS").Name("register")
	authRouter.Handle("/login", loginRateLimit(http.HandlerFunc(authHandler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	authRouter.HandleFunc("/me", authHandler.HandleMe).Methods("GET", "OPTIONS").Name("me")

	users.NewHandler(svc.users).SetupRoutes(r)
	routines.NewHandler(svc.routines).SetupRoutes(r)
	schedules.NewHandler(svc.schedules).SetupRoutes(r)
	traininglogs.NewHandler(svc.logs).SetupRoutes(r)
	measurements.NewHandler(svc.measurements).SetupRoutes(r)
	analytics.NewHandler(svc.analytics).SetupRoutes(r)
	insights.NewHandler(svc.insights, aiRateLimit).SetupRoutes(r)

	mcpHandler := coachmcp.NewHTTPHandler(coachmcp.NewServer(svc.coachContext), s.config.MCPSecret)
	r.PathPrefix("/mcp").Handler(mcpHandler).Name("mcp")

	r.HandleFunc("/health", healthHandler(s.versionInfo, map[string]func(ctx context.Context) error{
		"postgres": s.dbPool.Ping,
		"redis": func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		},
	})).Methods("GET").Name("health")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(handleUnknownRoute)

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.authService,
		svc.users,
		s.config.MCPSecret,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// AI completions can take a while
		WriteTimeout: 2 * time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
