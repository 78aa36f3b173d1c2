// Package main runs the coaching MCP server over stdio, for local AI tools.
// The same server is mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/fitcoach/internal"
	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/db"
	"github.com/2beens/fitcoach/internal/logging"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the protocol, logs stay on stderr unless a file is set
	if cfg.LogsPath == "" {
		log.SetOutput(os.Stderr)
		log.SetLevel(logging.GetLevel(cfg.LogLevel))
	} else {
		logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.LogsPath,
			LogToStdout:   false,
			LogLevel:      cfg.LogLevel,
			LogFormatJSON: cfg.LogFormatJSON,
			Environment:   cfg.Environment,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	metricsManager := metrics.NewManager("fitcoach", "mcp", prometheus.NewRegistry())
	server := internal.NewCoachMCPServer(dbPool, cfg.AnalyticsCacheSizeMB, metricsManager)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
