package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// rate limits
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	AIRateLimitAllowedPerMin    int `toml:"ai_rate_limit_allowed_per_min"`

	// ai
	AIProvider       string `toml:"ai_provider"`
	AIModel          string `toml:"ai_model"`
	AIBaseURL        string `toml:"ai_base_url"`
	AITimeoutSeconds int    `toml:"ai_timeout_seconds"`

	AnalyticsCacheSizeMB int      `toml:"analytics_cache_size_mb"`
	AllowedOrigins       []string `toml:"allowed_origins"`

	// secrets, never read from the file
	PostgresPassword string `toml:"-"`
	RedisPassword    string `toml:"-"`
	AIAPIKey         string `toml:"-"`
	MCPSecret        string `toml:"-"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	var envName string
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg, envName = t.Development, "development"
	case "prod", "production":
		cfg, envName = t.Production, "production"
	case "ddev", "dockerdev":
		cfg, envName = t.DockerDev, "dockerdev"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", envName)
	}
	cfg.Environment = envName

	return cfg, nil
}

// Load reads the TOML file, picks the env table, applies defaults and
// the secrets from the environment.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.readSecrets()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.AIRateLimitAllowedPerMin <= 0 {
		c.AIRateLimitAllowedPerMin = 6
	}
	if c.AIProvider == "" {
		c.AIProvider = "openai"
	}
	if c.AITimeoutSeconds <= 0 {
		c.AITimeoutSeconds = 60
	}
	if c.AnalyticsCacheSizeMB <= 0 {
		c.AnalyticsCacheSizeMB = 16
	}
}

func (c *Config) readSecrets() {
	c.PostgresPassword = os.Getenv("FITCOACH_DB_PASS")
	c.RedisPassword = os.Getenv("FITCOACH_REDIS_PASS")
	c.AIAPIKey = os.Getenv("FITCOACH_AI_API_KEY")
	c.MCPSecret = os.Getenv("FITCOACH_MCP_SECRET")
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 {
		errs = append(errs, errors.New("port not set"))
	}
	if c.PostgresHost == "" {
		errs = append(errs, errors.New("postgres_host not set"))
	}
	if c.PostgresDBName == "" {
		errs = append(errs, errors.New("postgres_db_name not set"))
	}
	if c.RedisHost == "" {
		errs = append(errs, errors.New("redis_host not set"))
	}
	switch c.AIProvider {
	case "openai", "gemini":
	default:
		errs = append(errs, fmt.Errorf("unknown ai_provider: %s", c.AIProvider))
	}
	return errors.Join(errs...)
}
