package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	ActivitiesSourceCSV      = "csv"
	ActivitiesSourcePostgres = "postgres"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// activity reference dataset, loaded once on startup
	ActivitiesSource  string `toml:"activities_source"`
	ActivitiesCsvPath string `toml:"activities_csv_path"`
	// postgres, used only with activities_source = "postgres"
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// password is read from FITCOMPANION_POSTGRES_PASS
	PostgresUser     string `toml:"postgres_user"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`
	// redis, used for rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// exercise db
	ExerciseDBBaseURL             string   `toml:"exercise_db_base_url"`
	ExerciseDBTimeout             Duration `toml:"exercise_db_timeout"`
	WorkoutRateLimitAllowedPerMin int      `toml:"workout_rate_limit_allowed_per_min"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

// Duration wraps time.Duration so it can be written as "10s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
	Docker      *Config `toml:"docker"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "docker", "dockerdev":
		cfg = t.Docker
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

func Load(env, configPath string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(configPath, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", configPath, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)

	if err := cfg.setDefaultsAndValidate(); err != nil {
		return nil, fmt.Errorf("invalid config for env [%s]: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) setDefaultsAndValidate() error {
	if c.Port <= 0 {
		return fmt.Errorf("port must be positive, got %d", c.Port)
	}

	if c.ActivitiesSource == "" {
		c.ActivitiesSource = ActivitiesSourceCSV
	}
	switch c.ActivitiesSource {
	case ActivitiesSourceCSV:
		if c.ActivitiesCsvPath == "" {
			return fmt.Errorf("activities_csv_path required for activities source [%s]", c.ActivitiesSource)
		}
	case ActivitiesSourcePostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			return fmt.Errorf("postgres host, port and db name required for activities source [%s]", c.ActivitiesSource)
		}
		if c.PostgresUser == "" {
			c.PostgresUser = "postgres"
		}
		if c.PostgresMaxConns < 0 {
			return fmt.Errorf("postgres_max_conns must not be negative, got %d", c.PostgresMaxConns)
		}
	default:
		return fmt.Errorf("unknown activities source: %s", c.ActivitiesSource)
	}

	if c.ExerciseDBBaseURL == "" {
		c.ExerciseDBBaseURL = "https://v2.exercisedb.io"
	}
	if c.ExerciseDBTimeout.Duration <= 0 {
		c.ExerciseDBTimeout.Duration = 10 * time.Second
	}
	if c.WorkoutRateLimitAllowedPerMin <= 0 {
		c.WorkoutRateLimitAllowedPerMin = 30
	}

	return nil
}
