// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultPostgresMaxConns is the default pgx pool size.
	DefaultPostgresMaxConns = 10

	// DefaultLoaderBatchCapacity bounds the ids fetched by one loader batch.
	DefaultLoaderBatchCapacity = 100

	// DefaultPageSize is the page size of multipleChoices when first is omitted.
	DefaultPageSize = 20

	// DefaultMaxPageSize caps the first argument of multipleChoices.
	DefaultMaxPageSize = 100
)

// Store drivers.
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	Store     StoreConfig     `koanf:"store"     validate:"required"`
	GraphQL   GraphQLConfig   `koanf:"graphql"   validate:"required"`
	Question  QuestionConfig  `koanf:"question"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// AuthConfig contains gateway header authentication settings for /graphql.
type AuthConfig struct {
	Enabled       bool   `koanf:"enabled"`
	RequiredRole  string `koanf:"required_role"`
	SubjectHeader string `koanf:"subject_header"`
	RolesHeader   string `koanf:"roles_header"`
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	Driver   string         `koanf:"driver"   validate:"required,oneof=memory postgres"`
	Postgres PostgresConfig `koanf:"postgres"`
}

// PostgresConfig configures the pgx pool and GORM session of the postgres store.
type PostgresConfig struct {
	DSN                string        `koanf:"dsn"                  validate:"required_if=Enabled true"`
	MaxConns           int32         `koanf:"max_conns"            validate:"omitempty,min=1,max=1000"`
	MinConns           int32         `koanf:"min_conns"            validate:"omitempty,min=0"`
	ConnectTimeout     time.Duration `koanf:"connect_timeout"      validate:"omitempty,min=100ms"`
	AutoMigrate        bool          `koanf:"auto_migrate"`
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`

	// Enabled is derived from Store.Driver; it is not read from configuration.
	Enabled bool `koanf:"-"`
}

// GraphQLConfig configures the GraphQL endpoint.
type GraphQLConfig struct {
	Path            string       `koanf:"path"              validate:"required,startswith=/"`
	DefaultPageSize int          `koanf:"default_page_size" validate:"required,min=1"`
	MaxPageSize     int          `koanf:"max_page_size"     validate:"required,min=1,gtefield=DefaultPageSize"`
	Loader          LoaderConfig `koanf:"loader"`
}

// LoaderConfig tunes the per-request batching loader.
type LoaderConfig struct {
	Wait          time.Duration `koanf:"wait"           validate:"min=0"`
	BatchCapacity int           `koanf:"batch_capacity" validate:"required,min=1"`
}

// QuestionConfig holds content rules for multiple-choice questions.
type QuestionConfig struct {
	CorrectAnswerRule string `koanf:"correct_answer_rule" validate:"omitempty,oneof=none label statement"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "question-bank",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "30s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "question-bank",
		"telemetry.sampling_rate": 1.0,

		"auth.enabled":        false,
		"auth.required_role":  "",
		"auth.subject_header": "X-User-ID",
		"auth.roles_header":   "X-User-Roles",

		"store.driver":                        StoreDriverMemory,
		"store.postgres.dsn":                  "",
		"store.postgres.max_conns":            DefaultPostgresMaxConns,
		"store.postgres.min_conns":            0,
		"store.postgres.connect_timeout":      "5s",
		"store.postgres.auto_migrate":         false,
		"store.postgres.slow_query_threshold": "200ms",

		"graphql.path":                  "/graphql",
		"graphql.default_page_size":     DefaultPageSize,
		"graphql.max_page_size":         DefaultMaxPageSize,
		"graphql.loader.wait":           "1ms",
		"graphql.loader.batch_capacity": DefaultLoaderBatchCapacity,

		"question.correct_answer_rule": "none",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		err := loadFileIfExists(k, fmt.Sprintf("configs/%s.yaml", profile))
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// APP_STORE_DRIVER -> store.driver
	err = k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "APP_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.Store.Postgres.Enabled = cfg.Store.Driver == StoreDriverPostgres

	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
