// Package config provides centralized configuration management for the validator.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables; command line
// flags override them.
type Config struct {
	Snapshot   SnapshotConfig
	Validation ValidationConfig
	Server     ServerConfig
	Security   SecurityConfig
	Logging    LoggingConfig
}

// SnapshotConfig locates input snapshots, vocabularies and output logs.
type SnapshotConfig struct {
	// BaseDir contains one directory per snapshot
	BaseDir string `env:"SNAPSHOT_DIR" envAlt:"BWARM_SNAPSHOT_DIR"`

	// VocabularyDir holds the six AVS token lists; empty uses the built-in lists
	VocabularyDir string `env:"AVS_DIR"`

	// OutputDir receives <snapshot>/<log files>; empty writes into the snapshot directory
	OutputDir string `env:"VALIDATOR_OUTPUT_DIR"`

	// DetailFile is the per-error log file name (default: validator.tsv)
	DetailFile string `env:"VALIDATOR_DETAIL_FILE" default:"validator.tsv"`

	// SummaryFile is the recurring-message log file name (default: validator_summary.tsv)
	SummaryFile string `env:"VALIDATOR_SUMMARY_FILE" default:"validator_summary.tsv"`
}

// ValidationConfig tunes a single validation run.
type ValidationConfig struct {
	// MaxConcurrent is the number of entity files validated in parallel (default: 12)
	MaxConcurrent int `env:"VALIDATION_MAX_CONCURRENT" default:"12"`

	// MaxLineBytes is the longest accepted input line (default: 1MiB)
	MaxLineBytes int `env:"VALIDATION_MAX_LINE_BYTES" default:"1048576"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout bounds a response, including a synchronous validation run (default: 10m)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"10m"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// MaxConcurrentRuns bounds validation runs started over HTTP (default: 2)
	MaxConcurrentRuns int `env:"SERVER_MAX_CONCURRENT_RUNS" default:"2"`

	// RunWaitTime is how long a request waits for a run slot (default: 30s)
	RunWaitTime time.Duration `env:"SERVER_RUN_WAIT_TIME" default:"30s"`

	// TrustedProxies is a comma-separated list of proxy CIDRs whose
	// X-Real-IP / X-Forwarded-For headers are believed
	TrustedProxies []string `env:"SERVER_TRUSTED_PROXIES"`
}

// SecurityConfig guards the endpoints that start validation runs.
type SecurityConfig struct {
	// RequireAPIKey enables X-API-Key checks on run endpoints (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted keys
	APIKeys []string `env:"API_KEYS"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
