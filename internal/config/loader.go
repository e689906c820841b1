package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// LookupFunc resolves a configuration key, reporting whether it is set.
// os.LookupEnv is the usual source.
type LookupFunc func(key string) (string, bool)

// Load reads configuration from environment variables, applies defaults
// and validates the result.
func Load() (*Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads configuration through lookup instead of the process
// environment.
func LoadFrom(lookup LookupFunc) (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), lookup); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// setting is one tagged field: the keys it is read from, in order of
// preference, and the default used when none is set.
type setting struct {
	keys  []string
	def   string
	value reflect.Value
}

// resolve returns the first non-empty value among the keys, then the
// default.
func (s setting) resolve(lookup LookupFunc) (key, value string) {
	for _, k := range s.keys {
		if v, _ := lookup(k); v != "" {
			return k, v
		}
	}
	return s.keys[0], s.def
}

// settings collects the tagged fields of v, descending into section
// structs such as ServerConfig.
func settings(v reflect.Value, out []setting) []setting {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f, fv := t.Field(i), v.Field(i)
		if !fv.CanSet() {
			continue
		}
		if f.Type.Kind() == reflect.Struct {
			out = settings(fv, out)
			continue
		}
		key := f.Tag.Get("env")
		if key == "" {
			continue
		}
		s := setting{keys: []string{key}, def: f.Tag.Get("default"), value: fv}
		if alt := f.Tag.Get("envAlt"); alt != "" {
			s.keys = append(s.keys, alt)
		}
		out = append(out, s)
	}
	return out
}

// loadStruct fills the tagged fields of v from lookup. Every bad value is
// reported, not just the first.
func loadStruct(v reflect.Value, lookup LookupFunc) error {
	var errs []error
	for _, s := range settings(v, nil) {
		key, raw := s.resolve(lookup)
		if raw == "" {
			continue
		}
		if err := decode(s.value, raw); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, raw, err))
		}
	}
	return errors.Join(errs...)
}

// decode parses raw into the field behind v. Lists are comma separated
// with blanks dropped.
func decode(v reflect.Value, raw string) error {
	switch p := v.Addr().Interface().(type) {
	case *string:
		*p = raw
	case *time.Duration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return errors.New("not a duration (use e.g. 30s, 2m)")
		}
		*p = d
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.New("not an integer")
		}
		*p = n
	case *bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("not a boolean")
		}
		*p = b
	case *[]string:
		var list []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
		*p = list
	default:
		return fmt.Errorf("unsupported setting type %s", v.Type())
	}
	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Output validation
	if c.Snapshot.DetailFile == "" || strings.ContainsAny(c.Snapshot.DetailFile, `/\`) {
		errs = append(errs, fmt.Sprintf("VALIDATOR_DETAIL_FILE (%q) must be a plain file name", c.Snapshot.DetailFile))
	}
	if c.Snapshot.SummaryFile == "" || strings.ContainsAny(c.Snapshot.SummaryFile, `/\`) {
		errs = append(errs, fmt.Sprintf("VALIDATOR_SUMMARY_FILE (%q) must be a plain file name", c.Snapshot.SummaryFile))
	}
	if c.Snapshot.DetailFile != "" && c.Snapshot.DetailFile == c.Snapshot.SummaryFile {
		errs = append(errs, "VALIDATOR_DETAIL_FILE and VALIDATOR_SUMMARY_FILE must differ")
	}

	// Validation run settings
	if c.Validation.MaxConcurrent <= 0 {
		errs = append(errs, "VALIDATION_MAX_CONCURRENT must be positive")
	}
	if c.Validation.MaxLineBytes < 1024 {
		errs = append(errs, fmt.Sprintf("VALIDATION_MAX_LINE_BYTES (%d) must be at least 1024", c.Validation.MaxLineBytes))
	}

	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}
	if c.Server.WriteTimeout < 0 {
		errs = append(errs, "SERVER_WRITE_TIMEOUT must be non-negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.MaxConcurrentRuns <= 0 {
		errs = append(errs, "SERVER_MAX_CONCURRENT_RUNS must be positive")
	}
	if c.Server.RunWaitTime <= 0 {
		errs = append(errs, "SERVER_RUN_WAIT_TIME must be positive")
	}

	// Security validation
	if c.Security.RequireAPIKey && len(c.Security.APIKeys) == 0 {
		errs = append(errs, "REQUIRE_API_KEY is set but API_KEYS is empty")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Snapshot: {BaseDir: %q, VocabularyDir: %q, OutputDir: %q}, ",
		c.Snapshot.BaseDir, c.Snapshot.VocabularyDir, c.Snapshot.OutputDir))
	b.WriteString(fmt.Sprintf("Validation: {MaxConcurrent: %d, MaxLineBytes: %d}, ",
		c.Validation.MaxConcurrent, c.Validation.MaxLineBytes))
	b.WriteString(fmt.Sprintf("Server: {Host: %q, Port: %d, MaxConcurrentRuns: %d}, ",
		c.Server.Host, c.Server.Port, c.Server.MaxConcurrentRuns))
	b.WriteString(fmt.Sprintf("Security: {RequireAPIKey: %t, APIKeys: %d}, ",
		c.Security.RequireAPIKey, len(c.Security.APIKeys)))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
