package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// mapLookup returns a LookupFunc over a fixed set of values.
func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Snapshot.DetailFile != "validator.tsv" {
		t.Errorf("Snapshot.DetailFile = %q, want validator.tsv", cfg.Snapshot.DetailFile)
	}
	if cfg.Snapshot.SummaryFile != "validator_summary.tsv" {
		t.Errorf("Snapshot.SummaryFile = %q, want validator_summary.tsv", cfg.Snapshot.SummaryFile)
	}
	if cfg.Validation.MaxConcurrent != 12 {
		t.Errorf("Validation.MaxConcurrent = %d, want 12", cfg.Validation.MaxConcurrent)
	}
	if cfg.Validation.MaxLineBytes != 1048576 {
		t.Errorf("Validation.MaxLineBytes = %d, want 1048576", cfg.Validation.MaxLineBytes)
	}
	if cfg.Server.MaxConcurrentRuns != 2 {
		t.Errorf("Server.MaxConcurrentRuns = %d, want 2", cfg.Server.MaxConcurrentRuns)
	}
	if cfg.Snapshot.BaseDir != "" {
		t.Errorf("Snapshot.BaseDir = %q, want empty", cfg.Snapshot.BaseDir)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(map[string]string{
		"SNAPSHOT_DIR":              "/data/bwarm",
		"AVS_DIR":                   "/data/avs",
		"SERVER_PORT":               "9090",
		"VALIDATION_MAX_CONCURRENT": "4",
		"LOG_LEVEL":                 "debug",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Snapshot.BaseDir != "/data/bwarm" {
		t.Errorf("Snapshot.BaseDir = %q", cfg.Snapshot.BaseDir)
	}
	if cfg.Snapshot.VocabularyDir != "/data/avs" {
		t.Errorf("Snapshot.VocabularyDir = %q", cfg.Snapshot.VocabularyDir)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Validation.MaxConcurrent != 4 {
		t.Errorf("Validation.MaxConcurrent = %d, want 4", cfg.Validation.MaxConcurrent)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SNAPSHOT_DIR", "/env/snapshots")
	t.Setenv("SERVER_RUN_WAIT_TIME", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Snapshot.BaseDir != "/env/snapshots" {
		t.Errorf("Snapshot.BaseDir = %q", cfg.Snapshot.BaseDir)
	}
	if cfg.Server.RunWaitTime != 5*time.Second {
		t.Errorf("Server.RunWaitTime = %v, want 5s", cfg.Server.RunWaitTime)
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(map[string]string{"BWARM_SNAPSHOT_DIR": "/alt"}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Snapshot.BaseDir != "/alt" {
		t.Errorf("Snapshot.BaseDir = %q, want /alt", cfg.Snapshot.BaseDir)
	}
}

func TestLoad_Duration(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(map[string]string{
		"SERVER_READ_TIMEOUT":     "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "1m",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != time.Minute {
		t.Errorf("Server.ShutdownTimeout = %v, want 1m", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	_, err := LoadFrom(mapLookup(map[string]string{"SERVER_PORT": "eighty"}))
	if err == nil || !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("LoadFrom() error = %v, want mention of SERVER_PORT", err)
	}
}

func TestLoadStruct_ListsAndErrors(t *testing.T) {
	var target struct {
		Hosts   []string      `env:"HOSTS"`
		Retries int           `env:"RETRIES" default:"3"`
		Wait    time.Duration `env:"WAIT"`
		Debug   bool          `env:"DEBUG" envAlt:"APP_DEBUG"`
	}

	err := loadStruct(reflect.ValueOf(&target).Elem(), mapLookup(map[string]string{
		"HOSTS":     " a, b ,,c ",
		"APP_DEBUG": "true",
	}))
	if err != nil {
		t.Fatalf("loadStruct() error = %v", err)
	}
	if !reflect.DeepEqual(target.Hosts, []string{"a", "b", "c"}) {
		t.Errorf("Hosts = %q, want [a b c]", target.Hosts)
	}
	if target.Retries != 3 || !target.Debug {
		t.Errorf("Retries = %d, Debug = %t; want 3, true", target.Retries, target.Debug)
	}

	err = loadStruct(reflect.ValueOf(&target).Elem(), mapLookup(map[string]string{
		"RETRIES": "many",
		"WAIT":    "soon",
	}))
	if err == nil {
		t.Fatal("loadStruct() error = nil, want errors for RETRIES and WAIT")
	}
	for _, key := range []string{"RETRIES", "WAIT"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q lacks %s", err, key)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"invalid port", map[string]string{"SERVER_PORT": "70000"}, "SERVER_PORT"},
		{"zero concurrency", map[string]string{"VALIDATION_MAX_CONCURRENT": "0"}, "VALIDATION_MAX_CONCURRENT"},
		{"tiny line limit", map[string]string{"VALIDATION_MAX_LINE_BYTES": "10"}, "VALIDATION_MAX_LINE_BYTES"},
		{"detail file with path", map[string]string{"VALIDATOR_DETAIL_FILE": "../x.tsv"}, "VALIDATOR_DETAIL_FILE"},
		{"same output names", map[string]string{"VALIDATOR_DETAIL_FILE": "out.tsv", "VALIDATOR_SUMMARY_FILE": "out.tsv"}, "must differ"},
		{"invalid log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"invalid log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"zero runs", map[string]string{"SERVER_MAX_CONCURRENT_RUNS": "0"}, "SERVER_MAX_CONCURRENT_RUNS"},
		{"api key required without keys", map[string]string{"REQUIRE_API_KEY": "true"}, "API_KEYS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(mapLookup(tt.env))
			if err == nil {
				t.Fatal("LoadFrom() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	_, err := LoadFrom(mapLookup(map[string]string{"SERVER_PORT": "0", "LOG_FORMAT": "xml"}))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"SERVER_PORT", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9000, ":9000"},
		{"localhost", 80, "localhost:80"},
	}
	for _, tt := range tests {
		c := ServerConfig{Host: tt.host, Port: tt.port}
		if got := c.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	cfg, _ := LoadFrom(mapLookup(map[string]string{"SNAPSHOT_DIR": "/data"}))
	s := cfg.String()
	if !strings.Contains(s, `BaseDir: "/data"`) {
		t.Errorf("String() = %q, want BaseDir", s)
	}
}

func TestLoad_SecurityAndProxies(t *testing.T) {
	cfg, err := LoadFrom(mapLookup(map[string]string{
		"REQUIRE_API_KEY":        "true",
		"API_KEYS":               "k1, k2,",
		"SERVER_TRUSTED_PROXIES": "10.0.0.0/8",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if !cfg.Security.RequireAPIKey {
		t.Error("RequireAPIKey = false, want true")
	}
	if !reflect.DeepEqual(cfg.Security.APIKeys, []string{"k1", "k2"}) {
		t.Errorf("APIKeys = %q, want [k1 k2]", cfg.Security.APIKeys)
	}
	if !reflect.DeepEqual(cfg.Server.TrustedProxies, []string{"10.0.0.0/8"}) {
		t.Errorf("TrustedProxies = %q", cfg.Server.TrustedProxies)
	}
	if strings.Contains(cfg.String(), "k1") {
		t.Error("String() leaks API keys")
	}
}
