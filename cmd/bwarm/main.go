package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/JonMunkholm/bwarm/internal/config"
	"github.com/JonMunkholm/bwarm/internal/core"
	"github.com/JonMunkholm/bwarm/internal/logging"
	"github.com/JonMunkholm/bwarm/internal/vocab"
)

// usageExitCode is returned when a required argument is missing.
const usageExitCode = 99

var mainOpts = struct {
	baseDir  string
	snapshot string
}{}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("bwarm failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bwarm"
	app.Usage = "Validate BWARM snapshots"
	app.UsageText = "bwarm -d <snapshot directory> -s <snapshot>"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		snapshotsCommand,
		serveCommand,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "snapshot-directory, d",
			Usage:       "directory containing one sub-directory per snapshot (default: $SNAPSHOT_DIR)",
			Destination: &mainOpts.baseDir,
		},
		cli.StringFlag{
			Name:        "snapshot, s",
			Usage:       "snapshot to validate",
			Destination: &mainOpts.snapshot,
		},
	}
	app.Action = validateAction
	return app
}

// setup loads .env and the environment, applies command line overrides and
// configures logging.
func setup() (*config.Config, error) {
	// Load does not override variables already set in the environment.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if mainOpts.baseDir != "" {
		cfg.Snapshot.BaseDir = mainOpts.baseDir
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

// newRunner builds a Runner from cfg, loading vocabularies from AVS_DIR when
// set and the built-in lists otherwise.
func newRunner(cfg *config.Config) (*core.Runner, error) {
	var (
		catalog *vocab.Catalog
		err     error
	)
	if dir := cfg.Snapshot.VocabularyDir; dir != "" {
		catalog, err = vocab.LoadDir(dir)
	} else {
		catalog, err = vocab.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load vocabularies: %w", err)
	}

	return core.NewRunner(core.RunnerConfig{
		BaseDir:       cfg.Snapshot.BaseDir,
		OutputDir:     cfg.Snapshot.OutputDir,
		DetailFile:    cfg.Snapshot.DetailFile,
		SummaryFile:   cfg.Snapshot.SummaryFile,
		MaxConcurrent: cfg.Validation.MaxConcurrent,
		MaxLineBytes:  cfg.Validation.MaxLineBytes,
	}, catalog, slog.Default()), nil
}

// requireBaseDir shows usage and returns exit code 99 when no snapshot
// directory was given.
func requireBaseDir(c *cli.Context, cfg *config.Config) error {
	if cfg.Snapshot.BaseDir != "" {
		return nil
	}
	cli.ShowAppHelp(c)
	return cli.NewExitError("missing snapshot directory (-d)", usageExitCode)
}
