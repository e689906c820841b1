package core

// runner.go drives one validation run over a snapshot.
//
// A run starts one task per entity. Each task opens its own file, streams it
// line by line through the entity's RecordValidator and reports every error
// to the shared Sink. Tasks are independent: a task that cannot read its file
// reports that as a detail row and ends, the others carry on. A task that
// panics does the same. Only a sink failure or cancellation ends the whole
// run, and then the summary log is left without a header so readers see
// ErrSummaryIncomplete.
//
// Once every task has finished the summary is flushed and the sink closed.
// At most one run per output location is in flight at a time.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/bwarm/internal/schema"
	"github.com/JonMunkholm/bwarm/internal/vocab"
)

// Default output file names.
const (
	DefaultDetailFile  = "validator.tsv"
	DefaultSummaryFile = "validator_summary.tsv"
)

// RunnerConfig holds the settings of a Runner.
type RunnerConfig struct {
	// BaseDir contains one directory per snapshot.
	BaseDir string

	// OutputDir, if set, receives <OutputDir>/<snapshot>/<DetailFile> and
	// <SummaryFile>. Otherwise the logs are written into the snapshot
	// directory itself.
	OutputDir string

	DetailFile  string
	SummaryFile string

	// MaxConcurrent bounds the entity tasks running at once (default: one
	// per entity).
	MaxConcurrent int

	// MaxLineBytes bounds a single input line.
	MaxLineBytes int
}

// ErrRunInProgress is returned by Run when another run is writing the same
// logs.
var ErrRunInProgress = errors.New("validation already running")

// Runner validates snapshots. It is safe for concurrent use; each Run owns
// its own sink.
type Runner struct {
	cfg     RunnerConfig
	catalog *vocab.Catalog
	logger  *slog.Logger

	active sync.Map // detail log path -> run id
}

// NewRunner creates a runner. catalog must not be modified afterwards.
func NewRunner(cfg RunnerConfig, catalog *vocab.Catalog, logger *slog.Logger) *Runner {
	if cfg.DetailFile == "" {
		cfg.DetailFile = DefaultDetailFile
	}
	if cfg.SummaryFile == "" {
		cfg.SummaryFile = DefaultSummaryFile
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = schema.Count()
	}
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = DefaultMaxLineBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, catalog: catalog, logger: logger}
}

// Config returns the effective configuration.
func (r *Runner) Config() RunnerConfig {
	return r.cfg
}

// OutputPaths returns where the detail and summary logs of snapshot go.
func (r *Runner) OutputPaths(snapshot string) (detail, summary string) {
	dir := filepath.Join(r.cfg.BaseDir, snapshot)
	if r.cfg.OutputDir != "" {
		dir = filepath.Join(r.cfg.OutputDir, snapshot)
	}
	return filepath.Join(dir, r.cfg.DetailFile), filepath.Join(dir, r.cfg.SummaryFile)
}

// Running reports whether a run of snapshot is in flight.
func (r *Runner) Running(snapshot string) bool {
	detail, _ := r.OutputPaths(snapshot)
	_, ok := r.active.Load(detail)
	return ok
}

// Snapshots lists the snapshots under BaseDir. HasSummary reflects the
// summary log at OutputPaths, wherever OutputDir puts it, and is false while
// a run of the snapshot is in flight.
func (r *Runner) Snapshots() ([]SnapshotInfo, error) {
	infos, err := ListSnapshots(r.cfg.BaseDir, r.cfg.SummaryFile)
	if err != nil {
		return nil, err
	}
	for i := range infos {
		if r.cfg.OutputDir != "" {
			_, summary := r.OutputPaths(infos[i].ID)
			infos[i].HasSummary = SummaryWritten(summary)
		}
		if r.Running(infos[i].ID) {
			infos[i].HasSummary = false
		}
	}
	return infos, nil
}

// Run validates every entity file of snapshot and writes both logs.
//
// The returned error is non-nil only if the logs could not be written, the
// run was cancelled or another run of snapshot holds the logs
// (ErrRunInProgress). Data problems, unreadable entity files and panicking
// tasks are reported in the logs and the RunReport.
func (r *Runner) Run(ctx context.Context, snapshot string) (*RunReport, error) {
	dir, err := SnapshotDir(r.cfg.BaseDir, snapshot)
	if err != nil {
		return nil, err
	}

	runID := RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
		ctx = ContextWithRunID(ctx, runID)
	}
	log := r.logger.With("run_id", runID, "snapshot", snapshot)

	detailPath, summaryPath := r.OutputPaths(snapshot)
	if owner, busy := r.active.LoadOrStore(detailPath, runID); busy {
		log.Warn("validation already running", "owner", owner)
		return nil, fmt.Errorf("%w: %s", ErrRunInProgress, snapshot)
	}
	defer r.active.Delete(detailPath)

	if err := os.MkdirAll(filepath.Dir(detailPath), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	sink, err := OpenSink(detailPath, summaryPath)
	if err != nil {
		return nil, fmt.Errorf("open error sink: %w", err)
	}

	report := &RunReport{
		RunID:       runID,
		Snapshot:    snapshot,
		StartedAt:   time.Now(),
		DetailPath:  detailPath,
		SummaryPath: summaryPath,
	}
	log.Info("validation started", "dir", dir, "tasks", schema.Count())

	schemas := schema.All()
	reports := make([]EntityReport, len(schemas))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.MaxConcurrent)

	for i, s := range schemas {
		i, s := i, s
		reports[i] = EntityReport{Entity: s.Entity.String(), File: s.Entity.FileName()}
		g.Go(func() error {
			return r.runEntity(gctx, log, snapshot, dir, s.Entity, sink, &reports[i])
		})
	}

	taskErr := g.Wait()

	if taskErr == nil {
		taskErr = sink.FlushSummary()
	}
	closeErr := sink.Close()

	report.Duration = time.Since(report.StartedAt)
	report.Entities = reports
	report.Summary = sink.Summary()

	if taskErr != nil {
		log.Error("validation aborted", "error", taskErr)
		return report, fmt.Errorf("validate snapshot %s: %w", snapshot, taskErr)
	}
	if closeErr != nil {
		log.Error("closing error logs failed", "error", closeErr)
		return report, fmt.Errorf("validate snapshot %s: %w", snapshot, closeErr)
	}

	log.Info("validation finished",
		"errors", report.TotalErrors(),
		"distinct_messages", len(report.Summary),
		"duration", report.Duration,
	)
	return report, nil
}

// runEntity validates one entity file. A panic is written to the detail log
// as a row for the line being checked and ends only this entity.
func (r *Runner) runEntity(ctx context.Context, log *slog.Logger, snapshot, dir string, e schema.Entity, sink ErrorSink, rep *EntityReport) (err error) {
	log = log.With("entity", e.Key())
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		log.Error("panic in entity task", "line", rep.Lines, "panic", p, "stack", string(debug.Stack()))
		rep.Abandoned = fmt.Sprint(p)
		rep.Errors++
		err = Report(sink, ValidationError{
			Snapshot: snapshot,
			Entity:   e,
			Line:     rep.Lines,
			Message:  FileAbandonedMessage(p),
		})
	}()
	return r.validateEntity(ctx, log, snapshot, dir, e, sink, rep)
}

// validateEntity streams one entity file into the sink, counting into rep.
// Only sink failures and cancellation are returned as errors.
func (r *Runner) validateEntity(ctx context.Context, log *slog.Logger, snapshot, dir string, e schema.Entity, sink ErrorSink, rep *EntityReport) error {
	v, err := NewRecordValidator(e, r.catalog)
	if err != nil {
		return err
	}

	unreadable := func(line int, cause error) error {
		log.Warn("entity file could not be read", "line", line, "error", cause)
		rep.ReadError = cause.Error()
		rep.Errors++
		return Report(sink, ValidationError{
			Snapshot: snapshot,
			Entity:   e,
			Line:     line,
			Message:  FileUnreadableMessage(cause),
		})
	}

	path := filepath.Join(dir, e.FileName())
	f, err := os.Open(path)
	if err != nil {
		return unreadable(0, err)
	}
	defer f.Close()

	var size int64
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}

	lr := NewLineReader(f, size, r.cfg.MaxLineBytes)
	for lr.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		rep.Lines++

		outcome := v.Validate(Record{
			Snapshot: snapshot,
			Entity:   e,
			Line:     lr.Line(),
			Fields:   lr.Fields(),
		})
		if outcome.Valid {
			continue
		}
		rep.Invalid++
		for _, ve := range outcome.Errors {
			if err := Report(sink, ve); err != nil {
				return err
			}
			rep.Errors++
		}
	}
	if err := lr.Err(); err != nil {
		return unreadable(lr.Line()+1, fmt.Errorf("%s: %w", path, err))
	}

	log.Debug("entity validated",
		"lines", rep.Lines,
		"invalid", rep.Invalid,
		"errors", rep.Errors,
		"bytes", lr.BytesRead(),
	)
	return nil
}
