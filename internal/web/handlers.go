package web

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/bwarm/internal/core"
	"github.com/JonMunkholm/bwarm/internal/logging"
	"github.com/JonMunkholm/bwarm/internal/schema"
)

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string                `json:"status"`
	Runs   core.RunLimiterStatus `json:"runs"`
}

// EntityField describes one column of an entity file.
type EntityField struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Mandatory bool   `json:"mandatory"`
}

// EntityInfo describes one entity file layout.
type EntityInfo struct {
	Name   string        `json:"name"`
	File   string        `json:"file"`
	Fields []EntityField `json:"fields"`
}

// SummaryResponse is returned by the summary endpoint.
type SummaryResponse struct {
	Snapshot string            `json:"snapshot"`
	Rows     []core.SummaryRow `json:"rows"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Runs: s.limiter.Status()})
}

func (s *Server) handleListEntities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entityInfos())
}

func entityInfos() []EntityInfo {
	schemas := schema.All()
	out := make([]EntityInfo, 0, len(schemas))
	for _, es := range schemas {
		info := EntityInfo{
			Name:   es.Entity.String(),
			File:   es.Entity.FileName(),
			Fields: make([]EntityField, len(es.Fields)),
		}
		for i, f := range es.Fields {
			info.Fields[i] = EntityField{Name: f.Name, Type: f.Type.String(), Mandatory: f.Mandatory}
		}
		out = append(out, info)
	}
	return out
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	infos, err := s.runner.Snapshots()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if infos == nil {
		infos = []core.SnapshotInfo{}
	}
	writeJSON(w, http.StatusOK, infos)
}

// handleValidate runs a validation synchronously and returns the run report.
// Runs are bounded by the RunLimiter; a request that cannot get a slot
// within the wait time is rejected with 503. A snapshot already being
// validated is rejected with 409.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	snapshot := chi.URLParam(r, "snapshot")

	// Fail fast on bad ids and busy snapshots before queueing for a slot
	if _, err := core.SnapshotDir(s.runner.Config().BaseDir, snapshot); err != nil {
		s.respondError(w, r, err)
		return
	}
	if s.runner.Running(snapshot) {
		s.respondError(w, r, fmt.Errorf("%w: %s", core.ErrRunInProgress, snapshot))
		return
	}

	if err := s.limiter.Acquire(r.Context()); err != nil {
		s.respondError(w, r, err)
		return
	}
	defer s.limiter.Release()

	ctx, runID := withRunID(w, r)
	logging.FromContext(ctx).Info("validation requested", "snapshot", snapshot)

	report, err := s.runner.Run(ctx, snapshot)
	if err != nil {
		s.respondError(w, r, fmt.Errorf("run %s: %w", runID, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snapshot := chi.URLParam(r, "snapshot")

	rows, err := s.readSummary(snapshot)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if rows == nil {
		rows = []core.SummaryRow{}
	}
	writeJSON(w, http.StatusOK, SummaryResponse{Snapshot: snapshot, Rows: rows})
}

// readSummary loads the summary log of the latest run of snapshot.
func (s *Server) readSummary(snapshot string) ([]core.SummaryRow, error) {
	if _, err := core.SnapshotDir(s.runner.Config().BaseDir, snapshot); err != nil {
		return nil, err
	}
	_, path := s.runner.OutputPaths(snapshot)
	return core.ReadSummary(path)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	infos, err := s.runner.Snapshots()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, indexPage(infos))
}

// handleReportPage renders the summary of the latest run. A snapshot that
// has not been validated yet, or whose run has not finished, gets a page
// saying so rather than an error.
func (s *Server) handleReportPage(w http.ResponseWriter, r *http.Request) {
	snapshot := chi.URLParam(r, "snapshot")

	rows, err := s.readSummary(snapshot)
	state := reportReady
	switch {
	case errors.Is(err, core.ErrSnapshotNotFound):
	case errors.Is(err, core.ErrSummaryIncomplete):
		state, err = reportUnfinished, nil
		if s.runner.Running(snapshot) {
			state = reportRunning
		}
	case errors.Is(err, fs.ErrNotExist):
		state, err = reportMissing, nil
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, reportPage(snapshot, state, rows))
}
