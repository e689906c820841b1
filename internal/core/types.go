// Package core provides the BWARM snapshot validation engine.
// This package has no UI dependencies and can be used by any frontend.
package core

import (
	"fmt"
	"time"

	"github.com/JonMunkholm/bwarm/internal/schema"
)

// Record is one parsed line of one entity file.
type Record struct {
	Snapshot string
	Entity   schema.Entity
	Line     int      // 1-based line number within the file
	Fields   []string // raw tab-separated values, trailing empties preserved
}

// ID returns the record identifier, which is always the first column.
func (r Record) ID() string {
	if len(r.Fields) == 0 {
		return ""
	}
	return r.Fields[0]
}

// ValidationError is a single problem found in a record. It is written once
// to the sink and never modified.
type ValidationError struct {
	Snapshot string
	Entity   schema.Entity
	RecordID string
	Line     int
	Message  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Entity.Key(), e.Line, e.Message)
}

// Key returns the recurrence key the error is counted under.
func (e ValidationError) Key() RecurringMessageKey {
	return RecurringMessageKey{Snapshot: e.Snapshot, Entity: e.Entity, Message: e.Message}
}

// ValidationOutcome is the result of validating one record.
type ValidationOutcome struct {
	Valid  bool
	Errors []ValidationError
}

// RecurringMessageKey identifies a class of repeated error within one run.
type RecurringMessageKey struct {
	Snapshot string
	Entity   schema.Entity
	Message  string
}

// SummaryRow is one line of the summary log.
type SummaryRow struct {
	Snapshot string `json:"snapshot"`
	File     string `json:"file"`
	Message  string `json:"message"`
	Count    int    `json:"count"`
}

// EntityReport summarises one entity task of a run.
type EntityReport struct {
	Entity    string `json:"entity"`
	File      string `json:"file"`
	Lines     int    `json:"lines"`
	Invalid   int    `json:"invalid"`
	Errors    int    `json:"errors"`
	ReadError string `json:"readError,omitempty"`
	Abandoned string `json:"abandoned,omitempty"` // set when validation panicked
}

// RunReport is returned by Runner.Run once every entity task has finished.
type RunReport struct {
	RunID       string         `json:"runId"`
	Snapshot    string         `json:"snapshot"`
	StartedAt   time.Time      `json:"startedAt"`
	Duration    time.Duration  `json:"duration"`
	DetailPath  string         `json:"detailPath"`
	SummaryPath string         `json:"summaryPath"`
	Entities    []EntityReport `json:"entities"`
	Summary     []SummaryRow   `json:"summary"`
}

// TotalErrors returns the number of error rows written across all entities.
func (r *RunReport) TotalErrors() int {
	n := 0
	for _, e := range r.Entities {
		n += e.Errors
	}
	return n
}
