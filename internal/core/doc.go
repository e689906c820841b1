// Package core validates BWARM snapshots.
//
// This package holds the validation engine independent of any transport. It
// is used by the command line, the HTTP handlers and tests without
// modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Field checks: pure predicates per field kind (boolean, number,
//     duration, date, controlled vocabulary), see [CheckValue].
//   - Record validation: [RecordValidator] checks one record against its
//     entity schema and cross-field [Rule]s.
//   - Error sink: [Sink] serialises detail rows and recurrence counts from
//     all tasks of a run.
//   - Runs: [Runner] validates the twelve entity files of a snapshot
//     concurrently and returns a [RunReport].
//
// # Running a Validation
//
//	catalog, _ := vocab.Default()
//	r := core.NewRunner(core.RunnerConfig{BaseDir: "/data/bwarm"}, catalog, slog.Default())
//	report, err := r.Run(ctx, "2024-05-01")
//
// The run writes <snapshot>/validator.tsv with one row per error and
// <snapshot>/validator_summary.tsv with one row per distinct
// (snapshot, file, message) and its count.
//
// # Error Handling
//
// Problems in the data never surface as Go errors: they become log rows.
// Errors returned by [Runner.Run] mean the logs themselves could not be
// produced. Technical errors are mapped to user-friendly messages using
// [MapError]:
//
//   - SNAP001-SNAP003: Snapshot and entity lookups
//   - RUN001-RUN004: Run admission, cancellation, missing summaries
//   - SINK001-SINK002: Error log output
//   - VOC001: Controlled vocabularies
package core
