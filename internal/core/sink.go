package core

// sink.go provides the shared destination for validation errors.
//
// One Sink is shared by every entity task of a run. Detail rows and
// recurrence counts are guarded by a single mutex, so a row is always written
// whole and no count is lost. Within one task, rows appear in the order the
// task appended them.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Output file headers.
const (
	DetailHeader  = "Snapshot\tFile\tRecord Id\tLine Number\tError Message"
	SummaryHeader = "Snapshot\tFile\tRecord Id\tError Message\tCount"
)

var (
	// ErrSinkClosed is returned by writes after Close.
	ErrSinkClosed = errors.New("error sink closed")

	// ErrSummaryIncomplete is returned by ReadSummary for a summary log
	// whose run is still going or ended before FlushSummary.
	ErrSummaryIncomplete = errors.New("summary log incomplete")
)

// ErrorSink is the reporting destination used by entity tasks.
type ErrorSink interface {
	AppendDetail(e ValidationError) error
	RecordRecurrence(key RecurringMessageKey)
}

// Sink writes the detail log as errors arrive and keeps recurrence counts in
// memory until FlushSummary.
type Sink struct {
	mu      sync.Mutex
	detail  *bufio.Writer
	summary io.Writer
	closers []io.Closer
	counts  map[RecurringMessageKey]int
	err     error // first write failure; sticky
	flushed bool
	closed  bool
}

// NewSink creates a sink over the given writers and writes the detail header.
// The caller owns the writers.
func NewSink(detail, summary io.Writer) (*Sink, error) {
	s := &Sink{
		detail:  bufio.NewWriter(detail),
		summary: summary,
		counts:  make(map[RecurringMessageKey]int),
	}
	if _, err := s.detail.WriteString(DetailHeader + "\n"); err != nil {
		return nil, fmt.Errorf("write detail header: %w", err)
	}
	return s, nil
}

// OpenSink creates (or truncates) the detail and summary files and returns a
// sink writing to them. Close releases both files.
func OpenSink(detailPath, summaryPath string) (*Sink, error) {
	df, err := os.Create(detailPath)
	if err != nil {
		return nil, fmt.Errorf("create detail log: %w", err)
	}
	sf, err := os.Create(summaryPath)
	if err != nil {
		df.Close()
		return nil, fmt.Errorf("create summary log: %w", err)
	}

	s, err := NewSink(df, sf)
	if err != nil {
		df.Close()
		sf.Close()
		return nil, err
	}
	s.closers = []io.Closer{df, sf}
	return s, nil
}

// AppendDetail writes one detail row. Once a write has failed every later call
// returns that same error.
func (s *Sink) AppendDetail(e ValidationError) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}
	if s.err != nil {
		return s.err
	}

	row := joinRow(e.Snapshot, e.Entity.Key(), e.RecordID, strconv.Itoa(e.Line), e.Message)
	if _, err := s.detail.WriteString(row); err != nil {
		s.err = fmt.Errorf("write detail row: %w", err)
		return s.err
	}
	return nil
}

// RecordRecurrence increments the count for key.
func (s *Sink) RecordRecurrence(key RecurringMessageKey) {
	s.mu.Lock()
	s.counts[key]++
	s.mu.Unlock()
}

// Report appends e to the detail log of s and counts its recurrence.
func Report(s ErrorSink, e ValidationError) error {
	if err := s.AppendDetail(e); err != nil {
		return err
	}
	s.RecordRecurrence(e.Key())
	return nil
}

// Summary returns one row per distinct recurrence key, sorted by snapshot,
// file and message.
func (s *Sink) Summary() []SummaryRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

func (s *Sink) summaryLocked() []SummaryRow {
	rows := make([]SummaryRow, 0, len(s.counts))
	for k, n := range s.counts {
		rows = append(rows, SummaryRow{
			Snapshot: k.Snapshot,
			File:     k.Entity.Key(),
			Message:  k.Message,
			Count:    n,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Snapshot != b.Snapshot {
			return a.Snapshot < b.Snapshot
		}
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Message < b.Message
	})
	return rows
}

// FlushSummary writes the summary log. It may be called once; later calls
// are no-ops.
func (s *Sink) FlushSummary() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}
	if s.err != nil {
		return s.err
	}
	if s.flushed {
		return nil
	}

	w := bufio.NewWriter(s.summary)
	w.WriteString(SummaryHeader + "\n")
	for _, r := range s.summaryLocked() {
		w.WriteString(joinRow(r.Snapshot, r.File, "", r.Message, strconv.Itoa(r.Count)))
	}
	if err := w.Flush(); err != nil {
		s.err = fmt.Errorf("write summary log: %w", err)
		return s.err
	}
	s.flushed = true
	return nil
}

// Close flushes buffered detail rows and closes any files opened by
// OpenSink. It returns the first error seen during the sink's lifetime.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.err
	}
	s.closed = true

	if err := s.detail.Flush(); err != nil && s.err == nil {
		s.err = fmt.Errorf("flush detail log: %w", err)
	}
	for _, c := range s.closers {
		if err := c.Close(); err != nil && s.err == nil {
			s.err = fmt.Errorf("close log: %w", err)
		}
	}
	return s.err
}

// SummaryWritten reports whether the summary log at path holds at least a
// header, that is whether the run that created it got to FlushSummary.
func SummaryWritten(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular() && fi.Size() >= int64(len(SummaryHeader))
}

// ReadSummary parses a summary log written by FlushSummary. A log without a
// header line belongs to a run that has not flushed it and yields
// ErrSummaryIncomplete.
func ReadSummary(path string) ([]SummaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open summary log: %w", err)
	}
	defer f.Close()

	var rows []SummaryRow
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			if sc.Text() != SummaryHeader {
				return nil, fmt.Errorf("summary log %s: unexpected header %q", path, sc.Text())
			}
			continue
		}
		cols := strings.Split(sc.Text(), "\t")
		if len(cols) != 5 {
			return nil, fmt.Errorf("summary log %s line %d: expected 5 columns, found %d", path, line, len(cols))
		}
		n, err := strconv.Atoi(cols[4])
		if err != nil {
			return nil, fmt.Errorf("summary log %s line %d: bad count %q", path, line, cols[4])
		}
		rows = append(rows, SummaryRow{Snapshot: cols[0], File: cols[1], Message: cols[3], Count: n})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read summary log: %w", err)
	}
	if line == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSummaryIncomplete, path)
	}
	return rows, nil
}

var cellReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// joinRow renders a newline-terminated TSV row. Separators inside values are
// replaced so the column count is fixed.
func joinRow(cols ...string) string {
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(cellReplacer.Replace(c))
	}
	b.WriteByte('\n')
	return b.String()
}

