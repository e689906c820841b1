package core

// streaming.go provides the line reader used by entity tasks.
//
// Entity files are read one line at a time without loading them into memory:
//
//   - A leading UTF-8 or UTF-16 byte order mark selects the decoding; files
//     without one are read as UTF-8
//   - Invalid UTF-8 sequences are replaced with U+FFFD
//   - A trailing CR is dropped so CRLF files read like LF files
//   - Each line is split on tabs with trailing empty fields preserved
//
// Use NewLineReader to apply all of these in the correct order.

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMaxLineBytes bounds a single line when no limit is configured.
const DefaultMaxLineBytes = 1 << 20

// FieldSeparator separates columns within a line.
const FieldSeparator = "\t"

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
	Total     int64 // If known (0 if unknown)
}

// NewCountingReader creates a counting reader with optional total size.
func NewCountingReader(r io.Reader, total int64) *CountingReader {
	return &CountingReader{
		reader: r,
		Total:  total,
	}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// Progress returns the read progress as a percentage (0-100).
// Returns 0 if total is unknown.
func (r *CountingReader) Progress() int {
	if r.Total <= 0 {
		return 0
	}
	return int(r.BytesRead * 100 / r.Total)
}

// NewDecodingReader returns a reader yielding UTF-8 text. A byte order mark
// is consumed and selects UTF-8 or UTF-16; without one the input is taken as
// UTF-8.
func NewDecodingReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// SplitFields splits a line on tabs. A line ending in tabs yields trailing
// empty fields; an empty line yields a single empty field.
func SplitFields(line string) []string {
	return strings.Split(line, FieldSeparator)
}

// LineReader streams the lines of one entity file.
//
// Typical use:
//
//	lr := NewLineReader(f, 0, cfg.MaxLineBytes)
//	for lr.Next() {
//	    process(lr.Line(), lr.Fields())
//	}
//	if err := lr.Err(); err != nil { ... }
type LineReader struct {
	counter *CountingReader
	scanner *bufio.Scanner
	line    int
	fields  []string
}

// NewLineReader wraps r with decoding and byte counting. total is the input
// size if known; maxLineBytes <= 0 selects DefaultMaxLineBytes.
func NewLineReader(r io.Reader, total int64, maxLineBytes int) *LineReader {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}

	counter := NewCountingReader(r, total)
	sc := bufio.NewScanner(NewDecodingReader(counter))
	initial := 64 * 1024
	if initial > maxLineBytes {
		initial = maxLineBytes
	}
	sc.Buffer(make([]byte, 0, initial), maxLineBytes)

	return &LineReader{counter: counter, scanner: sc}
}

// Next advances to the next line. It returns false at end of input or on
// error; check Err afterwards.
func (lr *LineReader) Next() bool {
	if !lr.scanner.Scan() {
		return false
	}
	lr.line++
	lr.fields = SplitFields(strings.TrimSuffix(lr.scanner.Text(), "\r"))
	return true
}

// Line returns the 1-based number of the current line.
func (lr *LineReader) Line() int {
	return lr.line
}

// Fields returns the columns of the current line.
func (lr *LineReader) Fields() []string {
	return lr.fields
}

// Err returns the first read error, or nil at a clean end of input.
func (lr *LineReader) Err() error {
	return lr.scanner.Err()
}

// BytesRead returns the number of raw bytes consumed so far.
func (lr *LineReader) BytesRead() int64 {
	return lr.counter.BytesRead
}

// Progress returns the read progress as a percentage, or 0 if the size is
// unknown.
func (lr *LineReader) Progress() int {
	return lr.counter.Progress()
}
