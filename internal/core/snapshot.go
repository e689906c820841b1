package core

// snapshot.go locates snapshot directories under a base directory.
//
// A snapshot is a directory holding the twelve entity files side by side:
//
//	<base>/<snapshot>/works.tsv
//	<base>/<snapshot>/parties.tsv
//	...
//
// Snapshot ids arrive from the command line and from URL paths, so they are
// checked to name exactly one directory directly below the base.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/JonMunkholm/bwarm/internal/schema"
)

var (
	// ErrInvalidSnapshotID is returned for ids that are empty or would
	// escape the base directory.
	ErrInvalidSnapshotID = errors.New("invalid snapshot id")

	// ErrSnapshotNotFound is returned when the snapshot directory does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// SnapshotInfo describes one snapshot directory.
type SnapshotInfo struct {
	ID         string `json:"id"`
	Path       string `json:"path"`
	Files      int    `json:"files"`      // entity files present
	HasSummary bool   `json:"hasSummary"` // a finished run left a summary log
}

// ValidateSnapshotID rejects ids that do not name a single path element.
func ValidateSnapshotID(id string) error {
	switch {
	case id == "", id == ".", id == "..":
		return fmt.Errorf("%w: %q", ErrInvalidSnapshotID, id)
	case strings.ContainsAny(id, `/\`), strings.Contains(id, ".."):
		return fmt.Errorf("%w: %q", ErrInvalidSnapshotID, id)
	}
	return nil
}

// SnapshotDir returns the directory of snapshot id under base and checks that
// it exists.
func SnapshotDir(base, id string) (string, error) {
	if err := ValidateSnapshotID(id); err != nil {
		return "", err
	}
	dir := filepath.Join(base, id)
	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		}
		return "", fmt.Errorf("stat snapshot %s: %w", id, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrSnapshotNotFound, id)
	}
	return dir, nil
}

// ListSnapshots returns the snapshot directories directly below base, sorted
// by id. summaryName is the summary log file name to look for.
func ListSnapshots(base, summaryName string) ([]SnapshotInfo, error) {
	dirents, err := godirwalk.ReadDirents(base, nil)
	if err != nil {
		return nil, fmt.Errorf("read snapshot base %s: %w", base, err)
	}

	var out []SnapshotInfo
	for _, de := range dirents {
		path := filepath.Join(base, de.Name())
		if !de.IsDir() {
			if !de.IsSymlink() {
				continue
			}
			if fi, err := os.Stat(path); err != nil || !fi.IsDir() {
				continue
			}
		}
		if strings.HasPrefix(de.Name(), ".") {
			continue
		}

		info, err := describeSnapshot(de.Name(), path, summaryName)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func describeSnapshot(id, dir, summaryName string) (SnapshotInfo, error) {
	names, err := godirwalk.ReadDirnames(dir, nil)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("read snapshot %s: %w", id, err)
	}

	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	info := SnapshotInfo{ID: id, Path: dir}
	if present[summaryName] {
		info.HasSummary = SummaryWritten(filepath.Join(dir, summaryName))
	}
	for _, s := range schema.All() {
		if present[s.Entity.FileName()] {
			info.Files++
		}
	}
	return info, nil
}
