// Package csvsource loads the train and platform tables from CSV files.
// Columns are resolved by header name so the feeds may reorder or extend
// them. Row-level defects are recovered with sentinel values or skipped
// rows; only table-level failures (missing file, unreadable CSV) are
// returned as errors.
package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/railops/sectionctl/core/logger"
)

// Source implements the controller's Loader over two CSV files. The files
// are re-read from scratch on every cycle.
type Source struct {
	cfg Config
	log logger.Logger
}

// New creates a Source. The logger is used for row-defect warnings and may
// be nil.
func New(cfg Config, log logger.Logger) *Source {
	cfg.SetDefaults()
	return &Source{cfg: cfg, log: log}
}

// readTable reads the whole CSV file and returns a header index plus the
// data rows.
func readTable(ctx context.Context, path string) (map[string]int, [][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are handled per field
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return map[string]int{}, nil, nil
	}
	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[normalize(name)] = i
	}
	return header, records[1:], nil
}

// normalize canonicalizes a header name: lower case, trimmed, underscores
// for spaces. "Trip_ID", "trip id" and "trip_id" all resolve the same.
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "_")
}

// field returns the trimmed cell under any of the given header names, or
// false if none is present in this row.
func field(header map[string]int, row []string, names ...string) (string, bool) {
	for _, n := range names {
		idx, ok := header[n]
		if !ok || idx >= len(row) {
			continue
		}
		return strings.TrimSpace(row[idx]), true
	}
	return "", false
}

func (s *Source) warnf(format string, args ...any) {
	if s.log != nil {
		s.log.Warnf(format, args...)
	}
}
