package community

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// CSVStore keeps community records in a single CSV file, the local
// equivalent of the shared spreadsheet the results feed into. The file is
// created with a header row on first use; on every access the header is
// reconciled against the expected column set and rewritten when it drifts,
// without touching data rows.
type CSVStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVStore creates a store backed by the CSV file at path. The file and
// its parent directory are created lazily on first access.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Append writes one record as a CSV row, initializing the file and healing
// the header first.
func (s *CSVStore) Append(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	header, rows, err := s.reconcile()
	if err != nil {
		return err
	}

	row := make([]string, len(header))
	values := map[string]string{
		ColTimestamp:  rec.Timestamp.UTC().Format(time.RFC3339),
		ColTotal:      formatCell(rec.Total),
		ColDevices:    formatCell(rec.Devices),
		ColActivities: formatCell(rec.Activities),
		ColAITools:    formatCell(rec.AITools),
	}
	for i, col := range header {
		row[i] = values[col]
	}

	rows = append(rows, row)
	return s.write(header, rows)
}

// Records reads every stored row, healing the header first. Cells that do
// not parse as numbers become NaN so statistics can exclude them.
func (s *CSVStore) Records(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	header, rows, err := s.reconcile()
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	for i, col := range header {
		index[col] = i
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{
			Total:      parseCell(row, index, ColTotal),
			Devices:    parseCell(row, index, ColDevices),
			Activities: parseCell(row, index, ColActivities),
			AITools:    parseCell(row, index, ColAITools),
		}
		if i, ok := index[ColTimestamp]; ok && i < len(row) {
			if ts, err := time.Parse(time.RFC3339, row[i]); err == nil {
				rec.Timestamp = ts
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// reconcile loads the file, ensures the header row matches the expected
// column set, and rewrites the file when it does not. A first row that
// looks like data (numeric second cell) is kept and the header inserted
// above it; a mismatched header row is replaced. Data rows are never
// dropped. Returns the effective header and the data rows.
func (s *CSVStore) reconcile() ([]string, [][]string, error) {
	raw, err := s.readAll()
	if err != nil {
		return nil, nil, err
	}

	if len(raw) == 0 {
		if err := s.write(Columns, nil); err != nil {
			return nil, nil, err
		}
		return Columns, nil, nil
	}

	first := raw[0]
	if looksLikeData(first) {
		// Header row missing entirely; insert it above the existing rows.
		if err := s.write(Columns, raw); err != nil {
			return nil, nil, err
		}
		return Columns, raw, nil
	}

	if !sameColumnSet(first, Columns) {
		rows := raw[1:]
		if err := s.write(Columns, rows); err != nil {
			return nil, nil, err
		}
		return Columns, rows, nil
	}

	return first, raw[1:], nil
}

func (s *CSVStore) readAll() ([][]string, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open community store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read community store: %w", err)
	}
	return rows, nil
}

func (s *CSVStore) write(header []string, rows [][]string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create community store dir: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("write community store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write community store header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write community store rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush community store: %w", err)
	}
	return f.Close()
}

// looksLikeData reports whether a first row is a data row rather than a
// header: any cell past the timestamp that parses as a number marks it as
// data.
func looksLikeData(row []string) bool {
	if len(row) < 2 {
		return false
	}
	for _, cell := range row[1:] {
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			return true
		}
	}
	return false
}

func sameColumnSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, col := range a {
		set[col] = struct{}{}
	}
	for _, col := range b {
		if _, ok := set[col]; !ok {
			return false
		}
	}
	return true
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseCell returns the named column's value, or NaN when the column is
// missing from the row or the cell is not numeric.
func parseCell(row []string, index map[string]int, col string) float64 {
	i, ok := index[col]
	if !ok || i >= len(row) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(row[i], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
