// Package scorefile persists the score table as a delimited text
// table: header row `,id…,Correct`, one labeled row per identity,
// numeric cells. The shape round-trips with files produced by earlier
// versions of this tool.
package scorefile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/benbenti/PhotoID/internal/score"
)

// Save writes the table to path, overwriting any previous file.
func Save(path string, t *score.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write streams the table to w in the score-file shape.
func Write(w io.Writer, t *score.Table) error {
	cw := csv.NewWriter(w)

	header := append([]string{""}, t.Columns()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	for _, row := range t.Identities() {
		record := make([]string, 0, len(header))
		record = append(record, row)
		for _, col := range t.Columns() {
			record = append(record, formatCell(t.Cell(row, col)))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("save scores: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}

// Load reads a previously saved score file. Any structural or numeric
// problem fails the whole load; a half-parsed table is never returned.
func Load(path string) (*score.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load scores %s: %w", path, err)
	}
	return t, nil
}

// Read parses a score table from r.
func Read(r io.Reader) (*score.Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("score file has no data rows")
	}

	header := records[0]
	if len(header) < 2 || header[0] != "" {
		return nil, fmt.Errorf("malformed header: first cell must be empty, then column labels")
	}
	cols := header[1:]

	rows := make([]string, 0, len(records)-1)
	values := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", i+1, len(header), len(record))
		}
		rows = append(rows, record[0])
		cells := make([]float64, 0, len(cols))
		for j, raw := range record[1:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("row %q, column %q: %w", record[0], cols[j], err)
			}
			cells = append(cells, v)
		}
		values = append(values, cells)
	}
	return score.FromMatrix(rows, cols, values)
}

// formatCell prints counts as integers when they are whole, matching
// the files this tool has historically written.
func formatCell(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
