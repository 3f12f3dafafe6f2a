// Package score holds the tally table of true identities versus given
// answers, plus the derived "Correct" summary column.
package score

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/benbenti/PhotoID/internal/domain"
)

// CorrectLabel is the header of the summary column, always pinned last.
const CorrectLabel = "Correct"

// Table is a square tally matrix over identities plus one summary
// column. table[row][col] counts how often identity row was shown and
// col was answered; the last column counts correct answers for the row
// and always equals the diagonal cell.
//
// Cells are mutated through RecordAnswer only. Rows and identity
// columns stay sorted ascending at all times.
type Table struct {
	ids   []domain.Identity
	index map[domain.Identity]int
	cells [][]float64 // len(ids) rows, len(ids)+1 columns
}

// New builds a zero-filled table over the given identities. Duplicates
// are collapsed and the identity order is normalized to ascending.
func New(ids []domain.Identity) *Table {
	t := &Table{}
	t.reset(dedupeSorted(ids))
	return t
}

// FromMatrix rebuilds a table from labeled cells, as read from a
// previously saved score file. The column labels must be exactly the
// row labels plus a trailing Correct column, and every cell must be
// non-negative. Identities are re-sorted; cell values are preserved.
func FromMatrix(rows, cols []domain.Identity, values [][]float64) (*Table, error) {
	if len(cols) != len(rows)+1 || cols[len(cols)-1] != CorrectLabel {
		return nil, fmt.Errorf("score table must have one %q column pinned last", CorrectLabel)
	}
	rowSet := make(map[domain.Identity]struct{}, len(rows))
	for _, id := range rows {
		if id == CorrectLabel {
			return nil, fmt.Errorf("%q is reserved and cannot be an identity", CorrectLabel)
		}
		if _, dup := rowSet[id]; dup {
			return nil, fmt.Errorf("duplicate identity %q", id)
		}
		rowSet[id] = struct{}{}
	}
	for _, c := range cols[:len(cols)-1] {
		if _, ok := rowSet[c]; !ok {
			return nil, fmt.Errorf("column %q has no matching row: table is not square", c)
		}
	}
	if len(values) != len(rows) {
		return nil, fmt.Errorf("expected %d rows of cells, got %d", len(rows), len(values))
	}

	t := New(rows)
	for r, rowVals := range values {
		if len(rowVals) != len(cols) {
			return nil, fmt.Errorf("row %q: expected %d cells, got %d", rows[r], len(cols), len(rowVals))
		}
		for c, v := range rowVals {
			if v < 0 {
				return nil, fmt.Errorf("row %q, column %q: negative count %v", rows[r], cols[c], v)
			}
			t.cells[t.index[rows[r]]][t.col(cols[c])] = v
		}
	}
	return t, nil
}

// Merge grows the table so that every given identity is present as both
// a row and a column. Existing counts are preserved, nothing is ever
// removed, and the identity ordering stays ascending with the Correct
// column last. Merging the same set twice is a no-op the second time.
func (t *Table) Merge(ids []domain.Identity) {
	missing := false
	for _, id := range ids {
		if _, ok := t.index[id]; !ok {
			missing = true
			break
		}
	}
	if !missing {
		return
	}

	old := *t
	t.reset(dedupeSorted(append(append([]domain.Identity{}, old.ids...), ids...)))
	for _, row := range old.ids {
		for _, col := range old.ids {
			t.cells[t.index[row]][t.index[col]] = old.cells[old.index[row]][old.index[col]]
		}
		t.cells[t.index[row]][t.correctCol()] = old.cells[old.index[row]][old.correctCol()]
	}
}

// RecordAnswer tallies one answered question. A correct answer is
// detected case-insensitively and bumps both the diagonal cell and the
// Correct column. A wrong answer must spell a known identity exactly to
// be tallied; otherwise the table is left untouched and
// domain.ErrUnknownGuess is returned.
func (t *Table) RecordAnswer(truth domain.Identity, guess string) (correct bool, err error) {
	row, ok := t.index[truth]
	if !ok {
		return false, fmt.Errorf("record answer for %q: %w", truth, domain.ErrUnknownIdentity)
	}
	if strings.EqualFold(guess, truth) {
		t.cells[row][row]++
		t.cells[row][t.correctCol()]++
		return true, nil
	}
	col, ok := t.index[guess]
	if !ok {
		return false, fmt.Errorf("guess %q: %w", guess, domain.ErrUnknownGuess)
	}
	t.cells[row][col]++
	return false, nil
}

// Identities returns the row identities in display order.
func (t *Table) Identities() []domain.Identity {
	return append([]domain.Identity{}, t.ids...)
}

// Columns returns the column labels in display order, Correct last.
func (t *Table) Columns() []string {
	return append(t.Identities(), CorrectLabel)
}

// Has reports whether the identity is present in the table.
func (t *Table) Has(id domain.Identity) bool {
	_, ok := t.index[id]
	return ok
}

// Cell returns the count for a row identity and a column label, which
// may be CorrectLabel.
func (t *Table) Cell(row domain.Identity, col string) float64 {
	r, ok := t.index[row]
	if !ok {
		return 0
	}
	c := t.col(col)
	if c < 0 {
		return 0
	}
	return t.cells[r][c]
}

// Shown returns how many times the identity was shown and answered with
// a recognized guess: the row sum over the identity columns.
func (t *Table) Shown(row domain.Identity) float64 {
	r, ok := t.index[row]
	if !ok {
		return 0
	}
	var sum float64
	for c := 0; c < len(t.ids); c++ {
		sum += t.cells[r][c]
	}
	return sum
}

// Guessed returns how many times the identity was given as an answer:
// the column sum for that identity.
func (t *Table) Guessed(col domain.Identity) float64 {
	c, ok := t.index[col]
	if !ok {
		return 0
	}
	var sum float64
	for r := range t.cells {
		sum += t.cells[r][c]
	}
	return sum
}

// SuccessRate computes the overall share of correct answers as a
// rounded percentage. answered is false when nothing has been tallied
// yet, in which case the percentage is 0 rather than a division by
// zero.
func (t *Table) SuccessRate() (percent int, answered bool) {
	var total, correct float64
	for r := range t.cells {
		for c, v := range t.cells[r] {
			if c == t.correctCol() {
				correct += v
			} else {
				total += v
			}
		}
	}
	if total == 0 {
		return 0, false
	}
	return int(math.Round(correct / total * 100)), true
}

// Equal reports whether both tables cover the same identities with all
// cells matching within tol.
func (t *Table) Equal(o *Table, tol float64) bool {
	if o == nil || len(t.ids) != len(o.ids) {
		return false
	}
	for i, id := range t.ids {
		if o.ids[i] != id {
			return false
		}
	}
	for r := range t.cells {
		for c := range t.cells[r] {
			if math.Abs(t.cells[r][c]-o.cells[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

func (t *Table) reset(ids []domain.Identity) {
	t.ids = ids
	t.index = make(map[domain.Identity]int, len(ids))
	t.cells = make([][]float64, len(ids))
	for i, id := range ids {
		t.index[id] = i
		t.cells[i] = make([]float64, len(ids)+1)
	}
}

func (t *Table) correctCol() int { return len(t.ids) }

// col maps a column label to its position, -1 when unknown.
func (t *Table) col(label string) int {
	if label == CorrectLabel {
		return t.correctCol()
	}
	if c, ok := t.index[label]; ok {
		return c
	}
	return -1
}

func dedupeSorted(ids []domain.Identity) []domain.Identity {
	seen := make(map[domain.Identity]struct{}, len(ids))
	out := make([]domain.Identity, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
