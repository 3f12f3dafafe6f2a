// Package render derives the human-readable view of a score table and
// exports it as a heatmap image, a terminal table and a score file.
package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/benbenti/PhotoID/internal/score"
)

// View is the filtered, normalized rendition of a score table, laid
// out for a grid: one row per true identity, one column per given
// answer plus the Correct column pinned last.
type View struct {
	Rows []string
	Cols []string

	// Display holds the cell text: raw counts, except the Correct
	// column which shows the row's accuracy percentage.
	Display [][]string

	// Colors holds the visual intensity per cell in [0,1]: each row's
	// counts divided by the times that row was shown; the Correct
	// column carries the row's accuracy fraction.
	Colors [][]float64
}

// NormalizedView filters the table down to identities that actually
// took part: rows that were shown at least once, columns that were
// guessed at least once or belong to a kept row. The Correct column is
// always present.
func NormalizedView(t *score.Table) View {
	v := View{}

	kept := make(map[string]bool)
	for _, id := range t.Identities() {
		if t.Shown(id) > 0 {
			v.Rows = append(v.Rows, id)
			kept[id] = true
		}
	}
	for _, id := range t.Identities() {
		if kept[id] || t.Guessed(id) > 0 {
			v.Cols = append(v.Cols, id)
		}
	}
	v.Cols = append(v.Cols, score.CorrectLabel)

	for _, row := range v.Rows {
		shown := t.Shown(row)
		display := make([]string, 0, len(v.Cols))
		colors := make([]float64, 0, len(v.Cols))
		for _, col := range v.Cols {
			if col == score.CorrectLabel {
				accuracy := t.Cell(row, score.CorrectLabel) / shown
				display = append(display, fmt.Sprintf("%d%%", int(math.Round(accuracy*100))))
				colors = append(colors, accuracy)
				continue
			}
			count := t.Cell(row, col)
			display = append(display, formatCount(count))
			colors = append(colors, count/shown)
		}
		v.Display = append(v.Display, display)
		v.Colors = append(v.Colors, colors)
	}
	return v
}

func formatCount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', 3, 64)
}
