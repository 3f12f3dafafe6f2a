package render

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/benbenti/PhotoID/internal/score"
)

// TerminalTable renders the raw score table for terminal output.
func TerminalTable(t *score.Table) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	cols := t.Columns()
	header := make(table.Row, 0, len(cols)+1)
	header = append(header, "")
	for _, col := range cols {
		header = append(header, col)
	}
	tw.AppendHeader(header)

	for _, row := range t.Identities() {
		r := make(table.Row, 0, len(cols)+1)
		r = append(r, row)
		for _, col := range cols {
			r = append(r, formatCount(t.Cell(row, col)))
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(cols)+1)
	configs = append(configs, table.ColumnConfig{Number: 1, Align: text.AlignLeft})
	for i := range cols {
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight, AlignHeader: text.AlignRight})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// TerminalView renders the filtered, normalized view for terminal
// output, Correct column showing accuracy percentages.
func TerminalView(v View) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(v.Cols)+1)
	header = append(header, "")
	for _, col := range v.Cols {
		header = append(header, col)
	}
	tw.AppendHeader(header)

	for i, row := range v.Rows {
		r := make(table.Row, 0, len(v.Cols)+1)
		r = append(r, row)
		for _, cell := range v.Display[i] {
			r = append(r, cell)
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}
