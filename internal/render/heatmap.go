package render

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HeatmapOptions tunes the rendered figure.
type HeatmapOptions struct {
	// FontPath optionally names a TTF file for the labels. The
	// built-in bitmap face is used when empty.
	FontPath string
	// CellSize is the square cell edge in pixels (default 56).
	CellSize int
}

// Blues-style ramp endpoints for the cell fill.
var (
	rampLow  = color.NRGBA{R: 247, G: 251, B: 255, A: 255}
	rampHigh = color.NRGBA{R: 8, G: 48, B: 107, A: 255}
)

const (
	heatmapPad   = 10.0
	axisTitlePad = 26.0
)

// SaveHeatmap renders the view as a PNG grid: color intensity from the
// color matrix, cell text from the display matrix, identity tick
// labels on both axes and the axis titles "True identity" / "Given
// answers". Re-rendering to the same path overwrites the file.
func SaveHeatmap(v View, path string, opts HeatmapOptions) error {
	if len(v.Rows) == 0 {
		return fmt.Errorf("render heatmap: no answered questions to show")
	}
	face, err := loadFace(opts.FontPath)
	if err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	cell := float64(opts.CellSize)
	if cell <= 0 {
		cell = 56
	}

	// Label extents decide the margins around the grid.
	measure := gg.NewContext(1, 1)
	measure.SetFontFace(face)
	var rowLabelW, colLabelW float64
	for _, r := range v.Rows {
		if w, _ := measure.MeasureString(r); w > rowLabelW {
			rowLabelW = w
		}
	}
	for _, c := range v.Cols {
		if w, _ := measure.MeasureString(c); w > colLabelW {
			colLabelW = w
		}
	}

	left := axisTitlePad + rowLabelW + 2*heatmapPad
	top := heatmapPad
	bottom := colLabelW + axisTitlePad + 2*heatmapPad
	gridW := cell * float64(len(v.Cols))
	gridH := cell * float64(len(v.Rows))

	dc := gg.NewContext(int(left+gridW+heatmapPad), int(top+gridH+bottom))
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.Clear()

	for r := range v.Rows {
		for c := range v.Cols {
			x := left + float64(c)*cell
			y := top + float64(r)*cell
			dc.SetColor(rampColor(v.Colors[r][c]))
			dc.DrawRectangle(x, y, cell, cell)
			dc.Fill()

			dc.SetColor(textColor(v.Colors[r][c]))
			dc.DrawStringAnchored(v.Display[r][c], x+cell/2, y+cell/2, 0.5, 0.5)
		}
	}

	dc.SetColor(color.Black)

	// Row tick labels, right-aligned against the grid.
	for r, label := range v.Rows {
		dc.DrawStringAnchored(label, left-heatmapPad, top+float64(r)*cell+cell/2, 1, 0.5)
	}

	// Column tick labels, rotated 90 degrees below the grid.
	for c, label := range v.Cols {
		x := left + float64(c)*cell + cell/2
		y := top + gridH + heatmapPad
		dc.Push()
		dc.RotateAbout(gg.Radians(90), x, y)
		dc.DrawStringAnchored(label, x, y, 0, 0.5)
		dc.Pop()
	}

	// Axis titles.
	cx := left + gridW/2
	cy := top + gridH/2
	dc.DrawStringAnchored("Given answers", cx, top+gridH+colLabelW+heatmapPad+axisTitlePad/2, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), axisTitlePad/2, cy)
	dc.DrawStringAnchored("True identity", axisTitlePad/2, cy, 0.5, 0.5)
	dc.Pop()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	return nil
}

func loadFace(path string) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	ttf, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: 14}), nil
}

func rampColor(v float64) color.NRGBA {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*v)
	}
	return color.NRGBA{
		R: lerp(rampLow.R, rampHigh.R),
		G: lerp(rampLow.G, rampHigh.G),
		B: lerp(rampLow.B, rampHigh.B),
		A: 255,
	}
}

// textColor keeps cell annotations readable on dark fills.
func textColor(v float64) color.Color {
	if v > 0.55 {
		return color.White
	}
	return color.Black
}
