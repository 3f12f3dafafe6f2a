package tui

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// padColor is the neutral gray used to letterbox non-square photos.
var padColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}

// RenderPhoto loads a photograph, pads it to a square and scales it to
// fit a width x height character area, rendered as half-block cells so
// each terminal cell carries two pixels.
func RenderPhoto(path string, width, height int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode photo %s: %w", path, err)
	}

	side := width
	if 2*height < side {
		side = 2 * height
	}
	if side < 2 {
		side = 2
	}
	scaled := scaleSquare(img, side)
	return blockRender(scaled), nil
}

// scaleSquare pads the image to a gray-bordered square and resamples
// it to side x side pixels.
func scaleSquare(img image.Image, side int) *image.RGBA {
	b := img.Bounds()
	long := b.Dx()
	if b.Dy() > long {
		long = b.Dy()
	}

	square := image.NewRGBA(image.Rect(0, 0, long, long))
	draw.Draw(square, square.Bounds(), image.NewUniform(padColor), image.Point{}, draw.Src)
	offset := image.Pt((long-b.Dx())/2, (long-b.Dy())/2)
	draw.Draw(square, b.Sub(b.Min).Add(offset), img, b.Min, draw.Src)

	out := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.CatmullRom.Scale(out, out.Bounds(), square, square.Bounds(), draw.Over, nil)
	return out
}

// blockRender turns an image into lines of "▀" runes, foreground
// colored by the upper pixel and background by the lower one.
func blockRender(img *image.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom)))
			sb.WriteString(style.Render("▀"))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
