package main

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"diagrammer/internal/diagram"
)

const (
	cellWidth     = 8.0
	cellHeight    = 16.0
	exportPadding = 2

	// maxExportPixels caps the image buffer at 128 MiB of RGBA.
	maxExportPixels = 32 << 20
)

var (
	errNothingToExport = errors.New("nothing to export")
	errExportTooLarge  = errors.New("diagram too large to export as PNG")
)

// ExportPNG renders the whole diagram, independent of the current viewport.
func ExportPNG(d *diagram.Diagram, w io.Writer) error {
	bounds, ok := d.Bounds()
	if !ok {
		return errNothingToExport
	}
	origin := diagram.Point{X: bounds.X - exportPadding, Y: bounds.Y - exportPadding}
	imageWidth := float64(bounds.W+2*exportPadding) * cellWidth
	imageHeight := float64(bounds.H+2*exportPadding) * cellHeight
	if imageWidth*imageHeight > maxExportPixels {
		return fmt.Errorf("%w: %dx%d cells", errExportTooLarge, bounds.W, bounds.H)
	}

	dc := gg.NewContext(int(imageWidth), int(imageHeight))
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)
	dc.SetLineWidth(1.0)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for _, conn := range d.Connections {
		x1, y1 := cellCenter(conn.From, origin)
		x2, y2 := cellCenter(conn.To, origin)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	for i, fig := range d.Figures {
		drawFigurePNG(dc, fig, origin)
		cx, cy := cellCenter(fig.Rect.Center(), origin)
		dc.DrawStringAnchored(strconv.Itoa(i), cx, cy, 0.5, 0.5)
	}
	return dc.EncodePNG(w)
}

func drawFigurePNG(dc *gg.Context, fig diagram.Figure, origin diagram.Point) {
	x := float64(fig.Rect.X-origin.X) * cellWidth
	y := float64(fig.Rect.Y-origin.Y) * cellHeight
	w := float64(fig.Rect.W) * cellWidth
	h := float64(fig.Rect.H) * cellHeight

	switch fig.Shape {
	case diagram.Rectangle:
		dc.DrawRectangle(x, y, w, h)
	case diagram.Triangle:
		dc.MoveTo(x+w/2, y)
		dc.LineTo(x+w, y+h)
		dc.LineTo(x, y+h)
		dc.ClosePath()
	case diagram.Ellipse:
		dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	default:
		return
	}
	dc.Stroke()
}

func cellCenter(p, origin diagram.Point) (float64, float64) {
	return (float64(p.X-origin.X) + 0.5) * cellWidth, (float64(p.Y-origin.Y) + 0.5) * cellHeight
}

func exportPNGFile(d *diagram.Diagram, path string) error {
	if d.IsEmpty() {
		return errNothingToExport
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ExportPNG(d, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportVisualTXT writes the diagram exactly as the canvas shows it for the
// given viewport, without cursor or previews.
func ExportVisualTXT(d *diagram.Diagram, shapes *shapeCache, w io.Writer, width, height int, pan diagram.Point) error {
	canvas := NewCanvas(width, height, pan, shapes)
	canvas.DrawDiagram(d, -1)

	bw := bufio.NewWriter(w)
	for _, line := range canvas.Lines() {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func exportVisualTXTFile(d *diagram.Diagram, shapes *shapeCache, path string, width, height int, pan diagram.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ExportVisualTXT(d, shapes, f, width, height, pan); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
