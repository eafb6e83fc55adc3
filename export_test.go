package main

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diagrammer/internal/diagram"
)

const threeFigures = `Figures: 3
Connections: 2
Rectangle: 0 0 5 3
Triangle: 10 0 5 3
Ellipse: 20 0 5 3
Connection: 2 1 12 1
Connection: 12 1 22 1
`

func mustDiagram(t *testing.T, text string) *diagram.Diagram {
	t.Helper()
	d, err := diagram.Unmarshal(text, func(line int, reason string) {
		t.Fatalf("line %d skipped: %s", line, reason)
	})
	require.NoError(t, err)
	return d
}

func TestExportPNGSizeFollowsBounds(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportPNG(mustDiagram(t, threeFigures), &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	// 25x3 cells plus two cells of padding on every side
	assert.Equal(t, 29*8, img.Bounds().Dx())
	assert.Equal(t, 7*16, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	wr, wg, wb, _ := color.White.RGBA()
	assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, g, b})
}

func TestExportPNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, ExportPNG(diagram.New(), &buf), errNothingToExport)
	assert.Zero(t, buf.Len())

	path := filepath.Join(t.TempDir(), "empty.png")
	assert.ErrorIs(t, exportPNGFile(diagram.New(), path), errNothingToExport)
	assert.NoFileExists(t, path)
}

func TestExportPNGRejectsHugeDiagram(t *testing.T) {
	d := mustDiagram(t, "Figures: 2\nConnections: 0\nRectangle: 0 0 5 3\nRectangle: 1000000 1000000 5 3\n")
	var buf bytes.Buffer
	err := ExportPNG(d, &buf)
	assert.ErrorIs(t, err, errExportTooLarge)
	assert.Zero(t, buf.Len())
}

func TestExportPNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, exportPNGFile(mustDiagram(t, threeFigures), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.DecodeConfig(f)
	assert.NoError(t, err)
}

func TestExportVisualTXT(t *testing.T) {
	var buf bytes.Buffer
	d := mustDiagram(t, threeFigures)
	require.NoError(t, ExportVisualTXT(d, newShapeCache(8), &buf, 26, 4, diagram.Point{}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+---+       ^        ---  ", lines[0])
	assert.Equal(t, "+---+     -----      ---  ", lines[2])
	assert.Equal(t, strings.Repeat(" ", 26), lines[3])
	assert.NotContains(t, buf.String(), "█")
}

func TestModelExportsVisualTXT(t *testing.T) {
	m := newTestModel(t)
	twoBoxes(t, m)

	m = press(m, "T")
	require.Equal(t, ModeFileInput, m.mode)
	assert.Equal(t, "diagram-visual", m.input.Value())
	m = press(m, "enter")
	require.Equal(t, ModeNormal, m.mode, m.errorMessage)

	data, err := os.ReadFile(filepath.Join(m.config.SaveDirectory, "diagram-visual.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, m.canvasHeight())
	assert.Equal(t, "+---+", lines[1][10:15])
}

func TestModelExportPNGRejectsEmpty(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "S", "enter")
	assert.Equal(t, ModeFileInput, m.mode)
	assert.Contains(t, m.errorMessage, errNothingToExport.Error())
}
