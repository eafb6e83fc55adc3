package diagram

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	figuresHeader     = "Figures: "
	connectionsHeader = "Connections: "
	connectionTag     = "Connection"
	fieldSep          = ": "
)

// SkipFunc is told about every input line Decode ignores. line is 1-based.
type SkipFunc func(line int, reason string)

// Encode writes d in the line-oriented text format:
//
//	Figures: <n>
//	Connections: <m>
//	<Shape>: <left> <top> <width> <height>
//	Connection: <x1> <y1> <x2> <y2>
func Encode(w io.Writer, d *Diagram) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%d\n", figuresHeader, len(d.Figures))
	fmt.Fprintf(bw, "%s%d\n", connectionsHeader, len(d.Connections))
	for _, fig := range d.Figures {
		r := fig.Rect
		fmt.Fprintf(bw, "%s%s%d %d %d %d\n", fig.Shape, fieldSep, r.X, r.Y, r.W, r.H)
	}
	for _, conn := range d.Connections {
		fmt.Fprintf(bw, "%s%s%d %d %d %d\n", connectionTag, fieldSep, conn.From.X, conn.From.Y, conn.To.X, conn.To.Y)
	}
	return bw.Flush()
}

// Marshal is Encode into a string.
func Marshal(d *Diagram) string {
	var buf bytes.Buffer
	_ = Encode(&buf, d)
	return buf.String()
}

// Decode reads the format written by Encode. It is lenient: a missing count
// header counts as zero, and malformed or unknown lines inside a section are
// consumed and skipped. Only read errors are returned.
func Decode(r io.Reader, skip SkipFunc) (*Diagram, error) {
	if skip == nil {
		skip = func(int, string) {}
	}
	d := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(scanner.Text(), "\r"), true
	}

	figureCount, connectionCount := 0, 0
	if line, ok := next(); ok {
		figureCount = parseCount(line, figuresHeader, lineNo, skip)
	}
	if line, ok := next(); ok {
		connectionCount = parseCount(line, connectionsHeader, lineNo, skip)
	}

	for i := 0; i < figureCount; i++ {
		line, ok := next()
		if !ok {
			break
		}
		fig, reason := parseFigure(line)
		if reason != "" {
			skip(lineNo, reason)
			continue
		}
		d.Figures = append(d.Figures, fig)
	}
	for i := 0; i < connectionCount; i++ {
		line, ok := next()
		if !ok {
			break
		}
		conn, reason := parseConnection(line)
		if reason != "" {
			skip(lineNo, reason)
			continue
		}
		d.Connections = append(d.Connections, conn)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read diagram: %w", err)
	}
	d.rebuild()
	return d, nil
}

// Unmarshal is Decode from a string.
func Unmarshal(s string, skip SkipFunc) (*Diagram, error) {
	return Decode(strings.NewReader(s), skip)
}

func parseCount(line, header string, lineNo int, skip SkipFunc) int {
	if !strings.HasPrefix(line, header) {
		skip(lineNo, fmt.Sprintf("expected %q header", strings.TrimSpace(header)))
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, header)))
	if err != nil || n < 0 {
		skip(lineNo, "invalid count")
		return 0
	}
	return n
}

func splitTagged(line string) (string, []int, string) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 2 {
		return "", nil, "expected '<tag>: <values>'"
	}
	fields := strings.Fields(parts[1])
	if len(fields) != 4 {
		return "", nil, "expected 4 values"
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return "", nil, fmt.Sprintf("invalid number %q", f)
		}
		values[i] = v
	}
	return parts[0], values, ""
}

func parseFigure(line string) (Figure, string) {
	tag, v, reason := splitTagged(line)
	if reason != "" {
		return Figure{}, reason
	}
	shape := ParseShape(tag)
	if shape == None {
		return Figure{}, fmt.Sprintf("unknown shape %q", tag)
	}
	rect := Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}
	switch {
	case rect.Empty():
		return Figure{}, "empty rect"
	case rect.W > MaxExtent || rect.H > MaxExtent:
		return Figure{}, fmt.Sprintf("figure larger than %d cells", MaxExtent)
	case !rect.Valid():
		return Figure{}, "coordinate out of range"
	}
	return Figure{Shape: shape, Rect: rect}, ""
}

func parseConnection(line string) (Connection, string) {
	tag, v, reason := splitTagged(line)
	if reason != "" {
		return Connection{}, reason
	}
	if tag != connectionTag {
		return Connection{}, fmt.Sprintf("expected %q, got %q", connectionTag, tag)
	}
	conn := Connection{From: Point{v[0], v[1]}, To: Point{v[2], v[3]}}
	if !conn.From.InRange() || !conn.To.InRange() {
		return Connection{}, "coordinate out of range"
	}
	return conn, ""
}

// LoadFile replaces d's content with the diagram stored at path. d is left
// untouched on error.
func (d *Diagram) LoadFile(path string, skip SkipFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open diagram: %w", err)
	}
	defer f.Close()

	loaded, err := Decode(f, skip)
	if err != nil {
		return err
	}
	d.Replace(loaded)
	return nil
}

// SaveFile writes d to path through a temporary file in the same directory.
func (d *Diagram) SaveFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".diagram-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Encode(tmp, d); err != nil {
		tmp.Close()
		return fmt.Errorf("write diagram: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod diagram: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename diagram: %w", err)
	}
	return nil
}
