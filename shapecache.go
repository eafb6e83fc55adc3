package main

import (
	"math"

	"github.com/golang/groupcache/lru"

	"diagrammer/internal/diagram"
)

// span is a horizontal run of one outline glyph, relative to the figure's
// top-left corner. x0 and x1 are inclusive.
type span struct {
	dy, x0, x1 int
	r          rune
}

type outlineKey struct {
	shape diagram.Shape
	w, h  int
}

// shapeCache keeps rasterized outlines so the same figure size is not
// recomputed on every frame. Not safe for concurrent use.
type shapeCache struct {
	cache *lru.Cache
}

func newShapeCache(capacity int) *shapeCache {
	return &shapeCache{cache: lru.New(capacity)}
}

func (c *shapeCache) outline(shape diagram.Shape, w, h int) []span {
	key := outlineKey{shape, w, h}
	if spans, ok := c.cache.Get(key); ok {
		return spans.([]span)
	}
	spans := rasterize(shape, w, h)
	c.cache.Add(key, spans)
	return spans
}

func (c *shapeCache) Len() int {
	return c.cache.Len()
}

// rasterize returns the outline in drawing order; a later span overwrites an
// earlier one where they overlap. The result grows with w+h, never w*h.
func rasterize(shape diagram.Shape, w, h int) []span {
	if w <= 0 || h <= 0 || w > diagram.MaxExtent || h > diagram.MaxExtent {
		return nil
	}
	switch shape {
	case diagram.Rectangle:
		return rectangleOutline(w, h)
	case diagram.Triangle:
		return triangleOutline(w, h)
	case diagram.Ellipse:
		return ellipseOutline(w, h)
	}
	return nil
}

func rectangleOutline(w, h int) []span {
	spans := make([]span, 0, 2*h+4)
	edge := func(y int) {
		spans = append(spans, span{y, 0, 0, '+'})
		if w > 2 {
			spans = append(spans, span{y, 1, w - 2, '-'})
		}
		if w > 1 {
			spans = append(spans, span{y, w - 1, w - 1, '+'})
		}
	}
	edge(0)
	for y := 1; y < h-1; y++ {
		spans = append(spans, span{y, 0, 0, '|'})
		if w > 1 {
			spans = append(spans, span{y, w - 1, w - 1, '|'})
		}
	}
	if h > 1 {
		edge(h - 1)
	}
	return spans
}

// triangleOutline puts the apex at the top center and the base on the last row.
func triangleOutline(w, h int) []span {
	spans := []span{{h - 1, 0, w - 1, '-'}}
	if h == 1 {
		return spans
	}
	cx := float64(w-1) / 2
	apex := int(math.Round(cx))
	spans = append(spans, span{0, apex, apex, '^'})
	prevLeft, prevRight := apex, apex
	for y := 1; y < h-1; y++ {
		t := float64(y) / float64(h-1)
		left := int(math.Round(cx - t*cx))
		right := int(math.Round(cx + t*(float64(w-1)-cx)))
		if left == right {
			spans = append(spans, span{y, left, left, '|'})
		} else {
			// staircase the sides so wide triangles stay closed
			spans = append(spans,
				span{y, left, max(left, prevLeft-1), '/'},
				span{y, min(right, prevRight+1), right, '\\'})
		}
		prevLeft, prevRight = left, right
	}
	return spans
}

func ellipseOutline(w, h int) []span {
	if h == 1 || w == 1 {
		return rectangleOutline(w, h)
	}
	a := float64(w-1) / 2
	b := float64(h-1) / 2

	var spans []span
	// top and bottom arcs, one cell per column
	for x := 0; x <= (w-1)/2; x++ {
		dx := (float64(x) - a) / a
		dy := b * math.Sqrt(math.Max(0, 1-dx*dx))
		top := int(math.Round(b - dy))
		bottom := h - 1 - top
		for _, px := range []int{x, w - 1 - x} {
			spans = append(spans, span{top, px, px, '-'}, span{bottom, px, px, '-'})
		}
	}
	// sides, one cell per row
	for y := 1; y <= (h-1)/2; y++ {
		dy := (float64(y) - b) / b
		dx := a * math.Sqrt(math.Max(0, 1-dy*dy))
		left := int(math.Round(a - dx))
		right := w - 1 - left
		for _, py := range []int{y, h - 1 - y} {
			if py == 0 || py == h-1 {
				continue
			}
			spans = append(spans, span{py, left, left, '('}, span{py, right, right, ')'})
		}
	}
	return spans
}
