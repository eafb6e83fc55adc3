package diagram

import (
	"maps"
	"slices"
)

// Graph is the undirected adjacency between figure indices derived from the
// connection list.
type Graph map[int]map[int]struct{}

// BuildGraph resolves each connection endpoint to the last figure whose center
// equals it and links the two indices both ways. Connections whose endpoints do
// not both resolve are ignored.
func BuildGraph(figures []Figure, connections []Connection) Graph {
	g := make(Graph)
	for _, conn := range connections {
		startIdx, endIdx := -1, -1
		for j, fig := range figures {
			center := fig.Rect.Center()
			if center == conn.From {
				startIdx = j
			}
			if center == conn.To {
				endIdx = j
			}
		}
		if startIdx != -1 && endIdx != -1 {
			g.link(startIdx, endIdx)
			g.link(endIdx, startIdx)
		}
	}
	return g
}

func (g Graph) link(a, b int) {
	set, ok := g[a]
	if !ok {
		set = make(map[int]struct{})
		g[a] = set
	}
	set[b] = struct{}{}
}

// Neighbors returns the indices linked to i in ascending order.
func (g Graph) Neighbors(i int) []int {
	set, ok := g[i]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

func (g Graph) Connected(a, b int) bool {
	_, ok := g[a][b]
	return ok
}

func (g Graph) Degree(i int) int {
	return len(g[i])
}

// Len is the number of figures with at least one link.
func (g Graph) Len() int {
	return len(g)
}

// Nodes returns the linked figure indices in ascending order.
func (g Graph) Nodes() []int {
	return slices.Sorted(maps.Keys(g))
}
