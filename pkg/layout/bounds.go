package layout

import (
	"math"

	"github.com/graphtier/graphtier/pkg/geom"
	"github.com/graphtier/graphtier/pkg/graph"
)

// boundsPadding is the fixed margin added on every side of the diagram.
const boundsPadding = 20.0

// computeBounds returns the rectangle spanning every node's full box plus
// padding. An empty position map yields a zero-area rectangle.
func computeBounds(positions map[string]geom.Point, nodes map[string]graph.Node, opts Options) geom.Rect {
	if len(positions) == 0 {
		return geom.Rect{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for id, p := range positions {
		n := nodes[id]
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X+boxWidth(n, opts))
		maxY = math.Max(maxY, p.Y+boxHeight(n, opts))
	}

	return geom.Rect{
		X:      minX - boundsPadding,
		Y:      minY - boundsPadding,
		Width:  maxX - minX + 2*boundsPadding,
		Height: maxY - minY + 2*boundsPadding,
	}
}
