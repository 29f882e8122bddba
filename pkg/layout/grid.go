package layout

import (
	"math"

	"github.com/graphtier/graphtier/pkg/geom"
	"github.com/graphtier/graphtier/pkg/graph"
)

// gridPositions places nodes row-major on a square-ish grid. Columns are
// ceil(sqrt(n)) and cell spacing is the default box size plus node
// separation, so boxes can never overlap. The function succeeds for every
// input, including zero nodes, which makes it the unconditional fallback
// when hierarchical ranking fails.
func gridPositions(nodes []graph.Node, opts Options) map[string]geom.Point {
	positions := make(map[string]geom.Point, len(nodes))
	if len(nodes) == 0 {
		return positions
	}

	columns := int(math.Ceil(math.Sqrt(float64(len(nodes)))))
	stepX := opts.NodeWidth + opts.NodeSeparation
	stepY := opts.NodeHeight + opts.NodeSeparation

	for i, n := range nodes {
		col := i % columns
		row := i / columns
		positions[n.ID] = geom.Point{
			X: float64(col) * stepX,
			Y: float64(row) * stepY,
		}
	}
	return positions
}
