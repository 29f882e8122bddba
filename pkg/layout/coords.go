package layout

import (
	"maps"
	"slices"

	"github.com/graphtier/graphtier/pkg/geom"
	"github.com/graphtier/graphtier/pkg/graph"
)

// assignCoordinates turns per-rank orderings into concrete top-left anchors.
//
// Within a rank the cross-axis coordinate accumulates nodeSeparation plus
// each box's cross extent; across ranks the primary-axis coordinate
// accumulates rankSeparation plus the rank's largest primary extent. For TB
// layouts the primary axis is y; LR/RL swap the axes and BT/RL negate the
// primary coordinate.
func assignCoordinates(orders map[int][]string, nodes map[string]graph.Node, opts Options) map[string]geom.Point {
	positions := make(map[string]geom.Point)
	horizontal := opts.Direction.horizontal()

	primaryExtent := func(n graph.Node) float64 {
		if horizontal {
			return boxWidth(n, opts)
		}
		return boxHeight(n, opts)
	}
	crossExtent := func(n graph.Node) float64 {
		if horizontal {
			return boxHeight(n, opts)
		}
		return boxWidth(n, opts)
	}

	primary := 0.0
	for _, rank := range slices.Sorted(maps.Keys(orders)) {
		row := orders[rank]

		rankExtent := 0.0
		for _, id := range row {
			if ext := primaryExtent(nodes[id]); ext > rankExtent {
				rankExtent = ext
			}
		}

		cross := 0.0
		for _, id := range row {
			p := primary
			if opts.Direction.reversed() {
				p = -primary
			}
			if horizontal {
				positions[id] = geom.Point{X: p, Y: cross}
			} else {
				positions[id] = geom.Point{X: cross, Y: p}
			}
			cross += crossExtent(nodes[id]) + opts.NodeSeparation
		}

		primary += rankExtent + opts.RankSeparation
	}
	return positions
}

// boxWidth returns the node's effective box width.
func boxWidth(n graph.Node, opts Options) float64 {
	if n.Width > 0 {
		return n.Width
	}
	return opts.NodeWidth
}

// boxHeight returns the node's effective box height.
func boxHeight(n graph.Node, opts Options) float64 {
	if n.Height > 0 {
		return n.Height
	}
	return opts.NodeHeight
}
