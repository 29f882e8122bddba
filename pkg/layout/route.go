package layout

import (
	"github.com/graphtier/graphtier/pkg/geom"
	"github.com/graphtier/graphtier/pkg/graph"
)

// routeEdges computes an orthogonal polyline for every edge whose endpoints
// both have positions. Each path runs from an anchor on the source boundary,
// horizontally to the x-midpoint between the two centres, vertically to the
// target's y-level, then horizontally into the target boundary anchor.
// Edges between nodes at the same position degenerate to a single-point path.
// Paths are keyed by edge ID, or by the edge descriptor when no ID is set.
func routeEdges(edges []graph.Edge, positions map[string]geom.Point, opts Options) map[string][]geom.Point {
	routes := make(map[string][]geom.Point, len(edges))
	halfW, halfH := opts.NodeWidth/2, opts.NodeHeight/2

	for _, e := range edges {
		key := e.ID
		if key == "" {
			key = e.Descriptor()
		}
		src, ok := positions[e.From]
		if !ok {
			continue
		}
		dst, ok := positions[e.To]
		if !ok {
			continue
		}

		srcCenter := geom.Point{X: src.X + halfW, Y: src.Y + halfH}
		dstCenter := geom.Point{X: dst.X + halfW, Y: dst.Y + halfH}

		if srcCenter == dstCenter {
			routes[key] = []geom.Point{srcCenter}
			continue
		}

		start := geom.BoundaryIntersection(srcCenter, halfW, halfH, dstCenter)
		end := geom.BoundaryIntersection(dstCenter, halfW, halfH, srcCenter)
		midX := (srcCenter.X + dstCenter.X) / 2

		routes[key] = []geom.Point{
			start,
			{X: midX, Y: start.Y},
			{X: midX, Y: end.Y},
			end,
		}
	}
	return routes
}
