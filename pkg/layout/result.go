package layout

import (
	"time"

	"github.com/graphtier/graphtier/pkg/geom"
)

// Result is the immutable outcome of a layout computation.
//
// Positions hold the top-left anchor of every visible node's box. Routes map
// edge IDs to ordered polyline points; every routed edge references two node
// IDs present in Positions. Bounds contains every node's full box plus
// padding. A Result is a pure function of (node set, edge set, options) and
// must not be mutated after it leaves the engine - cached results are shared
// between callers.
type Result struct {
	Positions map[string]geom.Point   `json:"positions"`
	Routes    map[string][]geom.Point `json:"routes,omitempty"`
	Bounds    geom.Rect               `json:"bounds"`
	Duration  time.Duration           `json:"duration"`
}

// CenterDiagram returns the offset that centres the result's bounds inside a
// viewport of the given dimensions. Each axis is max(0, (viewport-bounds)/2),
// so oversized diagrams are pinned to the viewport origin rather than
// centred off-screen.
func CenterDiagram(r *Result, viewportWidth, viewportHeight float64) geom.Point {
	return geom.Point{
		X: max(0, (viewportWidth-r.Bounds.Width)/2),
		Y: max(0, (viewportHeight-r.Bounds.Height)/2),
	}
}
