package layout

import (
	"maps"
	"slices"

	"github.com/graphtier/graphtier/pkg/geom"
)

// resolveCollisions performs a single pairwise pass over all node pairs and
// pushes overlapping boxes apart along the x axis. Boxes use the fixed
// default size from opts; two nodes collide when both axis gaps are
// simultaneously smaller than the box extent plus the required separation.
// The x-axis deficit is split evenly: the smaller-x node moves left, the
// other right.
//
// The pass is not iterated to a fixed point. Three or more mutually-close
// nodes can retain residual overlaps after one call; repeated invocation on
// re-layout resolves them over time. This is a deliberate trade-off - see
// the collision tests for the probed limitation.
func resolveCollisions(positions map[string]geom.Point, opts Options) map[string]geom.Point {
	adjusted := maps.Clone(positions)
	ids := slices.Sorted(maps.Keys(adjusted))

	w, h := opts.NodeWidth, opts.NodeHeight
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := adjusted[ids[i]], adjusted[ids[j]]

			dx := a.X - b.X
			if dx < 0 {
				dx = -dx
			}
			dy := a.Y - b.Y
			if dy < 0 {
				dy = -dy
			}

			if dx >= w+opts.NodeSeparation || dy >= h+opts.RankSeparation {
				continue
			}

			deficit := (w + opts.NodeSeparation) - dx
			half := deficit / 2
			if a.X <= b.X {
				a.X -= half
				b.X += half
			} else {
				a.X += half
				b.X -= half
			}
			adjusted[ids[i]], adjusted[ids[j]] = a, b
		}
	}
	return adjusted
}
