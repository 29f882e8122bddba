package layout

import (
	"slices"

	"github.com/graphtier/graphtier/pkg/graph"
)

// BreakCycles returns the subset of edges that forms a valid partial order
// over the given nodes. It never fails: depth-first traversal with
// white/gray/black coloring marks any edge whose target is currently on the
// recursion stack as a back-edge and excludes it. Self-loops are trivially
// excluded, parallel edges between the same pair are judged individually,
// and disconnected components are each traversed independently.
//
// Nodes are visited in sorted ID order so the excluded edge set is
// deterministic for a given input.
func BreakCycles(nodeIDs []string, edges []graph.Edge) []graph.Edge {
	const (
		white = iota
		gray
		black
	)

	known := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		known[id] = true
	}

	adj := make(map[string][]int, len(nodeIDs))
	drop := make(map[int]bool)
	for i, e := range edges {
		if e.From == e.To {
			drop[i] = true
			continue
		}
		if !known[e.From] || !known[e.To] {
			continue
		}
		adj[e.From] = append(adj[e.From], i)
	}

	color := make(map[string]int, len(nodeIDs))

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, ei := range adj[id] {
			target := edges[ei].To
			switch color[target] {
			case white:
				dfs(target)
			case gray:
				drop[ei] = true
			}
		}
		color[id] = black
	}

	for _, id := range slices.Sorted(slices.Values(nodeIDs)) {
		if color[id] == white {
			dfs(id)
		}
	}

	kept := make([]graph.Edge, 0, len(edges))
	for i, e := range edges {
		if !drop[i] {
			kept = append(kept, e)
		}
	}
	return kept
}
