package layout

import (
	"maps"
	"slices"

	"github.com/graphtier/graphtier/pkg/graph"
)

// weightedNeighbor links a node to an adjacent node with the layout weight
// of the connecting edge. Ordering edges carry higher weights, so they pull
// harder during barycenter averaging.
type weightedNeighbor struct {
	id     string
	weight float64
}

// orderRanks computes a left-to-right ordering for each rank that reduces
// edge crossings. It runs a fixed number of weighted barycenter sweeps
// (downward then upward) and keeps the ordering with the fewest crossings
// seen. Exact minimization is NP-hard; the sweep heuristic is sufficient for
// the separation and ordering guarantees the engine makes.
func orderRanks(ranks map[string]int, nodeIDs []string, edges []graph.Edge) map[int][]string {
	orders := make(map[int][]string)
	for _, id := range nodeIDs {
		r := ranks[id]
		orders[r] = append(orders[r], id)
	}

	up := make(map[string][]weightedNeighbor)   // node -> predecessors
	down := make(map[string][]weightedNeighbor) // node -> successors
	for _, e := range edges {
		w := e.LayoutWeight()
		down[e.From] = append(down[e.From], weightedNeighbor{e.To, w})
		up[e.To] = append(up[e.To], weightedNeighbor{e.From, w})
	}

	rankIDs := slices.Sorted(maps.Keys(orders))

	best := cloneOrders(orders)
	bestCrossings := countCrossings(orders, rankIDs, down)

	const sweeps = 4
	for s := 0; s < sweeps; s++ {
		// Downward: order each rank by its predecessors above.
		for i := 1; i < len(rankIDs); i++ {
			sortByBarycenter(orders, rankIDs[i], ranks, up)
		}
		// Upward: order each rank by its successors below.
		for i := len(rankIDs) - 2; i >= 0; i-- {
			sortByBarycenter(orders, rankIDs[i], ranks, down)
		}

		if crossings := countCrossings(orders, rankIDs, down); crossings < bestCrossings {
			bestCrossings = crossings
			best = cloneOrders(orders)
		}
		if bestCrossings == 0 {
			break
		}
	}
	return best
}

// sortByBarycenter reorders one rank by the weighted mean position of each
// node's neighbors in earlier-swept ranks. Nodes without neighbors keep
// their current position as their barycenter, and the sort is stable, so
// isolated nodes do not drift.
func sortByBarycenter(orders map[int][]string, rank int, ranks map[string]int, neighbors map[string][]weightedNeighbor) {
	row := orders[rank]
	if len(row) < 2 {
		return
	}

	pos := make(map[string]int)
	for r, ids := range orders {
		if r == rank {
			continue
		}
		for i, id := range ids {
			pos[id] = i
		}
	}

	bary := make(map[string]float64, len(row))
	for i, id := range row {
		var sum, weight float64
		for _, n := range neighbors[id] {
			p, ok := pos[n.id]
			if !ok {
				continue
			}
			sum += float64(p) * n.weight
			weight += n.weight
		}
		if weight > 0 {
			bary[id] = sum / weight
		} else {
			bary[id] = float64(i)
		}
	}

	slices.SortStableFunc(row, func(a, b string) int {
		switch {
		case bary[a] < bary[b]:
			return -1
		case bary[a] > bary[b]:
			return 1
		default:
			return 0
		}
	})
}

// countCrossings sums the crossings between each pair of consecutive ranks.
// Edges spanning more than one rank are ignored by the metric; they are rare
// after longest-path ranking and do not affect the heuristic's usefulness.
func countCrossings(orders map[int][]string, rankIDs []int, down map[string][]weightedNeighbor) int {
	crossings := 0
	for i := 0; i+1 < len(rankIDs); i++ {
		crossings += countLayerCrossings(orders[rankIDs[i]], orders[rankIDs[i+1]], down)
	}
	return crossings
}

// countLayerCrossings counts edge crossings between two adjacent ranks using
// a Fenwick tree (binary indexed tree) for O(E log V) performance. Two edges
// (u1,v1) and (u2,v2) cross iff pos(u1) < pos(u2) and pos(v1) > pos(v2),
// which is an inversion count over target positions when edges are sorted by
// source position.
func countLayerCrossings(upper, lower []string, down map[string][]weightedNeighbor) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := make(map[string]int, len(lower))
	for i, id := range lower {
		lowerPos[id] = i
	}

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for i, id := range upper {
		for _, n := range down[id] {
			if pos, ok := lowerPos[n.id]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		// Count edges seen so far with target <= e.lower.
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}

func cloneOrders(orders map[int][]string) map[int][]string {
	out := make(map[int][]string, len(orders))
	for r, ids := range orders {
		out[r] = slices.Clone(ids)
	}
	return out
}
