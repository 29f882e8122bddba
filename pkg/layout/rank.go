package layout

import (
	"github.com/graphtier/graphtier/pkg/errors"
	"github.com/graphtier/graphtier/pkg/graph"
)

// rankNodes assigns each node its rank: the longest path from a rank-0 source
// along the given acyclic edges. The traversal is Kahn's algorithm; each node
// lands at one plus the maximum rank of any of its predecessors, so sources
// sit at rank 0 and every edge points to a strictly greater rank.
//
// The caller must orient ordering edges (parent before child) and break
// cycles first. If any node never reaches zero in-degree - which means a
// cycle survived - rankNodes reports RANKING_FAILED so the caller can
// substitute the grid fallback.
func rankNodes(nodeIDs []string, edges []graph.Edge) (map[string]int, error) {
	inDegree := make(map[string]int, len(nodeIDs))
	children := make(map[string][]string, len(nodeIDs))
	for _, id := range nodeIDs {
		inDegree[id] = 0
	}
	for _, e := range edges {
		if _, ok := inDegree[e.From]; !ok {
			continue
		}
		if _, ok := inDegree[e.To]; !ok {
			continue
		}
		children[e.From] = append(children[e.From], e.To)
		inDegree[e.To]++
	}

	ranks := make(map[string]int, len(nodeIDs))
	queue := make([]string, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	processed := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		processed++

		for _, child := range children[curr] {
			if rank := ranks[curr] + 1; rank > ranks[child] {
				ranks[child] = rank
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if processed != len(nodeIDs) {
		return nil, errors.New(errors.ErrCodeRankingFailed,
			"%d of %d nodes unreachable by topological traversal", len(nodeIDs)-processed, len(nodeIDs))
	}
	return ranks, nil
}

// orientForRanking returns the edges with ordering kinds reversed, so that a
// parent class ranks below (closer to rank 0 than) its subclasses.
func orientForRanking(edges []graph.Edge) []graph.Edge {
	oriented := make([]graph.Edge, len(edges))
	for i, e := range edges {
		if e.Kind.IsOrdering() {
			e.From, e.To = e.To, e.From
		}
		oriented[i] = e
	}
	return oriented
}
