package layout

import (
	"testing"

	"github.com/graphtier/graphtier/pkg/errors"
	"github.com/graphtier/graphtier/pkg/graph"
)

func TestRankNodesChain(t *testing.T) {
	ids := []string{"a", "b", "c"}
	edges := []graph.Edge{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	}

	ranks, err := rankNodes(ids, edges)
	if err != nil {
		t.Fatalf("rankNodes() error: %v", err)
	}

	want := map[string]int{"a": 0, "b": 1, "c": 2}
	for id, rank := range want {
		if ranks[id] != rank {
			t.Errorf("rank[%s] = %d, want %d", id, ranks[id], rank)
		}
	}
}

func TestRankNodesLongestPathWins(t *testing.T) {
	// Diamond with a long arm: a→b→c→d and a→d. d must take the longest path.
	ids := []string{"a", "b", "c", "d"}
	edges := []graph.Edge{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "d"},
		{From: "a", To: "d"},
	}

	ranks, err := rankNodes(ids, edges)
	if err != nil {
		t.Fatalf("rankNodes() error: %v", err)
	}
	if ranks["d"] != 3 {
		t.Errorf("rank[d] = %d, want 3 (longest path)", ranks["d"])
	}
}

func TestRankNodesIsolatedNodesAtRankZero(t *testing.T) {
	ranks, err := rankNodes([]string{"a", "b"}, nil)
	if err != nil {
		t.Fatalf("rankNodes() error: %v", err)
	}
	if ranks["a"] != 0 || ranks["b"] != 0 {
		t.Errorf("isolated nodes should rank 0, got %v", ranks)
	}
}

func TestRankNodesReportsSurvivingCycle(t *testing.T) {
	// rankNodes requires pre-broken edges; feeding it a cycle must produce
	// RANKING_FAILED rather than looping or mis-ranking.
	ids := []string{"a", "b"}
	edges := []graph.Edge{
		{From: "a", To: "b"},
		{From: "b", To: "a"},
	}

	_, err := rankNodes(ids, edges)
	if !errors.Is(err, errors.ErrCodeRankingFailed) {
		t.Errorf("rankNodes() = %v, want RANKING_FAILED", err)
	}
}

func TestOrientForRanking(t *testing.T) {
	edges := []graph.Edge{
		{From: "user", To: "base", Kind: graph.KindInheritance},
		{From: "impl", To: "iface", Kind: graph.KindRealization},
		{From: "a", To: "b", Kind: graph.KindAssociation},
	}

	oriented := orientForRanking(edges)

	if oriented[0].From != "base" || oriented[0].To != "user" {
		t.Error("inheritance edges should be reversed for ranking")
	}
	if oriented[1].From != "iface" || oriented[1].To != "impl" {
		t.Error("realization edges should be reversed for ranking")
	}
	if oriented[2].From != "a" || oriented[2].To != "b" {
		t.Error("association edges should keep their direction")
	}
	// The input must stay untouched.
	if edges[0].From != "user" {
		t.Error("orientForRanking() must not mutate its input")
	}
}
