package layout

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphtier/graphtier/pkg/geom"
	"github.com/graphtier/graphtier/pkg/graph"
	"github.com/graphtier/graphtier/pkg/observability"
)

// slowLayoutThreshold is the elapsed time past which a computation is
// reported via a warning. The computation always runs to completion; any
// timeout policy belongs to the caller.
const slowLayoutThreshold = 2 * time.Second

// Engine computes diagram layouts. It owns a bounded result cache and a
// logger; both are fixed at construction. Layout computation itself is
// synchronous and CPU-bound - callers that need debouncing or timeouts must
// impose them externally.
type Engine struct {
	cache  *Cache
	logger *log.Logger
}

// NewEngine creates an engine with the given cache and logger.
// A nil cache gets a fresh bounded cache; a nil logger falls back to the
// process default.
func NewEngine(cache *Cache, logger *log.Logger) *Engine {
	if cache == nil {
		cache = NewCache(DefaultCacheSize)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{cache: cache, logger: logger}
}

// ComputeLayout runs the full hierarchical pipeline: cycle breaking, rank
// assignment, crossing-reduction ordering, coordinate assignment, collision
// resolution, orthogonal edge routing, and bounds calculation. Results are
// memoized by graph content; a second call with identical nodes, edges, and
// options returns the cached Result unchanged.
//
// The engine never fails on malformed input. Edges referencing unknown node
// IDs are dropped silently, cyclic edges lose only their ranking influence,
// and if ranking itself errors the grid fallback is substituted, which
// always succeeds - including for zero nodes, where the result is an empty
// position map with zero-area bounds.
func (e *Engine) ComputeLayout(nodes []graph.Node, edges []graph.Edge, opts Options) *Result {
	opts = opts.withDefaults()

	key := cacheKey(nodes, edges, opts)
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	observability.Layout().OnLayoutStart(len(nodes), len(edges))
	start := time.Now()

	byID := make(map[string]graph.Node, len(nodes))
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
		ids = append(ids, n.ID)
	}

	// Dangling references come from upstream extraction; drop, don't fault.
	connected := make([]graph.Edge, 0, len(edges))
	for _, edge := range edges {
		if _, ok := byID[edge.From]; !ok {
			continue
		}
		if _, ok := byID[edge.To]; !ok {
			continue
		}
		connected = append(connected, edge)
	}

	acyclic := BreakCycles(ids, orientForRanking(connected))

	fallback := false
	ranks, err := rankNodes(ids, acyclic)
	var positions map[string]geom.Point
	if err != nil {
		e.logger.Warn("hierarchical ranking failed, using grid fallback", "err", err)
		fallback = true
		positions = gridPositions(nodes, opts)
	} else {
		orders := orderRanks(ranks, ids, acyclic)
		positions = assignCoordinates(orders, byID, opts)
	}

	positions = resolveCollisions(positions, opts)
	routes := routeEdges(connected, positions, opts)
	bounds := computeBounds(positions, byID, opts)

	duration := time.Since(start)
	if duration > slowLayoutThreshold {
		e.logger.Warn("layout computation is slow",
			"nodes", len(nodes), "edges", len(edges), "duration", duration)
	}
	observability.Layout().OnLayoutComplete(len(nodes), duration, fallback)

	result := &Result{
		Positions: positions,
		Routes:    routes,
		Bounds:    bounds,
		Duration:  duration,
	}
	e.cache.Put(key, result)
	return result
}

// ComputeGridLayout places nodes on a plain grid with default options. It is
// the always-succeeding fallback surface: no ranking, no routing, no cache.
func (e *Engine) ComputeGridLayout(nodes []graph.Node) *Result {
	opts := DefaultOptions()
	start := time.Now()

	positions := gridPositions(nodes, opts)

	byID := make(map[string]graph.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	return &Result{
		Positions: positions,
		Bounds:    computeBounds(positions, byID, opts),
		Duration:  time.Since(start),
	}
}

// ClearCache drops every memoized layout.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}
