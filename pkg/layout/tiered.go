package layout

import (
	"slices"

	"github.com/graphtier/graphtier/pkg/graph"
)

// Default tiered layout parameters, tuned for knowledge-graph and mind-map
// views where wide, shallow layouts read better than deep hierarchies.
const (
	DefaultColumnWidth   = 220.0
	DefaultRowHeight     = 90.0
	DefaultTieredSpacing = 40.0
)

// TieredOptions configures TieredColumns. Zero fields fall back to defaults;
// StartX/StartY offset the whole layout and default to the origin.
type TieredOptions struct {
	ColumnWidth float64 `json:"column_width,omitempty" toml:"column_width"`
	RowHeight   float64 `json:"row_height,omitempty" toml:"row_height"`
	Spacing     float64 `json:"spacing,omitempty" toml:"spacing"`
	StartX      float64 `json:"start_x,omitempty" toml:"start_x"`
	StartY      float64 `json:"start_y,omitempty" toml:"start_y"`
}

func (o TieredOptions) withDefaults() TieredOptions {
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = DefaultColumnWidth
	}
	if o.RowHeight <= 0 {
		o.RowHeight = DefaultRowHeight
	}
	if o.Spacing <= 0 {
		o.Spacing = DefaultTieredSpacing
	}
	return o
}

// TierCell is one node's slot in a tiered column layout.
type TierCell struct {
	Column int     `json:"column"`
	Row    int     `json:"row"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// tierTypePriority fixes the intra-column ordering for the node types the
// document-analysis layer emits. Unlisted types sort after the known ones;
// ties break by node ID so the layout is deterministic.
var tierTypePriority = map[string]int{
	"root":     0,
	"document": 1,
	"section":  2,
	"concept":  3,
	"entity":   4,
	"keyword":  5,
}

const tierUnknownPriority = 9

// TieredColumns assigns each node a (column, row) slot and concrete
// coordinates using breadth-first topological layering: column 0 holds the
// in-degree-0 nodes, and each later column holds every not-yet-placed node
// with at least one incoming edge from an already-placed node. This is
// "earliest reachable column" layering - deliberately different from the
// hierarchical engine's longest-path ranking - and favors wide, shallow
// layouts for exploratory graphs.
//
// If an iteration places nothing while unplaced nodes remain (a cycle or a
// disconnected remainder with no in-degree-0 entry), all remaining nodes are
// dumped into one final column. Termination is guaranteed.
func TieredColumns(nodes []graph.Node, edges []graph.Edge, opts TieredOptions) map[string]TierCell {
	opts = opts.withDefaults()

	cells := make(map[string]TierCell, len(nodes))
	if len(nodes) == 0 {
		return cells
	}

	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[n.ID] = true
	}

	inDegree := make(map[string]int, len(nodes))
	sources := make(map[string][]string) // node -> incoming edge sources
	for _, e := range edges {
		if !known[e.From] || !known[e.To] {
			continue
		}
		inDegree[e.To]++
		sources[e.To] = append(sources[e.To], e.From)
	}

	placed := make(map[string]bool, len(nodes))
	columns := make(map[int][]graph.Node)
	column := 0

	var seed []graph.Node
	for _, n := range nodes {
		if inDegree[n.ID] == 0 {
			seed = append(seed, n)
			placed[n.ID] = true
		}
	}
	if len(seed) > 0 {
		columns[column] = seed
		column++
	}

	for {
		var next []graph.Node
		for _, n := range nodes {
			if placed[n.ID] {
				continue
			}
			for _, src := range sources[n.ID] {
				if placed[src] {
					next = append(next, n)
					break
				}
			}
		}

		if len(next) == 0 {
			// Cycle or disconnected remainder: one final column, then stop.
			var rest []graph.Node
			for _, n := range nodes {
				if !placed[n.ID] {
					rest = append(rest, n)
				}
			}
			if len(rest) > 0 {
				columns[column] = rest
			}
			break
		}

		for _, n := range next {
			placed[n.ID] = true
		}
		columns[column] = next
		column++
	}

	for col, members := range columns {
		slices.SortFunc(members, func(a, b graph.Node) int {
			pa, pb := tierPriority(a.Type), tierPriority(b.Type)
			if pa != pb {
				return pa - pb
			}
			switch {
			case a.ID < b.ID:
				return -1
			case a.ID > b.ID:
				return 1
			default:
				return 0
			}
		})

		for row, n := range members {
			cells[n.ID] = TierCell{
				Column: col,
				Row:    row,
				X:      opts.StartX + float64(col)*(opts.ColumnWidth+opts.Spacing),
				Y:      opts.StartY + float64(row)*(opts.RowHeight+opts.Spacing),
			}
		}
	}
	return cells
}

func tierPriority(nodeType string) int {
	if p, ok := tierTypePriority[nodeType]; ok {
		return p
	}
	return tierUnknownPriority
}
