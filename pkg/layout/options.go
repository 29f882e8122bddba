package layout

// Direction controls which way ranks grow in hierarchical layout.
type Direction string

const (
	// DirectionTB places rank 0 at the top, ranks growing downward.
	DirectionTB Direction = "TB"
	// DirectionBT places rank 0 at the bottom, ranks growing upward.
	DirectionBT Direction = "BT"
	// DirectionLR places rank 0 at the left, ranks growing rightward.
	DirectionLR Direction = "LR"
	// DirectionRL places rank 0 at the right, ranks growing leftward.
	DirectionRL Direction = "RL"
)

// Valid reports whether d is a recognized direction.
func (d Direction) Valid() bool {
	switch d {
	case DirectionTB, DirectionBT, DirectionLR, DirectionRL:
		return true
	}
	return false
}

// horizontal reports whether ranks grow along the x axis (LR/RL).
func (d Direction) horizontal() bool {
	return d == DirectionLR || d == DirectionRL
}

// reversed reports whether the primary axis is negated (BT/RL).
func (d Direction) reversed() bool {
	return d == DirectionBT || d == DirectionRL
}

// Default layout parameters. They match the values the rendering surface
// assumes when a graph carries no explicit sizing.
const (
	DefaultNodeSeparation = 80.0
	DefaultRankSeparation = 120.0
	DefaultEdgeSeparation = 10.0
	DefaultNodeWidth      = 200.0
	DefaultNodeHeight     = 120.0
)

// Options configures a hierarchical layout computation.
// The zero value is usable: every zero field falls back to its default and
// an empty or unrecognized direction falls back to top-to-bottom.
type Options struct {
	Direction Direction `json:"direction,omitempty" toml:"direction"`

	// NodeSeparation is the minimum gap between sibling boxes within a rank.
	NodeSeparation float64 `json:"node_separation,omitempty" toml:"node_separation"`

	// RankSeparation is the minimum gap between adjacent ranks.
	RankSeparation float64 `json:"rank_separation,omitempty" toml:"rank_separation"`

	// EdgeSeparation is advisory spacing between parallel edge runs.
	// The router accepts it for forward compatibility but does not fan
	// out parallel paths yet.
	EdgeSeparation float64 `json:"edge_separation,omitempty" toml:"edge_separation"`

	// NodeWidth and NodeHeight are the default box dimensions for nodes
	// that carry no explicit size.
	NodeWidth  float64 `json:"node_width,omitempty" toml:"node_width"`
	NodeHeight float64 `json:"node_height,omitempty" toml:"node_height"`
}

// DefaultOptions returns the canonical option set: direction TB,
// 80/120/10 separations, 200×120 boxes.
func DefaultOptions() Options {
	return Options{
		Direction:      DirectionTB,
		NodeSeparation: DefaultNodeSeparation,
		RankSeparation: DefaultRankSeparation,
		EdgeSeparation: DefaultEdgeSeparation,
		NodeWidth:      DefaultNodeWidth,
		NodeHeight:     DefaultNodeHeight,
	}
}

// withDefaults returns a copy of o with every unset field filled in.
func (o Options) withDefaults() Options {
	if !o.Direction.Valid() {
		o.Direction = DirectionTB
	}
	if o.NodeSeparation <= 0 {
		o.NodeSeparation = DefaultNodeSeparation
	}
	if o.RankSeparation <= 0 {
		o.RankSeparation = DefaultRankSeparation
	}
	if o.EdgeSeparation <= 0 {
		o.EdgeSeparation = DefaultEdgeSeparation
	}
	if o.NodeWidth <= 0 {
		o.NodeWidth = DefaultNodeWidth
	}
	if o.NodeHeight <= 0 {
		o.NodeHeight = DefaultNodeHeight
	}
	return o
}
