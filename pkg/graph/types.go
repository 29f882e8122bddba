package graph

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrEmptyNodeID is returned by [Graph.Normalize] when a node has no ID.
	// All nodes must have non-empty identifiers.
	ErrEmptyNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.Normalize] when two nodes
	// share the same ID. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")
)

// =============================================================================
// EdgeKind - Relationship Variants
// =============================================================================

// EdgeKind is the closed set of relationship kinds an edge can carry.
// The kind determines the edge's default layout weight; cosmetic attributes
// (color, dash pattern) are owned by the rendering surface and never appear
// here.
type EdgeKind string

const (
	KindInheritance EdgeKind = "inheritance"
	KindRealization EdgeKind = "realization"
	KindComposition EdgeKind = "composition"
	KindAggregation EdgeKind = "aggregation"
	KindAssociation EdgeKind = "association"
	KindDependency  EdgeKind = "dependency"
	KindGeneric     EdgeKind = "generic"
)

// kindWeights maps each kind to its default layout weight. Ordering kinds
// dominate generic ones so the ranking pass keeps hierarchies vertical.
var kindWeights = map[EdgeKind]float64{
	KindInheritance: 10,
	KindRealization: 8,
	KindComposition: 4,
	KindAggregation: 3,
	KindAssociation: 2,
	KindDependency:  1,
	KindGeneric:     1,
}

// Valid reports whether k is one of the recognized kinds.
// The empty kind is valid and treated as generic.
func (k EdgeKind) Valid() bool {
	if k == "" {
		return true
	}
	_, ok := kindWeights[k]
	return ok
}

// Weight returns the default layout weight for the kind.
// Unknown or empty kinds weigh the same as generic edges.
func (k EdgeKind) Weight() float64 {
	if w, ok := kindWeights[k]; ok {
		return w
	}
	return kindWeights[KindGeneric]
}

// IsOrdering reports whether the kind expresses a hierarchy the ranking pass
// must respect. Ordering edges are logically reversed before ranking so a
// parent sits at a lower rank than its child.
func (k EdgeKind) IsOrdering() bool {
	return k == KindInheritance || k == KindRealization
}

// =============================================================================
// Node & Edge
// =============================================================================

// Node is a vertex in the diagram graph. Width and Height describe the
// node's box; zero values fall back to the layout option defaults.
type Node struct {
	ID     string  `json:"id"`
	Type   string  `json:"type,omitempty"`  // Ordering-relevant tag (tiered layout priority)
	Group  string  `json:"group,omitempty"` // Optional package/cluster tag
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Edge is a directed, typed connection between two nodes. Weight, when
// positive, overrides the kind's default layout weight.
type Edge struct {
	ID     string   `json:"id,omitempty"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Kind   EdgeKind `json:"kind,omitempty"`
	Weight float64  `json:"weight,omitempty"`
}

// LayoutWeight returns the edge's effective weight for layout purposes.
func (e Edge) LayoutWeight() float64 {
	if e.Weight > 0 {
		return e.Weight
	}
	return e.Kind.Weight()
}

// Descriptor returns the canonical "source-target-kind" string used in
// cache keys. Two edges with the same descriptor are layout-equivalent.
func (e Edge) Descriptor() string {
	kind := e.Kind
	if kind == "" {
		kind = KindGeneric
	}
	return e.From + "-" + e.To + "-" + string(kind)
}

// =============================================================================
// Graph
// =============================================================================

// Graph is the canonical serialization format for diagram graphs, as
// produced by the upstream document-analysis layer. The layout engine treats
// it as an opaque node/edge structure.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Normalize validates node identity and fills in missing edge IDs.
// Nodes must have unique, non-empty IDs; edges without an ID are assigned a
// fresh UUID so routed paths can be addressed per edge. Edges referencing
// unknown nodes are left in place - the layout engine drops them silently.
func (g *Graph) Normalize() error {
	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return ErrEmptyNodeID
		}
		if seen[n.ID] {
			return ErrDuplicateNodeID
		}
		seen[n.ID] = true
	}
	for i := range g.Edges {
		if g.Edges[i].ID == "" {
			g.Edges[i].ID = uuid.NewString()
		}
	}
	return nil
}
