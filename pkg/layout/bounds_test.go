package layout

import (
	"testing"

	"github.com/graphtier/graphtier/pkg/geom"
	"github.com/graphtier/graphtier/pkg/graph"
)

func TestComputeBoundsPadding(t *testing.T) {
	opts := DefaultOptions()
	positions := map[string]geom.Point{"a": {X: 0, Y: 0}}
	nodes := map[string]graph.Node{"a": {ID: "a"}}

	bounds := computeBounds(positions, nodes, opts)

	want := geom.Rect{
		X:      -boundsPadding,
		Y:      -boundsPadding,
		Width:  opts.NodeWidth + 2*boundsPadding,
		Height: opts.NodeHeight + 2*boundsPadding,
	}
	if bounds != want {
		t.Errorf("computeBounds() = %+v, want %+v", bounds, want)
	}
}

func TestComputeBoundsUsesNodeSizes(t *testing.T) {
	opts := DefaultOptions()
	positions := map[string]geom.Point{"wide": {X: 0, Y: 0}}
	nodes := map[string]graph.Node{"wide": {ID: "wide", Width: 500, Height: 60}}

	bounds := computeBounds(positions, nodes, opts)

	if bounds.Width != 500+2*boundsPadding {
		t.Errorf("width = %v, want node width plus padding", bounds.Width)
	}
	if bounds.Height != 60+2*boundsPadding {
		t.Errorf("height = %v, want node height plus padding", bounds.Height)
	}
}

func TestComputeBoundsEmpty(t *testing.T) {
	bounds := computeBounds(nil, nil, DefaultOptions())

	if bounds != (geom.Rect{}) {
		t.Errorf("empty positions should give the zero rect, got %+v", bounds)
	}
}
