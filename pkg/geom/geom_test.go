package geom

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	if !r.Contains(Point{X: 10, Y: 20}) {
		t.Error("Contains() should include the top-left corner")
	}
	if !r.Contains(Point{X: 110, Y: 70}) {
		t.Error("Contains() should include the bottom-right corner")
	}
	if r.Contains(Point{X: 9, Y: 20}) {
		t.Error("Contains() should exclude points left of the rect")
	}
	if r.Contains(Point{X: 60, Y: 71}) {
		t.Error("Contains() should exclude points below the rect")
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	if !outer.ContainsRect(Rect{X: 10, Y: 10, Width: 20, Height: 20}) {
		t.Error("ContainsRect() should hold for an inner rect")
	}
	if !outer.ContainsRect(outer) {
		t.Error("ContainsRect() should hold for an identical rect")
	}
	if outer.ContainsRect(Rect{X: 90, Y: 90, Width: 20, Height: 20}) {
		t.Error("ContainsRect() should fail when the rect sticks out")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	if !a.Overlaps(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("Overlaps() should detect partial overlap")
	}
	if a.Overlaps(Rect{X: 10, Y: 0, Width: 10, Height: 10}) {
		t.Error("Overlaps() should be false for edge-touching rects")
	}
	if a.Overlaps(Rect{X: 20, Y: 20, Width: 5, Height: 5}) {
		t.Error("Overlaps() should be false for disjoint rects")
	}
}

func TestBoundaryIntersection(t *testing.T) {
	center := Point{X: 100, Y: 100}
	halfW, halfH := 50.0, 25.0

	tests := []struct {
		name   string
		target Point
		want   Point
	}{
		{"right", Point{X: 300, Y: 100}, Point{X: 150, Y: 100}},
		{"left", Point{X: -100, Y: 100}, Point{X: 50, Y: 100}},
		{"below", Point{X: 100, Y: 400}, Point{X: 100, Y: 125}},
		{"above", Point{X: 100, Y: 0}, Point{X: 100, Y: 75}},
		{"diagonal shallow", Point{X: 200, Y: 110}, Point{X: 150, Y: 105}},
		{"diagonal steep", Point{X: 110, Y: 300}, Point{X: 102.5, Y: 125}},
		{"degenerate", center, center},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundaryIntersection(center, halfW, halfH, tt.target)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("BoundaryIntersection() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundaryIntersectionOnBoundary(t *testing.T) {
	center := Point{X: 0, Y: 0}
	box := Rect{X: -50, Y: -25, Width: 100, Height: 50}

	// Any exit point must lie on the box boundary.
	targets := []Point{
		{X: 123, Y: 45}, {X: -77, Y: 8}, {X: 3, Y: -99},
		{X: 51, Y: 26}, {X: -1, Y: 200},
	}
	for _, target := range targets {
		p := BoundaryIntersection(center, 50, 25, target)
		if !box.Contains(p) {
			t.Errorf("intersection %+v for target %+v is outside the box", p, target)
		}
		onVertical := math.Abs(math.Abs(p.X)-50) < 1e-9
		onHorizontal := math.Abs(math.Abs(p.Y)-25) < 1e-9
		if !onVertical && !onHorizontal {
			t.Errorf("intersection %+v for target %+v is not on the boundary", p, target)
		}
	}
}
