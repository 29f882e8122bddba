// Package geom provides the small set of geometric primitives shared by the
// layout engines: points, axis-aligned rectangles, and the ray/box boundary
// intersection used to compute edge anchor points.
//
// All coordinates are in user units (typically pixels). Rectangles follow the
// top-left anchor convention: X/Y name the top-left corner, with Y growing
// downward.
package geom

// Point is a 2D coordinate in diagram space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MaxX returns the x coordinate of the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the y coordinate of the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// ContainsRect reports whether o lies fully inside r, edges included.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles that merely touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// BoundaryIntersection returns the point where the ray from the box centre
// toward target exits the box described by centre and half-extents.
//
// The vertical edge matching the ray's horizontal direction is tested first;
// if the intersection falls within the box's half-height it is accepted,
// otherwise the matching horizontal edge is used. Rays aligned with an axis
// skip the degenerate test so no division by zero occurs. A target equal to
// the centre returns the centre itself.
func BoundaryIntersection(center Point, halfW, halfH float64, target Point) Point {
	dx := target.X - center.X
	dy := target.Y - center.Y

	if dx == 0 && dy == 0 {
		return center
	}
	if dx == 0 {
		return Point{X: center.X, Y: center.Y + sign(dy)*halfH}
	}
	if dy == 0 {
		return Point{X: center.X + sign(dx)*halfW, Y: center.Y}
	}

	// Vertical edge in the ray's x direction.
	edgeX := center.X + sign(dx)*halfW
	y := center.Y + dy*(edgeX-center.X)/dx
	if y >= center.Y-halfH && y <= center.Y+halfH {
		return Point{X: edgeX, Y: y}
	}

	// Otherwise the ray exits through the horizontal edge.
	edgeY := center.Y + sign(dy)*halfH
	x := center.X + dx*(edgeY-center.Y)/dy
	return Point{X: x, Y: edgeY}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
