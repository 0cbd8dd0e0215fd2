package geom

import (
	"fmt"
	"math"
)

// Point is a position in model space. The y axis grows upward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// String formats p with two decimals, matching the output precision.
func (p Point) String() string { return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y) }

// Scale multiplies both coordinates by factor.
func Scale(p Point, factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Rotate turns p counter-clockwise about the origin by angle radians.
func Rotate(p Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Translate adds offset to p componentwise.
func Translate(p, offset Point) Point {
	return Point{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// FlipY mirrors p across the x axis, converting from model space (y up) to
// image space (y down).
func FlipY(p Point) Point {
	return Point{X: p.X, Y: -p.Y}
}
