package geom

import "fmt"

// Transform is a named similarity transform. Scale may be any real number;
// zero collapses geometry to the translation point and negative values
// mirror through the origin.
type Transform struct {
	Name        string  `json:"name,omitempty"`
	Rotation    float64 `json:"rotation"`
	Translation Point   `json:"translation"`
	Scale       float64 `json:"scale"`
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return Transform{Scale: 1}
}

// IsIdentity reports whether t is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t.Rotation == 0 && t.Scale == 1 && t.Translation == (Point{})
}

// String describes t for logs and diagnostics.
func (t Transform) String() string {
	name := t.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("%s{rot=%g trans=%s scale=%g}", name, t.Rotation, t.Translation, t.Scale)
}

// Apply maps p through t: scale, then rotate, then translate.
func Apply(p Point, t Transform) Point {
	p = Scale(p, t.Scale)
	p = Rotate(p, t.Rotation)
	return Translate(p, t.Translation)
}

// ApplyAll maps every point of pts through t into a new slice.
// The result has the same length and order as pts.
func ApplyAll(pts []Point, t Transform) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Apply(p, t)
	}
	return out
}

// Compose returns the unnamed transform equivalent to applying inner and
// then outer, so that Apply(p, Compose(outer, inner)) equals
// Apply(Apply(p, inner), outer) up to floating point rounding.
func Compose(outer, inner Transform) Transform {
	return Transform{
		Rotation:    outer.Rotation + inner.Rotation,
		Translation: Apply(inner.Translation, outer),
		Scale:       outer.Scale * inner.Scale,
	}
}

// Chain composes ts so that ts[0] is applied first and the last element
// last. An empty chain is the identity.
func Chain(ts ...Transform) Transform {
	acc := Identity()
	for _, t := range ts {
		acc = Compose(t, acc)
	}
	return acc
}
