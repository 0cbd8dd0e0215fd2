package render

import (
	"math"

	"github.com/matzehuels/nfsf/pkg/fractal"
	"github.com/matzehuels/nfsf/pkg/geom"
)

// Polyline is an open path through its points in order.
type Polyline []geom.Point

// Drawing is an ordered list of polylines in screen coordinates (y down).
// Later polylines are drawn on top of earlier ones.
type Drawing struct {
	Polylines []Polyline
}

// Points counts the vertices of all polylines.
func (d Drawing) Points() int {
	n := 0
	for _, pl := range d.Polylines {
		n += len(pl)
	}
	return n
}

// Bounds returns the smallest axis-aligned box containing every finite
// vertex. ok is false when there is no such vertex.
func (d Drawing) Bounds() (lo, hi geom.Point, ok bool) {
	lo = geom.Pt(math.Inf(1), math.Inf(1))
	hi = geom.Pt(math.Inf(-1), math.Inf(-1))
	for _, pl := range d.Polylines {
		for _, p := range pl {
			if !finite(p) {
				continue
			}
			lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
			hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
			ok = true
		}
	}
	if !ok {
		return geom.Point{}, geom.Point{}, false
	}
	return lo, hi, true
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Emit places every pair's shape with its composed transform and flips y.
// The result has one polyline per pair, in pair order.
func Emit(pairs []fractal.Pair) Drawing {
	d := Drawing{Polylines: make([]Polyline, len(pairs))}
	for i, pr := range pairs {
		pl := Polyline(geom.ApplyAll(pr.Shape.Vertices, pr.Transform))
		for j := range pl {
			pl[j] = geom.FlipY(pl[j])
		}
		d.Polylines[i] = pl
	}
	return d
}
