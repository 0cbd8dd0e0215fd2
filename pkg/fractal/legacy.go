package fractal

import (
	"github.com/matzehuels/nfsf/pkg/geom"
	"github.com/matzehuels/nfsf/pkg/model"
)

// Catalog lists declared entities in declaration order.
// *model.Registry implements it.
type Catalog interface {
	Transforms() []geom.Transform
	Shapes() []model.Shape
}

// ExpandFlat handles descriptions that declare no fractal at all: every
// shape is emitted once, in declaration order, placed by the chain of all
// declared transforms with the first declared transform applied first.
func ExpandFlat(c Catalog) *Result {
	t := geom.Chain(c.Transforms()...)
	shapes := c.Shapes()

	pairs := make([]Pair, 0, len(shapes))
	for _, s := range shapes {
		pairs = append(pairs, Pair{Shape: s, Transform: t})
	}
	return &Result{
		Pairs: pairs,
		Stats: Stats{Pairs: len(pairs), Cutoffs: map[Cutoff]int{}},
	}
}
