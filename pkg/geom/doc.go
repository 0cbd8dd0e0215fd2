// Package geom provides the 2D point type and the elementary affine
// operations used to place shapes.
//
// # Transforms
//
// A [Transform] is a uniform scale, a rotation (radians, counter-clockwise)
// and a translation. [Apply] always performs them in that order:
//
//	p' = Translate(Rotate(Scale(p, t.Scale), t.Rotation), t.Translation)
//
// The order is part of the output contract: swapping any two steps changes
// the result for every non-identity transform.
//
// # Composition
//
// Because every Transform is a similarity, two of them compose into a third
// without loss. [Compose] (outer, inner) yields the transform that applies
// inner first and outer second, which is how transforms accumulate along a
// fractal path from the root down to a leaf:
//
//	acc := geom.Identity()
//	for _, t := range path {
//	    acc = geom.Compose(acc, t)
//	}
//
// All functions are pure. NaN and infinities propagate following IEEE 754.
package geom
