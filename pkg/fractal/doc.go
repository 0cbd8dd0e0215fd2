// Package fractal expands a tree of fractal definitions into a flat,
// ordered list of (shape, transform) pairs ready for rendering.
//
// # Algorithm
//
// [Expander.Expand] walks depth-first from a root definition, carrying the
// transform accumulated along the current path (identity at the root), the
// current depth, and the set of definition names on the path.
//
//   - A GRAPHIC branch emits its shape with the accumulated transform
//     composed with the branch's own transform.
//   - A FRACTAL branch composes its own transform and descends into the
//     target definition, unless a cutoff applies.
//
// Pairs come out in depth-first, branch-declaration order. Later pairs draw
// over earlier ones.
//
// # Cutoffs
//
// Reference graphs may be cyclic, so recursion is always bounded. A FRACTAL
// branch stops (without error) when:
//
//   - its target is already on the current path and the policy is
//     [PolicyStrict];
//   - descending would exceed [Options.MaxDepth];
//   - the magnitude of the composed scale falls outside the branch range.
//
// With [PolicyBounded] re-entering a definition is allowed and only the
// depth and range guards stop recursion, which is what makes self-similar
// figures such as trees and snowflakes possible.
//
// An unknown reference aborts the whole expansion; no partial result is
// returned.
package fractal
