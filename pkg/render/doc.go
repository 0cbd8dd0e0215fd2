// Package render turns expanded fractal geometry into drawable output.
//
// # Overview
//
// The emitter in this package is the last step of the geometry pipeline:
// [Emit] applies each composed transform to every vertex of its shape,
// flips the y axis so that "up" in NFSF coordinates is up on screen, and
// collects one [Polyline] per pair in expansion order.
//
//	res, err := fractal.NewExpander(reg, fractal.Options{}).Expand(ctx, "tree")
//	d := render.Emit(res.Pairs)
//	svg := sink.RenderSVG(d)
//
// No deduplication or clipping happens here. A shape without vertices
// yields an empty polyline.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They are shared by the
// drawing sinks and the reference graph renderer.
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Subpackages:
//   - [sink]: output formats for drawings (SVG, JSON, PNG, PDF)
//   - [refgraph]: Graphviz diagrams of the fractal reference graph
//
// [sink]: github.com/matzehuels/nfsf/pkg/render/sink
// [refgraph]: github.com/matzehuels/nfsf/pkg/render/refgraph
package render
