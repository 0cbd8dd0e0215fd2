// Package sink provides output format renderers for drawings.
//
// # Overview
//
// A "sink" turns a [render.Drawing] into bytes for a file:
//
//   - SVG: one polyline element per polyline, in drawing order
//   - JSON: the raw point lists for external tools
//   - PDF and PNG: the SVG output converted by rsvg-convert
//
// # SVG Output
//
// [RenderSVG] writes an SVG 1.1 document with a fixed canvas (700x700 by
// default). Coordinates are printed with two decimals and every point is
// followed by a space:
//
//	<polyline points="0.00,-0.00 1.00,-0.00 " style="fill:none;stroke:black;stroke-width:1.0"/>
//
// Drawings live around the origin and extend into negative y, so most of a
// typical fractal falls outside the default viewport. [WithFit] adds a
// viewBox around the drawing's bounds so the whole image is visible.
//
//	svg := sink.RenderSVG(d,
//	    sink.WithCanvas(1000, 1000),
//	    sink.WithStroke("navy", 0.5),
//	    sink.WithFit(10),
//	)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render SVG first, then convert via
// [render.ToPDF] and [render.ToPNG]. These require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.Drawing]: github.com/matzehuels/nfsf/pkg/render.Drawing
// [render.ToPDF]: github.com/matzehuels/nfsf/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/nfsf/pkg/render.ToPNG
package sink
