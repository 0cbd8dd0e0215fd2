// Package pkg provides the libraries behind the nfsf fractal shape compiler.
//
// # Overview
//
// nfsf turns a text description of affine transforms, polyline shapes and
// recursive fractal definitions into drawings. The pkg directory is
// organized by pipeline stage:
//
//  1. [geom] - Points and similarity transforms
//  2. [model] - Named transforms, shapes and fractals in a freezable registry
//  3. [nfsf] - Reading and writing the NFSF text format
//  4. [fractal] - Expanding a fractal into (shape, transform) pairs
//  5. [render] - Polylines in screen space and their SVG/JSON/PNG/PDF sinks
//  6. [pipeline] - Orchestration (parse → expand → render)
//
// Supporting packages: [errors] for coded errors, [config] for TOML/YAML
// settings, [io] for atomic file output, [observability] for stage hooks
// and [buildinfo] for version stamping.
//
// # Architecture
//
//	NFSF file
//	    ↓
//	[nfsf] package (parse records into a registry)
//	    ↓
//	[model] package (validate references, freeze)
//	    ↓
//	[fractal] package (depth-first expansion with cutoffs)
//	    ↓
//	[render] package (apply, flip y, encode)
//	    ↓
//	SVG/JSON/PNG/PDF output
//
// # Quick Start
//
//	doc, _ := nfsf.ParseFile("tree.nfsf")
//	_ = doc.Registry.Validate()
//	doc.Registry.Freeze()
//
//	res, _ := fractal.NewExpander(doc.Registry, fractal.Options{}).
//	    Expand(ctx, doc.Root)
//
//	svg := sink.RenderSVG(render.Emit(res.Pairs))
//
// Or let the pipeline do all of it:
//
//	result, _ := pipeline.NewRunner(logger).Execute(ctx, pipeline.Options{
//	    Input: "tree.nfsf",
//	})
package pkg
