package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nfsf/pkg/errors"
	"github.com/matzehuels/nfsf/pkg/fractal"
	"github.com/matzehuels/nfsf/pkg/nfsf"
	"github.com/matzehuels/nfsf/pkg/observability"
	"github.com/matzehuels/nfsf/pkg/render"
	"github.com/matzehuels/nfsf/pkg/render/refgraph"
	"github.com/matzehuels/nfsf/pkg/render/sink"
)

// Runner executes pipeline stages and reports them to its logger and to the
// registered observability hooks.
//
// The Runner keeps no per-run state, so one Runner may serve several
// conversions concurrently with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → expand → render pipeline. Nothing is
// written to disk; the caller persists Result.Artifact.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	doc, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Document = doc
	result.Stats.Model = doc.Registry.Stats()
	result.Stats.ParseTime = time.Since(parseStart)

	r.Logger.Info("parsed input",
		"file", opts.Input,
		"transforms", result.Stats.Model.Transforms,
		"shapes", result.Stats.Model.Shapes,
		"fractals", result.Stats.Model.Fractals,
		"duration", result.Stats.ParseTime)

	// Stage 2: Expand
	expandStart := time.Now()
	res, err := r.Expand(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("expand: %w", err)
	}
	result.Expansion = res
	result.Stats.Root = res.Root
	result.Stats.Pairs = res.Stats.Pairs
	result.Stats.DeepestLevel = res.Stats.DeepestLevel
	result.Stats.Cutoffs = res.Stats.TotalCutoffs()
	result.Stats.ExpandTime = time.Since(expandStart)

	r.Logger.Info("expanded fractal",
		"root", rootLabel(res.Root),
		"pairs", res.Stats.Pairs,
		"depth", res.Stats.DeepestLevel,
		"cutoffs", result.Stats.Cutoffs,
		"duration", result.Stats.ExpandTime)

	// Stage 3: Render
	renderStart := time.Now()
	result.Drawing = render.Emit(res.Pairs)
	result.Stats.Points = result.Drawing.Points()
	result.Artifact, err = r.Render(ctx, result.Drawing, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if opts.Graph {
		result.Graph, err = r.RenderGraph(ctx, doc, res.Root)
		if err != nil {
			return nil, fmt.Errorf("render graph: %w", err)
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"polylines", len(result.Drawing.Polylines),
		"points", result.Stats.Points,
		"bytes", len(result.Artifact),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse reads opts.Input, checks every branch reference and freezes the
// registry. A document that fails validation is never returned.
func (r *Runner) Parse(ctx context.Context, opts Options) (doc *nfsf.Document, err error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Input)
	start := time.Now()
	defer func() {
		n := 0
		if doc != nil {
			s := doc.Registry.Stats()
			n = s.Transforms + s.Shapes + s.Fractals
		}
		hooks.OnParseComplete(ctx, opts.Input, n, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err = nfsf.ParseFile(opts.Input)
	if err != nil {
		return nil, err
	}
	if err := doc.Registry.Validate(); err != nil {
		return nil, err
	}
	doc.Registry.Freeze()
	return doc, nil
}

// Expand walks the root fractal of doc: opts.Root if set, else the first
// declared FRACTAL. Without any FRACTAL, and with no root requested, every
// shape is placed once by the chain of all transforms.
func (r *Runner) Expand(ctx context.Context, doc *nfsf.Document, opts Options) (res *fractal.Result, err error) {
	r.applyLogger(&opts)
	root := opts.Root
	if root == "" {
		root = doc.Root
	}

	hooks := observability.Pipeline()
	hooks.OnExpandStart(ctx, root)
	start := time.Now()
	defer func() {
		n := 0
		if res != nil {
			n = res.Stats.Pairs
		}
		hooks.OnExpandComplete(ctx, root, n, time.Since(start), err)
	}()

	if root == "" {
		r.Logger.Debug("no fractal declared, placing every shape")
		return fractal.ExpandFlat(doc.Registry), nil
	}
	return fractal.NewExpander(doc.Registry, opts.ExpandOptions()).Expand(ctx, root)
}

// Render encodes d in opts.Format.
func (r *Runner) Render(ctx context.Context, d render.Drawing, opts Options) (data []byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format, len(d.Polylines))
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	svgOpts := opts.SVGOptions()
	switch opts.Format {
	case FormatSVG:
		return sink.RenderSVG(d, svgOpts...), nil
	case FormatJSON:
		data, err = sink.RenderJSON(d, sink.WithJSONCanvas(opts.Width, opts.Height))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
		return data, nil
	case FormatPNG:
		return sink.RenderPNG(d, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.PNGScale))
	case FormatPDF:
		return sink.RenderPDF(d, sink.WithPDFSVGOptions(svgOpts...))
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", opts.Format)
}

// RenderGraph draws the reference graph of doc as SVG, highlighting root.
func (r *Runner) RenderGraph(ctx context.Context, doc *nfsf.Document, root string) ([]byte, error) {
	dot := refgraph.ToDOT(doc.Registry, refgraph.Options{Root: root, Detailed: true})
	r.Logger.Debug("rendering reference graph", "dot_bytes", len(dot))
	return refgraph.RenderSVG(ctx, dot)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func rootLabel(root string) string {
	if root == "" {
		return "(flat)"
	}
	return root
}
