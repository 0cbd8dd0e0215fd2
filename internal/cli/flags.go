package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nfsf/pkg/config"
	"github.com/matzehuels/nfsf/pkg/fractal"
	"github.com/matzehuels/nfsf/pkg/pipeline"
)

// flags holds the values bound to the root command's flags.
type flags struct {
	config string

	root     string
	maxDepth int
	maxPairs int
	policy   string

	format      string
	width       int
	height      int
	stroke      string
	strokeWidth float64
	fit         bool
	margin      float64
	graph       bool
}

func (f *flags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "config file (.toml, .yaml)")

	fs.StringVar(&f.root, "root", "", "fractal to expand (default: first FRACTAL in the file)")
	fs.IntVar(&f.maxDepth, "max-depth", pipeline.DefaultMaxDepth, "maximum fractal nesting depth")
	fs.IntVar(&f.maxPairs, "max-pairs", pipeline.DefaultMaxPairs, "maximum number of placed shapes")
	fs.StringVar(&f.policy, "policy", string(pipeline.DefaultPolicy), "recursion policy: strict or bounded")

	fs.StringVarP(&f.format, "format", "f", pipeline.DefaultFormat, "output format: "+strings.Join(pipeline.Formats(), ", "))
	fs.IntVar(&f.width, "width", pipeline.DefaultWidth, "canvas width in pixels")
	fs.IntVar(&f.height, "height", pipeline.DefaultHeight, "canvas height in pixels")
	fs.StringVar(&f.stroke, "stroke", pipeline.DefaultStroke, "polyline color")
	fs.Float64Var(&f.strokeWidth, "stroke-width", pipeline.DefaultStrokeWidth, "polyline width")
	fs.BoolVar(&f.fit, "fit", false, "set a viewBox that fits the drawing")
	fs.Float64Var(&f.margin, "margin", pipeline.DefaultMargin, "viewBox padding with --fit")
	fs.BoolVar(&f.graph, "graph", false, "also write <input>.graph.svg with the reference graph")
}

// options resolves pipeline options from defaults, the config file and
// the flags, in increasing precedence. Only flags the user set override
// the config file.
func (f *flags) options(cmd *cobra.Command) (pipeline.Options, error) {
	var opts pipeline.Options

	if f.config != "" {
		fc, err := config.Load(f.config)
		if err != nil {
			return opts, err
		}
		if err := fc.Apply(f.config, &opts); err != nil {
			return opts, err
		}
	}

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("root", func() { opts.Root = f.root })
	set("max-depth", func() { opts.MaxDepth = f.maxDepth })
	set("max-pairs", func() { opts.MaxPairs = f.maxPairs })
	set("policy", func() { opts.Policy = fractal.Policy(f.policy) })
	set("format", func() { opts.Format = f.format })
	set("width", func() { opts.Width = f.width })
	set("height", func() { opts.Height = f.height })
	set("stroke", func() { opts.Stroke = f.stroke })
	set("stroke-width", func() { opts.StrokeWidth = f.strokeWidth })
	set("fit", func() { opts.Fit = f.fit })
	set("margin", func() { opts.Margin = f.margin })
	set("graph", func() { opts.Graph = f.graph })

	opts.SetDefaults()
	return opts, nil
}
