// Package pipeline provides the conversion pipeline for nfsf.
//
// This package implements the complete parse → expand → render pipeline that
// the CLI runs for every input file. Keeping it out of the CLI means tests and
// other front ends get the same defaults, validation and logging.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read the NFSF file, validate every reference and freeze the model
//  2. Expand: Walk the root fractal into (shape, transform) pairs
//  3. Render: Emit polylines and encode them (SVG, JSON, PNG, PDF)
//
// Descriptions without any FRACTAL record are expanded the flat way: every
// shape once, placed by all transforms in declaration order.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "tree.nfsf"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.WriteFile(pipeline.OutputPath(opts.Input, opts.Format), result.Artifact, 0o644)
//
// Run individual stages:
//
//	doc, err := runner.Parse(ctx, opts)
//	res, err := runner.Expand(ctx, doc, opts)
//	data, err := runner.Render(ctx, render.Emit(res.Pairs), opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nfsf/pkg/errors"
	"github.com/matzehuels/nfsf/pkg/fractal"
	"github.com/matzehuels/nfsf/pkg/model"
	"github.com/matzehuels/nfsf/pkg/nfsf"
	"github.com/matzehuels/nfsf/pkg/render"
	"github.com/matzehuels/nfsf/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config Files
// =============================================================================

const (
	// DefaultMaxDepth bounds fractal recursion.
	DefaultMaxDepth = fractal.DefaultMaxDepth

	// DefaultMaxPairs bounds the number of placed shapes.
	DefaultMaxPairs = fractal.DefaultMaxPairs

	// DefaultPolicy stops recursion at the first re-entry of a definition.
	DefaultPolicy = fractal.PolicyStrict

	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = sink.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = sink.DefaultHeight

	// DefaultStroke is the default polyline color.
	DefaultStroke = sink.DefaultStroke

	// DefaultStrokeWidth is the default polyline width.
	DefaultStrokeWidth = sink.DefaultStrokeWidth

	// DefaultMargin pads the viewBox when Fit is set.
	DefaultMargin = 10.0

	// DefaultPNGScale is the rsvg-convert zoom for PNG output.
	DefaultPNGScale = 1.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultFormat is the output format when none is configured.
const DefaultFormat = FormatSVG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// GraphSuffix is appended to the input path for the reference graph.
const GraphSuffix = ".graph.svg"

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one conversion.
type Options struct {
	// Parse options
	Input string `json:"input"`

	// Expand options
	Root     string         `json:"root,omitempty"` // Overrides the first declared FRACTAL
	MaxDepth int            `json:"max_depth,omitempty"`
	MaxPairs int            `json:"max_pairs,omitempty"`
	Policy   fractal.Policy `json:"policy,omitempty"`

	// Render options
	Format      string  `json:"format,omitempty"`
	Width       int     `json:"width,omitempty"`
	Height      int     `json:"height,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Fit         bool    `json:"fit,omitempty"`
	Margin      float64 `json:"margin,omitempty"`
	PNGScale    float64 `json:"png_scale,omitempty"`
	Graph       bool    `json:"graph,omitempty"` // Also render the reference graph

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the parsed and frozen description.
	Document *nfsf.Document

	// Expansion holds the placed shapes in draw order.
	Expansion *fractal.Result

	// Drawing is the emitted geometry in screen coordinates.
	Drawing render.Drawing

	// Artifact is the encoded output in Options.Format.
	Artifact []byte

	// Graph is the reference graph SVG, if Options.Graph was set.
	Graph []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Model        model.Stats
	Root         string // empty for flat expansion
	Pairs        int
	Points       int
	DeepestLevel int
	Cutoffs      int
	ParseTime    time.Duration
	ExpandTime   time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidatePolicy checks that a cycle policy is valid.
func ValidatePolicy(p fractal.Policy) error {
	_, err := fractal.ParsePolicy(string(p))
	return err
}

// OutputPath derives the output file from the input file by appending the
// format extension, so tree.nfsf becomes tree.nfsf.svg.
func OutputPath(input, format string) string {
	if format == "" {
		format = DefaultFormat
	}
	return input + "." + format
}

// GraphPath derives the reference graph file from the input file.
func GraphPath(input string) string {
	return input + GraphSuffix
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills every unset field with its default.
func (o *Options) SetDefaults() {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxPairs <= 0 {
		o.MaxPairs = DefaultMaxPairs
	}
	if o.Policy == "" {
		o.Policy = DefaultPolicy
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Stroke == "" {
		o.Stroke = DefaultStroke
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	if o.Fit && o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if o.PNGScale <= 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks fields that have no sensible default.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.Input) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input file is required")
	}
	if o.Root != "" {
		if err := errors.ValidateName("fractal", o.Root); err != nil {
			return err
		}
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := ValidatePolicy(o.Policy); err != nil {
		return err
	}
	if strings.ContainsAny(o.Stroke, `"<>&;`) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid stroke color: %q", o.Stroke)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// ExpandOptions returns the expander configuration.
func (o *Options) ExpandOptions() fractal.Options {
	return fractal.Options{
		MaxDepth: o.MaxDepth,
		MaxPairs: o.MaxPairs,
		Policy:   o.Policy,
		Logger:   o.Logger,
	}
}

// SVGOptions returns the SVG sink configuration.
func (o *Options) SVGOptions() []sink.SVGOption {
	opts := []sink.SVGOption{
		sink.WithCanvas(o.Width, o.Height),
		sink.WithStroke(o.Stroke, o.StrokeWidth),
	}
	if o.Fit {
		opts = append(opts, sink.WithFit(o.Margin))
	}
	return opts
}

// Formats lists the supported output formats in a stable order.
func Formats() []string {
	out := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}
