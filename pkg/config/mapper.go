package config

import (
	"github.com/matzehuels/nfsf/pkg/errors"
	"github.com/matzehuels/nfsf/pkg/fractal"
	"github.com/matzehuels/nfsf/pkg/pipeline"
)

// Apply copies every value set in fc onto opts. Values are checked here so
// a bad config names its own field instead of surfacing later as an
// options error.
func (fc FileConfig) Apply(path string, opts *pipeline.Options) error {
	if fc.Root != "" {
		if err := errors.ValidateName("fractal", fc.Root); err != nil {
			return invalidField(path, "root", err)
		}
		opts.Root = fc.Root
	}
	if fc.Format != "" {
		if err := pipeline.ValidateFormat(fc.Format); err != nil {
			return invalidField(path, "format", err)
		}
		opts.Format = fc.Format
	}
	if fc.Policy != "" {
		p, err := fractal.ParsePolicy(fc.Policy)
		if err != nil {
			return invalidField(path, "policy", err)
		}
		opts.Policy = p
	}

	ints := []struct {
		name string
		v    int
		dst  *int
	}{
		{"max_depth", fc.MaxDepth, &opts.MaxDepth},
		{"max_pairs", fc.MaxPairs, &opts.MaxPairs},
		{"render.width", fc.Render.Width, &opts.Width},
		{"render.height", fc.Render.Height, &opts.Height},
	}
	for _, f := range ints {
		if f.v < 0 {
			return invalidField(path, f.name, errors.New(errors.ErrCodeInvalidInput, "must not be negative, got %d", f.v))
		}
		if f.v > 0 {
			*f.dst = f.v
		}
	}

	floats := []struct {
		name string
		v    float64
		dst  *float64
	}{
		{"render.stroke_width", fc.Render.StrokeWidth, &opts.StrokeWidth},
		{"render.margin", fc.Render.Margin, &opts.Margin},
		{"render.png_scale", fc.Render.PNGScale, &opts.PNGScale},
	}
	for _, f := range floats {
		if f.v < 0 {
			return invalidField(path, f.name, errors.New(errors.ErrCodeInvalidInput, "must not be negative, got %g", f.v))
		}
		if f.v > 0 {
			*f.dst = f.v
		}
	}

	if fc.Render.Stroke != "" {
		opts.Stroke = fc.Render.Stroke
	}
	opts.Fit = opts.Fit || fc.Render.Fit
	opts.Graph = opts.Graph || fc.Graph
	return nil
}

func invalidField(path, field string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s: field %s", path, field)
}
