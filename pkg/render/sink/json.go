package sink

import (
	"encoding/json"

	"github.com/matzehuels/nfsf/pkg/geom"
	"github.com/matzehuels/nfsf/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	width, height int
}

// WithJSONCanvas records the canvas size in the output.
func WithJSONCanvas(width, height int) JSONOption {
	return func(r *jsonRenderer) { r.width, r.height = width, height }
}

type jsonOutput struct {
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Polylines [][]geom.Point `json:"polylines"`
}

// RenderJSON exports the drawing as pretty-printed JSON. Polylines keep
// drawing order; empty polylines are written as empty arrays.
//
// Non-finite coordinates cannot be represented in JSON and make RenderJSON
// fail.
func RenderJSON(d render.Drawing, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:     r.width,
		Height:    r.height,
		Polylines: make([][]geom.Point, len(d.Polylines)),
	}
	for i, pl := range d.Polylines {
		pts := make([]geom.Point, len(pl))
		copy(pts, pl)
		out.Polylines[i] = pts
	}
	return json.MarshalIndent(out, "", "  ")
}
