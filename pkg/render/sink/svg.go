package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/nfsf/pkg/render"
)

// Canvas and stroke defaults.
const (
	DefaultWidth       = 700
	DefaultHeight      = 700
	DefaultStroke      = "black"
	DefaultStrokeWidth = 1.0
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height int
	stroke        string
	strokeWidth   float64
	fit           bool
	margin        float64
}

// WithCanvas sets the width and height attributes. Non-positive values keep
// the default.
func WithCanvas(width, height int) SVGOption {
	return func(r *svgRenderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// WithStroke sets the stroke color and width of every polyline.
func WithStroke(color string, width float64) SVGOption {
	return func(r *svgRenderer) {
		if color != "" {
			r.stroke = color
		}
		if width > 0 {
			r.strokeWidth = width
		}
	}
}

// WithFit adds a viewBox enclosing the drawing plus margin on every side.
func WithFit(margin float64) SVGOption {
	return func(r *svgRenderer) { r.fit, r.margin = true, max(margin, 0) }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		width:       DefaultWidth,
		height:      DefaultHeight,
		stroke:      DefaultStroke,
		strokeWidth: DefaultStrokeWidth,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG writes d as an SVG document. Polylines appear in drawing order.
func RenderSVG(d render.Drawing, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	buf.WriteString(svgHeader)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d"%s>`+"\n",
		r.width, r.height, r.viewBox(d))

	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", r.stroke, formatWidth(r.strokeWidth))
	for _, pl := range d.Polylines {
		buf.WriteString(`<polyline points="`)
		for _, p := range pl {
			fmt.Fprintf(&buf, "%.2f,%.2f ", p.X, p.Y)
		}
		fmt.Fprintf(&buf, `" style="%s"/>`+"\n", style)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) viewBox(d render.Drawing) string {
	if !r.fit {
		return ""
	}
	lo, hi, ok := d.Bounds()
	if !ok {
		return ""
	}
	w, h := hi.X-lo.X+2*r.margin, hi.Y-lo.Y+2*r.margin
	if w <= 0 || h <= 0 {
		// A single point or a straight axis-aligned line still needs area.
		w, h = max(w, 1), max(h, 1)
	}
	return fmt.Sprintf(` viewBox="%.2f %.2f %.2f %.2f"`, lo.X-r.margin, lo.Y-r.margin, w, h)
}

// formatWidth keeps one decimal for whole numbers ("1.0") and full
// precision otherwise.
func formatWidth(w float64) string {
	if w == float64(int64(w)) {
		return strconv.FormatFloat(w, 'f', 1, 64)
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}
