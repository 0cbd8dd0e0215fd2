package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/nfsf/pkg/fractal"
	"github.com/matzehuels/nfsf/pkg/geom"
	"github.com/matzehuels/nfsf/pkg/model"
	"github.com/matzehuels/nfsf/pkg/render"
)

func triangle() render.Drawing {
	return render.Emit([]fractal.Pair{{
		Shape:     model.Shape{Name: "tri", Vertices: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
		Transform: geom.Identity(),
	}})
}

func TestRenderSVG_Document(t *testing.T) {
	got := string(RenderSVG(triangle()))

	want := `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="700" height="700">
<polyline points="0.00,-0.00 1.00,-0.00 1.00,-1.00 " style="fill:none;stroke:black;stroke-width:1.0"/>
</svg>
`
	if got != want {
		t.Errorf("RenderSVG() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSVG_Empty(t *testing.T) {
	got := string(RenderSVG(render.Drawing{}))
	if strings.Contains(got, "<polyline") {
		t.Error("empty drawing should have no polylines")
	}
	if !strings.HasSuffix(got, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestRenderSVG_EmptyPolyline(t *testing.T) {
	d := render.Drawing{Polylines: []render.Polyline{{}}}
	got := string(RenderSVG(d))
	if !strings.Contains(got, `<polyline points="" style=`) {
		t.Errorf("empty polyline not rendered as empty path:\n%s", got)
	}
}

func TestRenderSVG_Options(t *testing.T) {
	tests := []struct {
		name string
		opts []SVGOption
		want []string
		not  []string
	}{
		{
			name: "canvas",
			opts: []SVGOption{WithCanvas(1024, 512)},
			want: []string{`width="1024" height="512"`},
		},
		{
			name: "non-positive canvas keeps default",
			opts: []SVGOption{WithCanvas(0, -1)},
			want: []string{`width="700" height="700"`},
		},
		{
			name: "stroke",
			opts: []SVGOption{WithStroke("#336699", 0.25)},
			want: []string{"stroke:#336699;stroke-width:0.25"},
		},
		{
			name: "whole stroke width",
			opts: []SVGOption{WithStroke("", 2)},
			want: []string{"stroke:black;stroke-width:2.0"},
		},
		{
			name: "no viewBox by default",
			not:  []string{"viewBox"},
		},
		{
			name: "fit",
			opts: []SVGOption{WithFit(1)},
			want: []string{`viewBox="-1.00 -2.00 3.00 3.00"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(RenderSVG(triangle(), tt.opts...))
			for _, s := range tt.want {
				if !strings.Contains(got, s) {
					t.Errorf("output missing %q:\n%s", s, got)
				}
			}
			for _, s := range tt.not {
				if strings.Contains(got, s) {
					t.Errorf("output should not contain %q:\n%s", s, got)
				}
			}
		})
	}
}

func TestRenderSVG_FitDegenerate(t *testing.T) {
	d := render.Drawing{Polylines: []render.Polyline{{{X: 3, Y: 3}}}}
	got := string(RenderSVG(d, WithFit(0)))
	if !strings.Contains(got, `viewBox="3.00 3.00 1.00 1.00"`) {
		t.Errorf("degenerate bounds not widened:\n%s", got)
	}
}

func TestRenderSVG_FitEmptyDrawing(t *testing.T) {
	got := string(RenderSVG(render.Drawing{}, WithFit(5)))
	if strings.Contains(got, "viewBox") {
		t.Error("empty drawing should not get a viewBox")
	}
}

func TestFormatWidth(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0.5, "0.5"},
		{1.25, "1.25"},
		{3, "3.0"},
	}
	for _, tt := range tests {
		if got := formatWidth(tt.in); got != tt.want {
			t.Errorf("formatWidth(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
