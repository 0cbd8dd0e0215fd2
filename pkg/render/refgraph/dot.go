package refgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/nfsf/pkg/errors"
	"github.com/matzehuels/nfsf/pkg/model"
)

// Source lists the entities to draw. *model.Registry implements it.
type Source interface {
	Shapes() []model.Shape
	Fractals() []model.Fractal
}

// Options configures reference graph rendering.
type Options struct {
	// Root is highlighted with a bold outline when set.
	Root string
	// Detailed adds vertex and branch counts to node labels.
	Detailed bool
}

// ToDOT converts the fractal references of src to Graphviz DOT.
// Nodes and edges follow declaration order, so equal input yields
// byte-identical output.
func ToDOT(src Source, opts Options) string {
	shapes, fractals := src.Shapes(), src.Fractals()
	declared := make(map[string]bool, len(shapes)+len(fractals))

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, f := range fractals {
		key := nodeID(model.KindFractal, f.Name)
		declared[key] = true
		attrs := []string{
			fmt.Sprintf("label=%q", fractalLabel(f, opts.Detailed)),
			"shape=box", "style=\"rounded,filled\"", "fillcolor=white",
		}
		if f.Name == opts.Root {
			attrs = append(attrs, "penwidth=2.5")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", key, strings.Join(attrs, ", "))
	}
	for _, s := range shapes {
		key := nodeID(model.KindGraphic, s.Name)
		declared[key] = true
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, style=filled, fillcolor=lightgrey];\n",
			key, shapeLabel(s, opts.Detailed))
	}

	buf.WriteString("\n")
	missing := make(map[string]bool)
	for _, f := range fractals {
		from := nodeID(model.KindFractal, f.Name)
		for _, b := range f.Branches {
			to := nodeID(b.Kind, b.Target)
			if !declared[to] && !missing[to] {
				missing[to] = true
				fmt.Fprintf(&buf, "  %q [label=%q, shape=box, style=dashed, fontcolor=red];\n", to, "? "+b.Target)
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", from, to, edgeLabel(b))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID keeps shapes and fractals apart since names are only unique per
// category.
func nodeID(k model.Kind, name string) string {
	if k == model.KindGraphic {
		return "shape:" + name
	}
	return "fractal:" + name
}

func fractalLabel(f model.Fractal, detailed bool) string {
	if !detailed {
		return f.Name
	}
	return fmt.Sprintf("%s\nbranches: %d", f.Name, len(f.Branches))
}

func shapeLabel(s model.Shape, detailed bool) string {
	if !detailed {
		return s.Name
	}
	return fmt.Sprintf("%s\nvertices: %d", s.Name, len(s.Vertices))
}

func edgeLabel(b model.Branch) string {
	ref := b.TransformRef
	if ref == "" {
		ref = "-"
	}
	if b.Kind == model.KindGraphic {
		return ref
	}
	return ref + " " + b.Range.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg element with one
// whose size matches its viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
