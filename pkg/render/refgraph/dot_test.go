package refgraph

import (
	"strings"
	"testing"

	"github.com/matzehuels/nfsf/pkg/geom"
	"github.com/matzehuels/nfsf/pkg/model"
)

func treeRegistry(t *testing.T) *model.Registry {
	t.Helper()
	reg := model.NewRegistry()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(reg.RegisterTransform(geom.Transform{Name: "left", Rotation: 0.5, Translation: geom.Pt(0, 1), Scale: 0.6}))
	must(reg.RegisterShape(model.Shape{Name: "trunk", Vertices: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}}}))
	must(reg.RegisterFractal(model.Fractal{Name: "tree", Branches: []model.Branch{
		{Kind: model.KindGraphic, Target: "trunk", Range: model.Range{Lo: 0, Hi: 1}},
		{TransformRef: "left", Kind: model.KindFractal, Target: "tree", Range: model.Range{Lo: 0.05, Hi: 1}},
	}}))
	return reg
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(treeRegistry(t), Options{})

	for _, want := range []string{
		"digraph G",
		`"fractal:tree" [label="tree", shape=box`,
		`"shape:trunk" [label="trunk", shape=ellipse`,
		`"fractal:tree" -> "shape:trunk" [label="-"]`,
		`"fractal:tree" -> "fractal:tree" [label="left [0.05:1]"]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "penwidth") {
		t.Error("no root requested, nothing should be highlighted")
	}
}

func TestToDOT_Root(t *testing.T) {
	dot := ToDOT(treeRegistry(t), Options{Root: "tree"})
	if !strings.Contains(dot, "penwidth=2.5") {
		t.Error("ToDOT() root not highlighted")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(treeRegistry(t), Options{Detailed: true})
	if !strings.Contains(dot, `tree\nbranches: 2`) {
		t.Errorf("ToDOT() detailed output missing branch count:\n%s", dot)
	}
	if !strings.Contains(dot, `trunk\nvertices: 2`) {
		t.Errorf("ToDOT() detailed output missing vertex count:\n%s", dot)
	}
}

func TestToDOT_MissingTarget(t *testing.T) {
	reg := model.NewRegistry()
	if err := reg.RegisterFractal(model.Fractal{Name: "f", Branches: []model.Branch{
		{Kind: model.KindGraphic, Target: "ghost"},
		{Kind: model.KindGraphic, Target: "ghost"},
	}}); err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(reg, Options{})
	if got := strings.Count(dot, `"shape:ghost" [label="? ghost"`); got != 1 {
		t.Errorf("placeholder declared %d times, want 1:\n%s", got, dot)
	}
	if got := strings.Count(dot, `"fractal:f" -> "shape:ghost"`); got != 2 {
		t.Errorf("edges to placeholder = %d, want 2", got)
	}
}

func TestToDOT_SameNameDifferentKinds(t *testing.T) {
	reg := model.NewRegistry()
	if err := reg.RegisterShape(model.Shape{Name: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterFractal(model.Fractal{Name: "x", Branches: []model.Branch{
		{Kind: model.KindGraphic, Target: "x"},
	}}); err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(reg, Options{})
	if !strings.Contains(dot, `"fractal:x" -> "shape:x"`) {
		t.Errorf("shape and fractal named x should be distinct nodes:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %s", got)
	}
}
