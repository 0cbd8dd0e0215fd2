package model

import (
	"fmt"
	"strings"

	"github.com/matzehuels/nfsf/pkg/geom"
)

// Kind says what a Branch points at.
type Kind int

const (
	// KindGraphic branches place a Shape and end the walk.
	KindGraphic Kind = iota + 1
	// KindFractal branches descend into another fractal definition.
	KindFractal
)

var kindNames = map[Kind]string{
	KindGraphic: "GRAPHIC",
	KindFractal: "FRACTAL",
}

// String returns the NFSF keyword for k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts an NFSF keyword to a Kind. Matching is case-sensitive,
// like every other keyword in the format.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Range bounds the accumulated scale at which a fractal branch may still
// subdivide. Both ends are inclusive.
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Contains reports whether v lies in [r.Lo, r.Hi].
func (r Range) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// String formats r the way it is written in BRANCH records.
func (r Range) String() string {
	return fmt.Sprintf("[%g:%g]", r.Lo, r.Hi)
}

// Shape is a named polyline. Vertex order is draw order; an empty vertex
// list is legal and renders as an empty path.
//
// Shapes returned by a Registry share their vertex slice with it and must
// not be modified.
type Shape struct {
	Name     string       `json:"name"`
	Vertices []geom.Point `json:"vertices"`
}

// Branch is one rule of a fractal definition.
type Branch struct {
	// TransformRef names the branch's own transform. Empty means none,
	// which behaves as the identity.
	TransformRef string `json:"transform,omitempty"`
	Range        Range  `json:"range"`
	Kind         Kind   `json:"kind"`
	// Target names a Shape for KindGraphic or a Fractal for KindFractal.
	Target string `json:"target"`
	// Line is the 1-based source line, or 0 when built programmatically.
	Line int `json:"line,omitempty"`
}

// String renders b in NFSF syntax.
func (b Branch) String() string {
	ref := b.TransformRef
	if ref == "" {
		ref = "-"
	}
	return fmt.Sprintf("BRANCH %s %s %s %s", ref, b.Range, b.Kind, b.Target)
}

// Fractal is a named, ordered set of branches. Branch order is expansion
// order and therefore draw order.
type Fractal struct {
	Name     string   `json:"name"`
	Branches []Branch `json:"branches"`
}

// describe names a branch for diagnostics: "fractal tree, branch 2 (line 14)".
func describe(f Fractal, i int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fractal %q, branch %d", f.Name, i+1)
	if line := f.Branches[i].Line; line > 0 {
		fmt.Fprintf(&b, " (line %d)", line)
	}
	return b.String()
}
