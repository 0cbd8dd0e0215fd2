package nfsf

import (
	"bufio"
	"io"
	"strconv"

	"github.com/matzehuels/nfsf/pkg/errors"
	"github.com/matzehuels/nfsf/pkg/model"
)

// Format writes doc in NFSF syntax. Parsing the output yields an equivalent
// document: transforms and shapes keep their declaration order and the
// root fractal is written first so it stays the root.
func Format(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	reg := doc.Registry

	for _, t := range reg.Transforms() {
		bw.WriteString(KeywordTransform + " " + t.Name +
			" ROTATION " + num(t.Rotation) +
			" TRANSLATION (" + num(t.Translation.X) + "," + num(t.Translation.Y) + ")" +
			" SCALE " + num(t.Scale) + "\n")
	}
	if len(reg.Transforms()) > 0 {
		bw.WriteString("\n")
	}

	for _, s := range reg.Shapes() {
		bw.WriteString(KeywordGraphic + " " + s.Name + "\n")
		for _, v := range s.Vertices {
			bw.WriteString(num(v.X) + "," + num(v.Y) + "\n")
		}
		bw.WriteString("\n")
	}

	for _, f := range rootFirst(reg.Fractals(), doc.Root) {
		bw.WriteString(KeywordFractal + " " + f.Name + "\n")
		for _, b := range f.Branches {
			ref := b.TransformRef
			if ref == "" {
				ref = NoTransform
			}
			bw.WriteString(KeywordBranch + " " + ref +
				" [" + num(b.Range.Lo) + ":" + num(b.Range.Hi) + "] " +
				b.Kind.String() + " " + b.Target + "\n")
		}
		bw.WriteString("\n")
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write nfsf")
	}
	return nil
}

func rootFirst(fs []model.Fractal, root string) []model.Fractal {
	for i, f := range fs {
		if f.Name == root && i > 0 {
			out := make([]model.Fractal, 0, len(fs))
			out = append(out, f)
			out = append(out, fs[:i]...)
			return append(out, fs[i+1:]...)
		}
	}
	return fs
}

// num formats v with the fewest digits that parse back to the same value.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
