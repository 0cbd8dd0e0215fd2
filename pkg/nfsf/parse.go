package nfsf

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/nfsf/pkg/errors"
	"github.com/matzehuels/nfsf/pkg/geom"
	"github.com/matzehuels/nfsf/pkg/model"
)

// Record keywords.
const (
	KeywordTransform = "TRANSFORM"
	KeywordGraphic   = "GRAPHIC"
	KeywordFractal   = "FRACTAL"
	KeywordBranch    = "BRANCH"
)

// NoTransform marks a BRANCH without a transform of its own.
const NoTransform = "-"

const commentPrefix = "//"

// maxLineLength bounds a single input line. Coordinates lists are one pair
// per line, so long lines only come from malformed input.
const maxLineLength = 1 << 20

var (
	transformRE = regexp.MustCompile(`^TRANSFORM\s+(\S+)\s+ROTATION\s+(\S+)\s+TRANSLATION\s*\(\s*([^,\s]+)\s*,\s*([^)\s]+)\s*\)\s+SCALE\s+(\S+)$`)
	graphicRE   = regexp.MustCompile(`^GRAPHIC\s+(\S+)$`)
	fractalRE   = regexp.MustCompile(`^FRACTAL\s+(\S+)$`)
	branchRE    = regexp.MustCompile(`^BRANCH\s+(\S+)\s+\[\s*([^:\]\s]+)\s*:\s*([^\]\s]+)\s*\]\s+(\S+)\s+(\S+)$`)
	coordRE     = regexp.MustCompile(`^([^,\s]+)\s*,\s*(\S+)$`)
)

// Document is a parsed NFSF description.
type Document struct {
	// Registry holds every declared entity. It is not frozen or validated;
	// callers decide when registration is over.
	Registry *model.Registry
	// Root is the first declared fractal, or empty if there is none.
	Root string
}

// ParseFile reads and parses the NFSF file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads an NFSF description from r.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{
		doc: &Document{Registry: model.NewRegistry()},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		p.line++
		if err := p.feed(strings.TrimSpace(scanner.Text())); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read input at line %d", p.line+1)
	}
	if err := p.flush(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

type state int

const (
	stateTop state = iota
	stateGraphic
	stateFractal
)

// parser is a line-driven state machine. An open GRAPHIC or FRACTAL block
// is registered when it is closed by a blank line, another record, or the
// end of input.
type parser struct {
	doc   *Document
	line  int
	state state

	shape    model.Shape
	fractal  model.Fractal
	openedAt int
}

func (p *parser) feed(text string) error {
	if strings.HasPrefix(text, commentPrefix) {
		return nil
	}

	switch p.state {
	case stateGraphic:
		switch {
		case text == "":
			return p.flush()
		case isRecord(text):
			if err := p.flush(); err != nil {
				return err
			}
			return p.record(text)
		}
		pt, err := p.coordinate(text)
		if err != nil {
			return err
		}
		p.shape.Vertices = append(p.shape.Vertices, pt)
		return nil

	case stateFractal:
		switch {
		case text == "":
			return p.flush()
		case keyword(text) == KeywordBranch:
			b, err := p.branch(text)
			if err != nil {
				return err
			}
			p.fractal.Branches = append(p.fractal.Branches, b)
			return nil
		case isRecord(text):
			if err := p.flush(); err != nil {
				return err
			}
			return p.record(text)
		}
		return errors.Syntax(p.line, text, "expected BRANCH or blank line inside FRACTAL %q", p.fractal.Name)
	}

	if text == "" {
		return nil
	}
	return p.record(text)
}

// record dispatches a top-level record line.
func (p *parser) record(text string) error {
	switch kw := keyword(text); kw {
	case KeywordTransform:
		t, err := p.transform(text)
		if err != nil {
			return err
		}
		return p.register(p.doc.Registry.RegisterTransform(t))

	case KeywordGraphic:
		m := graphicRE.FindStringSubmatch(text)
		if m == nil {
			return errors.Syntax(p.line, text, "malformed GRAPHIC record, want GRAPHIC <name>")
		}
		p.shape = model.Shape{Name: m[1]}
		p.state, p.openedAt = stateGraphic, p.line
		return nil

	case KeywordFractal:
		m := fractalRE.FindStringSubmatch(text)
		if m == nil {
			return errors.Syntax(p.line, text, "malformed FRACTAL record, want FRACTAL <name>")
		}
		p.fractal = model.Fractal{Name: m[1]}
		p.state, p.openedAt = stateFractal, p.line
		return nil

	case KeywordBranch:
		return errors.Syntax(p.line, text, "BRANCH outside of a FRACTAL block")

	default:
		return errors.Syntax(p.line, text, "unrecognized record %q", kw)
	}
}

// flush registers the open block, if any, and returns to the top level.
func (p *parser) flush() error {
	var err error
	line := p.openedAt

	switch p.state {
	case stateGraphic:
		err = p.doc.Registry.RegisterShape(p.shape)
	case stateFractal:
		err = p.doc.Registry.RegisterFractal(p.fractal)
		if err == nil && p.doc.Root == "" {
			p.doc.Root = p.fractal.Name
		}
	}

	p.state = stateTop
	p.shape, p.fractal = model.Shape{}, model.Fractal{}
	if err != nil {
		return errors.Wrap(errors.GetCode(err), err, "line %d", line)
	}
	return nil
}

// register adds line context to a registration error from a one-line record.
func (p *parser) register(err error) error {
	if err != nil {
		return errors.Wrap(errors.GetCode(err), err, "line %d", p.line)
	}
	return nil
}

func (p *parser) transform(text string) (geom.Transform, error) {
	m := transformRE.FindStringSubmatch(text)
	if m == nil {
		return geom.Transform{}, errors.Syntax(p.line, text,
			"malformed TRANSFORM record, want TRANSFORM <name> ROTATION <radians> TRANSLATION (<x>,<y>) SCALE <factor>")
	}
	nums, err := p.floats(text, m[2:]...)
	if err != nil {
		return geom.Transform{}, err
	}
	return geom.Transform{
		Name:        m[1],
		Rotation:    nums[0],
		Translation: geom.Pt(nums[1], nums[2]),
		Scale:       nums[3],
	}, nil
}

func (p *parser) branch(text string) (model.Branch, error) {
	m := branchRE.FindStringSubmatch(text)
	if m == nil {
		return model.Branch{}, errors.Syntax(p.line, text,
			"malformed BRANCH record, want BRANCH <transform|-> [<lo>:<hi>] <GRAPHIC|FRACTAL> <target>")
	}
	nums, err := p.floats(text, m[2], m[3])
	if err != nil {
		return model.Branch{}, err
	}
	kind, ok := model.ParseKind(m[4])
	if !ok {
		return model.Branch{}, errors.Syntax(p.line, text, "branch kind must be GRAPHIC or FRACTAL, got %q", m[4])
	}

	ref := m[1]
	if ref == NoTransform {
		ref = ""
	}
	return model.Branch{
		TransformRef: ref,
		Range:        model.Range{Lo: nums[0], Hi: nums[1]},
		Kind:         kind,
		Target:       m[5],
		Line:         p.line,
	}, nil
}

func (p *parser) coordinate(text string) (geom.Point, error) {
	m := coordRE.FindStringSubmatch(text)
	if m == nil {
		return geom.Point{}, errors.Syntax(p.line, text, "malformed coordinate in GRAPHIC %q, want <x>,<y>", p.shape.Name)
	}
	nums, err := p.floats(text, m[1], m[2])
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(nums[0], nums[1]), nil
}

func (p *parser) floats(text string, fields ...string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Syntax(p.line, text, "invalid number %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// keyword returns the first whitespace-separated token of text.
func keyword(text string) string {
	if i := strings.IndexFunc(text, isSpace); i >= 0 {
		return text[:i]
	}
	return text
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// isRecord reports whether text starts a top-level record.
func isRecord(text string) bool {
	switch keyword(text) {
	case KeywordTransform, KeywordGraphic, KeywordFractal:
		return true
	}
	return false
}
