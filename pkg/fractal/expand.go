package fractal

import (
	"context"
	"fmt"
	"math"

	"github.com/matzehuels/nfsf/pkg/errors"
	"github.com/matzehuels/nfsf/pkg/geom"
	"github.com/matzehuels/nfsf/pkg/model"
)

// Resolver looks up entities by name. *model.Registry implements it.
type Resolver interface {
	Transform(name string) (geom.Transform, error)
	Shape(name string) (model.Shape, error)
	Fractal(name string) (model.Fractal, error)
}

// Pair is one shape placed by one composed transform.
type Pair struct {
	Shape     model.Shape
	Transform geom.Transform
	// Depth is the nesting level of the definition that emitted the pair.
	Depth int
}

// Cutoff names the reason a FRACTAL branch was not descended into.
type Cutoff int

const (
	CutoffCycle Cutoff = iota
	CutoffDepth
	CutoffRange
)

func (c Cutoff) String() string {
	switch c {
	case CutoffCycle:
		return "cycle"
	case CutoffDepth:
		return "depth"
	case CutoffRange:
		return "range"
	}
	return fmt.Sprintf("Cutoff(%d)", int(c))
}

// Stats describes one expansion.
type Stats struct {
	Pairs        int
	DeepestLevel int
	Cutoffs      map[Cutoff]int
}

// TotalCutoffs sums cutoffs over all reasons.
func (s Stats) TotalCutoffs() int {
	n := 0
	for _, c := range s.Cutoffs {
		n += c
	}
	return n
}

// Result holds the pairs of an expansion in draw order.
type Result struct {
	Root  string
	Pairs []Pair
	Stats Stats
}

// Expander walks fractal definitions. It only reads from its Resolver, so
// one Expander may run several expansions concurrently as long as the
// resolver is not modified.
type Expander struct {
	res  Resolver
	opts Options
}

// NewExpander creates an Expander over res.
func NewExpander(res Resolver, opts Options) *Expander {
	opts.setDefaults()
	return &Expander{res: res, opts: opts}
}

// Options returns the effective options, defaults applied.
func (e *Expander) Options() Options { return e.opts }

// walk is the mutable state of a single expansion.
type walk struct {
	*Expander
	ctx        context.Context
	root       string
	onPath     map[string]int
	out        []Pair
	stats      Stats
	transforms map[string]geom.Transform
}

// Expand expands the fractal definition named root.
func (e *Expander) Expand(ctx context.Context, root string) (*Result, error) {
	f, err := e.res.Fractal(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnknownReference, err, "resolve root")
	}

	w := &walk{
		Expander:   e,
		ctx:        ctx,
		root:       root,
		onPath:     map[string]int{root: 1},
		stats:      Stats{Cutoffs: make(map[Cutoff]int)},
		transforms: make(map[string]geom.Transform),
	}
	if err := w.definition(f, geom.Identity(), 0); err != nil {
		return nil, err
	}

	w.stats.Pairs = len(w.out)
	e.opts.Logger.Debug("expansion finished",
		"root", root,
		"pairs", w.stats.Pairs,
		"deepest", w.stats.DeepestLevel,
		"cutoffs", w.stats.TotalCutoffs())
	return &Result{Root: root, Pairs: w.out, Stats: w.stats}, nil
}

// definition expands every branch of f at the given depth.
func (w *walk) definition(f model.Fractal, acc geom.Transform, depth int) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	if depth > w.stats.DeepestLevel {
		w.stats.DeepestLevel = depth
	}

	for _, b := range f.Branches {
		own, err := w.own(b)
		if err != nil {
			return err
		}
		next := geom.Compose(acc, own)

		switch b.Kind {
		case model.KindGraphic:
			if err := w.graphic(b, next, depth); err != nil {
				return err
			}
		case model.KindFractal:
			if err := w.fractal(f, b, next, depth); err != nil {
				return err
			}
		default:
			return errors.New(errors.ErrCodeInvalidInput, "fractal %q: invalid branch kind %v", f.Name, b.Kind)
		}
	}
	return nil
}

func (w *walk) graphic(b model.Branch, t geom.Transform, depth int) error {
	s, err := w.res.Shape(b.Target)
	if err != nil {
		return err
	}
	if len(w.out) >= w.opts.MaxPairs {
		return errors.New(errors.ErrCodeLimitExceeded,
			"expansion of %q exceeded %d shapes; lower the depth or tighten branch ranges", w.root, w.opts.MaxPairs)
	}
	w.out = append(w.out, Pair{Shape: s, Transform: t, Depth: depth})
	return nil
}

func (w *walk) fractal(parent model.Fractal, b model.Branch, next geom.Transform, depth int) error {
	target, err := w.res.Fractal(b.Target)
	if err != nil {
		return err
	}

	switch {
	case w.opts.Policy == PolicyStrict && w.onPath[target.Name] > 0:
		return w.cut(CutoffCycle, parent, b, depth)
	case depth+1 > w.opts.MaxDepth:
		return w.cut(CutoffDepth, parent, b, depth)
	case !b.Range.Contains(math.Abs(next.Scale)):
		return w.cut(CutoffRange, parent, b, depth)
	}

	w.onPath[target.Name]++
	err = w.definition(target, next, depth+1)
	w.onPath[target.Name]--
	return err
}

func (w *walk) cut(reason Cutoff, parent model.Fractal, b model.Branch, depth int) error {
	w.stats.Cutoffs[reason]++
	w.opts.Logger.Debug("branch cut off",
		"reason", reason,
		"from", parent.Name,
		"to", b.Target,
		"depth", depth)
	return nil
}

// own resolves a branch's own transform; an empty reference is the identity.
func (w *walk) own(b model.Branch) (geom.Transform, error) {
	if b.TransformRef == "" {
		return geom.Identity(), nil
	}
	if t, ok := w.transforms[b.TransformRef]; ok {
		return t, nil
	}
	t, err := w.res.Transform(b.TransformRef)
	if err != nil {
		return geom.Transform{}, err
	}
	w.transforms[b.TransformRef] = t
	return t, nil
}
