package model

import (
	"slices"

	"github.com/matzehuels/nfsf/pkg/errors"
	"github.com/matzehuels/nfsf/pkg/geom"
)

// catalog is a name-keyed store that remembers declaration order.
// Entries are addressed by index; the map only resolves names.
type catalog[T any] struct {
	kind  string
	index map[string]int
	items []T
}

func newCatalog[T any](kind string) catalog[T] {
	return catalog[T]{kind: kind, index: make(map[string]int)}
}

func (c *catalog[T]) add(name string, v T) error {
	if err := errors.ValidateName(c.kind, name); err != nil {
		return err
	}
	if _, exists := c.index[name]; exists {
		return errors.New(errors.ErrCodeDuplicateName, "duplicate %s name %q", c.kind, name)
	}
	c.index[name] = len(c.items)
	c.items = append(c.items, v)
	return nil
}

func (c *catalog[T]) get(name string) (T, error) {
	i, ok := c.index[name]
	if !ok {
		var zero T
		return zero, errors.New(errors.ErrCodeUnknownReference, "unknown %s %q", c.kind, name)
	}
	return c.items[i], nil
}

func (c *catalog[T]) has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Registry owns every transform, shape and fractal of one conversion run.
//
// The zero value is not usable; create one with NewRegistry. A Registry is
// not safe for concurrent registration, but once frozen it is safe for
// concurrent lookups.
type Registry struct {
	transforms catalog[geom.Transform]
	shapes     catalog[Shape]
	fractals   catalog[Fractal]
	frozen     bool
}

// NewRegistry creates an empty, writable registry.
func NewRegistry() *Registry {
	return &Registry{
		transforms: newCatalog[geom.Transform]("transform"),
		shapes:     newCatalog[Shape]("shape"),
		fractals:   newCatalog[Fractal]("fractal"),
	}
}

func (r *Registry) checkWritable(kind, name string) error {
	if r.frozen {
		return errors.New(errors.ErrCodeRegistryFrozen, "cannot register %s %q: registry is frozen", kind, name)
	}
	return nil
}

// RegisterTransform adds t under t.Name. It returns a DUPLICATE_NAME error
// if a transform with that name exists.
func (r *Registry) RegisterTransform(t geom.Transform) error {
	if err := r.checkWritable("transform", t.Name); err != nil {
		return err
	}
	return r.transforms.add(t.Name, t)
}

// RegisterShape adds s under s.Name. The vertex slice is copied.
func (r *Registry) RegisterShape(s Shape) error {
	if err := r.checkWritable("shape", s.Name); err != nil {
		return err
	}
	s.Vertices = slices.Clone(s.Vertices)
	return r.shapes.add(s.Name, s)
}

// RegisterFractal adds f under f.Name. The branch slice is copied.
// Branch targets are not checked here because a fractal may reference
// definitions declared after it; use Validate once registration is done.
func (r *Registry) RegisterFractal(f Fractal) error {
	if err := r.checkWritable("fractal", f.Name); err != nil {
		return err
	}
	f.Branches = slices.Clone(f.Branches)
	return r.fractals.add(f.Name, f)
}

// Transform looks up a transform by name. It returns an UNKNOWN_REFERENCE
// error if none is registered.
func (r *Registry) Transform(name string) (geom.Transform, error) {
	return r.transforms.get(name)
}

// Shape looks up a shape by name.
func (r *Registry) Shape(name string) (Shape, error) {
	return r.shapes.get(name)
}

// Fractal looks up a fractal definition by name.
func (r *Registry) Fractal(name string) (Fractal, error) {
	return r.fractals.get(name)
}

// Transforms returns all transforms in declaration order.
func (r *Registry) Transforms() []geom.Transform { return slices.Clone(r.transforms.items) }

// Shapes returns all shapes in declaration order.
func (r *Registry) Shapes() []Shape { return slices.Clone(r.shapes.items) }

// Fractals returns all fractal definitions in declaration order.
func (r *Registry) Fractals() []Fractal { return slices.Clone(r.fractals.items) }

// Freeze makes the registry read-only. Freeze is idempotent.
func (r *Registry) Freeze() { r.frozen = true }

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool { return r.frozen }

// Validate checks every branch of every fractal: its own transform and its
// target must exist, its kind must be known and its range must not be
// inverted. The first problem found is returned, in declaration order.
func (r *Registry) Validate() error {
	for _, f := range r.fractals.items {
		for i, b := range f.Branches {
			if err := r.validateBranch(f, i, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Registry) validateBranch(f Fractal, i int, b Branch) error {
	where := describe(f, i)

	if b.TransformRef != "" && !r.transforms.has(b.TransformRef) {
		return errors.New(errors.ErrCodeUnknownReference, "%s: unknown transform %q", where, b.TransformRef)
	}
	if b.Range.Lo > b.Range.Hi {
		return errors.New(errors.ErrCodeInvalidInput, "%s: range %s has lo > hi", where, b.Range)
	}

	switch b.Kind {
	case KindGraphic:
		if !r.shapes.has(b.Target) {
			return errors.New(errors.ErrCodeUnknownReference, "%s: unknown shape %q", where, b.Target)
		}
	case KindFractal:
		if !r.fractals.has(b.Target) {
			return errors.New(errors.ErrCodeUnknownReference, "%s: unknown fractal %q", where, b.Target)
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "%s: invalid branch kind %v", where, b.Kind)
	}
	return nil
}

// Stats summarizes the registry for logging.
type Stats struct {
	Transforms int
	Shapes     int
	Fractals   int
	Branches   int
}

// Stats counts the registered entities.
func (r *Registry) Stats() Stats {
	s := Stats{
		Transforms: len(r.transforms.items),
		Shapes:     len(r.shapes.items),
		Fractals:   len(r.fractals.items),
	}
	for _, f := range r.fractals.items {
		s.Branches += len(f.Branches)
	}
	return s
}
