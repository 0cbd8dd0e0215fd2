// Package model holds the named entities an NFSF description declares:
// transforms, shapes and fractal definitions.
//
// # Registry
//
// A [Registry] is built once per run, usually by the parser, and then
// frozen. After [Registry.Freeze] every lookup is read-only, so a frozen
// registry can be shared by concurrent expansions without locking.
//
// Each category has its own namespace: a shape and a fractal may share a
// name, two shapes may not.
//
// # References
//
// Branches refer to transforms, shapes and fractals by name. A reference is
// a lookup, never an owning pointer, which keeps self- and mutually-recursive
// fractals representable without ownership cycles. [Registry.Validate]
// resolves every reference up front so that a broken description fails
// before any geometry is produced.
package model
