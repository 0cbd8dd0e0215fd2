// Package refgraph renders the reference graph of an NFSF description.
//
// # Overview
//
// Fractal definitions reference shapes and other fractals through their
// branches. This package draws those references as a node-link diagram
// with Graphviz: fractals are boxes, shapes are ellipses and every branch
// is an arrow labeled with its own transform and range. Self references
// show up as loops, which makes recursion easy to spot before expanding.
//
//	dot := refgraph.ToDOT(reg, refgraph.Options{Root: "tree"})
//	svg, err := refgraph.RenderSVG(ctx, dot)
//
// Only declared entities appear as regular nodes. Branches whose target is undeclared are
// drawn to a dashed placeholder node so broken references stay visible.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package refgraph
