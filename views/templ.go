// Package views adapts gomponents trees to templ components so handlers render
// every page the same way.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

type nodeComponent struct {
	node g.Node
}

func (c nodeComponent) Render(ctx context.Context, w io.Writer) error {
	return c.node.Render(w)
}

// Component wraps a gomponents node as a templ.Component.
func Component(node g.Node) templ.Component {
	return nodeComponent{node: node}
}
