// Package components holds the HTML fragments shared by the server-rendered pages
// and the browser controller.
package components

import (
	"strings"

	"catalog/views/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// String renders n to a string. gomponents only fails when the writer does,
// and strings.Builder never does.
func String(n g.Node) string {
	var b strings.Builder
	_ = n.Render(&b)
	return b.String()
}

// SchemeCard renders one scheme.
func SchemeCard(s models.SchemeView) g.Node {
	return Div(Class("col-md-4 mb-4"),
		Div(Class("card h-100"),
			Div(Class("card-body"),
				Span(Class("badge bg-primary"), g.Text(s.Category)),
				H5(Class("card-title mt-2"), g.Text(s.Title)),
				P(Class("card-text"), g.Text(s.Excerpt)),
				Small(Class("text-muted"), g.Text("Published: "+s.Published)),
			),
		),
	)
}

// SchemeCardList renders one card per scheme, in order.
func SchemeCardList(schemes []models.SchemeView) g.Node {
	return g.Map(schemes, SchemeCard)
}

// NoSchemes is the placeholder for an empty result.
func NoSchemes() g.Node {
	return fullWidth(Div(Class("alert alert-info"), g.Text("No schemes found")))
}

// SchemesLoadError is the placeholder shown when the list cannot be fetched.
func SchemesLoadError(message string) g.Node {
	return fullWidth(Div(Class("alert alert-danger"), g.Text("Error loading schemes: "+message)))
}

// AlertSuccess renders a green inline message.
func AlertSuccess(text string) g.Node {
	return Div(Class("alert alert-success"), g.Text(text))
}

// AlertError renders a red inline message prefixed with "Error: ".
func AlertError(message string) g.Node {
	return Div(Class("alert alert-danger"), g.Text("Error: "+message))
}

func fullWidth(children ...g.Node) g.Node {
	return Div(Class("col-12"), g.Group(children))
}
