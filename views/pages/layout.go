package pages

import (
	"catalog/views/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	htmxJS       = "https://unpkg.com/htmx.org@2.0.4"
)

// wasmLoader starts the browser controller once the page structure exists.
const wasmLoader = `document.addEventListener("DOMContentLoaded", function () {
  const go = new Go();
  WebAssembly.instantiateStreaming(fetch("/wasm/app.wasm"), go.importObject)
    .then(function (result) { go.run(result.instance); })
    .catch(function (err) { console.error("Error starting controller:", err); });
});`

func layout(title, active string, body ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title+" · Scheme Catalog")),
				Link(Rel("stylesheet"), Href(bootstrapCSS)),
				Link(Rel("stylesheet"), Href("/static/app.css")),
				Script(Src(htmxJS)),
				Script(Src("/wasm/wasm_exec.js")),
				Script(g.Raw(wasmLoader)),
			),
			Body(
				navbar(active),
				Main(Class("container py-4"), g.Group(body)),
			),
		),
	)
}

func navbar(active string) g.Node {
	return Nav(Class("navbar navbar-expand navbar-dark bg-dark"),
		Div(Class("container"),
			A(Class("navbar-brand"), Href("/"), g.Text("Scheme Catalog")),
			Ul(Class("navbar-nav"),
				navItem("/", "Add Scheme", active),
				navItem("/schemes", "Schemes", active),
				Li(Class("nav-item"),
					A(Class(navLinkClass("/notifications", active)), Href("/notifications"),
						g.Text("Notifications "),
						Span(ID(models.IDNotificationCount), Class("badge bg-danger"), g.Text("0")),
					),
				),
			),
		),
	)
}

func navItem(href, label, active string) g.Node {
	return Li(Class("nav-item"),
		A(Class(navLinkClass(href, active)), Href(href), g.Text(label)),
	)
}

func navLinkClass(href, active string) string {
	if href == active {
		return "nav-link active"
	}
	return "nav-link"
}
