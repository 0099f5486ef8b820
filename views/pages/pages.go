package pages

import (
	"catalog/views"
	"catalog/views/components"
	"catalog/views/models"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// IndexPage renders the scheme submission form and the training trigger.
func IndexPage() templ.Component {
	return views.Component(layout("Add Scheme", "/",
		Div(Class("row g-4"),
			Div(Class("col-md-7"),
				H2(g.Text("Add a scheme")),
				FormEl(ID(models.IDSchemeForm),
					Div(Class("mb-3"),
						Label(For(models.IDSchemeTitle), Class("form-label"), g.Text("Title")),
						Input(ID(models.IDSchemeTitle), Name("title"), Type("text"), Class("form-control"), Required()),
					),
					Div(Class("mb-3"),
						Label(For(models.IDSchemeDescription), Class("form-label"), g.Text("Description")),
						Textarea(ID(models.IDSchemeDescription), Name("description"), Rows("5"), Class("form-control"), Required()),
					),
					Button(Type("submit"), Class("btn btn-primary"), g.Text("Submit")),
				),
				Div(ID(models.IDFormResult), Class("mt-3")),
			),
			Div(Class("col-md-5"),
				H2(g.Text("Categorizer")),
				P(Class("text-muted"), g.Text("Re-cluster every stored scheme and refresh its category.")),
				Button(ID(models.IDTrainModelBtn), Type("button"), Class("btn btn-outline-secondary"), g.Text("Train model")),
				Div(ID(models.IDTrainingResult), Class("mt-3")),
			),
		),
	))
}

// SchemesPage renders the filterable scheme list. Options beyond "All Categories"
// are added by the browser controller.
func SchemesPage() templ.Component {
	return views.Component(layout("Schemes", "/schemes",
		Div(Class("d-flex justify-content-between align-items-center mb-3"),
			H2(g.Text("Schemes")),
			Select(ID(models.IDCategoryFilter), Class("form-select w-auto"),
				Option(Value(""), g.Text("All Categories")),
			),
		),
		Div(ID(models.IDSchemesContainer), Class("row")),
	))
}

// NotificationsPage renders the latest notifications.
func NotificationsPage(items []models.NotificationView) templ.Component {
	return views.Component(layout("Notifications", "/notifications",
		H2(g.Text("Notifications")),
		components.NotificationList(items),
	))
}
