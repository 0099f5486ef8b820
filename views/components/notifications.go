package components

import (
	"catalog/views/models"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// NotificationRefreshInterval is how often the notifications page re-fetches its list.
const NotificationRefreshInterval = "every 30s"

// NotificationList renders the polling list of notifications. DescriptionHTML is
// trusted output of the markdown renderer.
func NotificationList(items []models.NotificationView) g.Node {
	return Div(
		ID(models.IDNotificationsList),
		Class("list-group"),
		hx.Get("/fragments/notifications"),
		hx.Trigger(NotificationRefreshInterval),
		hx.Swap("outerHTML"),
		g.If(len(items) == 0,
			Div(Class("alert alert-info"), g.Text("No notifications yet")),
		),
		g.Map(items, notificationItem),
	)
}

func notificationItem(n models.NotificationView) g.Node {
	return Div(Class("list-group-item"),
		Div(Class("d-flex justify-content-between"),
			H6(Class("mb-1"), g.Text(n.Title)),
			Small(Class("text-muted"), g.Text(n.NotifiedAt)),
		),
		Span(Class("badge bg-secondary"), g.Text(n.Category)),
		Div(Class("mt-2"), g.Raw(n.DescriptionHTML)),
	)
}
