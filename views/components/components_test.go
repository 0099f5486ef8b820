package components

import (
	"strings"
	"testing"

	"catalog/views/models"

	"github.com/stretchr/testify/assert"
)

func TestSchemeCard(t *testing.T) {
	html := String(SchemeCard(models.SchemeView{
		Title:     "Solar <b>roofs</b>",
		Category:  "Energy",
		Excerpt:   "Panels...",
		Published: "N/A",
	}))

	assert.Contains(t, html, `<span class="badge bg-primary">Energy</span>`)
	assert.Contains(t, html, "Solar &lt;b&gt;roofs&lt;/b&gt;")
	assert.Contains(t, html, `<p class="card-text">Panels...</p>`)
	assert.Contains(t, html, "Published: N/A")
}

func TestSchemeCardList(t *testing.T) {
	html := String(SchemeCardList([]models.SchemeView{
		{Title: "first"}, {Title: "second"}, {Title: "third"},
	}))

	assert.Equal(t, 3, strings.Count(html, `class="card h-100"`))
	assert.Less(t, strings.Index(html, "first"), strings.Index(html, "second"))
	assert.Less(t, strings.Index(html, "second"), strings.Index(html, "third"))
}

func TestPlaceholders(t *testing.T) {
	assert.Contains(t, String(NoSchemes()), "alert-info")
	assert.Contains(t, String(NoSchemes()), "No schemes found")

	errHTML := String(SchemesLoadError("connection refused"))
	assert.Contains(t, errHTML, "alert-danger")
	assert.Contains(t, errHTML, "Error loading schemes: connection refused")

	assert.Equal(t, `<div class="alert alert-danger">Error: nope</div>`, String(AlertError("nope")))
	assert.Equal(t, `<div class="alert alert-success">done</div>`, String(AlertSuccess("done")))
}

func TestNotificationList(t *testing.T) {
	html := String(NotificationList(nil))
	assert.Contains(t, html, `hx-get="/fragments/notifications"`)
	assert.Contains(t, html, "No notifications yet")

	html = String(NotificationList([]models.NotificationView{
		{Title: "Solar", Category: "Category_1", DescriptionHTML: "<p>new</p>"},
	}))
	assert.NotContains(t, html, "No notifications yet")
	assert.Contains(t, html, "<p>new</p>")
}
