package models

// SchemeView represents a scheme card for rendering
type SchemeView struct {
	Title     string
	Category  string
	Excerpt   string
	Published string
}

// NotificationView represents a notification entry for rendering
type NotificationView struct {
	ID       string
	Title    string
	Category string
	// DescriptionHTML is already-rendered markdown.
	DescriptionHTML string
	NotifiedAt      string
}

// ExcerptLength is the number of characters of a description shown on a card.
const ExcerptLength = 100

// NoDate is shown in place of a missing publish date.
const NoDate = "N/A"

// Excerpt returns the first ExcerptLength characters of s followed by "...".
// The marker is appended even when s is shorter.
func Excerpt(s string) string {
	r := []rune(s)
	if len(r) > ExcerptLength {
		r = r[:ExcerptLength]
	}
	return string(r) + "..."
}

// PublishedOrNA returns the date verbatim, or NoDate when it is absent.
func PublishedOrNA(date *string) string {
	if date == nil || *date == "" {
		return NoDate
	}
	return *date
}
