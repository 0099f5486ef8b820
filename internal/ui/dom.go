// Package ui is the browser controller of the catalog: the notification badge, the
// scheme browser, the submission form and the training trigger, written against a
// minimal DOM so it runs unchanged in WebAssembly and in tests.
package ui

// Element is the subset of a DOM element the controller touches.
type Element interface {
	// SetText replaces the element's text content.
	SetText(text string)
	// SetHTML replaces the element's children with the given markup.
	SetHTML(html string)
	// Value returns the current value of a form control.
	Value() string
	// AppendOption adds an <option> to a select element.
	AppendOption(value, label string)
	// Reset resets a form element.
	Reset()
	// On registers fn for the named DOM event ("change", "submit", "click").
	// Hosts call fn off their event loop; submit events never navigate.
	On(event string, fn func())
}

// Document looks up elements by ID.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// TextSetter is an element whose text can be replaced.
type TextSetter interface {
	SetText(text string)
}

// HTMLSetter is an element whose content can be replaced.
type HTMLSetter interface {
	SetHTML(html string)
}

// OptionAppender is a select control that can gain options.
type OptionAppender interface {
	AppendOption(value, label string)
}

// Resetter is a form that can be reset.
type Resetter interface {
	Reset()
}
