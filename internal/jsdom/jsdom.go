//go:build js && wasm

// Package jsdom adapts the browser DOM, reached through syscall/js, to ui.Document.
package jsdom

import (
	"syscall/js"

	"catalog/internal/ui"
)

// Document wraps the page's global document.
type Document struct {
	doc js.Value
}

// New returns the current page's document.
func New() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// ElementByID implements ui.Document.
func (d *Document) ElementByID(id string) (ui.Element, bool) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &element{doc: d.doc, v: v}, true
}

// Origin returns window.location.origin, the base URL of the API.
func Origin() string {
	return js.Global().Get("location").Get("origin").String()
}

type element struct {
	doc js.Value
	v   js.Value
}

func (e *element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *element) SetHTML(html string) {
	e.v.Set("innerHTML", html)
}

func (e *element) Value() string {
	return e.v.Get("value").String()
}

func (e *element) AppendOption(value, label string) {
	opt := e.doc.Call("createElement", "option")
	opt.Set("value", value)
	opt.Set("textContent", label)
	e.v.Call("appendChild", opt)
}

func (e *element) Reset() {
	e.v.Call("reset")
}

// On registers fn as a listener. The listener returns to the event loop right away
// and runs fn in its own goroutine, since fn performs blocking HTTP calls.
// The js.Func lives as long as the page.
func (e *element) On(event string, fn func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if event == "submit" && len(args) > 0 {
			args[0].Call("preventDefault")
		}
		go fn()
		return nil
	})
	e.v.Call("addEventListener", event, cb)
}
