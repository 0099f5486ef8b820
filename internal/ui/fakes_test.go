package ui_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"catalog/internal/api"
	"catalog/internal/ui"
)

type option struct {
	value, label string
}

// fakeElement records every mutation made by the controller.
type fakeElement struct {
	mu       sync.Mutex
	text     string
	html     string
	value    string
	options  []option
	resets   int
	handlers map[string][]func()
}

func (e *fakeElement) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

func (e *fakeElement) SetHTML(html string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.html = html
}

func (e *fakeElement) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

func (e *fakeElement) AppendOption(value, label string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.options = append(e.options, option{value, label})
}

func (e *fakeElement) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resets++
}

func (e *fakeElement) On(event string, fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers == nil {
		e.handlers = make(map[string][]func())
	}
	e.handlers[event] = append(e.handlers[event], fn)
}

// fire runs the handlers of event synchronously.
func (e *fakeElement) fire(event string) {
	e.mu.Lock()
	handlers := append([]func(){}, e.handlers[event]...)
	e.mu.Unlock()
	for _, h := range handlers {
		h()
	}
}

func (e *fakeElement) getText() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

func (e *fakeElement) getHTML() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.html
}

func (e *fakeElement) getOptions() []option {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]option(nil), e.options...)
}

func (e *fakeElement) setValue(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = v
}

type fakeDocument map[string]*fakeElement

func (d fakeDocument) ElementByID(id string) (ui.Element, bool) {
	el, ok := d[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func newDocument(ids ...string) fakeDocument {
	doc := make(fakeDocument, len(ids))
	for _, id := range ids {
		doc[id] = &fakeElement{}
	}
	return doc
}

// fakeBackend answers from canned values and counts calls.
type fakeBackend struct {
	mu sync.Mutex

	notifications    []api.Notification
	notificationsErr error
	schemes          map[string][]api.Scheme
	schemesErr       error
	createResp       *api.CreateSchemeResponse
	createErr        error
	trainResp        *api.TrainResponse
	trainErr         error

	notificationCalls int
	categories        []string
	created           []api.CreateSchemeRequest
	trainCalls        int
}

func (b *fakeBackend) ListNotifications(ctx context.Context) ([]api.Notification, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notificationCalls++
	return b.notifications, b.notificationsErr
}

func (b *fakeBackend) ListSchemes(ctx context.Context, category string) ([]api.Scheme, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.categories = append(b.categories, category)
	if b.schemesErr != nil {
		return nil, b.schemesErr
	}
	return b.schemes[category], nil
}

func (b *fakeBackend) CreateScheme(ctx context.Context, in api.CreateSchemeRequest) (*api.CreateSchemeResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.created = append(b.created, in)
	return b.createResp, b.createErr
}

func (b *fakeBackend) TrainModel(ctx context.Context) (*api.TrainResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trainCalls++
	return b.trainResp, b.trainErr
}

func (b *fakeBackend) notificationCallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.notificationCalls
}

func (b *fakeBackend) requestedCategories() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.categories...)
}

// gatedLister blocks each ListSchemes call until its category's gate is opened.
type gatedLister struct {
	gates   map[string]chan struct{}
	results map[string][]api.Scheme
	started chan string
}

func newGatedLister(results map[string][]api.Scheme) *gatedLister {
	l := &gatedLister{
		gates:   make(map[string]chan struct{}),
		results: results,
		started: make(chan string, len(results)),
	}
	for category := range results {
		l.gates[category] = make(chan struct{})
	}
	return l
}

func (l *gatedLister) ListSchemes(ctx context.Context, category string) ([]api.Scheme, error) {
	l.started <- category
	<-l.gates[category]
	return l.results[category], nil
}

func (l *gatedLister) open(category string) {
	close(l.gates[category])
}

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func ptr(s string) *string {
	return &s
}
