package ui

import (
	"context"
	"log/slog"
	"sync"

	"catalog/internal/api"
	"catalog/views/components"
	"catalog/views/models"
)

// State is the lifecycle position of a SchemeBrowser.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateEmpty
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateEmpty:
		return "empty"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// SchemeBrowser owns the scheme list and its category filter.
//
// The filter options are derived from the first non-empty result and never again,
// so categories that appear later are not offered until the page is reloaded.
type SchemeBrowser struct {
	client SchemeLister
	list   HTMLSetter
	filter OptionAppender
	log    *slog.Logger

	mu        sync.Mutex
	issued    uint64
	state     State
	populated bool
}

// NewSchemeBrowser creates a browser rendering into list and adding options to filter.
func NewSchemeBrowser(client SchemeLister, list HTMLSetter, filter OptionAppender, log *slog.Logger) *SchemeBrowser {
	return &SchemeBrowser{client: client, list: list, filter: filter, log: log}
}

// State reports where the browser is in its lifecycle.
func (b *SchemeBrowser) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Load fetches the schemes of category ("" for all) and replaces the list with
// the result. A failure is rendered in place of the list and returned.
func (b *SchemeBrowser) Load(ctx context.Context, category string) error {
	b.mu.Lock()
	b.issued++
	seq := b.issued
	b.state = StateLoading
	b.mu.Unlock()

	schemes, err := b.client.ListSchemes(ctx, category)

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.issued {
		b.log.Debug("dropping stale scheme list", "category", category, "seq", seq)
		return ErrSuperseded
	}

	if err != nil {
		b.list.SetHTML(components.String(components.SchemesLoadError(err.Error())))
		b.state = StateErrored
		return err
	}

	if len(schemes) == 0 {
		b.list.SetHTML(components.String(components.NoSchemes()))
		b.state = StateEmpty
		return nil
	}

	if !b.populated {
		for _, c := range DistinctCategories(schemes) {
			b.filter.AppendOption(c, c)
		}
		b.populated = true
	}

	b.list.SetHTML(components.String(components.SchemeCardList(schemeViews(schemes))))
	b.state = StateRendered
	return nil
}

// DistinctCategories returns each category once, in first-seen order.
func DistinctCategories(schemes []api.Scheme) []string {
	seen := make(map[string]struct{}, len(schemes))
	var out []string
	for _, s := range schemes {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		out = append(out, s.Category)
	}
	return out
}

func schemeViews(schemes []api.Scheme) []models.SchemeView {
	views := make([]models.SchemeView, len(schemes))
	for i, s := range schemes {
		views[i] = models.SchemeView{
			Title:     s.Title,
			Category:  s.Category,
			Excerpt:   models.Excerpt(s.Description),
			Published: models.PublishedOrNA(s.PublishDate),
		}
	}
	return views
}
