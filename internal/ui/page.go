package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"catalog/views/models"

	"golang.org/x/sync/errgroup"
)

// ErrMissingElement is returned by Mount when a view's anchor is present but one of
// the elements it needs is not.
var ErrMissingElement = errors.New("missing element")

// Page is the controller of one loaded page. Components whose anchor element is
// absent from the document are nil.
type Page struct {
	Badge   *NotificationBadge
	Form    *SchemeForm
	Trainer *TrainTrigger
	Browser *SchemeBrowser

	log *slog.Logger
}

// Mount inspects doc, builds the components for the views it contains and wires
// their event handlers. Work triggered by events runs under ctx.
func Mount(ctx context.Context, doc Document, backend Backend, log *slog.Logger) (*Page, error) {
	p := &Page{log: log}

	if el, ok := doc.ElementByID(models.IDNotificationCount); ok {
		p.Badge = NewNotificationBadge(backend, el, log)
	}

	if form, ok := doc.ElementByID(models.IDSchemeForm); ok {
		els, err := lookup(doc,
			models.IDSchemeTitle,
			models.IDSchemeDescription,
			models.IDFormResult,
			models.IDTrainModelBtn,
			models.IDTrainingResult,
		)
		if err != nil {
			return nil, fmt.Errorf("mount scheme form: %w", err)
		}
		title, description, result := els[0], els[1], els[2]
		trainBtn, trainResult := els[3], els[4]

		p.Form = NewSchemeForm(backend, form, result, p.Badge)
		p.Trainer = NewTrainTrigger(backend, trainResult)

		form.On("submit", func() {
			if err := p.Form.Submit(ctx, title.Value(), description.Value()); err != nil {
				log.Debug("scheme submission failed", "error", err)
			}
		})
		trainBtn.On("click", func() {
			if err := p.Trainer.Trigger(ctx); err != nil {
				log.Debug("training failed", "error", err)
			}
		})
	}

	if list, ok := doc.ElementByID(models.IDSchemesContainer); ok {
		els, err := lookup(doc, models.IDCategoryFilter)
		if err != nil {
			return nil, fmt.Errorf("mount scheme list: %w", err)
		}
		filter := els[0]

		p.Browser = NewSchemeBrowser(backend, list, filter, log)
		filter.On("change", func() {
			p.loadSchemes(ctx, filter.Value())
		})
	}

	return p, nil
}

// Start performs the initial fetch of every active component and waits for them.
func (p *Page) Start(ctx context.Context) {
	var g errgroup.Group
	if p.Browser != nil {
		g.Go(func() error {
			p.loadSchemes(ctx, "")
			return nil
		})
	}
	if p.Badge != nil {
		g.Go(func() error {
			_ = p.Badge.Refresh(ctx)
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Page) loadSchemes(ctx context.Context, category string) {
	if err := p.Browser.Load(ctx, category); err != nil && !errors.Is(err, ErrSuperseded) {
		p.log.Debug("loading schemes failed", "category", category, "error", err)
	}
}

func lookup(doc Document, ids ...string) ([]Element, error) {
	els := make([]Element, len(ids))
	for i, id := range ids {
		el, ok := doc.ElementByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: #%s", ErrMissingElement, id)
		}
		els[i] = el
	}
	return els, nil
}
