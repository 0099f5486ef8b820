package ui

import (
	"context"

	"catalog/internal/api"
	"catalog/views/components"
)

// SchemeForm submits new schemes and reports the outcome in its result panel.
type SchemeForm struct {
	client SchemeCreator
	form   Resetter
	result HTMLSetter
	badge  *NotificationBadge
}

// NewSchemeForm creates a form controller. badge may be nil when the page has no
// notification count.
func NewSchemeForm(client SchemeCreator, form Resetter, result HTMLSetter, badge *NotificationBadge) *SchemeForm {
	return &SchemeForm{client: client, form: form, result: result, badge: badge}
}

// Submit posts the scheme. On success the form is reset and the notification
// count refreshed once.
func (f *SchemeForm) Submit(ctx context.Context, title, description string) error {
	resp, err := f.client.CreateScheme(ctx, api.CreateSchemeRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		f.result.SetHTML(components.String(components.AlertError(err.Error())))
		return err
	}

	f.result.SetHTML(components.String(components.AlertSuccess(
		"Scheme added successfully! Category: " + resp.Category,
	)))
	f.form.Reset()

	if f.badge != nil {
		// the badge logs its own failures
		_ = f.badge.Refresh(ctx)
	}
	return nil
}

// TrainTrigger asks the server to retrain the categorizer.
type TrainTrigger struct {
	client ModelTrainer
	result HTMLSetter
}

// NewTrainTrigger creates a trigger reporting into result.
func NewTrainTrigger(client ModelTrainer, result HTMLSetter) *TrainTrigger {
	return &TrainTrigger{client: client, result: result}
}

// Trigger starts training and shows the server's message.
func (t *TrainTrigger) Trigger(ctx context.Context) error {
	resp, err := t.client.TrainModel(ctx)
	if err != nil {
		t.result.SetHTML(components.String(components.AlertError(err.Error())))
		return err
	}

	t.result.SetHTML(components.String(components.AlertSuccess(resp.Message)))
	return nil
}
