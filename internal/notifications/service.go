package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"catalog/internal/pubsub"
	"catalog/internal/schemes"

	"github.com/yuin/goldmark"
)

type Service struct {
	store Store
	limit int
	md    goldmark.Markdown
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a service whose Latest returns at most limit entries.
func NewService(store Store, limit int, log *slog.Logger) *Service {
	return &Service{
		store: store,
		limit: limit,
		md:    goldmark.New(),
		log:   log,
		now:   time.Now,
	}
}

// Latest retrieves the most recent notifications, newest first.
func (s *Service) Latest(ctx context.Context) ([]*Notification, error) {
	return s.store.Latest(ctx, s.limit)
}

// Subscribe starts recording one notification per created scheme, and following
// the schemes' categories after training, until ctx ends.
func (s *Service) Subscribe(ctx context.Context, sub pubsub.Subscriber) error {
	if err := sub.Subscribe(ctx, schemes.TopicCreated, s.handleCreated); err != nil {
		return err
	}
	return sub.Subscribe(ctx, schemes.TopicRecategorized, s.handleRecategorized)
}

func (s *Service) handleCreated(ctx context.Context, msg pubsub.Message) error {
	var event schemes.CreatedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("decode %s event: %w", msg.Topic, err)
	}

	notifiedAt := event.CreatedAt
	if notifiedAt.IsZero() {
		notifiedAt = s.now()
	}

	n := &Notification{
		SchemeID:    event.SchemeID,
		Title:       event.Title,
		Description: event.Description,
		Category:    event.Category,
		NotifiedAt:  notifiedAt.UTC(),
	}
	if err := s.store.Insert(ctx, n); err != nil {
		return err
	}

	s.log.Debug("notification recorded", "scheme_id", n.SchemeID, "category", n.Category, "request_id", msg.Metadata["request_id"])
	return nil
}

func (s *Service) handleRecategorized(ctx context.Context, msg pubsub.Message) error {
	var event schemes.RecategorizedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("decode %s event: %w", msg.Topic, err)
	}

	if err := s.store.UpdateCategories(ctx, event.Categories); err != nil {
		return err
	}

	s.log.Debug("notifications recategorized", "schemes", len(event.Categories), "request_id", msg.Metadata["request_id"])
	return nil
}

// RenderMarkdown converts markdown content to HTML
func (s *Service) RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return content
	}
	return buf.String()
}
