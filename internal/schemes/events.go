package schemes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog/internal/middleware"
	"catalog/internal/pubsub"
)

const (
	// TopicCreated is published once per stored scheme.
	TopicCreated = "schemes.created"
	// TopicRecategorized is published after training re-labels the catalog.
	TopicRecategorized = "schemes.recategorized"
)

// CreatedEvent is the payload of TopicCreated.
type CreatedEvent struct {
	SchemeID    string    `json:"scheme_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecategorizedEvent is the payload of TopicRecategorized. Categories maps scheme
// IDs (hex) to their new category.
type RecategorizedEvent struct {
	Categories map[string]string `json:"categories"`
	TrainedAt  time.Time         `json:"trained_at"`
}

func publishCreated(ctx context.Context, pub pubsub.Publisher, s *Scheme, at time.Time) error {
	payload, err := json.Marshal(CreatedEvent{
		SchemeID:    s.ID.Hex(),
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		CreatedAt:   at,
	})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return publish(ctx, pub, TopicCreated, payload)
}

func publishRecategorized(ctx context.Context, pub pubsub.Publisher, categories map[string]string, at time.Time) error {
	payload, err := json.Marshal(RecategorizedEvent{Categories: categories, TrainedAt: at})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return publish(ctx, pub, TopicRecategorized, payload)
}

func publish(ctx context.Context, pub pubsub.Publisher, topic string, payload []byte) error {
	msg := pubsub.Message{Topic: topic, Payload: payload}
	if id := middleware.RequestIDFrom(ctx); id != "" {
		msg.Metadata = map[string]string{"request_id": id}
	}
	return pub.Publish(ctx, msg)
}
