package ui

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
)

// ErrSuperseded is returned when a response arrives after a newer request was issued
// by the same component; the response is dropped without touching the DOM.
var ErrSuperseded = errors.New("superseded by a newer request")

// NotificationBadge shows the number of notifications.
type NotificationBadge struct {
	client  NotificationLister
	display TextSetter
	log     *slog.Logger

	mu     sync.Mutex
	issued uint64
}

// NewNotificationBadge creates a badge writing into display.
func NewNotificationBadge(client NotificationLister, display TextSetter, log *slog.Logger) *NotificationBadge {
	return &NotificationBadge{client: client, display: display, log: log}
}

// Refresh fetches the notifications and writes their count. On failure the
// displayed count is left as is and the error is only logged.
func (b *NotificationBadge) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.issued++
	seq := b.issued
	b.mu.Unlock()

	notifications, err := b.client.ListNotifications(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.issued {
		return ErrSuperseded
	}
	if err != nil {
		b.log.Error("Error fetching notifications", "error", err)
		return err
	}

	b.display.SetText(strconv.Itoa(len(notifications)))
	return nil
}
