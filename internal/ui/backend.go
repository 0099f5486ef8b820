package ui

import (
	"context"

	"catalog/internal/api"
)

// NotificationLister fetches the notification collection.
type NotificationLister interface {
	ListNotifications(ctx context.Context) ([]api.Notification, error)
}

// SchemeLister fetches schemes, optionally restricted to one category.
type SchemeLister interface {
	ListSchemes(ctx context.Context, category string) ([]api.Scheme, error)
}

// SchemeCreator submits a new scheme.
type SchemeCreator interface {
	CreateScheme(ctx context.Context, in api.CreateSchemeRequest) (*api.CreateSchemeResponse, error)
}

// ModelTrainer triggers server-side training.
type ModelTrainer interface {
	TrainModel(ctx context.Context) (*api.TrainResponse, error)
}

// Backend is everything a page may need. *api.Client satisfies it.
type Backend interface {
	NotificationLister
	SchemeLister
	SchemeCreator
	ModelTrainer
}

var _ Backend = (*api.Client)(nil)
