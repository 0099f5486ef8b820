package notifications

import (
	"context"
	"fmt"

	"catalog/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists notifications.
type Store interface {
	Insert(ctx context.Context, n *Notification) error
	Latest(ctx context.Context, limit int) ([]*Notification, error)
	// UpdateCategories re-labels the notifications of each scheme ID (hex).
	UpdateCategories(ctx context.Context, categories map[string]string) error
}

type Repo struct {
	coll *mongo.Collection
}

func NewRepo(database *mongo.Database) *Repo {
	return &Repo{coll: database.Collection(db.NotificationsCollection)}
}

// EnsureIndexes creates necessary indexes for the notifications collection
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "notified_at", Value: -1}}},
		{Keys: bson.D{{Key: "scheme_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// Insert stores a notification and assigns its ID.
func (r *Repo) Insert(ctx context.Context, n *Notification) error {
	n.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// Latest returns up to limit notifications, newest first.
func (r *Repo) Latest(ctx context.Context, limit int) ([]*Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "notified_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*Notification{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return out, nil
}

// UpdateCategories re-labels every notification of the listed schemes in one bulk write.
func (r *Repo) UpdateCategories(ctx context.Context, categories map[string]string) error {
	if len(categories) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(categories))
	for schemeID, category := range categories {
		writes = append(writes, mongo.NewUpdateManyModel().
			SetFilter(bson.M{"scheme_id": schemeID}).
			SetUpdate(bson.M{"$set": bson.M{"category": category}}))
	}

	if _, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("update notification categories: %w", err)
	}
	return nil
}
