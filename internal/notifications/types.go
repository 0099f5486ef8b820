package notifications

import (
	"time"

	"catalog/internal/api"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification announces one newly created scheme.
type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SchemeID    string             `bson:"scheme_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	NotifiedAt  time.Time          `bson:"notified_at"`
}

// ToAPI converts the record to its wire form.
func (n *Notification) ToAPI() api.Notification {
	return api.Notification{
		ID:          n.ID.Hex(),
		SchemeID:    n.SchemeID,
		Title:       n.Title,
		Description: n.Description,
		Category:    n.Category,
	}
}
