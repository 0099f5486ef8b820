package schemes

import (
	"time"

	"catalog/internal/api"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the wire format of publish dates.
const DateLayout = "2006-01-02"

// Uncategorized is assigned to schemes created before any model was trained.
const Uncategorized = "Uncategorized"

// Scheme represents a catalog record
type Scheme struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	RawText     string             `bson:"raw_text"` // title and description, the categorizer's input
	Category    string             `bson:"category"`
	PublishDate *time.Time         `bson:"publish_date,omitempty"`
}

// ToAPI converts the record to its wire form.
func (s *Scheme) ToAPI() api.Scheme {
	out := api.Scheme{
		ID:          s.ID.Hex(),
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
	}
	if s.PublishDate != nil {
		d := s.PublishDate.Format(DateLayout)
		out.PublishDate = &d
	}
	return out
}

// CreateSchemeInput is the input for creating a scheme
type CreateSchemeInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=10000"`
}

// ListQuery represents list parameters
type ListQuery struct {
	Category string
}
