// Package api holds the wire types of the catalog HTTP API and a client for it.
package api

// Scheme is a catalog record as served by GET /api/schemes.
type Scheme struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	PublishDate *string `json:"publish_date"` // YYYY-MM-DD, null when unknown
}

// Notification is an entry of GET /api/notifications.
type Notification struct {
	ID          string `json:"id"`
	SchemeID    string `json:"scheme_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CreateSchemeRequest is the body of POST /api/schemes.
type CreateSchemeRequest struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// CreateSchemeResponse is the success body of POST /api/schemes.
type CreateSchemeResponse struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// TrainResponse is the success body of POST /api/train-model.
type TrainResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
