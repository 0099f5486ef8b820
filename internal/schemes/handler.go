package schemes

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"catalog/internal/api"
	"catalog/views/pages"

	"github.com/a-h/templ"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the scheme routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/schemes", h.ListSchemes)
	mux.HandleFunc("POST /api/schemes", h.CreateScheme)
	mux.HandleFunc("GET /api/schemes/{id}", h.GetScheme)
	mux.HandleFunc("POST /api/train-model", h.TrainModel)

	mux.HandleFunc("GET /{$}", h.IndexPage)
	mux.HandleFunc("GET /schemes", h.SchemesPage)
}

// --- REST API Handlers ---

// ListSchemes handles GET /api/schemes
func (h *Handler) ListSchemes(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.log.Error("failed to list schemes", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]api.Scheme, len(list))
	for i, s := range list {
		out[i] = s.ToAPI()
	}
	h.jsonResponse(w, out, http.StatusOK)
}

// CreateScheme handles POST /api/schemes
func (h *Handler) CreateScheme(w http.ResponseWriter, r *http.Request) {
	var input CreateSchemeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	scheme, err := h.svc.Create(r.Context(), input)
	if errors.Is(err, ErrInvalidInput) {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.log.Error("failed to create scheme", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, api.CreateSchemeResponse{
		Message:  "Scheme added successfully",
		Category: scheme.Category,
	}, http.StatusCreated)
}

// GetScheme handles GET /api/schemes/{id}
func (h *Handler) GetScheme(w http.ResponseWriter, r *http.Request) {
	scheme, err := h.svc.Get(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, ErrInvalidInput):
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrSchemeNotFound):
		h.jsonError(w, "scheme not found", http.StatusNotFound)
		return
	case err != nil:
		h.log.Error("failed to get scheme", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, scheme.ToAPI(), http.StatusOK)
}

// TrainModel handles POST /api/train-model
func (h *Handler) TrainModel(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Train(r.Context())
	if errors.Is(err, ErrNotEnoughSchemes) {
		h.jsonError(w, "Need at least 2 schemes to train", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.log.Error("failed to train model", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, api.TrainResponse{
		Message: fmt.Sprintf("Model trained successfully on %d schemes", n),
	}, http.StatusOK)
}

// --- Pages ---

// IndexPage handles GET /
func (h *Handler) IndexPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pages.IndexPage())
}

// SchemesPage handles GET /schemes
func (h *Handler) SchemesPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pages.SchemesPage())
}

// --- Helper methods ---

func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		h.log.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	h.jsonResponse(w, api.ErrorResponse{Error: message}, status)
}
