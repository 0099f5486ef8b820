package notifications

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"catalog/internal/api"
	"catalog/views/components"
	"catalog/views/models"
	"catalog/views/pages"
)

const timeLayout = "Jan 2, 2006 15:04"

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the notification routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/notifications", h.ListNotifications)
	mux.HandleFunc("GET /notifications", h.NotificationsPage)
	mux.HandleFunc("GET /fragments/notifications", h.NotificationsFragment)
}

// ListNotifications handles GET /api/notifications
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Latest(r.Context())
	if err != nil {
		h.log.Error("failed to list notifications", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]api.Notification, len(list))
	for i, n := range list {
		out[i] = n.ToAPI()
	}
	h.jsonResponse(w, out, http.StatusOK)
}

// NotificationsPage handles GET /notifications
func (h *Handler) NotificationsPage(w http.ResponseWriter, r *http.Request) {
	views, ok := h.views(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.NotificationsPage(views).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}

// NotificationsFragment handles GET /fragments/notifications (HTMX polling)
func (h *Handler) NotificationsFragment(w http.ResponseWriter, r *http.Request) {
	views, ok := h.views(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.NotificationList(views).Render(w); err != nil {
		h.log.Error("failed to render fragment", "path", r.URL.Path, "error", err)
	}
}

// --- Helper methods ---

func (h *Handler) views(w http.ResponseWriter, r *http.Request) ([]models.NotificationView, bool) {
	list, err := h.svc.Latest(r.Context())
	if err != nil {
		h.log.Error("failed to list notifications", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}

	out := make([]models.NotificationView, len(list))
	for i, n := range list {
		out[i] = models.NotificationView{
			ID:              n.ID.Hex(),
			Title:           n.Title,
			Category:        n.Category,
			DescriptionHTML: h.svc.RenderMarkdown(n.Description),
			NotifiedAt:      n.NotifiedAt.In(time.Local).Format(timeLayout),
		}
	}
	return out, true
}

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	h.jsonResponse(w, api.ErrorResponse{Error: message}, status)
}
