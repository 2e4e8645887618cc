package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// NotificationService defines the notification operations used by the handler
type NotificationService interface {
	List(ctx context.Context, actorID string) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, actorID, id string) error
}

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	service NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications handles GET /api/notifications
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	notifications, err := h.service.List(r.Context(), actorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notifications == nil {
		notifications = []*entities.Notification{}
	}

	respondWithJSON(w, http.StatusOK, notifications)
}

// MarkRead handles PATCH /api/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	if err := h.service.MarkRead(r.Context(), actorID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, okResponse{OK: true})
}
