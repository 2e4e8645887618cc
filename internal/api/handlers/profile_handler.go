package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/benchmap/internal/application/services"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// ProfileService defines the profile operations used by the handler
type ProfileService interface {
	Get(ctx context.Context, actorID string) (*entities.PublicProfile, error)
	GetPublic(ctx context.Context, userID string) (*entities.PublicProfile, error)
	Upsert(ctx context.Context, actorID string, input services.ProfileInput) (*entities.Profile, error)
}

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetOwnProfile handles GET /api/profile
func (h *ProfileHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	profile, err := h.service.Get(r.Context(), actorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// UpsertOwnProfile handles PUT /api/profile
func (h *ProfileHandler) UpsertOwnProfile(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input services.ProfileInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.service.Upsert(r.Context(), actorID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// GetPublicProfile handles GET /api/profiles/{userId}
func (h *ProfileHandler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetPublic(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}
