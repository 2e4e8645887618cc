package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/zatekoja/benchmap/internal/domain/entities"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

// ReviewService defines the review operations used by the handler
type ReviewService interface {
	GetMine(ctx context.Context, actorID, benchID string) (*entities.Review, error)
	Upsert(ctx context.Context, actorID, benchID string, rating float64) (int, error)
}

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	service ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type myReview struct {
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type myReviewResponse struct {
	MyReview *myReview `json:"myReview"`
}

type reviewRequest struct {
	Rating *float64 `json:"rating"`
}

type reviewResponse struct {
	OK     bool `json:"ok"`
	Rating int  `json:"rating"`
}

// GetMyReview handles GET /api/benches/{id}/reviews. Anonymous callers get a null review.
func (h *ReviewHandler) GetMyReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.GetMine(r.Context(), optionalActor(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := myReviewResponse{}
	if review != nil {
		resp.MyReview = &myReview{Rating: review.Rating, CreatedAt: review.CreatedAt}
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// UpsertReview handles POST /api/benches/{id}/reviews
func (h *ReviewHandler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, apperrors.NewValidationError("rating must be a number"))
		return
	}
	if req.Rating == nil {
		writeError(w, r, apperrors.NewValidationError("rating must be a number"))
		return
	}

	rating, err := h.service.Upsert(r.Context(), actorID, r.PathValue("id"), *req.Rating)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reviewResponse{OK: true, Rating: rating})
}
