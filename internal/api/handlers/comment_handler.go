package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/benchmap/internal/application/services"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/threads"
)

// CommentService defines the comment operations used by the handler
type CommentService interface {
	List(ctx context.Context, benchID string) ([]entities.Comment, error)
	Threads(ctx context.Context, benchID string) ([]threads.Thread, error)
	Create(ctx context.Context, actorID, benchID string, input services.CreateCommentInput) (*entities.Comment, error)
}

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	service CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListComments handles GET /api/benches/{id}/comments. ?view=thread groups
// replies under their root comment.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	benchID := r.PathValue("id")

	if r.URL.Query().Get("view") == "thread" {
		list, err := h.service.Threads(r.Context(), benchID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if list == nil {
			list = []threads.Thread{}
		}
		respondWithJSON(w, http.StatusOK, list)
		return
	}

	comments, err := h.service.List(r.Context(), benchID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if comments == nil {
		comments = []entities.Comment{}
	}
	respondWithJSON(w, http.StatusOK, comments)
}

// CreateComment handles POST /api/benches/{id}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input services.CreateCommentInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.service.Create(r.Context(), actorID, r.PathValue("id"), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, comment)
}
