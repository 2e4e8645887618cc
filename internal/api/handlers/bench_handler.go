package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/zatekoja/benchmap/internal/application/services"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// BenchService defines the bench operations used by the handler
type BenchService interface {
	List(ctx context.Context, filter services.ListFilter) ([]*entities.Bench, error)
	Get(ctx context.Context, id string) (*entities.Bench, error)
	Create(ctx context.Context, actorID string, input services.CreateBenchInput) (*entities.Bench, error)
	Delete(ctx context.Context, actorID, id string) error
}

// BenchHandler handles bench HTTP requests
type BenchHandler struct {
	service BenchService
}

// NewBenchHandler creates a new bench handler
func NewBenchHandler(service BenchService) *BenchHandler {
	return &BenchHandler{service: service}
}

// ListBenches handles GET /api/benches
func (h *BenchHandler) ListBenches(w http.ResponseWriter, r *http.Request) {
	benches, err := h.service.List(r.Context(), parseListFilter(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, benches)
}

// GetBench handles GET /api/benches/{id}
func (h *BenchHandler) GetBench(w http.ResponseWriter, r *http.Request) {
	bench, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, bench)
}

// CreateBench handles POST /api/benches
func (h *BenchHandler) CreateBench(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input services.CreateBenchInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	bench, err := h.service.Create(r.Context(), actorID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, bench)
}

// DeleteBench handles DELETE /api/benches/{id}
func (h *BenchHandler) DeleteBench(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireActor(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), actorID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, okResponse{OK: true})
}

// parseListFilter reads the listing filters. Empty and non-numeric values
// count as absent.
func parseListFilter(q url.Values) services.ListFilter {
	return services.ListFilter{
		MinCommunityRating: parseOptionalFloat(q.Get("minCommunityRating")),
		MaxDistanceKm:      parseOptionalFloat(q.Get("maxDistanceKm")),
		Lat:                parseOptionalFloat(q.Get("lat")),
		Lng:                parseOptionalFloat(q.Get("lng")),
	}
}

func parseOptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
