package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/benchmap/internal/api/handlers"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

func TestReviewHandler_GetMyReview(t *testing.T) {
	created := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	handler := handlers.NewReviewHandler(&stubReviewService{
		review: &entities.Review{BenchID: "b1", UserID: "u1", Rating: 4, CreatedAt: created},
	})

	req := asActor(httptest.NewRequest(http.MethodGet, "/api/benches/b1/reviews", nil), "u1")
	req.SetPathValue("id", "b1")
	w := httptest.NewRecorder()

	handler.GetMyReview(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"myReview":{"rating":4,"created_at":"2024-06-02T10:00:00Z"}}`, w.Body.String())
}

func TestReviewHandler_GetMyReview_Anonymous(t *testing.T) {
	handler := handlers.NewReviewHandler(&stubReviewService{})

	req := httptest.NewRequest(http.MethodGet, "/api/benches/b1/reviews", nil)
	req.SetPathValue("id", "b1")
	w := httptest.NewRecorder()

	handler.GetMyReview(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"myReview":null}`, w.Body.String())
}

func TestReviewHandler_UpsertReview(t *testing.T) {
	service := &stubReviewService{}
	handler := handlers.NewReviewHandler(service)

	req := asActor(httptest.NewRequest(http.MethodPost, "/api/benches/b1/reviews", strings.NewReader(`{"rating":3.6}`)), "u1")
	req.SetPathValue("id", "b1")
	w := httptest.NewRecorder()

	handler.UpsertReview(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"rating":4}`, w.Body.String())
	assert.Equal(t, 3.6, service.lastRaw)
}

func TestReviewHandler_UpsertReview_NonNumeric(t *testing.T) {
	for _, body := range []string{`{"rating":"five"}`, `{}`, `{"rating":null}`, `nope`} {
		service := &stubReviewService{}
		handler := handlers.NewReviewHandler(service)

		req := asActor(httptest.NewRequest(http.MethodPost, "/api/benches/b1/reviews", strings.NewReader(body)), "u1")
		req.SetPathValue("id", "b1")
		w := httptest.NewRecorder()

		handler.UpsertReview(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.False(t, service.upserted)
	}
}

func TestReviewHandler_UpsertReview_Anonymous(t *testing.T) {
	handler := handlers.NewReviewHandler(&stubReviewService{})

	req := httptest.NewRequest(http.MethodPost, "/api/benches/b1/reviews", strings.NewReader(`{"rating":5}`))
	w := httptest.NewRecorder()

	handler.UpsertReview(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
