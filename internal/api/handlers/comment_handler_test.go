package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/benchmap/internal/api/handlers"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

func threadFixture() []entities.Comment {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []entities.Comment{
		{ID: "a", BenchID: "b1", UserID: "u1", Body: "root", CreatedAt: now},
		{ID: "b", BenchID: "b1", UserID: "u2", Body: "reply", ParentID: strPtr("a"), CreatedAt: now.Add(time.Minute)},
		{ID: "c", BenchID: "b1", UserID: "u1", Body: "reply to reply", ParentID: strPtr("b"), CreatedAt: now.Add(2 * time.Minute)},
	}
}

func TestCommentHandler_ListComments_Flat(t *testing.T) {
	handler := handlers.NewCommentHandler(&stubCommentService{comments: threadFixture()})

	req := httptest.NewRequest(http.MethodGet, "/api/benches/b1/comments", nil)
	req.SetPathValue("id", "b1")
	w := httptest.NewRecorder()

	handler.ListComments(w, req)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 3)
	assert.Nil(t, body[0]["parent_id"])
	assert.Equal(t, "a", body[1]["parent_id"])
}

func TestCommentHandler_ListComments_ThreadView(t *testing.T) {
	handler := handlers.NewCommentHandler(&stubCommentService{comments: threadFixture()})

	req := httptest.NewRequest(http.MethodGet, "/api/benches/b1/comments?view=thread", nil)
	req.SetPathValue("id", "b1")
	w := httptest.NewRecorder()

	handler.ListComments(w, req)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "a", body[0]["id"])
	assert.Equal(t, float64(2), body[0]["reply_count"])
	assert.Len(t, body[0]["replies"], 2)
}

func TestCommentHandler_CreateComment(t *testing.T) {
	service := &stubCommentService{}
	handler := handlers.NewCommentHandler(service)

	req := asActor(httptest.NewRequest(http.MethodPost, "/api/benches/b1/comments", strings.NewReader(`{"body":"nice","parent_id":"a"}`)), "u2")
	req.SetPathValue("id", "b1")
	w := httptest.NewRecorder()

	handler.CreateComment(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, service.created)
	assert.Equal(t, "a", *service.created.ParentID)
}

func TestCommentHandler_CreateComment_Errors(t *testing.T) {
	tests := []struct {
		name   string
		actor  string
		body   string
		status int
	}{
		{"anonymous", "", `{"body":"hi"}`, http.StatusUnauthorized},
		{"bad json", "u1", `{"body":`, http.StatusBadRequest},
		{"empty body", "u1", `{"body":""}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewCommentHandler(&stubCommentService{})
			req := httptest.NewRequest(http.MethodPost, "/api/benches/b1/comments", strings.NewReader(tt.body))
			if tt.actor != "" {
				req = asActor(req, tt.actor)
			}
			req.SetPathValue("id", "b1")
			w := httptest.NewRecorder()

			handler.CreateComment(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
