package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/benchmap/internal/api/handlers"
	"github.com/zatekoja/benchmap/internal/api/routes"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter() http.Handler {
	return routes.NewRouter(routes.Handlers{
		Bench:        handlers.NewBenchHandler(nil),
		Comment:      handlers.NewCommentHandler(nil),
		Review:       handlers.NewReviewHandler(nil),
		Notification: handlers.NewNotificationHandler(nil),
		Profile:      handlers.NewProfileHandler(nil),
		Health:       handlers.NewHealthHandler(okPinger{}),
	}, routes.Options{AllowedOrigins: []string{"*"}}).SetupRoutes()
}

func TestRouter_Health(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_AuthenticatedRoutesRejectAnonymous(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/benches"},
		{http.MethodDelete, "/api/benches/b1"},
		{http.MethodPost, "/api/benches/b1/comments"},
		{http.MethodPost, "/api/benches/b1/reviews"},
		{http.MethodGet, "/api/notifications"},
		{http.MethodPatch, "/api/notifications/n1/read"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPut, "/api/profile"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRouter_UnknownMethod(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/benches/b1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/benches", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()

	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
