package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/benchmap/internal/api/handlers"
)

func TestNotificationHandler_ListNotifications_RequiresAuth(t *testing.T) {
	handler := handlers.NewNotificationHandler(&stubNotificationService{})

	w := httptest.NewRecorder()
	handler.ListNotifications(w, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, w.Body.String())
}

func TestNotificationHandler_ListNotifications_EmptyIsArray(t *testing.T) {
	handler := handlers.NewNotificationHandler(&stubNotificationService{})

	w := httptest.NewRecorder()
	handler.ListNotifications(w, asActor(httptest.NewRequest(http.MethodGet, "/api/notifications", nil), "u1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	service := &stubNotificationService{}
	handler := handlers.NewNotificationHandler(service)

	req := asActor(httptest.NewRequest(http.MethodPatch, "/api/notifications/n1/read", nil), "u1")
	req.SetPathValue("id", "n1")
	w := httptest.NewRecorder()

	handler.MarkRead(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, []string{"n1"}, service.marked)
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	handler := handlers.NewNotificationHandler(&stubNotificationService{missing: true})

	req := asActor(httptest.NewRequest(http.MethodPatch, "/api/notifications/n1/read", nil), "intruder")
	req.SetPathValue("id", "n1")
	w := httptest.NewRecorder()

	handler.MarkRead(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
