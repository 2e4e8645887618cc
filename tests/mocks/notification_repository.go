package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// MockNotificationRepository is a testify mock of repositories.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

// MockNotificationRepository_Expecter records typed expectations
type MockNotificationRepository_Expecter struct {
	mock *mock.Mock
}

// NewMockNotificationRepository creates a mock whose expectations are asserted on cleanup
func NewMockNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockNotificationRepository) EXPECT() *MockNotificationRepository_Expecter {
	return &MockNotificationRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockNotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	return _m.Called(ctx, n).Error(0)
}

func (_e *MockNotificationRepository_Expecter) Create(ctx, n interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, n)
}

func (_m *MockNotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.Notification, error) {
	ret := _m.Called(ctx, userID, limit)
	var list []*entities.Notification
	if v := ret.Get(0); v != nil {
		list = v.([]*entities.Notification)
	}
	return list, ret.Error(1)
}

func (_e *MockNotificationRepository_Expecter) ListByUser(ctx, userID, limit interface{}) *mock.Call {
	return _e.mock.On("ListByUser", ctx, userID, limit)
}

func (_m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID string, at time.Time) (bool, error) {
	ret := _m.Called(ctx, id, userID, at)
	return ret.Bool(0), ret.Error(1)
}

func (_e *MockNotificationRepository_Expecter) MarkRead(ctx, id, userID, at interface{}) *mock.Call {
	return _e.mock.On("MarkRead", ctx, id, userID, at)
}
