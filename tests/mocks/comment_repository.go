package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// MockCommentRepository is a testify mock of repositories.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

// MockCommentRepository_Expecter records typed expectations
type MockCommentRepository_Expecter struct {
	mock *mock.Mock
}

// NewMockCommentRepository creates a mock whose expectations are asserted on cleanup
func NewMockCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockCommentRepository) EXPECT() *MockCommentRepository_Expecter {
	return &MockCommentRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockCommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	return _m.Called(ctx, comment).Error(0)
}

func (_e *MockCommentRepository_Expecter) Create(ctx, comment interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, comment)
}

func (_m *MockCommentRepository) ListByBench(ctx context.Context, benchID string) ([]entities.Comment, error) {
	ret := _m.Called(ctx, benchID)
	var comments []entities.Comment
	if v := ret.Get(0); v != nil {
		comments = v.([]entities.Comment)
	}
	return comments, ret.Error(1)
}

func (_e *MockCommentRepository_Expecter) ListByBench(ctx, benchID interface{}) *mock.Call {
	return _e.mock.On("ListByBench", ctx, benchID)
}

func (_m *MockCommentRepository) GetAuthor(ctx context.Context, commentID string) (string, error) {
	ret := _m.Called(ctx, commentID)
	return ret.String(0), ret.Error(1)
}

func (_e *MockCommentRepository_Expecter) GetAuthor(ctx, commentID interface{}) *mock.Call {
	return _e.mock.On("GetAuthor", ctx, commentID)
}
