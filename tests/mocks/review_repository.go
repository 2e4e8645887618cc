package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// MockReviewRepository is a testify mock of repositories.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

// MockReviewRepository_Expecter records typed expectations
type MockReviewRepository_Expecter struct {
	mock *mock.Mock
}

// NewMockReviewRepository creates a mock whose expectations are asserted on cleanup
func NewMockReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockReviewRepository) EXPECT() *MockReviewRepository_Expecter {
	return &MockReviewRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockReviewRepository) Upsert(ctx context.Context, review *entities.Review) error {
	return _m.Called(ctx, review).Error(0)
}

func (_e *MockReviewRepository_Expecter) Upsert(ctx, review interface{}) *mock.Call {
	return _e.mock.On("Upsert", ctx, review)
}

func (_m *MockReviewRepository) GetByBenchAndUser(ctx context.Context, benchID, userID string) (*entities.Review, error) {
	ret := _m.Called(ctx, benchID, userID)
	var review *entities.Review
	if v := ret.Get(0); v != nil {
		review = v.(*entities.Review)
	}
	return review, ret.Error(1)
}

func (_e *MockReviewRepository_Expecter) GetByBenchAndUser(ctx, benchID, userID interface{}) *mock.Call {
	return _e.mock.On("GetByBenchAndUser", ctx, benchID, userID)
}

// ListRatings passes each bench id as its own argument
func (_m *MockReviewRepository) ListRatings(ctx context.Context, benchIDs ...string) ([]entities.ReviewRating, error) {
	args := []interface{}{ctx}
	for _, id := range benchIDs {
		args = append(args, id)
	}
	ret := _m.Called(args...)
	var ratings []entities.ReviewRating
	if v := ret.Get(0); v != nil {
		ratings = v.([]entities.ReviewRating)
	}
	return ratings, ret.Error(1)
}

func (_e *MockReviewRepository_Expecter) ListRatings(ctx interface{}, benchIDs ...interface{}) *mock.Call {
	return _e.mock.On("ListRatings", append([]interface{}{ctx}, benchIDs...)...)
}
