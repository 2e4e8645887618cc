package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// MockProfileRepository is a testify mock of repositories.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

// MockProfileRepository_Expecter records typed expectations
type MockProfileRepository_Expecter struct {
	mock *mock.Mock
}

// NewMockProfileRepository creates a mock whose expectations are asserted on cleanup
func NewMockProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockProfileRepository) EXPECT() *MockProfileRepository_Expecter {
	return &MockProfileRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	ret := _m.Called(ctx, userID)
	var profile *entities.Profile
	if v := ret.Get(0); v != nil {
		profile = v.(*entities.Profile)
	}
	return profile, ret.Error(1)
}

func (_e *MockProfileRepository_Expecter) GetByUserID(ctx, userID interface{}) *mock.Call {
	return _e.mock.On("GetByUserID", ctx, userID)
}

func (_m *MockProfileRepository) GetNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	ret := _m.Called(ctx, userIDs)
	var names map[string]string
	if v := ret.Get(0); v != nil {
		names = v.(map[string]string)
	}
	return names, ret.Error(1)
}

func (_e *MockProfileRepository_Expecter) GetNames(ctx, userIDs interface{}) *mock.Call {
	return _e.mock.On("GetNames", ctx, userIDs)
}

func (_m *MockProfileRepository) Upsert(ctx context.Context, profile *entities.Profile) error {
	return _m.Called(ctx, profile).Error(0)
}

func (_e *MockProfileRepository_Expecter) Upsert(ctx, profile interface{}) *mock.Call {
	return _e.mock.On("Upsert", ctx, profile)
}
