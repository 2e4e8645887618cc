package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// MockBenchRepository is a testify mock of repositories.BenchRepository
type MockBenchRepository struct {
	mock.Mock
}

// MockBenchRepository_Expecter records typed expectations
type MockBenchRepository_Expecter struct {
	mock *mock.Mock
}

// NewMockBenchRepository creates a mock whose expectations are asserted on cleanup
func NewMockBenchRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBenchRepository {
	m := &MockBenchRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockBenchRepository) EXPECT() *MockBenchRepository_Expecter {
	return &MockBenchRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockBenchRepository) List(ctx context.Context) ([]*entities.Bench, error) {
	ret := _m.Called(ctx)
	var benches []*entities.Bench
	if v := ret.Get(0); v != nil {
		benches = v.([]*entities.Bench)
	}
	return benches, ret.Error(1)
}

func (_e *MockBenchRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockBenchRepository) GetByID(ctx context.Context, id string) (*entities.Bench, error) {
	ret := _m.Called(ctx, id)
	var bench *entities.Bench
	if v := ret.Get(0); v != nil {
		bench = v.(*entities.Bench)
	}
	return bench, ret.Error(1)
}

func (_e *MockBenchRepository_Expecter) GetByID(ctx, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

func (_m *MockBenchRepository) Create(ctx context.Context, bench *entities.Bench) error {
	return _m.Called(ctx, bench).Error(0)
}

func (_e *MockBenchRepository_Expecter) Create(ctx, bench interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, bench)
}

func (_m *MockBenchRepository) DeleteOwned(ctx context.Context, id, userID string) (bool, error) {
	ret := _m.Called(ctx, id, userID)
	return ret.Bool(0), ret.Error(1)
}

func (_e *MockBenchRepository_Expecter) DeleteOwned(ctx, id, userID interface{}) *mock.Call {
	return _e.mock.On("DeleteOwned", ctx, id, userID)
}

func (_m *MockBenchRepository) GetOwner(ctx context.Context, id string) (*string, error) {
	ret := _m.Called(ctx, id)
	var owner *string
	if v := ret.Get(0); v != nil {
		owner = v.(*string)
	}
	return owner, ret.Error(1)
}

func (_e *MockBenchRepository_Expecter) GetOwner(ctx, id interface{}) *mock.Call {
	return _e.mock.On("GetOwner", ctx, id)
}

func (_m *MockBenchRepository) GetTitles(ctx context.Context, ids []string) (map[string]string, error) {
	ret := _m.Called(ctx, ids)
	var titles map[string]string
	if v := ret.Get(0); v != nil {
		titles = v.(map[string]string)
	}
	return titles, ret.Error(1)
}

func (_e *MockBenchRepository_Expecter) GetTitles(ctx, ids interface{}) *mock.Call {
	return _e.mock.On("GetTitles", ctx, ids)
}

func (_m *MockBenchRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	ret := _m.Called(ctx, userID)
	return ret.Int(0), ret.Error(1)
}

func (_e *MockBenchRepository_Expecter) CountByUser(ctx, userID interface{}) *mock.Call {
	return _e.mock.On("CountByUser", ctx, userID)
}
