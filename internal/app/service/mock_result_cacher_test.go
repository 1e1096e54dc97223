package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
	"github.com/stretchr/testify/mock"
)

// MockResultCacher is a mock type for the ResultCacher type
type MockResultCacher struct {
	mock.Mock
}

// AcquireLock provides a mock function with given fields: ctx, key, timeout
func (_m *MockResultCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	ret := _m.Called(ctx, key, timeout)

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Duration) (bool, error)); ok {
		return rf(ctx, key, timeout)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Duration) bool); ok {
		r0 = rf(ctx, key, timeout)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, time.Duration) error); ok {
		r1 = rf(ctx, key, timeout)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetCacheKey provides a mock function with given fields: in
func (_m *MockResultCacher) GetCacheKey(in vikor.Input) string {
	ret := _m.Called(in)

	var r0 string
	if rf, ok := ret.Get(0).(func(vikor.Input) string); ok {
		r0 = rf(in)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// GetLockKey provides a mock function with given fields: in
func (_m *MockResultCacher) GetLockKey(in vikor.Input) string {
	ret := _m.Called(in)

	var r0 string
	if rf, ok := ret.Get(0).(func(vikor.Input) string); ok {
		r0 = rf(in)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// GetResult provides a mock function with given fields: ctx, key
func (_m *MockResultCacher) GetResult(ctx context.Context, key string) (vikor.Results, error) {
	ret := _m.Called(ctx, key)

	var r0 vikor.Results
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (vikor.Results, error)); ok {
		return rf(ctx, key)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) vikor.Results); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Get(0).(vikor.Results)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReleaseLock provides a mock function with given fields: ctx, key
func (_m *MockResultCacher) ReleaseLock(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetResult provides a mock function with given fields: ctx, key, results, expiration
func (_m *MockResultCacher) SetResult(ctx context.Context, key string, results vikor.Results,
	expiration time.Duration) error {
	ret := _m.Called(ctx, key, results, expiration)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, vikor.Results, time.Duration) error); ok {
		r0 = rf(ctx, key, results, expiration)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockResultCacher creates a new instance of MockResultCacher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockResultCacher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResultCacher {
	m := &MockResultCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPublisher is a mock type for the Publisher type
type MockPublisher struct {
	mock.Mock
}

// Close provides a mock function with given fields:
func (_m *MockPublisher) Close() {
	_m.Called()
}

// Publish provides a mock function with given fields: ctx, subject, payload
func (_m *MockPublisher) Publish(ctx context.Context, subject string, payload any) error {
	ret := _m.Called(ctx, subject, payload)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, any) error); ok {
		r0 = rf(ctx, subject, payload)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockPublisher creates a new instance of MockPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPublisher {
	m := &MockPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
