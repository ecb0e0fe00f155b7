package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jamesfarrell.me/video-planner/internal/planner"
	"jamesfarrell.me/video-planner/internal/storyboard"
)

// MockCompleter is a mock type for the Completer interfaces.
type MockCompleter struct {
	mock.Mock
}

// Complete provides a mock function with given fields: ctx, prompt
func (_m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, prompt)
	} else {
		r0 = ret.String(0)
	}

	return r0, ret.Error(1)
}

// NewMockCompleter creates a MockCompleter that asserts its expectations on cleanup.
func NewMockCompleter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCompleter {
	m := &MockCompleter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockImageGenerator is a mock type for the ImageGenerator interface.
type MockImageGenerator struct {
	mock.Mock
}

// GenerateImage provides a mock function with given fields: ctx, prompt
func (_m *MockImageGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)
	return ret.String(0), ret.Error(1)
}

func NewMockImageGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageGenerator {
	m := &MockImageGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var (
	_ planner.Completer         = (*MockCompleter)(nil)
	_ storyboard.Completer      = (*MockCompleter)(nil)
	_ storyboard.ImageGenerator = (*MockImageGenerator)(nil)
)
