package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jamesfarrell.me/video-planner/internal/controller"
	"jamesfarrell.me/video-planner/internal/models"
	"jamesfarrell.me/video-planner/internal/storyboard"
)

// MockVideoSearcher is a mock type for the VideoSearcher interface.
type MockVideoSearcher struct {
	mock.Mock
}

// Search provides a mock function with given fields: ctx, keyword, maxResults
func (_m *MockVideoSearcher) Search(ctx context.Context, keyword string, maxResults int) ([]models.VideoRecord, error) {
	ret := _m.Called(ctx, keyword, maxResults)

	var r0 []models.VideoRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.VideoRecord)
	}
	return r0, ret.Error(1)
}

func NewMockVideoSearcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVideoSearcher {
	m := &MockVideoSearcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockPlanGenerator is a mock type for the PlanGenerator interface.
type MockPlanGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, req
func (_m *MockPlanGenerator) Generate(ctx context.Context, req models.PlanRequest) (string, error) {
	ret := _m.Called(ctx, req)
	return ret.String(0), ret.Error(1)
}

func NewMockPlanGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlanGenerator {
	m := &MockPlanGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockStoryboardGenerator is a mock type for the StoryboardGenerator interface.
type MockStoryboardGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, plan
func (_m *MockStoryboardGenerator) Generate(ctx context.Context, plan string) (*storyboard.Result, error) {
	ret := _m.Called(ctx, plan)

	var r0 *storyboard.Result
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*storyboard.Result)
	}
	return r0, ret.Error(1)
}

func NewMockStoryboardGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStoryboardGenerator {
	m := &MockStoryboardGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var (
	_ controller.VideoSearcher       = (*MockVideoSearcher)(nil)
	_ controller.PlanGenerator       = (*MockPlanGenerator)(nil)
	_ controller.StoryboardGenerator = (*MockStoryboardGenerator)(nil)
)
