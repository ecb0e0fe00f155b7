package controller

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"jamesfarrell.me/video-planner/internal/models"
	"jamesfarrell.me/video-planner/internal/session"
	"jamesfarrell.me/video-planner/internal/storyboard"
)

const (
	msgSearchComplete  = "検索完了"
	msgPlanReady       = "新しい動画のタイトルと企画構成:"
	msgNoResults       = "検索結果がありませんでした。"
	msgStoryboardReady = "絵コンテを作成しました。"
)

var (
	ErrNoPlan            = errors.New("no plan has been generated yet")
	ErrInvalidPlanOption = errors.New("unknown plan option")
)

type VideoSearcher interface {
	Search(ctx context.Context, keyword string, maxResults int) ([]models.VideoRecord, error)
}

type PlanGenerator interface {
	Generate(ctx context.Context, req models.PlanRequest) (string, error)
}

type StoryboardGenerator interface {
	Generate(ctx context.Context, plan string) (*storyboard.Result, error)
}

// Inputs are the three free-text fields of the page.
type Inputs struct {
	Keyword    string
	Theme      string
	ClientName string
}

// Controller drives one session through search, plan generation and plan selection.
// Every action holds the session lock, so a session never has two provider calls in flight.
type Controller struct {
	searcher    VideoSearcher
	planner     PlanGenerator
	storyboards StoryboardGenerator
	maxResults  int
	logger      *zap.Logger
}

func New(searcher VideoSearcher, planner PlanGenerator, storyboards StoryboardGenerator, maxResults int, logger *zap.Logger) *Controller {
	if maxResults <= 0 {
		maxResults = models.DefaultMaxResults
	}
	return &Controller{
		searcher:    searcher,
		planner:     planner,
		storyboards: storyboards,
		maxResults:  maxResults,
		logger:      logger.Named("controller"),
	}
}

// Search runs the search and, when it returns videos, the plan generation.
// A failure is recorded as an error flash and returned; the session goes back to idle
// with the previous results cleared.
func (c *Controller) Search(ctx context.Context, s *session.Session, in Inputs) error {
	s.Lock()
	defer s.Unlock()

	log := c.logger.With(zap.String("session_id", s.ID), zap.String("keyword", in.Keyword))

	s.Update(func() {
		s.Keyword, s.Theme, s.ClientName = in.Keyword, in.Theme, in.ClientName
		s.State = session.StateSearching
	})

	videos, err := c.searcher.Search(ctx, in.Keyword, c.maxResults)
	if err != nil {
		log.Error("Search failed", zap.Error(err))
		s.Update(func() {
			s.State = session.StateIdle
			s.Searched = false
			s.Videos = nil
			s.Plan = ""
			s.StoryboardText, s.StoryboardImages = "", nil
		})
		s.AddFlash(session.FlashError, err.Error())
		return fmt.Errorf("search: %w", err)
	}

	s.Update(func() {
		s.Searched = true
		s.Videos = videos
		s.Plan = ""
		s.StoryboardText, s.StoryboardImages = "", nil
		s.State = session.StateSearchComplete
	})
	s.AddFlash(session.FlashSuccess, msgSearchComplete)
	log.Info("Search complete", zap.Int("videos", len(videos)))

	if len(videos) == 0 {
		s.AddFlash(session.FlashWarning, msgNoResults)
		return nil
	}

	s.Update(func() { s.State = session.StatePlanGenerating })
	plan, err := c.planner.Generate(ctx, models.PlanRequest{
		Theme:      in.Theme,
		ClientName: in.ClientName,
		Videos:     videos,
	})
	if err != nil {
		log.Error("Plan generation failed", zap.Error(err))
		s.Update(func() { s.State = session.StateSearchComplete })
		s.AddFlash(session.FlashError, err.Error())
		return fmt.Errorf("plan: %w", err)
	}

	s.Update(func() {
		s.Plan = plan
		s.State = session.StatePlanReady
		if s.SelectedPlan == "" {
			s.SelectedPlan = models.PlanOptions[0]
		}
	})
	s.AddFlash(session.FlashSuccess, msgPlanReady)
	log.Info("Plan ready", zap.Int("plan_bytes", len(plan)))

	return nil
}

// SelectPlan records the chosen plan variant for the rest of the session.
func (c *Controller) SelectPlan(s *session.Session, label string) error {
	s.Lock()
	defer s.Unlock()

	if !s.HasPlan() {
		return ErrNoPlan
	}
	if !models.IsPlanOption(label) {
		return fmt.Errorf("%w: %q", ErrInvalidPlanOption, label)
	}

	s.Update(func() {
		s.SelectedPlan = label
		s.State = session.StatePlanSelected
	})
	c.logger.Info("Plan selected", zap.String("session_id", s.ID), zap.String("plan", label))
	return nil
}

// GenerateStoryboard drafts a storyboard for the current plan. Rate-limit warnings
// become warning flashes; the partial result is kept. The action lock is held for
// the whole run; renders still see the generating state through Snapshot.
func (c *Controller) GenerateStoryboard(ctx context.Context, s *session.Session) error {
	s.Lock()
	defer s.Unlock()

	if !s.HasPlan() {
		return ErrNoPlan
	}

	previous := s.State
	s.Update(func() { s.State = session.StateStoryboardGenerating })

	result, err := c.storyboards.Generate(ctx, s.Plan)
	if err != nil {
		c.logger.Error("Storyboard generation failed", zap.String("session_id", s.ID), zap.Error(err))
		s.Update(func() { s.State = previous })
		s.AddFlash(session.FlashError, err.Error())
		return fmt.Errorf("storyboard: %w", err)
	}

	s.Update(func() {
		s.StoryboardText = result.Text
		s.StoryboardImages = result.Images
		s.State = session.StateStoryboardReady
	})
	for _, w := range result.Warnings {
		s.AddFlash(session.FlashWarning, w)
	}
	if !result.RateLimited {
		s.AddFlash(session.FlashSuccess, msgStoryboardReady)
	}
	return nil
}
