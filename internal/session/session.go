package session

import (
	"sync"
	"time"

	"jamesfarrell.me/video-planner/internal/models"
)

// State is the position of a session in the search → plan → selection flow.
type State string

const (
	StateIdle                 State = "idle"
	StateSearching            State = "searching"
	StateSearchComplete       State = "search_complete"
	StatePlanGenerating       State = "plan_generating"
	StatePlanReady            State = "plan_ready"
	StatePlanSelected         State = "plan_selected"
	StateStoryboardGenerating State = "storyboard_generating"
	StateStoryboardReady      State = "storyboard_ready"
)

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashWarning FlashLevel = "warning"
	FlashError   FlashLevel = "error"
)

// Flash is a one-shot status message shown on the next render.
type Flash struct {
	Level   FlashLevel
	Message string
}

// Session is one browser's interaction state. Fields are written inside Update
// by the holder of the action lock; Snapshot only needs the state lock, so a
// render does not wait for a running action.
type Session struct {
	ID string

	action sync.Mutex
	state  sync.Mutex

	State      State
	Keyword    string
	Theme      string
	ClientName string

	// Searched is set once a search has completed, even with zero results.
	Searched bool
	Videos   []models.VideoRecord
	Plan     string

	// SelectedPlan survives new searches and input edits.
	SelectedPlan string

	StoryboardText   string
	StoryboardImages []models.StoryboardImage

	flashes  []Flash
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{ID: id, State: StateIdle, lastSeen: now}
}

// Lock serializes actions on the session.
func (s *Session) Lock() { s.action.Lock() }

func (s *Session) Unlock() { s.action.Unlock() }

// Update applies fn under the state lock. fn must not call AddFlash.
func (s *Session) Update(fn func()) {
	s.state.Lock()
	defer s.state.Unlock()
	fn()
}

func (s *Session) AddFlash(level FlashLevel, message string) {
	s.state.Lock()
	defer s.state.Unlock()
	s.flashes = append(s.flashes, Flash{Level: level, Message: message})
}

// TakeFlashes returns pending flashes and clears them.
func (s *Session) TakeFlashes() []Flash {
	s.state.Lock()
	defer s.state.Unlock()
	return s.takeFlashes()
}

func (s *Session) takeFlashes() []Flash {
	flashes := s.flashes
	s.flashes = nil
	return flashes
}

// HasPlan reports whether a plan is available for selection.
func (s *Session) HasPlan() bool {
	return s.Plan != ""
}

// View is a copy of the session safe to hand to a template.
type View struct {
	State            State
	Keyword          string
	Theme            string
	ClientName       string
	Searched         bool
	Videos           []models.VideoRecord
	Plan             string
	PlanOptions      []string
	SelectedPlan     string
	StoryboardText   string
	StoryboardImages []models.StoryboardImage
	Flashes          []Flash
}

// Snapshot copies the session for rendering and consumes pending flashes.
func (s *Session) Snapshot() View {
	s.state.Lock()
	defer s.state.Unlock()

	return View{
		State:            s.State,
		Keyword:          s.Keyword,
		Theme:            s.Theme,
		ClientName:       s.ClientName,
		Searched:         s.Searched,
		Videos:           append([]models.VideoRecord(nil), s.Videos...),
		Plan:             s.Plan,
		PlanOptions:      models.PlanOptions,
		SelectedPlan:     s.SelectedPlan,
		StoryboardText:   s.StoryboardText,
		StoryboardImages: append([]models.StoryboardImage(nil), s.StoryboardImages...),
		Flashes:          s.takeFlashes(),
	}
}
