package handlers

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"jamesfarrell.me/video-planner/internal/api/middleware"
	"jamesfarrell.me/video-planner/internal/controller"
	"jamesfarrell.me/video-planner/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

const msgKeywordRequired = "検索キーワードを入力してください"

// Planner is the set of user actions the page exposes.
type Planner interface {
	Search(ctx context.Context, s *session.Session, in controller.Inputs) error
	SelectPlan(s *session.Session, label string) error
	GenerateStoryboard(ctx context.Context, s *session.Session) error
}

type PageHandler struct {
	planner Planner
	tmpl    *template.Template
	logger  *zap.Logger
}

func NewPageHandler(planner Planner, logger *zap.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{planner: planner, tmpl: tmpl, logger: logger.Named("pages")}, nil
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "session missing", http.StatusInternalServerError)
		return
	}
	h.render(w, s, http.StatusOK)
}

func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "session missing", http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in := controller.Inputs{
		Keyword:    strings.TrimSpace(r.PostFormValue("keyword")),
		Theme:      strings.TrimSpace(r.PostFormValue("theme")),
		ClientName: strings.TrimSpace(r.PostFormValue("client_name")),
	}
	if in.Keyword == "" {
		h.fail(w, s, errors.New(msgKeywordRequired), http.StatusBadRequest)
		return
	}

	if err := h.planner.Search(r.Context(), s, in); err != nil {
		// the controller already recorded the error flash
		h.render(w, s, http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) SelectPlan(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "session missing", http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.planner.SelectPlan(s, r.PostFormValue("plan")); err != nil {
		h.fail(w, s, err, http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) Storyboard(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "session missing", http.StatusInternalServerError)
		return
	}

	if err := h.planner.GenerateStoryboard(r.Context(), s); err != nil {
		if errors.Is(err, controller.ErrNoPlan) {
			h.fail(w, s, err, http.StatusBadRequest)
			return
		}
		h.render(w, s, http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// fail records err as an error flash and renders the page with status.
func (h *PageHandler) fail(w http.ResponseWriter, s *session.Session, err error, status int) {
	s.AddFlash(session.FlashError, err.Error())
	h.render(w, s, status)
}

func (h *PageHandler) render(w http.ResponseWriter, s *session.Session, status int) {
	view := s.Snapshot()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.Execute(w, view); err != nil {
		h.logger.Error("Failed to render page", zap.String("session_id", s.ID), zap.Error(err))
	}
}
