package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jamesfarrell.me/video-planner/internal/api/handlers"
	"jamesfarrell.me/video-planner/internal/api/middleware"
	"jamesfarrell.me/video-planner/internal/session"
)

func NewRouter(pages *handlers.PageHandler, sessions *session.Store, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger.Named("http")))

	// Public routes
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Page routes carry a session
	ui := r.NewRoute().Subrouter()
	ui.Use(middleware.Session(sessions))

	ui.HandleFunc("/", pages.Index).Methods(http.MethodGet)
	ui.HandleFunc("/search", pages.Search).Methods(http.MethodPost)
	ui.HandleFunc("/plan/select", pages.SelectPlan).Methods(http.MethodPost)
	ui.HandleFunc("/storyboard", pages.Storyboard).Methods(http.MethodPost)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
