package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	"jamesfarrell.me/video-planner/internal/api"
	"jamesfarrell.me/video-planner/internal/api/handlers"
	"jamesfarrell.me/video-planner/internal/config"
	"jamesfarrell.me/video-planner/internal/controller"
	"jamesfarrell.me/video-planner/internal/generation"
	"jamesfarrell.me/video-planner/internal/logger"
	"jamesfarrell.me/video-planner/internal/planner"
	"jamesfarrell.me/video-planner/internal/session"
	"jamesfarrell.me/video-planner/internal/storyboard"
	"jamesfarrell.me/video-planner/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		OutputPath: cfg.Logger.OutputPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize provider clients
	var ytOpts []option.ClientOption
	if cfg.YouTubeEndpoint != "" {
		ytOpts = append(ytOpts, option.WithEndpoint(cfg.YouTubeEndpoint))
	}
	searcher, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey, zapLogger, ytOpts...)
	if err != nil {
		zapLogger.Fatal("Failed to initialize YouTube client", zap.Error(err))
	}
	ai := generation.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, zapLogger)

	zapLogger.Info("Configuration loaded",
		zap.String("http_addr", cfg.HTTPAddr),
		zap.String("developer_key", config.MaskKey(cfg.YouTubeAPIKey)),
		zap.String("openai_api_key", config.MaskKey(cfg.OpenAIAPIKey)),
		zap.Int("search_max_results", cfg.SearchMaxResults),
		zap.Duration("session_idle_ttl", cfg.SessionIdleTTL),
	)

	ctrl := controller.New(
		searcher,
		planner.NewGenerator(ai, zapLogger),
		storyboard.NewGenerator(ai, ai, zapLogger),
		cfg.SearchMaxResults,
		zapLogger,
	)

	sessions := session.NewStore(cfg.SessionIdleTTL, zapLogger)
	go sessions.Run(ctx, time.Minute)

	pages, err := handlers.NewPageHandler(ctrl, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to parse page template", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(pages, sessions, zapLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("HTTP server shutdown error", zap.Error(err))
		}
	}()

	zapLogger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zapLogger.Fatal("HTTP server error", zap.Error(err))
	}
	zapLogger.Info("HTTP server stopped")
}
