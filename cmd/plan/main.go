// Command plan runs one search and plan generation from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"jamesfarrell.me/video-planner/internal/config"
	"jamesfarrell.me/video-planner/internal/generation"
	"jamesfarrell.me/video-planner/internal/logger"
	"jamesfarrell.me/video-planner/internal/models"
	"jamesfarrell.me/video-planner/internal/planner"
	"jamesfarrell.me/video-planner/internal/storyboard"
	"jamesfarrell.me/video-planner/internal/youtube"
)

func main() {
	keyword := flag.String("keyword", "", "YouTube search keyword (required)")
	theme := flag.String("theme", "", "theme of the new video")
	client := flag.String("client", "", "client name")
	maxResults := flag.Int("max", 0, "maximum number of search results (defaults to SEARCH_MAX_RESULTS)")
	withStoryboard := flag.Bool("storyboard", false, "also draft a storyboard with images")
	flag.Parse()

	if strings.TrimSpace(*keyword) == "" {
		fmt.Fprintln(os.Stderr, "Error: -keyword is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *keyword, *theme, *client, *maxResults, *withStoryboard); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, keyword, theme, client string, maxResults int, withStoryboard bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if maxResults <= 0 {
		maxResults = cfg.SearchMaxResults
	}

	zapLogger, err := logger.New(logger.Config{Level: cfg.Logger.Level, Encoding: "console"})
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	searcher, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey, zapLogger)
	if err != nil {
		return err
	}
	ai := generation.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, zapLogger)

	videos, err := searcher.Search(ctx, keyword, maxResults)
	if err != nil {
		return fmt.Errorf("search error: %w", err)
	}
	fmt.Printf("Found %d videos\n", len(videos))
	if len(videos) == 0 {
		return nil
	}

	plan, err := planner.NewGenerator(ai, zapLogger).Generate(ctx, models.PlanRequest{
		Theme:      theme,
		ClientName: client,
		Videos:     videos,
	})
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", plan)

	if !withStoryboard {
		return nil
	}

	result, err := storyboard.NewGenerator(ai, ai, zapLogger).Generate(ctx, plan)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n\n", result.Text)
	for _, img := range result.Images {
		fmt.Printf("%s\n  %s\n", img.RowText, img.ImageURL)
	}
	for _, w := range result.Warnings {
		zapLogger.Warn(w, zap.Int("images", len(result.Images)))
	}
	return nil
}
