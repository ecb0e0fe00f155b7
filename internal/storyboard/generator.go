package storyboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"jamesfarrell.me/video-planner/internal/generation"
	"jamesfarrell.me/video-planner/internal/metrics"
	"jamesfarrell.me/video-planner/internal/models"
)

const (
	// ImageRequestInterval is the fixed pause after each successful image.
	ImageRequestInterval = 12 * time.Second

	RateLimitWarning = "レート制限を超えました。少し待ってから再試行してください。"

	promptTemplate = "以下の動画企画構成に基づいて、60秒の動画の絵コンテを作成してください。各シーンの秒数を指定し、表形式で出力してください。\n\n" +
		"%s\n\n" +
		"絵コンテ:\n" +
		"| シーン番号 | タイムコード | シーンの内容 | 伝えたいメッセージ |\n" +
		"|-------------|--------------|--------------|--------------------|\n"
)

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Result is the storyboard text plus the images obtained for its rows.
// Text is always the full completion, even when image generation stopped early.
type Result struct {
	Text        string
	Images      []models.StoryboardImage
	Warnings    []string
	RateLimited bool
}

type Option func(*Generator)

// WithImageInterval overrides the pause after each successful image. Zero disables it.
func WithImageInterval(d time.Duration) Option {
	return func(g *Generator) {
		g.interval = d
	}
}

type Generator struct {
	completer Completer
	images    ImageGenerator
	interval  time.Duration
	logger    *zap.Logger
}

func NewGenerator(completer Completer, images ImageGenerator, logger *zap.Logger, opts ...Option) *Generator {
	g := &Generator{
		completer: completer,
		images:    images,
		interval:  ImageRequestInterval,
		logger:    logger.Named("storyboard"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func BuildPrompt(plan string) string {
	return fmt.Sprintf(promptTemplate, plan)
}

// Generate drafts a storyboard table for plan and requests one image per scene row.
// A rate-limited image request ends the run with a warning and the images gathered so far.
func (g *Generator) Generate(ctx context.Context, plan string) (*Result, error) {
	text, err := g.completer.Complete(ctx, BuildPrompt(plan))
	if err != nil {
		return nil, fmt.Errorf("storyboard generation: %w", err)
	}
	text = strings.TrimSpace(text)

	result := &Result{Text: text}

	rows := DataLines(text)
	g.logger.Info("Storyboard drafted", zap.Int("rows", len(rows)))

	for i, row := range rows {
		description, ok := SceneDescription(row)
		if !ok {
			g.logger.Debug("Skipping storyboard row", zap.Int("row", i))
			continue
		}

		url, err := g.images.GenerateImage(ctx, description)
		if err != nil {
			if errors.Is(err, generation.ErrRateLimited) {
				g.logger.Warn("Image generation rate limited, stopping",
					zap.Int("row", i),
					zap.Int("images", len(result.Images)),
				)
				metrics.IncStoryboardRateLimited()
				result.RateLimited = true
				result.Warnings = append(result.Warnings, RateLimitWarning)
				return result, nil
			}
			return nil, fmt.Errorf("storyboard image for row %d: %w", i, err)
		}

		result.Images = append(result.Images, models.StoryboardImage{RowText: row, ImageURL: url})

		if err := g.pause(ctx); err != nil {
			return nil, fmt.Errorf("storyboard image pacing: %w", err)
		}
	}

	return result, nil
}

// pause waits the full interval counted from now, so the gap after a finished
// image call never shrinks with the call's latency.
func (g *Generator) pause(ctx context.Context) error {
	if g.interval <= 0 {
		return nil
	}
	limiter := rate.NewLimiter(rate.Every(g.interval), 1)
	limiter.Allow()
	return limiter.Wait(ctx)
}
