package planner

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jamesfarrell.me/video-planner/internal/models"
)

const promptTemplate = "あなたは動画制作のディレクターです。以下の動画情報に基づいて、テーマ「%s」に沿った新しい動画のタイトルと企画構成を作成してください。\n\n" +
	"クライアント名: %s\n\n" +
	"%s\n\n" +
	"新しい動画のタイトルと企画構成:\n" +
	"1. タイトル\n" +
	"2. 企画構成\n" +
	"   - ペルソナ\n" +
	"   - その動画は視聴したターゲットにどう感じ、どのような行動を起こさせるものか\n" +
	"   - マーケティング視点での企画内容の説明\n" +
	"   - CTA\n" +
	"   - ざっくりとした構成案3個\n"

// Completer sends one prompt to a text-generation model and returns the trimmed top choice.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator drafts a video title and content plan from search results.
type Generator struct {
	completer Completer
	logger    *zap.Logger
}

func NewGenerator(completer Completer, logger *zap.Logger) *Generator {
	return &Generator{completer: completer, logger: logger.Named("planner")}
}

// BuildPrompt renders the director prompt with one line per video, in input order.
func BuildPrompt(req models.PlanRequest) string {
	lines := make([]string, 0, len(req.Videos))
	for _, v := range req.Videos {
		lines = append(lines, v.String())
	}
	return fmt.Sprintf(promptTemplate, req.Theme, req.ClientName, strings.Join(lines, "\n"))
}

// Generate returns the plan text. Errors from the model are returned unchanged.
func (g *Generator) Generate(ctx context.Context, req models.PlanRequest) (string, error) {
	prompt := BuildPrompt(req)
	g.logger.Info("Generating plan",
		zap.String("theme", req.Theme),
		zap.String("client", req.ClientName),
		zap.Int("videos", len(req.Videos)),
	)

	plan, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("plan generation: %w", err)
	}
	return strings.TrimSpace(plan), nil
}
