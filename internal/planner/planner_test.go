package planner_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jamesfarrell.me/video-planner/internal/generation"
	"jamesfarrell.me/video-planner/internal/mocks"
	"jamesfarrell.me/video-planner/internal/models"
	"jamesfarrell.me/video-planner/internal/planner"
)

var testVideos = []models.VideoRecord{
	{Title: "Cats compilation", URL: models.WatchURL("vid1"), Views: "1500", Likes: "42"},
	{Title: "Cat care basics", URL: models.WatchURL("vid2"), Views: models.NotAvailable, Likes: models.NotAvailable},
}

func TestBuildPrompt(t *testing.T) {
	req := models.PlanRequest{Theme: "ペットとの暮らし", ClientName: "Acme Pet Foods", Videos: testVideos}

	prompt := planner.BuildPrompt(req)

	parts := []string{
		"テーマ「ペットとの暮らし」",
		"クライアント名: Acme Pet Foods",
		"Title: Cats compilation, URL: https://www.youtube.com/watch?v=vid1, Views: 1500, Likes: 42\n" +
			"Title: Cat care basics, URL: https://www.youtube.com/watch?v=vid2, Views: N/A, Likes: N/A",
		"ざっくりとした構成案3個",
	}
	offset := 0
	for _, part := range parts {
		idx := strings.Index(prompt[offset:], part)
		require.GreaterOrEqual(t, idx, 0, "missing or out of order: %q", part)
		offset += idx + len(part)
	}
}

func TestGenerator_Generate(t *testing.T) {
	completer := mocks.NewMockCompleter(t)
	g := planner.NewGenerator(completer, zap.NewNop())
	req := models.PlanRequest{Theme: "cats", ClientName: "client", Videos: testVideos}

	completer.On("Complete", mock.Anything, planner.BuildPrompt(req)).Return("  タイトル: 猫の一日\n構成案1...  \n", nil).Once()

	plan, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "タイトル: 猫の一日\n構成案1...", plan)
}

func TestGenerator_Generate_Error(t *testing.T) {
	completer := mocks.NewMockCompleter(t)
	g := planner.NewGenerator(completer, zap.NewNop())

	completer.On("Complete", mock.Anything, mock.Anything).Return("", generation.ErrGenerationFailed).Once()

	_, err := g.Generate(context.Background(), models.PlanRequest{Videos: testVideos})
	assert.True(t, errors.Is(err, generation.ErrGenerationFailed))
}
