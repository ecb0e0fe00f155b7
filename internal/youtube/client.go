package youtube

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"jamesfarrell.me/video-planner/internal/metrics"
	"jamesfarrell.me/video-planner/internal/models"
)

// ErrSearchFailed wraps any transport or API failure from the search or statistics calls.
var ErrSearchFailed = errors.New("youtube search failed")

// Client looks up videos by keyword and enriches them with view and like counts.
type Client struct {
	service *yt.Service
	logger  *zap.Logger
}

// NewClient creates a Data API v3 client authenticated with an API key.
// Extra options are appended, e.g. option.WithEndpoint for a proxy or a test server.
func NewClient(ctx context.Context, apiKey string, logger *zap.Logger, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}

	return &Client{
		service: service,
		logger:  logger.Named("youtube"),
	}, nil
}

// Search runs one search request and one statistics request per returned item.
// Results keep the provider's order. Any request failure aborts the whole call.
func (c *Client) Search(ctx context.Context, keyword string, maxResults int) ([]models.VideoRecord, error) {
	query := models.NewSearchQuery(keyword, maxResults)
	log := c.logger.With(zap.String("keyword", query.Keyword), zap.Int("max_results", query.MaxResults))

	start := time.Now()
	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query.Keyword).
		Type("video").
		MaxResults(int64(query.MaxResults)).
		Context(ctx).
		Do()
	if err != nil {
		metrics.ObserveYouTubeRequest("search.list", metrics.StatusError, time.Since(start))
		log.Error("Search request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: search: %v", ErrSearchFailed, err)
	}
	metrics.ObserveYouTubeRequest("search.list", metrics.StatusSuccess, time.Since(start))
	log.Info("Search completed", zap.Int("items", len(resp.Items)))

	videos := make([]models.VideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		var videoID, title string
		if item.Id != nil {
			videoID = item.Id.VideoId
		}
		if item.Snippet != nil {
			title = item.Snippet.Title
		}

		views, likes, err := c.statistics(ctx, videoID)
		if err != nil {
			log.Error("Statistics request failed", zap.String("video_id", videoID), zap.Error(err))
			return nil, fmt.Errorf("%w: statistics for %s: %v", ErrSearchFailed, videoID, err)
		}

		videos = append(videos, models.VideoRecord{
			Title: title,
			URL:   models.WatchURL(videoID),
			Views: views,
			Likes: likes,
		})
	}

	return videos, nil
}

// statistics returns view and like counts, or N/A for both when the lookup has no items.
// The Data API omits likeCount when the owner hides likes; the client decodes the
// missing field as zero, so hidden likes are reported as "0", not N/A.
func (c *Client) statistics(ctx context.Context, videoID string) (string, string, error) {
	start := time.Now()
	resp, err := c.service.Videos.List([]string{"statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		metrics.ObserveYouTubeRequest("videos.list", metrics.StatusError, time.Since(start))
		return "", "", err
	}
	metrics.ObserveYouTubeRequest("videos.list", metrics.StatusSuccess, time.Since(start))

	if len(resp.Items) == 0 || resp.Items[0].Statistics == nil {
		c.logger.Debug("No statistics for video", zap.String("video_id", videoID))
		return models.NotAvailable, models.NotAvailable, nil
	}

	stats := resp.Items[0].Statistics
	return strconv.FormatUint(stats.ViewCount, 10), strconv.FormatUint(stats.LikeCount, 10), nil
}
