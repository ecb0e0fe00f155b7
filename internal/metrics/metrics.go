package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	youtubeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_planner_youtube_requests_total",
			Help: "Total number of requests to the YouTube Data API.",
		},
		[]string{"method", "status"},
	)
	youtubeRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "video_planner_youtube_request_duration_seconds",
			Help:    "Histogram of YouTube Data API request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	openAIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_planner_openai_requests_total",
			Help: "Total number of requests to the OpenAI API.",
		},
		[]string{"kind", "status"},
	)
	openAIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "video_planner_openai_request_duration_seconds",
			Help:    "Histogram of OpenAI API request durations.",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"kind"},
	)
	openAITotalTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "video_planner_openai_total_tokens",
			Help:    "Histogram of total token counts (prompt + completion).",
			Buckets: prometheus.LinearBuckets(250, 250, 12),
		},
		[]string{"model"},
	)
	storyboardRateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "video_planner_storyboard_rate_limited_total",
			Help: "Storyboard runs that stopped requesting images after a rate limit.",
		},
	)
)

// Status labels.
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusRateLimited = "rate_limited"
)

func ObserveYouTubeRequest(method, status string, d time.Duration) {
	youtubeRequestsTotal.With(prometheus.Labels{"method": method, "status": status}).Inc()
	youtubeRequestDuration.With(prometheus.Labels{"method": method}).Observe(d.Seconds())
}

func ObserveOpenAIRequest(kind, status string, d time.Duration) {
	openAIRequestsTotal.With(prometheus.Labels{"kind": kind, "status": status}).Inc()
	openAIRequestDuration.With(prometheus.Labels{"kind": kind}).Observe(d.Seconds())
}

func ObserveTokens(model string, total int) {
	if total <= 0 {
		return
	}
	openAITotalTokens.With(prometheus.Labels{"model": model}).Observe(float64(total))
}

func IncStoryboardRateLimited() {
	storyboardRateLimitedTotal.Inc()
}
