package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"jamesfarrell.me/video-planner/internal/metrics"
)

const (
	SystemInstruction = "You are a helpful assistant."
	ChatModel         = openai.GPT4
	MaxOutputTokens   = 1000

	ImageModel = openai.CreateImageModelDallE2
	ImageSize  = openai.CreateImageSize256x256
)

var (
	// ErrGenerationFailed wraps any failed or empty completion or image request.
	ErrGenerationFailed = errors.New("openai generation failed")
	// ErrRateLimited is returned when the provider answers 429.
	ErrRateLimited = errors.New("openai rate limit exceeded")
)

// Client wraps the OpenAI chat completion and image endpoints with the
// fixed system instruction, model and token cap used by the planner.
type Client struct {
	client *openai.Client
	logger *zap.Logger
}

// NewClient creates a client for apiKey. A non-empty baseURL replaces the
// default API endpoint.
func NewClient(apiKey, baseURL string, logger *zap.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		logger: logger.Named("openai"),
	}
}

// Complete sends one chat completion and returns the trimmed text of the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: MaxOutputTokens,
	})
	duration := time.Since(start)

	if err != nil {
		wrapped := classify(err)
		metrics.ObserveOpenAIRequest("chat", statusLabel(wrapped), duration)
		c.logger.Error("Chat completion failed", zap.Duration("duration", duration), zap.Error(err))
		return "", wrapped
	}

	if len(resp.Choices) == 0 {
		metrics.ObserveOpenAIRequest("chat", metrics.StatusError, duration)
		c.logger.Error("Chat completion returned no choices", zap.Duration("duration", duration))
		return "", fmt.Errorf("%w: no choices returned", ErrGenerationFailed)
	}

	metrics.ObserveOpenAIRequest("chat", metrics.StatusSuccess, duration)
	metrics.ObserveTokens(ChatModel, resp.Usage.TotalTokens)
	c.logger.Info("Chat completion received",
		zap.Duration("duration", duration),
		zap.Int("prompt_bytes", len(prompt)),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateImage requests a single 256x256 image and returns its URL.
// A 429 from the provider is reported as ErrRateLimited.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          ImageModel,
		N:              1,
		Size:           ImageSize,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	duration := time.Since(start)

	if err != nil {
		wrapped := classify(err)
		metrics.ObserveOpenAIRequest("image", statusLabel(wrapped), duration)
		if errors.Is(wrapped, ErrRateLimited) {
			c.logger.Warn("Image request rate limited", zap.Duration("duration", duration), zap.Error(err))
		} else {
			c.logger.Error("Image request failed", zap.Duration("duration", duration), zap.Error(err))
		}
		return "", wrapped
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		metrics.ObserveOpenAIRequest("image", metrics.StatusError, duration)
		return "", fmt.Errorf("%w: image response without url", ErrGenerationFailed)
	}

	metrics.ObserveOpenAIRequest("image", metrics.StatusSuccess, duration)
	c.logger.Debug("Image generated", zap.Duration("duration", duration))
	return resp.Data[0].URL, nil
}

// classify maps provider errors onto the package sentinels.
func classify(err error) error {
	if IsRateLimit(err) {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
}

// IsRateLimit reports whether err is a 429 answer from the OpenAI API.
func IsRateLimit(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}

func statusLabel(err error) string {
	if errors.Is(err, ErrRateLimited) {
		return metrics.StatusRateLimited
	}
	return metrics.StatusError
}
