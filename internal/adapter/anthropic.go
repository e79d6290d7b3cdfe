package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
)

const (
	anthropicDefaultBaseURL = "https://api.anthropic.com"
	anthropicDefaultModel   = "claude-sonnet-4-20250514"
	anthropicVersion        = "2023-06-01"
	anthropicMessagesPath   = "/v1/messages"
)

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

type anthropicClient struct {
	client *utils.HTTPClient
	model  string
	logger *logger.Logger
}

// NewAnthropicClient constructs an [LLMClient] for the Anthropic Messages
// API. Empty baseURL and model select the public endpoint and the default
// model.
func NewAnthropicClient(apiKey, model, baseURL string, timeout time.Duration, log *logger.Logger) LLMClient {
	if baseURL == "" {
		baseURL = anthropicDefaultBaseURL
	}
	if model == "" {
		model = anthropicDefaultModel
	}

	client := utils.NewHTTPClient(strings.TrimRight(baseURL, "/"), timeout)
	client.
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", anthropicVersion)

	return &anthropicClient{client: client, model: model, logger: log}
}

// Complete implements [LLMClient]. It returns the first text block of the
// response.
func (c *anthropicClient) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	var result anthropicResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(anthropicRequest{
			Model:     c.model,
			MaxTokens: req.MaxTokens,
			System:    req.System,
			Messages:  []anthropicMessage{{Role: "user", Content: req.Prompt}},
		}).
		SetResult(&result).
		Post(anthropicMessagesPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*anthropicClient.Complete").Msg("messages request failed")
		return "", fmt.Errorf("%w: messages request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Warn().Int("status", resp.StatusCode()).Str("func", "*anthropicClient.Complete").Msg("provider returned an error")
		return "", err
	}

	for _, block := range result.Content {
		if block.Type == "text" || block.Type == "" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("%w: %w", ErrUpstream, ErrEmptyCompletion)
}
