package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/models"
)

const geminiDefaultModel = "gemini-2.5-flash"

type geminiClient struct {
	client *genai.Client
	model  string
	logger *logger.Logger
}

// NewGeminiClient constructs an [LLMClient] backed by the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string, timeout time.Duration, log *logger.Logger) (LLMClient, error) {
	if model == "" {
		model = geminiDefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseURL,
		},
	}
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{client: client, model: model, logger: log}, nil
}

// Complete implements [LLMClient].
func (c *geminiClient) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*geminiClient.Complete").Msg("generate content failed")

		if apiErr, ok := asAPIError(err); ok {
			switch apiErr.Code {
			case http.StatusUnauthorized, http.StatusForbidden:
				return "", fmt.Errorf("%w: %w: %s", ErrUpstream, ErrUnauthorized, apiErr.Message)
			case http.StatusTooManyRequests:
				return "", fmt.Errorf("%w: %w: %s", ErrUpstream, ErrRateLimited, apiErr.Message)
			}
		}
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: %w", ErrUpstream, ErrEmptyCompletion)
	}

	return text, nil
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}
