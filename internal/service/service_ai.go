// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/co-script/internal/adapter"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/models"
)

// aiService turns feature requests into prompts, sends them to the LLM
// client and shapes the completions. Structured features degrade to their
// default response when the completion cannot be decoded.
type aiService struct {
	llm    adapter.LLMClient
	logger *logger.Logger
}

func NewAIService(llm adapter.LLMClient, logger *logger.Logger) AIService {
	return &aiService{
		llm:    llm,
		logger: logger,
	}
}

func (s *aiService) Score(ctx context.Context, req models.ScoreRequest) (models.ScoreResult, error) {
	raw, err := s.complete(ctx, "score", scorePrompt(req))
	if err != nil {
		return models.ScoreResult{}, err
	}

	result, err := parseScore(raw)
	if err != nil {
		s.logParseFailure(ctx, err)
		return models.DefaultScoreResult(raw), nil
	}
	return result, nil
}

func (s *aiService) Generate(ctx context.Context, req models.GenerateRequest) (models.ContentResult, error) {
	raw, err := s.complete(ctx, "generate", generatePrompt(req))
	if err != nil {
		return models.ContentResult{}, err
	}
	return models.ContentResult{Content: raw}, nil
}

func (s *aiService) Hooks(ctx context.Context, req models.HooksRequest) (models.HooksResult, error) {
	raw, err := s.complete(ctx, "hooks", hooksPrompt(req))
	if err != nil {
		return models.HooksResult{}, err
	}

	result, err := parseHooks(raw)
	if err != nil {
		s.logParseFailure(ctx, err)
		return models.HooksResult{Hooks: []models.HookSuggestion{}}, nil
	}
	return result, nil
}

func (s *aiService) Rewrite(ctx context.Context, req models.RewriteRequest) (models.ContentResult, error) {
	raw, err := s.complete(ctx, "rewrite", rewritePrompt(req))
	if err != nil {
		return models.ContentResult{}, err
	}
	return models.ContentResult{Content: raw}, nil
}

func (s *aiService) AnalyzeURL(ctx context.Context, req models.AnalyzeURLRequest) (models.AnalyzeURLResult, error) {
	raw, err := s.complete(ctx, "analyze-url", analyzeURLPrompt(req))
	if err != nil {
		return models.AnalyzeURLResult{}, err
	}

	result, err := parseAnalyzeURL(raw)
	if err != nil {
		s.logParseFailure(ctx, err)
		return models.AnalyzeURLResult{Analysis: raw}, nil
	}
	return result, nil
}

// complete maps adapter failures onto ErrAINotConfigured and ErrAIUpstream.
func (s *aiService) complete(ctx context.Context, feature string, req models.CompletionRequest) (string, error) {
	raw, err := s.llm.Complete(ctx, req)
	if errors.Is(err, adapter.ErrNotConfigured) {
		return "", ErrAINotConfigured
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*aiService.complete").
			Str("feature", feature).
			Msg("completion failed")
		return "", fmt.Errorf("%w: %w", ErrAIUpstream, err)
	}
	return raw, nil
}

func (s *aiService) logParseFailure(ctx context.Context, err error) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		logger.FromContext(ctx).Warn().
			Err(parseErr.Err).
			Str("feature", parseErr.Feature).
			Int("raw_length", len(parseErr.Raw)).
			Msg("completion could not be decoded, using default response")
	}
}
