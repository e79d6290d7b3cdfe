package service

import (
	"context"

	"github.com/MKhiriev/co-script/internal/validators"
	"github.com/MKhiriev/co-script/models"
)

// AIValidationService checks required inputs before any provider call, so a
// missing content or url is reported even when no provider is configured.
type AIValidationService struct {
	inner     AIService
	validator validators.Validator
}

func NewAIValidationService() AIServiceWrapper {
	return &AIValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AIValidationService) Score(ctx context.Context, req models.ScoreRequest) (models.ScoreResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ScoreResult{}, err
	}
	return v.inner.Score(ctx, req)
}

func (v *AIValidationService) Generate(ctx context.Context, req models.GenerateRequest) (models.ContentResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ContentResult{}, err
	}
	return v.inner.Generate(ctx, req)
}

func (v *AIValidationService) Hooks(ctx context.Context, req models.HooksRequest) (models.HooksResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.HooksResult{}, err
	}
	return v.inner.Hooks(ctx, req)
}

func (v *AIValidationService) Rewrite(ctx context.Context, req models.RewriteRequest) (models.ContentResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ContentResult{}, err
	}
	return v.inner.Rewrite(ctx, req)
}

func (v *AIValidationService) AnalyzeURL(ctx context.Context, req models.AnalyzeURLRequest) (models.AnalyzeURLResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AnalyzeURLResult{}, err
	}
	return v.inner.AnalyzeURL(ctx, req)
}

func (v *AIValidationService) Wrap(wrapped AIService) AIService {
	v.inner = wrapped
	return v
}
