package service

import (
	"context"

	"github.com/MKhiriev/co-script/internal/validators"
	"github.com/MKhiriev/co-script/models"
)

// ScriptValidationService rejects malformed script payloads before they reach
// the wrapped ScriptService. Validation errors are returned unwrapped so the
// handler can show their text as is.
type ScriptValidationService struct {
	inner     ScriptService
	validator validators.Validator
}

func NewScriptValidationService() ScriptServiceWrapper {
	return &ScriptValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ScriptValidationService) CreateScript(ctx context.Context, userID string, script models.NewScript) (models.Script, error) {
	if err := v.validator.Validate(ctx, script); err != nil {
		return models.Script{}, err
	}
	return v.inner.CreateScript(ctx, userID, script)
}

func (v *ScriptValidationService) ListScripts(ctx context.Context, userID string) ([]models.Script, error) {
	return v.inner.ListScripts(ctx, userID)
}

func (v *ScriptValidationService) GetScript(ctx context.Context, userID, scriptID string) (models.Script, error) {
	return v.inner.GetScript(ctx, userID, scriptID)
}

func (v *ScriptValidationService) UpdateScript(ctx context.Context, userID, scriptID string, patch models.ScriptPatch) (models.Script, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Script{}, err
	}
	return v.inner.UpdateScript(ctx, userID, scriptID, patch)
}

func (v *ScriptValidationService) DeleteScript(ctx context.Context, userID, scriptID string) error {
	return v.inner.DeleteScript(ctx, userID, scriptID)
}

func (v *ScriptValidationService) ListVersions(ctx context.Context, userID, scriptID string) ([]models.ScriptVersion, error) {
	return v.inner.ListVersions(ctx, userID, scriptID)
}

func (v *ScriptValidationService) Wrap(wrapped ScriptService) ScriptService {
	v.inner = wrapped
	return v
}
