package validators

import (
	"context"
	"net/mail"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/co-script/models"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldTitle          = "title"
	FieldName           = "name"
	FieldCategory       = "category"
	FieldContent        = "content"
	FieldURL            = "url"
	FieldSourceURL      = "source_url"
	FieldScriptType     = "script_type"
	FieldStatus         = "status"
	FieldScore          = "score"
	FieldScoreBreakdown = "score_breakdown"
	FieldWordCount      = "word_count"
	FieldPlatform       = "platform"
)

const minPasswordLength = 6

// RequestValidator validates every request payload of the co-script API.
// Both value and pointer forms of each model are accepted.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches to the type-specific rule set. With no fields the full
// rule set of the type is applied.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.NewScript:
		return v.validateNewScript(ctx, value, fields...)
	case *models.NewScript:
		return v.validateNewScript(ctx, *value, fields...)

	case models.ScriptPatch:
		return v.validateScriptPatch(ctx, value, fields...)
	case *models.ScriptPatch:
		return v.validateScriptPatch(ctx, *value, fields...)

	case models.ScoreRequest:
		return requireContent(value.Content)
	case *models.ScoreRequest:
		return requireContent(value.Content)

	case models.HooksRequest:
		return requireContent(value.Content)
	case *models.HooksRequest:
		return requireContent(value.Content)

	case models.RewriteRequest:
		return requireContent(value.Content)
	case *models.RewriteRequest:
		return requireContent(value.Content)

	case models.GenerateRequest, *models.GenerateRequest:
		return nil

	case models.AnalyzeURLRequest:
		return validateHTTPURL(value.URL, ErrURLRequired, ErrInvalidURL)
	case *models.AnalyzeURLRequest:
		return validateHTTPURL(value.URL, ErrURLRequired, ErrInvalidURL)

	case models.NewVaultItem:
		return v.validateNewVaultItem(ctx, value, fields...)
	case *models.NewVaultItem:
		return v.validateNewVaultItem(ctx, *value, fields...)

	case models.NewWatchlist:
		return v.validateNewWatchlist(ctx, value, fields...)
	case *models.NewWatchlist:
		return v.validateNewWatchlist(ctx, *value, fields...)

	case models.NewFramework:
		return v.validateNewFramework(ctx, value, fields...)
	case *models.NewFramework:
		return v.validateNewFramework(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(ctx context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	if isBlank(c.Email) || c.Password == "" {
		return ErrCredentialsRequired
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if _, err := mail.ParseAddress(strings.TrimSpace(c.Email)); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(c.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateNewVaultItem(ctx context.Context, item models.NewVaultItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldSourceURL}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(item.Title) {
				return ErrTitleRequired
			}
		case FieldSourceURL:
			if !isBlank(item.SourceURL) {
				if err := validateHTTPURL(item.SourceURL, ErrInvalidSourceURL, ErrInvalidSourceURL); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateNewWatchlist(ctx context.Context, w models.NewWatchlist, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPlatform}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(w.Name) {
				return ErrNameRequired
			}
		case FieldPlatform:
			if w.Platform != "" && !slices.Contains(models.Platforms, w.Platform) {
				return ErrInvalidPlatform
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateNewFramework(ctx context.Context, fw models.NewFramework, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(fw.Name) {
				return ErrNameRequired
			}
		case FieldCategory:
			if isBlank(fw.Category) {
				return ErrCategoryRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func requireContent(content string) error {
	if isBlank(content) {
		return ErrContentRequired
	}
	return nil
}

// validateHTTPURL accepts only absolute http(s) URLs with a host.
func validateHTTPURL(raw string, errEmpty, errInvalid Error) error {
	if isBlank(raw) {
		return errEmpty
	}

	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errInvalid
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
