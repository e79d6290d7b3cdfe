// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/co-script/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestError_Message(t *testing.T) {
	var err error = ErrContentRequired
	assert.Equal(t, "Content required", err.Error())
}

func TestValidate_Credentials(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{"valid", models.Credentials{Email: "a@b.co", Password: "secret"}, nil},
		{"missing email", models.Credentials{Password: "secret"}, ErrCredentialsRequired},
		{"blank email", models.Credentials{Email: "  ", Password: "secret"}, ErrCredentialsRequired},
		{"missing password", models.Credentials{Email: "a@b.co"}, ErrCredentialsRequired},
		{"bad email", models.Credentials{Email: "not-an-email", Password: "secret"}, ErrInvalidEmail},
		{"short password", models.Credentials{Email: "a@b.co", Password: "12345"}, ErrPasswordTooShort},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Credentials_FieldScoping(t *testing.T) {
	// login only checks presence plus email format
	err := NewRequestValidator().Validate(context.Background(), &models.Credentials{Email: "a@b.co", Password: "123"}, FieldEmail)
	assert.NoError(t, err)
}

func TestValidate_NewScript(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.NewScript{}))
	assert.NoError(t, v.Validate(context.Background(), models.NewScript{ScriptType: models.Blog}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.NewScript{ScriptType: "poem"}), ErrInvalidScriptType)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.NewScript{WordCount: -1}), ErrInvalidWordCount)
}

func TestValidate_ScriptPatch(t *testing.T) {
	tests := []struct {
		name    string
		patch   models.ScriptPatch
		wantErr error
	}{
		{"empty patch", models.ScriptPatch{}, nil},
		{"content only", models.ScriptPatch{Content: ptr("v2")}, nil},
		{"valid enums", models.ScriptPatch{ScriptType: ptr(models.Email), Status: ptr(models.StatusPublished)}, nil},
		{"bad type", models.ScriptPatch{ScriptType: ptr(models.ScriptType("poem"))}, ErrInvalidScriptType},
		{"bad status", models.ScriptPatch{Status: ptr(models.ScriptStatus("archived"))}, ErrInvalidStatus},
		{"score too high", models.ScriptPatch{Score: models.SetInt(101)}, ErrInvalidScore},
		{"score negative", models.ScriptPatch{Score: models.SetInt(-1)}, ErrInvalidScore},
		{"score bounds", models.ScriptPatch{Score: models.SetInt(100)}, nil},
		{"score cleared", models.ScriptPatch{Score: models.ClearInt()}, nil},
		{"breakdown out of range", models.ScriptPatch{ScoreBreakdown: ptr(models.ScoreBreakdown{"clarity": 140})}, ErrInvalidScoreBreakdown},
		{"negative word count", models.ScriptPatch{WordCount: ptr(-3)}, ErrInvalidWordCount},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.patch)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_AIRequests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ScoreRequest{Content: "   "}), ErrContentRequired)
	assert.NoError(t, v.Validate(ctx, models.ScoreRequest{Content: "hello"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.HooksRequest{}), ErrContentRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.RewriteRequest{}), ErrContentRequired)
	assert.NoError(t, v.Validate(ctx, models.GenerateRequest{}))
}

func TestValidate_AnalyzeURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr error
	}{
		{"https://youtube.com/watch?v=1", nil},
		{"http://example.com", nil},
		{"", ErrURLRequired},
		{"   ", ErrURLRequired},
		{"youtube.com/watch", ErrInvalidURL},
		{"ftp://example.com/file", ErrInvalidURL},
		{"https://", ErrInvalidURL},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := v.Validate(context.Background(), models.AnalyzeURLRequest{URL: tt.url})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Library(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.NewVaultItem{}), ErrTitleRequired)
	assert.NoError(t, v.Validate(ctx, models.NewVaultItem{Title: "Swipe"}))
	assert.ErrorIs(t, v.Validate(ctx, models.NewVaultItem{Title: "Swipe", SourceURL: "nope"}), ErrInvalidSourceURL)

	assert.ErrorIs(t, v.Validate(ctx, models.NewWatchlist{}), ErrNameRequired)
	assert.NoError(t, v.Validate(ctx, models.NewWatchlist{Name: "Rivals"}))
	assert.ErrorIs(t, v.Validate(ctx, models.NewWatchlist{Name: "Rivals", Platform: "myspace"}), ErrInvalidPlatform)

	assert.ErrorIs(t, v.Validate(ctx, models.NewFramework{Category: "hooks"}), ErrNameRequired)
	assert.ErrorIs(t, v.Validate(ctx, &models.NewFramework{Name: "AIDA"}), ErrCategoryRequired)
	assert.NoError(t, v.Validate(ctx, models.NewFramework{Name: "AIDA", Category: "copywriting"}))
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.NewWatchlist{Name: "x"}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}
