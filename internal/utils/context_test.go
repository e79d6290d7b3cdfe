// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/co-script/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "identity", IdentityCtxKey.String())
}

func TestGetIdentityFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   models.Identity
		wantOK bool
	}{
		{
			name:   "stored identity",
			ctx:    WithIdentity(context.Background(), models.Identity{ID: "u1", Email: "a@b.c"}),
			want:   models.Identity{ID: "u1", Email: "a@b.c"},
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), IdentityCtxKey, "u1"),
		},
		{
			name: "empty id",
			ctx:  WithIdentity(context.Background(), models.Identity{Email: "a@b.c"}),
		},
		{
			name: "different key",
			ctx:  context.WithValue(context.Background(), contextKey("other"), models.Identity{ID: "u1"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetIdentityFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetTokenFromContext(t *testing.T) {
	_, ok := GetTokenFromContext(context.Background())
	assert.False(t, ok)

	ctx := context.WithValue(context.Background(), TokenCtxKey, models.Token{UserID: "u1"})
	token, ok := GetTokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", token.UserID)
}
