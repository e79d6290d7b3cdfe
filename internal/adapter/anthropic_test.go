// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/models"
)

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) LLMClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAnthropicClient("test-key", "", srv.URL, 0, logger.Nop())
}

func TestAnthropicComplete_Success(t *testing.T) {
	c := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, anthropicDefaultModel, body.Model)
		assert.Equal(t, 2048, body.MaxTokens)
		assert.Equal(t, "be helpful", body.System)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)
		assert.Equal(t, "write a hook", body.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Stop scrolling."}],"stop_reason":"end_turn"}`))
	})

	text, err := c.Complete(context.Background(), models.CompletionRequest{
		System: "be helpful", Prompt: "write a hook", MaxTokens: 2048,
	})
	require.NoError(t, err)
	assert.Equal(t, "Stop scrolling.", text)
}

func TestAnthropicComplete_SkipsNonTextBlocks(t *testing.T) {
	c := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"thinking","text":""},{"type":"text","text":"answer"}]}`))
	})

	text, err := c.Complete(context.Background(), models.CompletionRequest{Prompt: "p", MaxTokens: 10})
	require.NoError(t, err)
	assert.Equal(t, "answer", text)
}

func TestAnthropicComplete_EmptyContent(t *testing.T) {
	c := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[]}`))
	})

	_, err := c.Complete(context.Background(), models.CompletionRequest{Prompt: "p", MaxTokens: 10})
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestAnthropicComplete_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"overloaded", 529, ErrUpstream},
		{"internal", http.StatusInternalServerError, ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"type":"error"}`))
			})

			_, err := c.Complete(context.Background(), models.CompletionRequest{Prompt: "p", MaxTokens: 10})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUpstream)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestAnthropicComplete_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewAnthropicClient("k", "m", url, 0, logger.Nop())
	_, err := c.Complete(context.Background(), models.CompletionRequest{Prompt: "p", MaxTokens: 10})
	assert.ErrorIs(t, err, ErrUpstream)
}
