// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
)

// The AI endpoints are stateless: the caller must be signed in, but nothing
// is read from or written to storage.

func (h *Handler) score(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreRequest
	if !decodeJSON(w, r, "*Handler.score", &req) {
		return
	}

	result, err := h.services.AIService.Score(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.score", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if !decodeJSON(w, r, "*Handler.generate", &req) {
		return
	}

	result, err := h.services.AIService.Generate(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.generate", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) hooks(w http.ResponseWriter, r *http.Request) {
	var req models.HooksRequest
	if !decodeJSON(w, r, "*Handler.hooks", &req) {
		return
	}

	result, err := h.services.AIService.Hooks(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.hooks", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) rewrite(w http.ResponseWriter, r *http.Request) {
	var req models.RewriteRequest
	if !decodeJSON(w, r, "*Handler.rewrite", &req) {
		return
	}

	result, err := h.services.AIService.Rewrite(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.rewrite", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) analyzeURL(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeURLRequest
	if !decodeJSON(w, r, "*Handler.analyzeURL", &req) {
		return
	}

	result, err := h.services.AIService.AnalyzeURL(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.analyzeURL", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
