// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
)

// scriptService owns the script lifecycle. Content versioning itself happens
// inside store.ScriptRepository.UpdateScript; the service applies creation
// defaults and keeps saves from being abandoned half way.
type scriptService struct {
	scripts store.ScriptRepository
	ids     utils.IDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

func NewScriptService(scripts store.ScriptRepository, ids utils.IDGenerator, logger *logger.Logger) ScriptService {
	return &scriptService{
		scripts: scripts,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

// CreateScript stores a new draft owned by userID. Blank title and script
// type fall back to "Untitled Script" and video_script.
func (s *scriptService) CreateScript(ctx context.Context, userID string, script models.NewScript) (models.Script, error) {
	title := strings.TrimSpace(script.Title)
	if title == "" {
		title = models.DefaultScriptTitle
	}
	scriptType := script.ScriptType
	if scriptType == "" {
		scriptType = models.VideoScript
	}

	now := s.now().UTC()
	created, err := s.scripts.CreateScript(ctx, models.Script{
		ID:             s.ids.Generate(),
		UserID:         userID,
		Title:          title,
		ScriptType:     scriptType,
		Content:        script.Content,
		Hook:           script.Hook,
		Audience:       script.Audience,
		Objective:      script.Objective,
		Tone:           script.Tone,
		Platform:       script.Platform,
		ScoreBreakdown: models.ScoreBreakdown{},
		Status:         models.StatusDraft,
		WordCount:      script.WordCount,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return models.Script{}, fmt.Errorf("error creating script: %w", err)
	}

	return created, nil
}

func (s *scriptService) ListScripts(ctx context.Context, userID string) ([]models.Script, error) {
	scripts, err := s.scripts.ListScripts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing scripts: %w", err)
	}
	return scripts, nil
}

func (s *scriptService) GetScript(ctx context.Context, userID, scriptID string) (models.Script, error) {
	script, err := s.scripts.GetScript(ctx, userID, scriptID)
	if err != nil {
		return models.Script{}, fmt.Errorf("error getting script: %w", err)
	}
	return script, nil
}

// UpdateScript applies patch and, when the content changes, archives the
// previous content as the next version in the same transaction.
//
// The save is detached from the caller's cancellation: once started it runs
// to commit or rollback even if the client goes away.
func (s *scriptService) UpdateScript(ctx context.Context, userID, scriptID string, patch models.ScriptPatch) (models.Script, error) {
	ctx = context.WithoutCancel(ctx)

	script, err := s.scripts.UpdateScript(ctx, userID, scriptID, patch, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*scriptService.UpdateScript").
			Str("script_id", scriptID).
			Msg("script update failed")
		return models.Script{}, fmt.Errorf("error updating script: %w", err)
	}

	return script, nil
}

// DeleteScript removes the script together with its versions and share links.
func (s *scriptService) DeleteScript(ctx context.Context, userID, scriptID string) error {
	if err := s.scripts.DeleteScript(ctx, userID, scriptID); err != nil {
		return fmt.Errorf("error deleting script: %w", err)
	}
	return nil
}

func (s *scriptService) ListVersions(ctx context.Context, userID, scriptID string) ([]models.ScriptVersion, error) {
	versions, err := s.scripts.ListVersions(ctx, userID, scriptID)
	if err != nil {
		return nil, fmt.Errorf("error listing script versions: %w", err)
	}
	return versions, nil
}
