package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/internal/validators"
	"github.com/MKhiriev/co-script/models"
)

type vaultService struct {
	vault     store.VaultRepository
	ids       utils.IDGenerator
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewVaultService(vault store.VaultRepository, ids utils.IDGenerator, logger *logger.Logger) VaultService {
	return &vaultService{
		vault:     vault,
		ids:       ids,
		validator: validators.NewRequestValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// CreateVaultItem saves a reference for userID. Source type defaults to
// "manual"; tags are trimmed, blank ones dropped and duplicates removed
// keeping the first occurrence.
func (s *vaultService) CreateVaultItem(ctx context.Context, userID string, item models.NewVaultItem) (models.VaultItem, error) {
	if err := s.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, err
	}

	sourceType := strings.TrimSpace(item.SourceType)
	if sourceType == "" {
		sourceType = models.DefaultVaultSourceType
	}

	created, err := s.vault.CreateVaultItem(ctx, models.VaultItem{
		ID:         s.ids.Generate(),
		UserID:     userID,
		Title:      strings.TrimSpace(item.Title),
		Content:    item.Content,
		SourceURL:  strings.TrimSpace(item.SourceURL),
		SourceType: sourceType,
		Tags:       normalizeTags(item.Tags),
		Notes:      item.Notes,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("error creating vault item: %w", err)
	}

	return created, nil
}

func (s *vaultService) ListVaultItems(ctx context.Context, userID string) ([]models.VaultItem, error) {
	items, err := s.vault.ListVaultItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing vault items: %w", err)
	}
	return items, nil
}

func (s *vaultService) DeleteVaultItem(ctx context.Context, userID, itemID string) error {
	if err := s.vault.DeleteVaultItem(ctx, userID, itemID); err != nil {
		return fmt.Errorf("error deleting vault item: %w", err)
	}
	return nil
}

func normalizeTags(tags []string) models.Tags {
	out := make(models.Tags, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
