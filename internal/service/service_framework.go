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

type frameworkService struct {
	frameworks store.FrameworkRepository
	ids        utils.IDGenerator
	validator  validators.Validator
	now        func() time.Time
	logger     *logger.Logger
}

func NewFrameworkService(frameworks store.FrameworkRepository, ids utils.IDGenerator, logger *logger.Logger) FrameworkService {
	return &frameworkService{
		frameworks: frameworks,
		ids:        ids,
		validator:  validators.NewRequestValidator(),
		now:        time.Now,
		logger:     logger,
	}
}

// ListFrameworks returns the system frameworks followed by the ones authored
// by userID.
func (s *frameworkService) ListFrameworks(ctx context.Context, userID string) ([]models.Framework, error) {
	frameworks, err := s.frameworks.ListFrameworks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing frameworks: %w", err)
	}
	return frameworks, nil
}

func (s *frameworkService) CreateFramework(ctx context.Context, userID string, framework models.NewFramework) (models.Framework, error) {
	if err := s.validator.Validate(ctx, framework); err != nil {
		return models.Framework{}, err
	}

	structure := make(models.Steps, 0, len(framework.Structure))
	for _, step := range framework.Structure {
		if step = strings.TrimSpace(step); step != "" {
			structure = append(structure, step)
		}
	}

	owner := userID
	created, err := s.frameworks.CreateFramework(ctx, models.Framework{
		ID:          s.ids.Generate(),
		UserID:      &owner,
		Name:        strings.TrimSpace(framework.Name),
		Category:    strings.TrimSpace(framework.Category),
		Description: framework.Description,
		Structure:   structure,
		Example:     framework.Example,
		Source:      framework.Source,
		IsSystem:    false,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return models.Framework{}, fmt.Errorf("error creating framework: %w", err)
	}

	return created, nil
}
