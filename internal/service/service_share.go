package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
)

// shareService issues and resolves read-only share links.
type shareService struct {
	scripts store.ScriptRepository
	links   store.ShareLinkRepository
	ids     utils.IDGenerator

	newToken func() (string, error)
	now      func() time.Time
	logger   *logger.Logger
}

func NewShareService(scripts store.ScriptRepository, links store.ShareLinkRepository, ids utils.IDGenerator, logger *logger.Logger) ShareService {
	return &shareService{
		scripts:  scripts,
		links:    links,
		ids:      ids,
		newToken: utils.GenerateShareToken,
		now:      time.Now,
		logger:   logger,
	}
}

// CreateShareLink issues a new token for a script owned by userID, valid for
// models.ShareLinkTTL. Earlier links of the script stay valid.
func (s *shareService) CreateShareLink(ctx context.Context, userID, scriptID string) (models.ShareLink, error) {
	if _, err := s.scripts.GetScript(ctx, userID, scriptID); err != nil {
		return models.ShareLink{}, fmt.Errorf("error checking script ownership: %w", err)
	}

	token, err := s.newToken()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shareService.CreateShareLink").Msg("share token generation failed")
		return models.ShareLink{}, err
	}

	now := s.now().UTC()
	link, err := s.links.CreateShareLink(ctx, models.ShareLink{
		ID:        s.ids.Generate(),
		Token:     token,
		ScriptID:  scriptID,
		ExpiresAt: now.Add(models.ShareLinkTTL),
		CreatedAt: now,
	})
	if err != nil {
		return models.ShareLink{}, fmt.Errorf("error creating share link: %w", err)
	}

	return link, nil
}

func (s *shareService) ResolveShareLink(ctx context.Context, token string) (models.SharedScript, error) {
	link, script, err := s.links.GetSharedScript(ctx, token)
	if err != nil {
		return models.SharedScript{}, fmt.Errorf("error resolving share link: %w", err)
	}

	if link.Expired(s.now()) {
		return models.SharedScript{}, ErrShareLinkExpired
	}

	return models.NewSharedScript(script), nil
}
