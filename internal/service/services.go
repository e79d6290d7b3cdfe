package service

import (
	"fmt"

	"github.com/MKhiriev/co-script/internal/adapter"
	"github.com/MKhiriev/co-script/internal/config"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/utils"
)

type Services struct {
	AuthService      AuthService
	ScriptService    ScriptService
	ShareService     ShareService
	VaultService     VaultService
	WatchlistService WatchlistService
	FrameworkService FrameworkService
	AIService        AIService
	AppInfoService   AppInfoService
}

// NewServices wires every service over storages. Script and AI services are
// wrapped with request validation.
func NewServices(storages *store.Storages, llm adapter.LLMClient, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App.Version)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, storages.SessionStore, ids, cfg.App, logger),
		ScriptService: NewScriptValidationService().
			Wrap(NewScriptService(storages.ScriptRepository, ids, logger)),
		ShareService:     NewShareService(storages.ScriptRepository, storages.ShareLinkRepository, ids, logger),
		VaultService:     NewVaultService(storages.VaultRepository, ids, logger),
		WatchlistService: NewWatchlistService(storages.WatchlistRepository, ids, logger),
		FrameworkService: NewFrameworkService(storages.FrameworkRepository, ids, logger),
		AIService:        NewAIValidationService().Wrap(NewAIService(llm, logger)),
		AppInfoService:   appInfo,
	}, nil
}
