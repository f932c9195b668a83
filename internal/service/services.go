package service

import (
	"github.com/logmind/moodlog/internal/adapter"
	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/store"
	"github.com/logmind/moodlog/models"
)

type Services struct {
	JournalService  JournalService
	TagService      TagService
	SettingsService SettingsService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, preferences Preferences, provider adapter.AuthProvider, buildInfo models.AppBuildInfo, log *logger.Logger) (*Services, error) {
	appInfoSvc, err := NewAppInfoService(buildInfo, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		JournalService:  NewJournalService(storages.JournalRepository, storages.TagRepository, log),
		TagService:      NewTagService(storages.TagRepository, log),
		SettingsService: NewSettingsService(preferences, log),
		AuthService:     NewAuthService(provider, preferences, log),
		AppInfoService:  appInfoSvc,
	}, nil
}
