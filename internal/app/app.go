// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LogMind

// Package app assembles the MoodLog application: storage, preferences,
// the remote auth boundary, use-case services, screen state holders, the
// terminal UI, and the background workers.
package app

import (
	"context"

	"github.com/logmind/moodlog/internal/adapter"
	"github.com/logmind/moodlog/internal/config"
	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/prefs"
	"github.com/logmind/moodlog/internal/service"
	"github.com/logmind/moodlog/internal/store"
	"github.com/logmind/moodlog/internal/tui"
	"github.com/logmind/moodlog/internal/viewstate"
	"github.com/logmind/moodlog/internal/workers"
	"github.com/logmind/moodlog/models"
)

type App struct {
	storages *store.Storages
	services *service.Services

	home       *viewstate.Home
	write      *viewstate.Write
	statistics *viewstate.Statistics
	settings   *viewstate.Settings
	profile    *viewstate.Profile

	ui      *tui.TUI
	workers *workers.Workers
	logger  *logger.Logger
}

func New(ctx context.Context, cfg *config.Config, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	preferences := prefs.NewStore(cfg.Storage.Prefs.Path, log)
	provider := adapter.NewHTTPAuthProvider(cfg.Auth, log)

	services, err := service.NewServices(storages, preferences, provider, buildInfo, log)
	if err != nil {
		return nil, err
	}

	home := viewstate.NewHome(services.JournalService, log)
	write := viewstate.NewWrite(services.JournalService, services.TagService, log)
	statistics := viewstate.NewStatistics(services.JournalService, log)
	settings := viewstate.NewSettings(services.SettingsService, log)
	profile := viewstate.NewProfile(services.AuthService, log)

	ui := tui.New(services, home, write, statistics, settings, profile, buildInfo, log)

	return &App{
		storages:   storages,
		services:   services,
		home:       home,
		write:      write,
		statistics: statistics,
		settings:   settings,
		profile:    profile,
		ui:         ui,
		workers:    workers.NewWorkers(ctx, cfg.App, services.SettingsService, ui.Notify, log),
		logger:     log,
	}, nil
}

// Run starts the state holders and workers, then blocks in the terminal
// UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	a.home.Start(ctx)
	defer a.home.Stop()

	a.profile.Start(ctx)
	defer a.profile.Stop()

	a.workers.Run()
	defer a.workers.Stop()

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Error().Err(err).Msg("close storages")
		}
	}()

	return a.ui.Run(ctx)
}
