package main

import (
	"context"
	"fmt"

	"github.com/logmind/moodlog/internal/app"
	"github.com/logmind/moodlog/internal/config"
	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewAppLogger("moodlog")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version != "" {
		buildVersion = cfg.App.Version
	}

	ctx := context.Background()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	application, err := app.New(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = application.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("app run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
