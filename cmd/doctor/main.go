// Command doctor verifies the content-repository configuration: it prints
// the resolved settings and runs one connectivity query. Exit status is
// non-zero when the repository is unreachable.
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lucasforesti/pilotoapi/config"
	"github.com/lucasforesti/pilotoapi/content"
	applog "github.com/lucasforesti/pilotoapi/logger"
)

func main() {
	cfg := config.Load()
	logger, err := applog.NewCLI()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("resolved configuration",
		zap.String("projectID", cfg.ProjectID),
		zap.String("dataset", cfg.Dataset),
		zap.String("apiVersion", cfg.APIVersion),
		zap.Bool("useCDN", cfg.UseCDN),
		zap.Duration("httpTimeout", cfg.HTTPTimeout),
		zap.Bool("previewEnabled", cfg.PreviewEnabled()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := content.New(cfg)
	if err := client.Ping(ctx); err != nil {
		logger.Fatal("content repository unreachable", zap.Error(err))
	}
	logger.Info("content repository reachable")
}
