// Package main provides the CLI entrypoint for naturals.
// It loads configuration, initializes logging and executes the root command.
package main

import (
	"context"
	"flag"
	"log"
	"naturals/internal/config"
	"naturals/internal/naturals"
	"naturals/pkg/logger"
	"naturals/pkg/metrics"
	"os"

	"go.uber.org/zap"
)

// getMetrics creates the metrics provider and returns it along with a cleanup
// function that exports the collected metrics (when configured) and shuts the
// provider down.
func getMetrics(ctx context.Context, cfg *config.Config) (*metrics.Provider, func(), error) {
	provider, err := metrics.New(cfg.Metrics.Namespace)
	if err != nil {
		return nil, nil, err
	}

	return provider, func() {
		if cfg.Metrics.TextfilePath != "" {
			if err := provider.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
				logger.Warn(ctx, "could not export metrics", zap.Error(err))
			}
		}
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shut down metrics", zap.Error(err))
		}
	}, nil
}

func main() {
	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package and the
	// root command registers the same flag so cobra accepts it.
	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment, cfg.Log.Level)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err = rootCommand(cfg).ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if code := naturals.ExitCode(err); code != naturals.ExitSuccess {
		os.Exit(code) //nolint: gocritic
	}
}
