// Command reaper periodically deletes expired idempotency records. Their
// retention is unspecified beyond "ignored once expired" (see DESIGN.md),
// so this is a purely operational cleanup, safe to run or skip.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	"github.com/rah7202/Dino-Wallet-Service/internal/platform/config"
	"github.com/rah7202/Dino-Wallet-Service/internal/repositories/database/pgsql"
	"github.com/rah7202/Dino-Wallet-Service/pkg/database"
)

func main() {
	var interval time.Duration
	flag.DurationVar(&interval, "interval", time.Hour, "how often to sweep expired idempotency records")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)

	logger.Info("reaper starting", slog.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sweep(ctx, repos, logger)
	for range ticker.C {
		sweep(ctx, repos, logger)
	}
}

func sweep(ctx context.Context, repos portsrepo.RepositoryProvider, logger *slog.Logger) {
	deleted, err := repos.IdempotencyRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		logger.Error("sweep failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("sweep complete", slog.Int64("deleted", deleted))
}
