package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/timmy/memeshare/internal/config"
	"github.com/timmy/memeshare/internal/domain"
	"github.com/timmy/memeshare/internal/logger"
	"github.com/timmy/memeshare/internal/repository"
	"github.com/timmy/memeshare/internal/service"
	"github.com/timmy/memeshare/internal/store"
)

func main() {
	appLogger := logger.New(&logger.Config{
		Level:       "warn",
		Format:      "json",
		Output:      os.Stderr,
		ServiceName: "memeshare-leaderboard",
	})
	logger.SetDefaultLogger(appLogger)

	configPath := flag.String("config", "", "Path to config file")
	limit := flag.Int("limit", 0, "Entries per view (default from config)")
	explore := flag.Bool("explore", false, "Print explore results instead of the leaderboard")
	query := flag.String("q", "", "Explore search text")
	filter := flag.String("filter", "all", "Explore category: all, trending, classic, random")
	sortMode := flag.String("sort", "latest", "Explore sort: latest, likes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}
	if *limit <= 0 {
		*limit = cfg.Leaderboard.Limit
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	recordStore, err := store.NewStore(ctx, cfg)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize record store")
	}
	defer recordStore.Close()
	records := repository.NewRecordRepository(recordStore)

	var out any
	if *explore {
		category, err := domain.ParseCategory(*filter)
		if err != nil {
			appLogger.WithError(err).Fatal("Invalid filter")
		}
		mode, err := domain.ParseSortMode(*sortMode)
		if err != nil {
			appLogger.WithError(err).Fatal("Invalid sort")
		}
		out, err = service.NewExploreService(records).Explore(ctx, service.ExploreQuery{
			Search:   *query,
			Category: category,
			Sort:     mode,
		})
		if err != nil {
			appLogger.WithError(err).Fatal("Explore failed")
		}
	} else {
		out, err = service.NewLeaderboardService(records, *limit).Get(ctx)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to compute leaderboard")
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		appLogger.WithError(err).Fatal("Failed to write output")
	}
}
