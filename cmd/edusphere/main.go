package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edusphere/edusphere/internal/cache"
	"github.com/edusphere/edusphere/internal/config"
	"github.com/edusphere/edusphere/internal/events"
	repokv "github.com/edusphere/edusphere/internal/repositories/kv"
	"github.com/edusphere/edusphere/internal/services"
	"github.com/edusphere/edusphere/internal/store"
	"github.com/edusphere/edusphere/internal/utils"
	"github.com/edusphere/edusphere/internal/validator"
	"github.com/edusphere/edusphere/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := utils.NewDefaultLogger()
	if cfg.Environment == "development" {
		logger = utils.NewDevelopmentLogger()
	}

	kv, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	repo := repokv.New(kv, logger, time.Now())
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("store close failed", "error", err)
		}
	}()

	publisher := events.NewChannelPublisher(logger)
	defer publisher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	viewCache := cache.NewViewCache(logger)
	go func() {
		if err := cache.RunInvalidator(ctx, viewCache, publisher, logger); err != nil && ctx.Err() == nil {
			logger.Error("cache invalidator stopped", "error", err)
		}
	}()

	v := validator.New()
	manager := services.NewServiceManager(repo, logger, v, publisher, time.Now)

	logger.Info("edusphere ready",
		"environment", cfg.Environment,
		"store", cfg.StoreBackend,
		"users", len(repo.Users().All(ctx)),
		"courses", len(repo.Courses().All(ctx)),
		"theme", manager.Settings().Theme(ctx))

	<-ctx.Done()
	logger.Info("shutting down")
}

func openStore(cfg *config.Config) (store.KV, error) {
	switch cfg.StoreBackend {
	case "memory":
		return store.NewMemoryKV(), nil
	case "redis":
		client, err := pkg.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewRedisKV(client), nil
	case "bolt":
		db, err := pkg.OpenBoltDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewBoltKV(db)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
