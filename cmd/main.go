package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/southsideweekly/contributor-hub/internal/config"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/cache"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/db"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/repository"
	"github.com/southsideweekly/contributor-hub/internal/transport"
	"github.com/southsideweekly/contributor-hub/internal/transport/handler"
	"github.com/southsideweekly/contributor-hub/internal/usecase"
	"github.com/southsideweekly/contributor-hub/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewDatabase(ctx, cfg.Database.URL, log)
	if err != nil {
		log.Fatal("failed to init database", zap.Error(err))
	}
	defer pool.Close()

	var views cache.ViewCache
	redisCache, err := cache.NewRedisViewCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
	if err != nil {
		log.Warn("redis unavailable, pitch views will not be cached", zap.Error(err))
		views = cache.NewNoopViewCache()
	} else {
		views = redisCache
	}

	pitchRepo := repository.NewPitchRepository(pool, log)
	userRepo := repository.NewUserRepository(pool, log)
	referenceRepo := repository.NewReferenceRepository(pool, log)
	issueRepo := repository.NewIssueRepository(pool, log)
	resourceRepo := repository.NewResourceRepository(pool, log)
	feedbackRepo := repository.NewFeedbackRepository(pool, log)

	pitchService := usecase.NewPitchService(pitchRepo, userRepo, referenceRepo, issueRepo, views, log)
	userService := usecase.NewUserService(userRepo, log)
	referenceService := usecase.NewReferenceService(referenceRepo)
	issueService := usecase.NewIssueService(issueRepo, views)
	resourceService := usecase.NewResourceService(resourceRepo)
	feedbackService := usecase.NewFeedbackService(feedbackRepo)

	router := transport.NewRouter(
		handler.NewPitchHandler(pitchService, log),
		handler.NewUserHandler(userService, log),
		handler.NewReferenceHandler(referenceService, log),
		handler.NewIssueHandler(issueService, log),
		handler.NewResourceHandler(resourceService, log),
		handler.NewFeedbackHandler(feedbackService, log),
		handler.NewHealthHandler(pool),
		log,
	)

	srv := transport.NewServer(cfg.App.Port, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped cleanly")
}
