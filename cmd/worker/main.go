package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/patimanas321/ForgeLens/internal/config"
	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/generation"
	workerHandler "github.com/patimanas321/ForgeLens/internal/handler/worker"
	"github.com/patimanas321/ForgeLens/internal/instagram"
	"github.com/patimanas321/ForgeLens/internal/logger"
	"github.com/patimanas321/ForgeLens/internal/notifier"
	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/repository/mariadb"
	"github.com/patimanas321/ForgeLens/internal/review"
	"github.com/patimanas321/ForgeLens/internal/safety"
	"github.com/patimanas321/ForgeLens/internal/storage"
	"github.com/patimanas321/ForgeLens/internal/task"
	contentSvc "github.com/patimanas321/ForgeLens/internal/usecase/content"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	strg := initStorage(cfg)

	repo := mariadb.NewContentRepository(database.DB)
	dispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)

	genClient := generation.NewClient(cfg.GenerationBaseURL, cfg.GenerationAPIKey)
	safetyClient := safety.NewClient(cfg.SafetyEndpoint, cfg.SafetyAPIKey)
	igClient := instagram.NewClient(cfg.InstagramBaseURL, cfg.InstagramAccessToken, cfg.InstagramAccountID)
	slack := notifier.NewSlackNotifier(cfg.SlackWebhookURL)

	reviewer, err := review.NewGeminiReviewer(ctx, cfg.GeminiAPIKey, cfg.ReviewModel)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize Gemini reviewer: %v", err)
		os.Exit(1)
	}
	defer reviewer.Close()

	starterSvc := contentSvc.NewGenerationStarter(repo, genClient, contentSvc.GenerationConfig{
		ImageModel:    cfg.ImageModel,
		VideoModel:    cfg.VideoModel,
		VideoModelAlt: cfg.VideoModelAlt,
	})
	reviewerSvc := contentSvc.NewMediaReviewer(repo, safetyClient, reviewer, dispatcher, contentSvc.ReviewConfig{
		SeverityThreshold: cfg.SeverityThreshold,
		Strict:            cfg.ReviewStrict,
	})
	pollerSvc := contentSvc.NewGenerationPoller(repo, genClient, strg, reviewerSvc)
	publisherSvc := contentSvc.NewContentPublisher(repo, igClient, slack, contentSvc.PublishConfig{
		PollAttempts: cfg.PublishPollAttempts,
		PollInterval: cfg.PublishPollInterval,
	})
	notifierSvc := contentSvc.NewReviewNotifier(repo, slack)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeGenerateContent, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseContentPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.GenerateContentHandler(ctx, p, starterSvc)
	})
	mux.HandleFunc(task.TypePublishContent, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseContentPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.PublishContentHandler(ctx, p, publisherSvc)
	})
	mux.HandleFunc(task.TypeReviewPending, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseContentPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.NotifyReviewHandler(ctx, p, notifierSvc)
	})

	pollCtx, stopPolling := context.WithCancel(ctx)
	defer stopPolling()
	go runPoller(pollCtx, pollerSvc, cfg.PollInterval)

	runWorker(ctx, mux, cfg)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioPublicURL,
		cfg.MediaBucket,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize bucket %q: %v", cfg.MediaBucket, err)
		os.Exit(1)
	}

	return strg
}

// runPoller sweeps submitted generations on a fixed interval until the
// context is cancelled. A failed sweep is logged and retried on the next
// tick; it never kills the loop.
func runPoller(ctx context.Context, poller port.GenerationPoller, interval time.Duration) {
	logger.Infof(ctx, "⏱️  Generation poller started (every %s)", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "generation poller stopped")
			return
		case <-ticker.C:
			if err := poller.PollGenerations(ctx); err != nil {
				logger.Errorf(ctx, "❌  Generation poll sweep failed: %v", err)
			}
		}
	}
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Worker gracefully stopped")
}
