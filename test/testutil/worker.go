package testutil

import (
	"context"
	"database/sql"
	"log"

	"github.com/hibiken/asynq"
	workerHandler "github.com/patimanas321/ForgeLens/internal/handler/worker"
	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/repository/mariadb"
	"github.com/patimanas321/ForgeLens/internal/storage"
	"github.com/patimanas321/ForgeLens/internal/task"
	contentSvc "github.com/patimanas321/ForgeLens/internal/usecase/content"
)

// WorkerStubs are the external collaborators faked during pipeline tests.
// Database, blob storage and the queues stay real.
type WorkerStubs struct {
	Generator port.Generator
	Safety    port.SafetyAnalyzer
	Reviewer  port.Reviewer
	Publisher port.Publisher
	Notifier  port.Notifier
}

// StartWorker starts an asynq worker processing content lifecycle tasks.
// It returns a function to gracefully shut down the worker.
func StartWorker(dbConn *sql.DB, strg *storage.MinioStorage, redisAddr string, stubs WorkerStubs) func() {
	repo := mariadb.NewContentRepository(dbConn)
	dispatcher := task.NewDispatcher(redisAddr, "")

	starterSvc := contentSvc.NewGenerationStarter(repo, stubs.Generator, contentSvc.GenerationConfig{
		ImageModel:    "fal-ai/test-image",
		VideoModel:    "fal-ai/test-video",
		VideoModelAlt: "fal-ai/test-video-alt",
	})
	reviewerSvc := contentSvc.NewMediaReviewer(repo, stubs.Safety, stubs.Reviewer, dispatcher, contentSvc.ReviewConfig{
		SeverityThreshold: 2,
		Strict:            true,
	})
	_ = reviewerSvc
	publisherSvc := contentSvc.NewContentPublisher(repo, stubs.Publisher, stubs.Notifier, contentSvc.PublishConfig{
		PollAttempts: 3,
		PollInterval: 0,
	})
	notifierSvc := contentSvc.NewReviewNotifier(repo, stubs.Notifier)

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

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 5})
	go func() {
		if err := srv.Run(mux); err != nil {
			log.Printf("worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}

// NewPoller builds the generation sweep service against the same stubs used
// by StartWorker so tests can drive the poll loop synchronously.
func NewPoller(dbConn *sql.DB, strg *storage.MinioStorage, redisAddr string, stubs WorkerStubs) port.GenerationPoller {
	repo := mariadb.NewContentRepository(dbConn)
	dispatcher := task.NewDispatcher(redisAddr, "")

	reviewerSvc := contentSvc.NewMediaReviewer(repo, stubs.Safety, stubs.Reviewer, dispatcher, contentSvc.ReviewConfig{
		SeverityThreshold: 2,
		Strict:            true,
	})
	return contentSvc.NewGenerationPoller(repo, stubs.Generator, strg, reviewerSvc)
}
