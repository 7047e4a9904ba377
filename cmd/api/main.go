package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patimanas321/ForgeLens/internal/cache"
	"github.com/patimanas321/ForgeLens/internal/config"
	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/handler/api"
	"github.com/patimanas321/ForgeLens/internal/logger"
	cMiddleware "github.com/patimanas321/ForgeLens/internal/middleware"
	"github.com/patimanas321/ForgeLens/internal/port"
	"github.com/patimanas321/ForgeLens/internal/renderer"
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

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.JWTPublicKey)

	strg := initStorage(ctx, cfg)

	repo := mariadb.NewContentRepository(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching and task dispatch are disabled")
	}

	submitterSvc := contentSvc.NewGenerationSubmitter(repo, dispatcher, db.NewUUID)
	r.Post("/contents/generate", api.SubmitGenerationHandler(submitterSvc))

	listerSvc := contentSvc.NewContentLister(repo)
	r.Get("/contents/pending", api.ListPendingHandler(listerSvc))
	r.Get("/contents/history", api.ListApprovalHistoryHandler(listerSvc))
	r.Get("/contents/publish/pending", api.ListPendingPublishHandler(listerSvc))
	r.Get("/contents/publish/history", api.ListPublishHistoryHandler(listerSvc))

	getterSvc := contentSvc.NewContentGetter(repo, strg)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(api.WithID()).
		Get("/contents/{id}", api.GetContentHandler(rendererSvc, getterSvc))

	gateSvc := contentSvc.NewApprovalGate(repo, dispatcher, ca)
	r.With(api.WithID()).
		Post("/contents/{id}/approve", api.ApproveContentHandler(gateSvc))
	r.With(api.WithID()).
		Post("/contents/{id}/reject", api.RejectContentHandler(gateSvc))
	r.With(api.WithID()).
		Post("/contents/{id}/request_edits", api.RequestEditsHandler(gateSvc))

	planReviewerSvc := initPlanReviewer(ctx, cfg, repo)
	r.With(api.WithID()).
		Post("/contents/{id}/review", api.ReviewPlanHandler(planReviewerSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
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

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithDSTAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioPublicURL,
		cfg.MediaBucket,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MediaBucket, err)
		os.Exit(1)
	}

	return strg
}

// initPlanReviewer wires the pre-generation review endpoint with the same
// two layers the generation worker uses.
func initPlanReviewer(ctx context.Context, cfg *config.Settings, repo port.ContentRepository) port.PlanReviewer {
	safetyClient := safety.NewClient(cfg.SafetyEndpoint, cfg.SafetyAPIKey)

	reviewer, err := review.NewGeminiReviewer(ctx, cfg.GeminiAPIKey, cfg.ReviewModel)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize Gemini reviewer: %v", err)
		os.Exit(1)
	}

	return contentSvc.NewPlanReviewer(repo, safetyClient, reviewer, contentSvc.ReviewConfig{
		SeverityThreshold: cfg.SeverityThreshold,
		Strict:            cfg.ReviewStrict,
	})
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
