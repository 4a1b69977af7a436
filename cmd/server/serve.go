package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"hermesoftware/byklab-api/internal/api"
	"hermesoftware/byklab-api/internal/config"
	"hermesoftware/byklab-api/internal/repository/mongo"
	"hermesoftware/byklab-api/internal/security"
	"hermesoftware/byklab-api/internal/service"
	"hermesoftware/byklab-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const indexTimeout = time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, store, err := bootstrap(ctx)
	if err != nil {
		if log != nil {
			log.WithError(err).Error("startup failed")
		}
		return err
	}
	defer closeStore(store, log)

	// --- Ensure Indexes ---
	if cfg.Database.EnsureIndexes {
		indexCtx, cancel := context.WithTimeout(ctx, indexTimeout)
		if err := mongo.EnsureIndexes(indexCtx, store.Database()); err != nil {
			// Existing duplicate data keeps the unique index from building; serve anyway.
			log.WithError(err).Warn("index creation incomplete")
		}
		cancel()
	}

	// --- Initialize Storage ---
	media, err := newMediaResolver(ctx, cfg.S3, log)
	if err != nil {
		log.WithError(err).Error("failed to initialize S3 storage")
		return err
	}

	// --- Initialize Repositories ---
	appDB := store.Database()
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	blogRepo := mongo.NewMongoBlogPostRepository(appDB)

	// --- Initialize Services ---
	services := api.Services{
		Auth:          service.NewAuthService(userRepo, security.NewBcryptHasher(cfg.Security.BcryptCost), log),
		Subscriptions: service.NewSubscriptionService(log),
		Exercises:     service.NewExerciseService(exerciseRepo, media),
		Blog:          service.NewBlogService(blogRepo, media),
		Dashboard:     service.NewDashboardService(),
		Seed:          service.NewSeedService(exerciseRepo, blogRepo, log),
		Store:         store,
	}

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := api.NewRouter(cfg, services, log)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("address", cfg.Server.Address).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.WithError(err).Error("listen failed")
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
		return err
	}

	log.Info("server exiting")
	return nil
}

// newMediaResolver presigns catalog media through S3 when enabled, and
// passes references through unchanged otherwise.
func newMediaResolver(ctx context.Context, cfg config.S3Config, log logrus.FieldLogger) (storage.MediaResolver, error) {
	if !cfg.Enabled {
		return storage.NewMediaResolver(nil, 0, log), nil
	}
	fileStorage, err := storage.NewS3Storage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("bucket", cfg.BucketName).Info("media presigning enabled")
	return storage.NewMediaResolver(fileStorage, cfg.PresignExpiry, log), nil
}

// ginMode maps the configured mode onto one gin accepts; gin panics on
// anything else.
func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}
