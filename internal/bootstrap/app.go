// Package bootstrap wires configuration, storage, services, and routes into
// a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hardware-advisor/internal/artifacts"
	"hardware-advisor/internal/classify"
	"hardware-advisor/internal/feedback"
	"hardware-advisor/internal/knowledge"
	"hardware-advisor/internal/recommend"
	"hardware-advisor/internal/rules"
	"hardware-advisor/internal/shared/config"
	"hardware-advisor/internal/shared/server"
	"hardware-advisor/internal/shared/storage/db"
	"hardware-advisor/internal/shared/storage/object"
	localstore "hardware-advisor/internal/shared/storage/object/local"
	s3store "hardware-advisor/internal/shared/storage/object/s3"
	"hardware-advisor/internal/shared/telemetry"
	"hardware-advisor/internal/training"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Blobs            object.BlobStore
	Catalog          *knowledge.Catalog
	Models           *classify.Provider
	FeedbackRepo     feedback.Repo
	ArtifactsRepo    artifacts.Repo
	FeedbackService  *feedback.Service
	ArtifactsService *artifacts.Service
	RecommendService *recommend.Service
	Trainer          *training.Runner
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	blobs, err := buildBlobStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Blobs:   blobs,
		Catalog: knowledge.Default(),
	}

	if sqlDB != nil {
		app.FeedbackRepo = &feedback.PGRepo{DB: sqlDB}
		app.ArtifactsRepo = &artifacts.PGRepo{DB: sqlDB}
	} else {
		app.FeedbackRepo = feedback.NewMemoryRepo()
		app.ArtifactsRepo = artifacts.NewMemoryRepo()
	}

	app.ArtifactsService = artifacts.NewService(app.ArtifactsRepo, app.Blobs)
	app.FeedbackService = feedback.NewService(app.FeedbackRepo, func(label string) bool {
		_, ok := app.Catalog.Get(label)
		return ok
	})
	app.Trainer = &training.Runner{
		CorpusPath: cfg.CorpusPath,
		Feedback:   app.FeedbackRepo,
		Artifacts:  app.ArtifactsService,
		Catalog:    app.Catalog,
	}

	app.Models = classify.NewProvider(loadOrTrain(ctx, app))

	app.RecommendService = recommend.NewService(
		rules.Default(),
		app.Models,
		&recommend.Composer{Catalog: app.Catalog},
		app.FeedbackService,
	)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		RecommendHandler: &recommend.Handler{Service: app.RecommendService},
		FeedbackHandler:  &feedback.Handler{Service: app.FeedbackService},
		KnowledgeHandler: knowledge.NewHandler(app.Catalog),
		ModelVersion: func() string {
			if a := app.Models.Active(); a != nil {
				return a.Version
			}
			return ""
		},
		ReloadModel: func() error { return app.ReloadModel(context.Background()) },
	})

	return app, nil
}

// StartModelReloader polls for a newer active artifact version, so a model
// published by an out-of-process retraining run reaches this server without
// a restart. Returns immediately when polling is disabled.
func (a *App) StartModelReloader(ctx context.Context) {
	interval := a.Config.ModelReloadInterval
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.reloadIfChanged(ctx)
			}
		}
	}()
}

// ReloadModel loads the active artifact and swaps it in unconditionally.
func (a *App) ReloadModel(ctx context.Context) error {
	artifact, err := a.ArtifactsService.LoadActive(ctx)
	if err != nil {
		return err
	}
	a.Models.Swap(artifact)
	return nil
}

func (a *App) reloadIfChanged(ctx context.Context) {
	version, err := a.ArtifactsService.ActiveVersion(ctx)
	if err != nil {
		telemetry.Warn("bootstrap.reload_check_failed", map[string]any{"error": err.Error()})
		return
	}
	current := a.Models.Active()
	if version == "" || (current != nil && current.Version == version) {
		return
	}
	artifact, err := a.ArtifactsService.LoadActive(ctx)
	if err != nil {
		telemetry.Warn("bootstrap.reload_failed", map[string]any{"error": err.Error(), "version": version})
		return
	}
	a.Models.Swap(artifact)
	telemetry.Info("bootstrap.model_reloaded", map[string]any{"version": artifact.Version})
}

// loadOrTrain loads the active artifact, or in dev trains one from the seed
// corpus so the classifier path works out of the box.
func loadOrTrain(ctx context.Context, app *App) *classify.Artifact {
	artifact, err := app.ArtifactsService.LoadActive(ctx)
	if err == nil {
		telemetry.Info("bootstrap.model_loaded", map[string]any{"version": artifact.Version})
		return artifact
	}
	if !errors.Is(err, artifacts.ErrNotFound) {
		log.Printf("bootstrap: could not load active model: %v", err)
	}

	if !app.Config.TrainOnBoot {
		log.Printf("bootstrap: no active model; rule engine only until one is published")
		return nil
	}

	meta, err := app.Trainer.Run(ctx)
	if err != nil {
		log.Printf("bootstrap: train-on-boot failed: %v", err)
		return nil
	}
	artifact, err = app.ArtifactsService.LoadActive(ctx)
	if err != nil {
		log.Printf("bootstrap: could not load freshly trained model %s: %v", meta.Version, err)
		return nil
	}
	return artifact
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildBlobStore(ctx context.Context, cfg config.Config) (object.BlobStore, error) {
	switch cfg.ArtifactStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("ARTIFACT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalArtifactDir), nil
	}
}
