package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asdscreen/config"
	"asdscreen/internal/cache"
	"asdscreen/internal/ml"
	"asdscreen/internal/report"
	"asdscreen/internal/repository"
	"asdscreen/internal/service"
	"asdscreen/internal/transport/rest"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err == nil {
		log.Info("loaded configuration from .env")
	}
	cfg := config.Load()

	log.Info("starting ASD screening system")

	// Model artifacts are required; the optional store is not.
	predictor, err := ml.Load(cfg.ModelsDir)
	if err != nil {
		log.WithError(err).Fatal("could not load model artifacts; run the offline training step or `go run ./cmd/seed`")
	}
	log.WithField("models_dir", cfg.ModelsDir).Info("model artifacts loaded")

	// MongoDB is best-effort: without it the service runs cache-only.
	ctx := context.Background()
	var repo repository.AssessmentRepo
	var mongoClient *mongo.Client

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err == nil {
		err = client.Ping(connectCtx, nil)
	}
	cancel()
	if err != nil {
		log.WithError(err).Warn("MongoDB unavailable, running in cache-only mode")
	} else {
		log.Info("connected to MongoDB")
		mongoClient = client
		repo = repository.NewAssessmentRepo(client.Database(cfg.DBName))
	}
	if mongoClient != nil {
		defer mongoClient.Disconnect(ctx)
	}

	assessmentCache := cache.NewAssessmentCache()
	assessmentSvc := service.NewAssessmentService(predictor, repo, assessmentCache, log)
	mediaSvc := service.NewMediaService(cfg.UploadsDir, log)
	metricsSvc := service.NewMetricsService(cfg.ModelsDir, log)
	renderer := report.NewPDFRenderer(cfg.UploadsDir)

	router := rest.NewRouter(&rest.Container{
		AssessmentService: assessmentSvc,
		MediaService:      mediaSvc,
		MetricsService:    metricsSvc,
		Renderer:          renderer,
		Log:               log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("server starting")
		log.Info("endpoints:")
		log.Info("  GET  /api/")
		log.Info("  POST /api/upload-image")
		log.Info("  POST /api/assess")
		log.Info("  GET  /api/assessments")
		log.Info("  GET  /api/assessments/{id}")
		log.Info("  GET  /api/assessments/{id}/report")
		log.Info("  GET  /api/model-metrics")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
