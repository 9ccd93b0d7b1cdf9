package rest

import (
	"net/http"
	"os"

	"asdscreen/internal/report"
	"asdscreen/internal/service"
	"asdscreen/internal/transport/rest/handler"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Container holds all dependencies for the router
type Container struct {
	AssessmentService *service.AssessmentService
	MediaService      *service.MediaService
	MetricsService    *service.MetricsService
	Renderer          report.ReportRenderer
	Log               *logrus.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	reportHandler := handler.NewReportHandler(c.AssessmentService, c.Renderer, c.Log)
	uploadHandler := handler.NewUploadHandler(c.MediaService)
	metricsHandler := handler.NewMetricsHandler(c.MetricsService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"ASD Detection System API"}`))
	}).Methods("GET")

	api.HandleFunc("/upload-image", uploadHandler.Upload).Methods("POST", "OPTIONS")
	api.HandleFunc("/assess", assessmentHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/assessments/{id}/report", reportHandler.Download).Methods("GET", "OPTIONS")
	api.HandleFunc("/model-metrics", metricsHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
