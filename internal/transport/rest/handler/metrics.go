package handler

import (
	"net/http"

	"asdscreen/internal/service"
)

// MetricsHandler serves precomputed model evaluation metrics.
type MetricsHandler struct {
	metricsSvc *service.MetricsService
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(metricsSvc *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsSvc: metricsSvc}
}

// Get handles GET /api/model-metrics
func (h *MetricsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.metricsSvc.Load())
}
