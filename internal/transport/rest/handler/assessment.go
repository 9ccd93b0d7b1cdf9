package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"asdscreen/internal/ml"
	"asdscreen/internal/model"
	"asdscreen/internal/service"

	"github.com/gorilla/mux"
)

// AssessmentHandler handles assessment endpoints.
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler.
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Create handles POST /api/assess
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Demographic == nil {
		writeError(w, http.StatusBadRequest, "missing demographic data")
		return
	}
	if req.Behavioral == nil {
		writeError(w, http.StatusBadRequest, "missing behavioral data")
		return
	}

	a, err := h.assessmentSvc.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ml.ErrModelUnavailable) {
			writeError(w, http.StatusInternalServerError, "model unavailable: run the offline training step")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, a)
}

// List handles GET /api/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.assessmentSvc.List(r.Context()))
}

// Get handles GET /api/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	a, err := h.assessmentSvc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, a)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
