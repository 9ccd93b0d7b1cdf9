package handler

import (
	"errors"
	"fmt"
	"net/http"

	"asdscreen/internal/recommend"
	"asdscreen/internal/report"
	"asdscreen/internal/risk"
	"asdscreen/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ReportHandler handles report download endpoints.
type ReportHandler struct {
	assessmentSvc *service.AssessmentService
	renderer      report.ReportRenderer
	log           *logrus.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(assessmentSvc *service.AssessmentService, renderer report.ReportRenderer, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		assessmentSvc: assessmentSvc,
		renderer:      renderer,
		log:           log,
	}
}

// Download handles GET /api/assessments/{id}/report
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
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

	recs := recommend.ForLevel(risk.Level(a.RiskLevel))
	doc, err := h.renderer.Render(a, recs)
	if err != nil {
		h.log.WithError(err).WithField("assessment_id", id).Error("report rendering failed")
		writeError(w, http.StatusInternalServerError, "could not generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="ASD_Assessment_Report_%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
