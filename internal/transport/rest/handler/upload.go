package handler

import (
	"net/http"

	"asdscreen/internal/service"
)

// maxUploadBytes bounds how much of a multipart body is held in memory.
const maxUploadBytes = 10 << 20

// UploadHandler handles image upload endpoints.
type UploadHandler struct {
	mediaSvc *service.MediaService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(mediaSvc *service.MediaService) *UploadHandler {
	return &UploadHandler{mediaSvc: mediaSvc}
}

// Upload handles POST /api/upload-image
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	filename, err := h.mediaSvc.SaveUpload(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"filename": filename,
		"status":   "success",
	})
}
