package handler

import (
	"encoding/json"
	"net/http"

	"smartcareer/internal/model"
	"smartcareer/internal/service"
)

// ResumeHandler handles the resume builder endpoint
type ResumeHandler struct {
	resumeSvc *service.ResumeService
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(resumeSvc *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeSvc: resumeSvc}
}

// Build handles POST /api/build_resume
func (h *ResumeHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req model.ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.resumeSvc.Build(&req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
