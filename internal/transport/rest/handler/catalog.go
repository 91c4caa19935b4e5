package handler

import (
	"net/http"
	"strings"
	"time"

	"smartcareer/internal/catalog"
)

// CatalogHandler serves the static reference data endpoints
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Colleges handles GET /api/colleges?type=...
func (h *CatalogHandler) Colleges(w http.ResponseWriter, r *http.Request) {
	collegeType := strings.ToLower(r.URL.Query().Get("type"))
	if collegeType == "" {
		collegeType = "all"
	}

	writeJSON(w, http.StatusOK, catalog.CollegesByType(collegeType))
}

// Skills handles GET /api/skills
func (h *CatalogHandler) Skills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Skills)
}

// Careers handles GET /api/careers
func (h *CatalogHandler) Careers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.CareerPaths)
}

// Scholarships handles GET /api/scholarships
func (h *CatalogHandler) Scholarships(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Scholarships(time.Now()))
}
