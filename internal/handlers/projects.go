package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"vitrine.dev/internal/metrics"
	"vitrine.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	metrics        *metrics.Metrics
	lang           language.Tag
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, m *metrics.Metrics, lang language.Tag) *ProjectHandler {
	return &ProjectHandler{projectService: ps, metrics: m, lang: lang}
}

// ListProjects handles GET /api/projects?category=&technology=&year=&search=&page=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	n, ok := parsePage(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid page")
		return
	}

	page, ok := h.projectService.Page(filterFromQuery(r), n)
	h.metrics.PageServed(pageOutcome(page, ok))
	page.Summary = localizer(r, h.lang).Summary(page.Showing, page.Total)

	respondJSON(w, http.StatusOK, page)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// GetFilters handles GET /api/filters - the values each filter control offers
func (h *ProjectHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Facets())
}
