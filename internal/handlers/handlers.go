package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/i18n"
	"vitrine.dev/internal/metrics"
	"vitrine.dev/internal/middleware"
	"vitrine.dev/internal/models"
	"vitrine.dev/internal/services"
	"vitrine.dev/internal/views"
)

// Deps are the collaborators the routes are built from
type Deps struct {
	Catalog  *services.Catalog
	Contact  services.ContactSender
	Metrics  *metrics.Metrics
	Renderer *views.Renderer
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.SecurityHeaders)

	// Initialize services
	projectService := services.NewProjectService(deps.Catalog, cfg.Site)
	lang := cfg.Language()

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService, deps.Metrics, lang)
	pageHandler := NewPageHandler(projectService, deps.Renderer, deps.Metrics, cfg.Site, lang)
	contactHandler := NewContactHandler(deps.Contact, deps.Renderer, deps.Metrics, cfg.Site, lang)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/filters", projectHandler.GetFilters)

		// Contact relay
		r.Post("/contact", contactHandler.SubmitJSON)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"status":   "ok",
				"projects": len(deps.Catalog.Projects()),
			})
		})
	})

	// Pages and fragments
	r.Get("/", pageHandler.Home)
	r.Get("/portfolio", pageHandler.Portfolio)
	r.Get("/portfolio/items", pageHandler.Items)
	r.Get("/portfolio/projects/{id}", pageHandler.Project)
	r.Post("/contact", contactHandler.Submit)

	// Metrics
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticPath))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode JSON response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// filterFromQuery reads the four filter criteria from the query string
func filterFromQuery(r *http.Request) models.Filter {
	q := r.URL.Query()
	return models.NewFilter(q.Get("category"), q.Get("technology"), q.Get("year"), q.Get("search"))
}

// parsePage reads the 1-based page parameter, defaulting to 1
func parsePage(r *http.Request) (int, bool) {
	val := r.URL.Query().Get("page")
	if val == "" {
		return 1, true
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// filterQuery encodes a filter back into query values, leaving inactive criteria out
func filterQuery(f models.Filter) url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Technology != "" {
		q.Set("technology", f.Technology)
	}
	if f.Year != "" {
		q.Set("year", f.Year)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// pageOutcome classifies a served page for metrics
func pageOutcome(page models.ProjectPage, ok bool) string {
	switch {
	case page.NoResults:
		return "no_results"
	case !ok:
		return "exhausted"
	default:
		return "items"
	}
}

func localizer(r *http.Request, fallback language.Tag) *i18n.Localizer {
	return i18n.ForRequest(r, fallback)
}
