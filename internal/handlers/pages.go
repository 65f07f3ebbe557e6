package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/metrics"
	"vitrine.dev/internal/models"
	"vitrine.dev/internal/services"
	"vitrine.dev/internal/views"
)

// PageHandler serves the HTML pages and the fragments the portfolio page loads
type PageHandler struct {
	projectService *services.ProjectService
	renderer       *views.Renderer
	metrics        *metrics.Metrics
	site           *config.SiteConfig
	lang           language.Tag
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, rd *views.Renderer, m *metrics.Metrics, site *config.SiteConfig, lang language.Tag) *PageHandler {
	return &PageHandler{projectService: ps, renderer: rd, metrics: m, site: site, lang: lang}
}

func (h *PageHandler) base(r *http.Request, active string) views.Base {
	return views.Base{L: localizer(r, h.lang), Site: h.site, Active: active}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := views.HomeData{
		Base:   h.base(r, "home"),
		Facets: h.projectService.Facets(),
	}
	h.render(w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.Page(out, views.PageHome, data)
	})
}

// Portfolio handles GET /portfolio - the full page with the first page of cards
func (h *PageHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	base := h.base(r, "portfolio")

	feed := h.projectService.NewFeed(filter)
	page, ok := feed.Next()
	h.metrics.PageServed(pageOutcome(page, ok))

	data := views.PortfolioData{
		Base:   base,
		Facets: h.projectService.Facets(),
		Filter: filter,
		Cards:  h.cards(base, page),
	}
	h.render(w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.Page(out, views.PagePortfolio, data)
	})
}

// Items handles GET /portfolio/items - the next page of cards for infinite scroll
func (h *PageHandler) Items(w http.ResponseWriter, r *http.Request) {
	n, ok := parsePage(r)
	if !ok {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}

	page, ok := h.projectService.Page(filterFromQuery(r), n)
	h.metrics.PageServed(pageOutcome(page, ok))

	data := h.cards(h.base(r, "portfolio"), page)
	h.render(w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.Fragment(out, views.FragmentCards, data)
	})
}

// Project handles GET /portfolio/projects/{id} - the detail modal body
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(chi.URLParam(r, "id"))
	if errors.Is(err, services.ErrProjectNotFound) {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to load project", http.StatusInternalServerError)
		return
	}

	data := views.ModalData{Base: h.base(r, "portfolio"), Project: project}
	h.render(w, r, http.StatusOK, func(out io.Writer) error {
		return h.renderer.Fragment(out, views.FragmentModal, data)
	})
}

// cards wraps a page for the cards fragment, with the URL of the page after it
func (h *PageHandler) cards(base views.Base, page models.ProjectPage) views.CardsData {
	data := views.CardsData{Base: base, Page: page}
	if page.HasMore {
		q := filterQuery(page.Filter)
		q.Set("page", strconv.Itoa(page.Page+1))
		if lang := base.L.Lang(); lang != h.lang.String() {
			q.Set("lang", lang)
		}
		data.NextURL = "/portfolio/items?" + q.Encode()
	}
	return data
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, fn func(io.Writer) error) {
	if err := h.renderer.Respond(w, status, fn); err != nil {
		slog.Error("render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
