package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/i18n"
	"vitrine.dev/internal/metrics"
	"vitrine.dev/internal/models"
	"vitrine.dev/internal/services"
	"vitrine.dev/internal/views"
)

// maxFormBytes caps the contact form body
const maxFormBytes = 64 << 10

// ContactHandler relays contact form posts
type ContactHandler struct {
	sender   services.ContactSender
	renderer *views.Renderer
	metrics  *metrics.Metrics
	site     *config.SiteConfig
	lang     language.Tag
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(sender services.ContactSender, rd *views.Renderer, m *metrics.Metrics, site *config.SiteConfig, lang language.Tag) *ContactHandler {
	return &ContactHandler{sender: sender, renderer: rd, metrics: m, site: site, lang: lang}
}

// Submit handles POST /contact. It answers with the inline status fragment,
// or JSON when the client asks for it.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		h.SubmitJSON(w, r)
		return
	}

	loc := localizer(r, h.lang)
	status, result := h.process(w, r, loc)

	data := views.ContactStatusData{
		Base:   views.Base{L: loc, Site: h.site},
		Result: result,
	}
	if err := h.renderer.Respond(w, status, func(out io.Writer) error {
		return h.renderer.Fragment(out, views.FragmentContactStatus, data)
	}); err != nil {
		slog.Error("render contact status", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// SubmitJSON handles POST /api/contact
func (h *ContactHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	status, result := h.process(w, r, localizer(r, h.lang))
	respondJSON(w, status, result)
}

// process validates and relays one submission. Relay failures are reported
// to the visitor with a single message whatever the cause.
func (h *ContactHandler) process(w http.ResponseWriter, r *http.Request, loc *i18n.Localizer) (int, models.ContactResult) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.metrics.ContactSubmitted("invalid")
		return http.StatusBadRequest, models.ContactResult{Message: loc.T(i18n.KeyContactInvalid)}
	}

	sub, err := services.NewSubmission(r.PostForm)
	if err != nil {
		h.metrics.ContactSubmitted("invalid")
		return http.StatusBadRequest, models.ContactResult{Message: loc.T(i18n.KeyContactInvalid)}
	}

	if err := h.sender.Send(r.Context(), sub); err != nil {
		h.metrics.ContactSubmitted("failed")
		if errors.Is(err, services.ErrRelayUnconfigured) {
			slog.Error("contact relay not configured", "submission_id", sub.ID)
		} else {
			slog.Warn("contact relay failed", "submission_id", sub.ID, "error", err)
		}
		return http.StatusBadGateway, models.ContactResult{Message: loc.T(i18n.KeyContactError), ID: sub.ID}
	}

	h.metrics.ContactSubmitted("sent")
	return http.StatusOK, models.ContactResult{OK: true, Message: loc.T(i18n.KeyContactSuccess), ID: sub.ID}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
