// Package views renders the site's HTML pages and fragments.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/i18n"
	"vitrine.dev/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// cardBadges is the number of tech-stack badges shown on a card
const cardBadges = 3

// Page and fragment names accepted by Render.
const (
	PageHome      = "home"
	PagePortfolio = "portfolio"

	FragmentCards         = "cards"
	FragmentModal         = "modal"
	FragmentContactStatus = "contact_status"
)

// Base is the data every template receives
type Base struct {
	L      *i18n.Localizer
	Site   *config.SiteConfig
	Active string
}

// HomeData renders the landing page with the contact form
type HomeData struct {
	Base
	Facets  models.Facets
	Contact *models.ContactResult
}

// PortfolioData renders the full portfolio page with its first page of cards
type PortfolioData struct {
	Base
	Facets models.Facets
	Filter models.Filter
	Cards  CardsData
}

// CardsData renders one revealed page of cards plus the status line
type CardsData struct {
	Base
	Page    models.ProjectPage
	NextURL string
}

// ModalData renders the project detail view
type ModalData struct {
	Base
	Project *models.Project
}

// ContactStatusData renders the inline contact form result
type ContactStatusData struct {
	Base
	Result models.ContactResult
}

// cardView is what the card partial sees: shared page data plus one card
type cardView struct {
	Base
	models.Card
}

type techPreview struct {
	Shown []string
	More  int
}

var funcs = template.FuncMap{
	"css": func(s string) template.CSS {
		return template.CSS(s)
	},
	"techPreview": func(p models.Project) techPreview {
		shown, more := p.TechPreview(cardBadges)
		return techPreview{Shown: shown, More: more}
	},
	"cardContext": func(page CardsData, c models.Card) cardView {
		return cardView{Base: page.Base, Card: c}
	},
	"contactContext": func(base Base, result *models.ContactResult) ContactStatusData {
		return ContactStatusData{Base: base, Result: *result}
	},
	"yearValue": func(y int) string {
		return fmt.Sprint(y)
	},
}

// Renderer holds one parsed template set per page plus a fragment set
type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse base templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template), fragments: base}
	for _, page := range []string{PageHome, PagePortfolio} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", page, err)
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+page+".html"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[page] = clone
	}

	return r, nil
}

// Page writes a full HTML page
func (r *Renderer) Page(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Fragment writes a partial for in-page updates
func (r *Renderer) Fragment(w io.Writer, name string, data any) error {
	return r.fragments.ExecuteTemplate(w, name, data)
}

// Respond renders into a buffer first so a template error becomes a clean 500
func (r *Renderer) Respond(w http.ResponseWriter, status int, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
