package views

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/i18n"
	"vitrine.dev/internal/models"
)

func testBase() Base {
	return Base{L: i18n.New(language.BrazilianPortuguese), Site: config.DefaultSite()}
}

func project(id string, stack ...string) models.Project {
	return models.Project{
		ID:               id,
		Title:            "Projeto " + id,
		Client:           "Cliente " + id,
		Category:         "ecommerce",
		Year:             2024,
		Icon:             "🛒",
		Image:            "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		ShortDescription: "Resumo " + id,
		TechStack:        stack,
		Duration:         "3 meses",
		Team:             "4 pessoas",
		Challenge:        "Desafio <b>grande</b>",
		Solution:         "Solução",
		Results:          []string{"+40% vendas", "2x tráfego"},
	}
}

// collect walks the parsed document and returns elements whose class list contains class
func collect(t *testing.T, doc string, class string) []*html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "class" {
					for _, c := range strings.Fields(a.Val) {
						if c == class {
							out = append(out, n)
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestRenderer_CardsFragment(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := CardsData{
		Base: testBase(),
		Page: models.ProjectPage{
			Page: 1,
			Items: []models.Card{
				{Project: project("a", "Shopify", "React", "Node.js", "Stripe", "Redis"), DelayMs: 0},
				{Project: project("b", "Flutter"), DelayMs: 100},
			},
			Showing: 2,
			Total:   2,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Fragment(&buf, FragmentCards, data))
	out := buf.String()

	cards := collect(t, out, "portfolio-item")
	require.Len(t, cards, 2)
	assert.Equal(t, "/portfolio/projects/a", attr(cards[0], "data-project"))
	assert.Contains(t, attr(cards[1], "style"), "animation-delay: 100ms")

	badges := collect(t, out, "tech-badge")
	var labels []string
	for _, b := range badges {
		labels = append(labels, text(b))
	}
	assert.Equal(t, []string{"Shopify", "React", "Node.js", "+2", "Flutter"}, labels)

	tags := collect(t, out, "portfolio-item-tag")
	assert.Equal(t, "E-commerce", text(tags[0]))

	images := collect(t, out, "portfolio-item-image")
	assert.Contains(t, attr(images[0], "style"), "linear-gradient(135deg")

	count := collect(t, out, "results-count")
	require.Len(t, count, 1)
	assert.Equal(t, "Mostrando 2 de 2 projetos", text(count[0]))
	assert.Contains(t, out, "Ver Projeto")
	assert.Contains(t, out, "Cliente: Cliente a")
	assert.Empty(t, collect(t, out, "no-results"))
	assert.Empty(t, collect(t, out, "end-message"))
}

func TestRenderer_StatusMessages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Fragment(&buf, FragmentCards, CardsData{
		Base: testBase(),
		Page: models.ProjectPage{Page: 1, Items: []models.Card{}, NoResults: true},
	}))
	assert.Len(t, collect(t, buf.String(), "no-results"), 1)
	assert.Empty(t, collect(t, buf.String(), "portfolio-item"))

	buf.Reset()
	require.NoError(t, r.Fragment(&buf, FragmentCards, CardsData{
		Base:    testBase(),
		Page:    models.ProjectPage{Page: 2, Items: []models.Card{{Project: project("z")}}, Showing: 10, Total: 10, EndOfResults: true},
		NextURL: "",
	}))
	assert.Len(t, collect(t, buf.String(), "end-message"), 1)
	assert.Contains(t, buf.String(), "Mostrando 10 de 10 projetos")
}

func TestRenderer_NextURL(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Fragment(&buf, FragmentCards, CardsData{
		Base:    testBase(),
		Page:    models.ProjectPage{Page: 1, Items: []models.Card{}, HasMore: true},
		NextURL: "/portfolio/items?category=web&page=2",
	}))

	status := collect(t, buf.String(), "results-count")
	require.Len(t, status, 1)
	assert.Contains(t, buf.String(), `data-next-url="/portfolio/items?category=web&amp;page=2"`)
}

func TestRenderer_Modal(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	p := project("a", "Go", "PostgreSQL")
	var buf bytes.Buffer
	require.NoError(t, r.Fragment(&buf, FragmentModal, ModalData{Base: testBase(), Project: &p}))
	out := buf.String()

	assert.Contains(t, out, "<h2>Projeto a</h2>")
	assert.Contains(t, out, "3 meses")
	assert.Contains(t, out, "Desafio &lt;b&gt;grande&lt;/b&gt;", "catalog text is escaped")
	assert.Len(t, collect(t, out, "modal-tech-item"), 2)
	assert.Contains(t, out, `href="/#contact"`)
	assert.Contains(t, out, "Iniciar Meu Projeto")

	var results []string
	root, _ := html.Parse(strings.NewReader(out))
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			results = append(results, text(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	assert.Equal(t, []string{"+40% vendas", "2x tráfego"}, results)
}

func TestRenderer_ModalEnglish(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	p := project("a")
	base := testBase()
	base.L = i18n.New(language.English)

	var buf bytes.Buffer
	require.NoError(t, r.Fragment(&buf, FragmentModal, ModalData{Base: base, Project: &p}))
	assert.Contains(t, buf.String(), "The Challenge")
	assert.Contains(t, buf.String(), "Client: Cliente a")
}

func TestRenderer_ContactStatus(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Fragment(&buf, FragmentContactStatus, ContactStatusData{
		Base:   testBase(),
		Result: models.ContactResult{OK: false, Message: "falhou"},
	}))
	nodes := collect(t, buf.String(), "error-message")
	require.Len(t, nodes, 1)
	assert.Equal(t, "falhou", text(nodes[0]))
}

func TestRenderer_Pages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	facets := models.Facets{
		Categories:   []models.Category{{Key: "web", Name: "Website"}},
		Technologies: []string{"react", "vue"},
		Years:        []int{2024, 2023},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, PagePortfolio, PortfolioData{
		Base:   testBase(),
		Facets: facets,
		Filter: models.Filter{Technology: "vue", Year: "2023"},
		Cards: CardsData{
			Base: testBase(),
			Page: models.ProjectPage{Page: 1, Items: []models.Card{{Project: project("a")}}, Showing: 1, Total: 1},
		},
	}))
	out := buf.String()
	assert.Contains(t, out, `<html lang="pt-BR">`)
	assert.Contains(t, out, `<option value="vue" selected>vue</option>`)
	assert.Contains(t, out, `<option value="2023" selected>2023</option>`)
	assert.Contains(t, out, `data-search-debounce-ms="300"`)
	assert.Len(t, collect(t, out, "portfolio-item"), 1)

	buf.Reset()
	require.NoError(t, r.Page(&buf, PageHome, HomeData{
		Base:    testBase(),
		Facets:  facets,
		Contact: &models.ContactResult{OK: true, Message: "enviado"},
	}))
	assert.Len(t, collect(t, buf.String(), "success-message"), 1)
	assert.Contains(t, buf.String(), `action="/contact"`)

	assert.Error(t, r.Page(&buf, "missing", nil))
}

func TestRenderer_Respond(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Respond(rec, http.StatusNotFound, func(w io.Writer) error {
		return r.Fragment(w, FragmentContactStatus, ContactStatusData{Base: testBase(), Result: models.ContactResult{OK: true, Message: "ok"}})
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestRenderer_ContactFormCarriesClientMessages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, PageHome, HomeData{Base: testBase()}))

	forms := collect(t, buf.String(), "contact-form")
	require.Len(t, forms, 1)
	assert.Equal(t, "Enviando...", attr(forms[0], "data-sending"))
	assert.Equal(t, "Ocorreu um erro ao enviar. Tente novamente ou chame no WhatsApp.", attr(forms[0], "data-error"))
}
