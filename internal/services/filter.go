package services

import (
	"strings"

	"golang.org/x/text/cases"

	"vitrine.dev/internal/models"
)

// matcher evaluates one Filter. The search term is folded once up front.
type matcher struct {
	filter models.Filter
	term   string
	fold   cases.Caser
}

func newMatcher(f models.Filter) *matcher {
	m := &matcher{filter: f, fold: cases.Fold()}
	if f.Search != "" {
		m.term = m.fold.String(f.Search)
	}
	return m
}

// match reports whether p satisfies every active criterion
func (m *matcher) match(p *models.Project) bool {
	if m.filter.Category != "" && p.Category != m.filter.Category {
		return false
	}
	if m.filter.Technology != "" && !p.HasTechnology(m.filter.Technology) {
		return false
	}
	if m.filter.Year != "" && p.YearString() != m.filter.Year {
		return false
	}
	if m.term != "" && !strings.Contains(m.fold.String(searchableText(p)), m.term) {
		return false
	}
	return true
}

// searchableText joins the fields search looks at. Fields are newline separated
// so a term cannot match across two of them; tech stack entries share one line.
func searchableText(p *models.Project) string {
	return strings.Join([]string{
		p.Title,
		p.Client,
		p.ShortDescription,
		p.FullDescription,
		strings.Join(p.TechStack, " "),
	}, "\n")
}

// matches reports whether a single project passes the filter
func matches(f models.Filter, p *models.Project) bool {
	return newMatcher(f).match(p)
}

// FilterProjects returns the projects passing f, in their original order
func FilterProjects(projects []models.Project, f models.Filter) []models.Project {
	if f.IsZero() {
		out := make([]models.Project, len(projects))
		copy(out, projects)
		return out
	}

	m := newMatcher(f)
	out := make([]models.Project, 0, len(projects))
	for i := range projects {
		if m.match(&projects[i]) {
			out = append(out, projects[i])
		}
	}
	return out
}
