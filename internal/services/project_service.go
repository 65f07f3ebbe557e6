package services

import (
	"sort"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	catalog *Catalog
	site    *config.SiteConfig
}

// NewProjectService creates a new ProjectService
func NewProjectService(catalog *Catalog, site *config.SiteConfig) *ProjectService {
	if site == nil {
		site = config.DefaultSite()
	}
	return &ProjectService{catalog: catalog, site: site}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.catalog.Projects()
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	return s.catalog.ByID(id)
}

// Filter returns the projects matching f in catalog order
func (s *ProjectService) Filter(f models.Filter) []models.Project {
	return FilterProjects(s.catalog.Projects(), f)
}

// PageSize is the number of projects revealed per page
func (s *ProjectService) PageSize() int {
	return s.site.PageSize
}

// NewFeed starts a feed over the current catalog at the first page
func (s *ProjectService) NewFeed(f models.Filter) *Feed {
	return newFeed(s.catalog.Projects(), f, s.site.PageSize, s.site.Stagger())
}

// ResumeFeed rebuilds a feed that has already revealed cursor pages
func (s *ProjectService) ResumeFeed(f models.Filter, cursor int) *Feed {
	feed := s.NewFeed(f)
	feed.seek(cursor)
	return feed
}

// refilter resets feed to the first page under a new filter
func (s *ProjectService) refilter(feed *Feed, f models.Filter) {
	feed.reset(s.catalog.Projects(), f)
}

// Page returns the 1-based page n of the filtered list. A page past the end
// comes back empty with ok false.
func (s *ProjectService) Page(f models.Filter, n int) (models.ProjectPage, bool) {
	feed := s.ResumeFeed(f, n-1)
	page, ok := feed.Next()
	if !ok {
		page = feed.page(nil)
		page.Page = n
	}
	return page, ok
}

// Facets lists the category, technology and year values present in the catalog
func (s *ProjectService) Facets() models.Facets {
	projects := s.catalog.Projects()

	present := make(map[string]bool)
	techSet := make(map[string]bool)
	yearSet := make(map[int]bool)
	var dataOrder []string
	for _, p := range projects {
		if p.Category != "" && !present[p.Category] {
			present[p.Category] = true
			dataOrder = append(dataOrder, p.Category)
		}
		for _, t := range p.Technologies {
			techSet[t] = true
		}
		if p.Year != 0 {
			yearSet[p.Year] = true
		}
	}

	facets := models.Facets{
		Categories:   []models.Category{},
		Technologies: make([]string, 0, len(techSet)),
		Years:        make([]int, 0, len(yearSet)),
	}

	listed := make(map[string]bool)
	for _, c := range s.site.Categories {
		if present[c.Key] {
			facets.Categories = append(facets.Categories, c)
			listed[c.Key] = true
		}
	}
	for _, key := range dataOrder {
		if !listed[key] {
			facets.Categories = append(facets.Categories, models.Category{Key: key, Name: s.site.CategoryName(key)})
		}
	}

	for t := range techSet {
		facets.Technologies = append(facets.Technologies, t)
	}
	sort.Strings(facets.Technologies)

	for y := range yearSet {
		facets.Years = append(facets.Years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(facets.Years)))

	return facets
}

// CategoryName returns the display name for a category key
func (s *ProjectService) CategoryName(key string) string {
	return s.site.CategoryName(key)
}
