package services

import (
	"time"

	"vitrine.dev/internal/models"
)

// Feed reveals a filtered project list one fixed-size page at a time.
// A Feed is owned by a single caller and is not safe for concurrent use.
type Feed struct {
	projects []models.Project
	filter   models.Filter
	pageSize int
	stagger  time.Duration
	cursor   int
	done     bool
	ended    bool
}

func newFeed(projects []models.Project, f models.Filter, pageSize int, stagger time.Duration) *Feed {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Feed{
		projects: FilterProjects(projects, f),
		filter:   f,
		pageSize: pageSize,
		stagger:  stagger,
	}
}

// Filter returns the criteria the feed was built with
func (f *Feed) Filter() models.Filter {
	return f.filter
}

// reset applies a new filter against projects and rewinds to the first page
func (f *Feed) reset(projects []models.Project, filter models.Filter) {
	f.projects = FilterProjects(projects, filter)
	f.filter = filter
	f.cursor = 0
	f.done = false
	f.ended = false
}

// seek positions the feed as if cursor pages had already been revealed
func (f *Feed) seek(cursor int) {
	if cursor < 0 {
		cursor = 0
	}
	total := len(f.projects)
	pages := (total + f.pageSize - 1) / f.pageSize
	if cursor > 0 && cursor >= pages {
		cursor = pages
		f.done = true
		f.ended = total > f.pageSize
	}
	f.cursor = cursor
}

// Next reveals the next page. It returns false, changing nothing, once the
// feed is exhausted.
func (f *Feed) Next() (models.ProjectPage, bool) {
	if f.done {
		return models.ProjectPage{}, false
	}

	total := len(f.projects)
	start := f.cursor * f.pageSize
	if start >= total {
		f.done = true
		f.ended = f.cursor > 0
		page := f.page(nil)
		page.Page = f.cursor + 1
		return page, true
	}

	end := start + f.pageSize
	if end > total {
		end = total
	}

	items := make([]models.Card, 0, end-start)
	for i, p := range f.projects[start:end] {
		items = append(items, models.Card{
			Project: p,
			DelayMs: int((time.Duration(i) * f.stagger).Milliseconds()),
		})
	}

	f.cursor++
	if end >= total {
		f.done = true
		f.ended = total > f.pageSize
	}

	page := f.page(items)
	page.Page = f.cursor
	return page, true
}

// Status reports the feed position without advancing it
func (f *Feed) Status() models.FeedStatus {
	total := len(f.projects)
	showing := f.cursor * f.pageSize
	if showing > total {
		showing = total
	}
	return models.FeedStatus{
		Loaded:       f.cursor,
		Showing:      showing,
		Total:        total,
		HasMore:      !f.done && showing < total,
		EndOfResults: f.ended,
		NoResults:    total == 0,
	}
}

func (f *Feed) page(items []models.Card) models.ProjectPage {
	if items == nil {
		items = []models.Card{}
	}
	st := f.Status()
	return models.ProjectPage{
		PageSize:     f.pageSize,
		Items:        items,
		Showing:      st.Showing,
		Total:        st.Total,
		HasMore:      st.HasMore,
		EndOfResults: st.EndOfResults,
		NoResults:    st.NoResults,
		Filter:       f.filter,
	}
}
