package models

import "strings"

// FilterAll is the sentinel value select controls send for an inactive criterion
const FilterAll = "all"

// Filter is the set of criteria applied to the project list.
// A zero Filter matches every project.
type Filter struct {
	Category   string `json:"category"`
	Technology string `json:"technology"`
	Year       string `json:"year"`
	Search     string `json:"search"`
}

// NewFilter builds a Filter from raw control values, mapping "all" and blanks to inactive
func NewFilter(category, technology, year, search string) Filter {
	return Filter{
		Category:   normalizeCriterion(category),
		Technology: normalizeCriterion(technology),
		Year:       normalizeCriterion(year),
		Search:     strings.TrimSpace(search),
	}
}

// IsZero reports whether no criterion is active
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// WithCategory returns a copy of f with the category replaced
func (f Filter) WithCategory(category string) Filter {
	f.Category = normalizeCriterion(category)
	return f
}

// WithTechnology returns a copy of f with the technology replaced
func (f Filter) WithTechnology(tech string) Filter {
	f.Technology = normalizeCriterion(tech)
	return f
}

// WithYear returns a copy of f with the year replaced
func (f Filter) WithYear(year string) Filter {
	f.Year = normalizeCriterion(year)
	return f
}

// WithSearch returns a copy of f with the search term replaced
func (f Filter) WithSearch(search string) Filter {
	f.Search = strings.TrimSpace(search)
	return f
}

func normalizeCriterion(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, FilterAll) {
		return ""
	}
	return v
}
