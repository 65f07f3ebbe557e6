package models

import "strconv"

// Project represents a portfolio project
type Project struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Client           string   `json:"client"`
	Category         string   `json:"category"`
	Technologies     []string `json:"technologies"`
	TechStack        []string `json:"tech_stack"`
	Year             int      `json:"year"`
	Icon             string   `json:"icon"`
	Image            string   `json:"image"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	Duration         string   `json:"duration"`
	Team             string   `json:"team"`
	Challenge        string   `json:"challenge"`
	Solution         string   `json:"solution"`
	Results          []string `json:"results"`
}

// YearString returns the year the way filter values carry it
func (p *Project) YearString() string {
	return strconv.Itoa(p.Year)
}

// HasTechnology reports whether tech is one of the project's filterable technologies
func (p *Project) HasTechnology(tech string) bool {
	for _, t := range p.Technologies {
		if t == tech {
			return true
		}
	}
	return false
}

// TechPreview splits the tech stack into the first n badges and the count left over
func (p *Project) TechPreview(n int) ([]string, int) {
	if len(p.TechStack) <= n {
		return p.TechStack, 0
	}
	return p.TechStack[:n], len(p.TechStack) - n
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
