package models

// Card is a project scheduled for display within a page
type Card struct {
	Project
	DelayMs int `json:"delay_ms"`
}

// ProjectPage is one window of the filtered project list
type ProjectPage struct {
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
	Items        []Card `json:"items"`
	Showing      int    `json:"showing"`
	Total        int    `json:"total"`
	HasMore      bool   `json:"has_more"`
	EndOfResults bool   `json:"end_of_results"`
	NoResults    bool   `json:"no_results"`
	Summary      string `json:"summary,omitempty"`
	Filter       Filter `json:"filter"`
}

// FeedStatus describes the state of a feed without advancing it
type FeedStatus struct {
	Loaded       int  `json:"loaded"`
	Showing      int  `json:"showing"`
	Total        int  `json:"total"`
	HasMore      bool `json:"has_more"`
	EndOfResults bool `json:"end_of_results"`
	NoResults    bool `json:"no_results"`
}

// Category pairs a category key with its display name
type Category struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
}

// Facets lists the values available to each filter control
type Facets struct {
	Categories   []Category `json:"categories"`
	Technologies []string   `json:"technologies"`
	Years        []int      `json:"years"`
}
