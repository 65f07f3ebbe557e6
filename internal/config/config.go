package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"vitrine.dev/internal/i18n"
	"vitrine.dev/internal/models"
)

const (
	ProjectsFile = "projects.json"
	SiteFile     = "site.yaml"
)

// Env holds the settings read from the process environment
type Env struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	DataPath        string        `env:"DATA_PATH" envDefault:"data"`
	StaticPath      string        `env:"STATIC_PATH" envDefault:"static"`
	ContactEndpoint string        `env:"CONTACT_ENDPOINT"`
	ContactTimeout  time.Duration `env:"CONTACT_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	WatchData       bool          `env:"WATCH_DATA" envDefault:"false"`
	DefaultLang     string        `env:"DEFAULT_LANG" envDefault:"pt-BR"`
}

// Config holds all application configuration
type Config struct {
	Env
	Site     *SiteConfig
	Projects *models.ProjectList
}

// SiteConfig holds presentation settings
type SiteConfig struct {
	Title             string            `yaml:"title" json:"title"`
	PageSize          int               `yaml:"page_size" json:"page_size"`
	StaggerMs         int               `yaml:"stagger_ms" json:"stagger_ms"`
	LoadDelayMs       int               `yaml:"load_delay_ms" json:"load_delay_ms"`
	SearchDebounceMs  int               `yaml:"search_debounce_ms" json:"search_debounce_ms"`
	ScrollThresholdPx int               `yaml:"scroll_threshold_px" json:"scroll_threshold_px"`
	NavCompactAfterPx int               `yaml:"nav_compact_after_px" json:"nav_compact_after_px"`
	Categories        []models.Category `yaml:"categories" json:"categories"`
	WhatsApp          string            `yaml:"whatsapp" json:"whatsapp,omitempty"`
}

// DefaultSite returns the settings used when site.yaml is absent or leaves fields out
func DefaultSite() *SiteConfig {
	return &SiteConfig{
		Title:             "Portfólio",
		PageSize:          9,
		StaggerMs:         100,
		LoadDelayMs:       600,
		SearchDebounceMs:  300,
		ScrollThresholdPx: 500,
		NavCompactAfterPx: 100,
		Categories: []models.Category{
			{Key: "web", Name: "Website"},
			{Key: "ecommerce", Name: "E-commerce"},
			{Key: "system", Name: "Sistema"},
			{Key: "mobile", Name: "Mobile"},
		},
	}
}

// Stagger returns the per-card reveal delay
func (s *SiteConfig) Stagger() time.Duration {
	return time.Duration(s.StaggerMs) * time.Millisecond
}

// CategoryName returns the display name for a category key, or the key itself
func (s *SiteConfig) CategoryName(key string) string {
	for _, c := range s.Categories {
		if c.Key == key {
			return c.Name
		}
	}
	return key
}

// Language returns the configured fallback language, matched against the
// languages the message catalog supports. Anything else falls back to pt-BR.
func (e *Env) Language() language.Tag {
	tag, ok := i18n.ParseTag(e.DefaultLang)
	if !ok {
		return language.BrazilianPortuguese
	}
	return tag
}

// ProjectsPath is the catalog file location
func (e *Env) ProjectsPath() string {
	return filepath.Join(e.DataPath, ProjectsFile)
}

// Load reads .env (if present), the environment and the data files
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	e, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	return LoadFrom(e)
}

// ParseEnv reads Env from the process environment
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// LoadFrom reads the data files named by e
func LoadFrom(e Env) (*Config, error) {
	site, err := LoadSite(filepath.Join(e.DataPath, SiteFile))
	if err != nil {
		return nil, err
	}

	projects, err := LoadProjects(e.ProjectsPath())
	if err != nil {
		return nil, err
	}

	return &Config{
		Env:      e,
		Site:     site,
		Projects: projects,
	}, nil
}

// LoadProjects reads and parses a projects.json file
func LoadProjects(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var projects models.ProjectList
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	seen := make(map[string]bool, len(projects.Projects))
	for i, p := range projects.Projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project %d in %s has no id", i, filepath.Base(path))
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate project id %q in %s", p.ID, filepath.Base(path))
		}
		seen[p.ID] = true
	}

	return &projects, nil
}

// LoadSite reads site.yaml over the defaults. A missing file yields the defaults.
func LoadSite(path string) (*SiteConfig, error) {
	site := DefaultSite()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return site, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if site.PageSize <= 0 {
		return nil, fmt.Errorf("%s: page_size must be positive, got %d", filepath.Base(path), site.PageSize)
	}
	if site.StaggerMs < 0 {
		return nil, fmt.Errorf("%s: stagger_ms must not be negative", filepath.Base(path))
	}

	return site, nil
}
