package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/models"
)

// reloadDebounce collapses the burst of events editors emit for one save.
const reloadDebounce = 250 * time.Millisecond

// ErrProjectNotFound is returned for an unknown project id
var ErrProjectNotFound = errors.New("project not found")

// Catalog holds the current project list. The list is never mutated;
// a reload swaps in a complete new snapshot.
type Catalog struct {
	path     string
	snapshot atomic.Pointer[models.ProjectList]
	logger   *slog.Logger
}

// NewCatalog wraps an already loaded project list. path may be empty when
// the catalog is not backed by a file.
func NewCatalog(path string, projects *models.ProjectList) *Catalog {
	c := &Catalog{path: path, logger: slog.Default()}
	if projects == nil {
		projects = &models.ProjectList{}
	}
	c.snapshot.Store(projects)
	return c
}

// LoadCatalog reads the catalog from a projects.json file
func LoadCatalog(path string) (*Catalog, error) {
	projects, err := config.LoadProjects(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(path, projects), nil
}

// WithLogger sets the logger used for reload reports
func (c *Catalog) WithLogger(logger *slog.Logger) *Catalog {
	c.logger = logger
	return c
}

// Projects returns the current snapshot in catalog order
func (c *Catalog) Projects() []models.Project {
	return c.snapshot.Load().Projects
}

// ByID returns a project from the current snapshot
func (c *Catalog) ByID(id string) (*models.Project, error) {
	projects := c.Projects()
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// Reload re-reads the backing file. On error the previous snapshot stays.
func (c *Catalog) Reload() error {
	if c.path == "" {
		return errors.New("catalog has no backing file")
	}
	projects, err := config.LoadProjects(c.path)
	if err != nil {
		return err
	}
	c.snapshot.Store(projects)
	return nil
}

// Watch reloads the catalog whenever its file changes, until ctx is done.
// The parent directory is watched so that rename-on-save editors are seen.
func (c *Catalog) Watch(ctx context.Context) error {
	if c.path == "" {
		return errors.New("catalog has no backing file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(c.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	name := filepath.Clean(c.path)
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(reloadDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("catalog watcher error", "error", err)

		case <-timer.C:
			if err := c.Reload(); err != nil {
				c.logger.Error("catalog reload failed, keeping previous snapshot",
					"path", c.path, "error", err)
				continue
			}
			c.logger.Info("catalog reloaded", "path", c.path, "projects", len(c.Projects()))
		}
	}
}
