package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/models"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       generate <output-dir> --projects-only  (leave site.yaml alone)")
		os.Exit(1)
	}

	outputDir := os.Args[1]
	projectsOnly := len(os.Args) > 2 && os.Args[2] == "--projects-only"

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Writing %d projects...\n", len(seedProjects))
	path, err := writeProjects(outputDir, seedProjects)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	// Read it back through the same loader the server uses
	list, err := config.LoadProjects(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR validating %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("  Created %s (%d projects)\n", path, len(list.Projects))

	if !projectsOnly {
		sitePath, err := writeSite(outputDir, config.DefaultSite())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  Created %s\n", sitePath)
	}

	fmt.Println("Done!")
}

// writeProjects writes the catalog as indented JSON
func writeProjects(dir string, projects []models.Project) (string, error) {
	data, err := json.MarshalIndent(models.ProjectList{Projects: projects}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}

	path := filepath.Join(dir, config.ProjectsFile)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return path, nil
}

// writeSite writes the presentation settings as YAML
func writeSite(dir string, site *config.SiteConfig) (string, error) {
	data, err := yaml.Marshal(site)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}

	path := filepath.Join(dir, config.SiteFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return path, nil
}
