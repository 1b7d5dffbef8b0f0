package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := map[string]any{
		"site_name":          "Project Documentation",
		"site_description":   "Documentation for the project",
		"repo_url":           "https://github.com/example/project",
		"theme":              "docbuilder",
		"docs_dir":           "docs",
		"site_dir":           "site",
		"use_directory_urls": true,
		"include_search":     true,
	}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
