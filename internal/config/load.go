package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docschema/internal/theme"
)

// LoadFiles reads one or more YAML configuration fragments into a RawConfig.
// Later files override earlier ones key by key; the individual layers are
// kept for presence checks. ${VAR} references are expanded from the
// environment after .env files are loaded.
func LoadFiles(paths ...string) (RawConfig, error) {
	loadDotEnv()
	rc := RawConfig{Values: map[string]any{}}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return RawConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		layer := map[string]any{}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &layer); err != nil {
			return RawConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		rc.Layers = append(rc.Layers, layer)
		for k, v := range layer {
			rc.Values[k] = v
		}
	}
	return rc, nil
}

// loadDotEnv pulls in .env/.env.local without overriding variables already
// set in the process environment.
func loadDotEnv() {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

// Load is the one-call entry point: read the given fragment files, validate
// them against the default schema, and return the finalized configuration
// with any warnings.
func Load(fsys FileSystem, reg *theme.Registry, paths ...string) (*Config, []Warning, error) {
	rc, err := LoadFiles(paths...)
	if err != nil {
		return nil, nil, err
	}
	schema, err := DefaultSchema(fsys, reg)
	if err != nil {
		return nil, nil, err
	}
	return NewValidator(schema, nil, nil).Validate(rc)
}
