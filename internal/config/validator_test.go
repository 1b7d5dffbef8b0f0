package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docschema/internal/theme"
)

func defaultTestSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := DefaultSchema(OSFileSystem{}, theme.NewRegistry("/opt/docschema/share"))
	require.NoError(t, err)
	return s
}

func rawWith(values map[string]any) RawConfig {
	return RawConfig{Values: values, Layers: []map[string]any{values}}
}

func TestValidator_EndToEnd(t *testing.T) {
	docs := writeDocsTree(t, "index.md", "a.md", "b/c.md")
	values := map[string]any{
		"site_name": "Example Docs",
		"repo_url":  "https://github.com/example/docs",
		"docs_dir":  docs,
		"site_dir":  filepath.Join(t.TempDir(), "site"),
	}

	v := NewValidator(defaultTestSchema(t), nil, nil)
	cfg, warnings, err := v.Validate(rawWith(values))
	require.NoError(t, err)
	require.Empty(t, warnings)

	require.Equal(t, "Example Docs", cfg.GetString("site_name"))
	require.Equal(t, "GitHub", cfg.GetString("repo_name"))
	require.Equal(t, "docbuilder", cfg.GetString("theme"))
	require.Equal(t, "127.0.0.1:8000", cfg.GetString("dev_addr"))

	pages, _ := cfg.Get("pages")
	require.Equal(t, []any{
		"index.md",
		"a.md",
		map[string]any{"b": []any{filepath.Join("b", "c.md")}},
	}, pages)

	// Three pages exceed the default threshold of one.
	nav, _ := cfg.Get("include_nav")
	require.Equal(t, true, nav)

	// Optional fields with no default resolve to explicit absence.
	siteURL, known := cfg.Get("site_url")
	require.True(t, known)
	require.Nil(t, siteURL)

	themeDirs, _ := cfg.Get("theme_dir")
	require.Len(t, themeDirs.([]string), 2)
	require.NotEmpty(t, cfg.GetString("templates_dir"))
}

func TestValidator_FailFastNamesOffendingOption(t *testing.T) {
	v := NewValidator(defaultTestSchema(t), nil, nil)

	_, _, err := v.Validate(rawWith(map[string]any{
		"site_name": "Docs",
		"docs_dir":  t.TempDir(),
		"repo_url":  "not-a-url",
	}))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "repo_url", ve.Option)
	require.Contains(t, err.Error(), "repo_url")
}

func TestValidator_MissingRequired(t *testing.T) {
	v := NewValidator(defaultTestSchema(t), nil, nil)

	_, _, err := v.Validate(rawWith(map[string]any{"docs_dir": t.TempDir()}))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "site_name", ve.Option)
	require.Contains(t, ve.Message, "required configuration not provided")
}

func TestValidator_PostValidationAbortsRun(t *testing.T) {
	docs := writeDocsTree(t, "index.md")
	v := NewValidator(defaultTestSchema(t), nil, nil)

	_, _, err := v.Validate(rawWith(map[string]any{
		"site_name": "Docs",
		"docs_dir":  docs,
		"site_dir":  filepath.Join(docs, "site"),
	}))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "site_dir", ve.Option)
	require.Contains(t, ve.Message, "cannot be within")
}

func TestValidator_UnknownKeysWarn(t *testing.T) {
	docs := writeDocsTree(t, "index.md")
	v := NewValidator(defaultTestSchema(t), nil, nil)

	_, warnings, err := v.Validate(rawWith(map[string]any{
		"site_name":   "Docs",
		"docs_dir":    docs,
		"no_such_key": true,
	}))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, "no_such_key", warnings[0].Option)
	require.Contains(t, warnings[0].Message, "unrecognised configuration key")
}

func TestValidator_DeprecatedThemeSurfacesWarning(t *testing.T) {
	docs := writeDocsTree(t, "index.md")
	v := NewValidator(defaultTestSchema(t), nil, nil)

	cfg, warnings, err := v.Validate(rawWith(map[string]any{
		"site_name": "Docs",
		"docs_dir":  docs,
		"theme":     "slate",
	}))
	require.NoError(t, err)
	require.Equal(t, "slate", cfg.GetString("theme"))
	require.Len(t, warnings, 1)
	require.Equal(t, "theme", warnings[0].Option)
}

func TestValidator_SchemaShareableAcrossRuns(t *testing.T) {
	docs := writeDocsTree(t, "index.md")
	schema := defaultTestSchema(t)
	v := NewValidator(schema, nil, nil)

	// Two sequential runs over the same schema must not leak state.
	for i := 0; i < 2; i++ {
		cfg, warnings, err := v.Validate(rawWith(map[string]any{
			"site_name": "Docs",
			"docs_dir":  docs,
			"theme":     "slate",
		}))
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		pages, _ := cfg.Get("pages")
		require.Equal(t, []any{"index.md"}, pages)
	}
}
