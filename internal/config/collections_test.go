package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeDocsTree creates files (with parent dirs) under a fresh temp root.
func writeDocsTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	return root
}

func TestFileList_RejectsNonList(t *testing.T) {
	opt := NewFileList(OSFileSystem{}, GlobMatcher("**.css"))
	_, err := opt.Check(testRun(), "style.css")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a list")
}

func TestFileList_UserValuePassesThroughUnchanged(t *testing.T) {
	opt := NewFileList(OSFileSystem{}, GlobMatcher("**.css"))
	value := []any{"a.css", "b.css"}
	got, err := opt.Check(testRun(), value)
	require.NoError(t, err)
	require.Equal(t, value, got)

	// A supplied value suppresses auto-population.
	run := runWith(map[string]any{"extra_css": value, "docs_dir": t.TempDir()})
	require.NoError(t, opt.PostValidate(run, "extra_css"))
	got, _ = run.Config().Get("extra_css")
	require.Equal(t, value, got)
}

func TestFileList_AutoPopulatesFromDocsTree(t *testing.T) {
	docs := writeDocsTree(t,
		"z.css",
		"a.css",
		"notes.md",
		"css/deep.css",
	)
	opt := NewFileList(OSFileSystem{}, GlobMatcher("**.css"))
	run := runWith(map[string]any{"extra_css": nil, "docs_dir": docs})

	require.NoError(t, opt.PostValidate(run, "extra_css"))
	got, _ := run.Config().Get("extra_css")
	// Root files in sorted order, then subdirectories.
	require.Equal(t, []string{"a.css", "z.css", filepath.Join("css", "deep.css")}, got)
}

func TestFileList_MissingDocsDirDegradesToEmpty(t *testing.T) {
	opt := NewFileList(OSFileSystem{}, GlobMatcher("**.css"))
	run := runWith(map[string]any{"extra_css": nil, "docs_dir": filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, opt.PostValidate(run, "extra_css"))
	got, _ := run.Config().Get("extra_css")
	require.Empty(t, got)
}

func TestPages_CurrentShapePassesUnchanged(t *testing.T) {
	opt := NewPages(OSFileSystem{})
	value := []any{
		"index.md",
		map[string]any{"About": "about.md"},
	}
	got, err := opt.Check(testRun(), value)
	require.NoError(t, err)
	require.Equal(t, value, got)
}

func TestPages_LegacyShapeIsMigrated(t *testing.T) {
	opt := NewPages(OSFileSystem{})
	value := []any{
		"index.md",
		[]any{"about.md", "About"},
	}
	got, err := opt.Check(testRun(), value)
	require.NoError(t, err)
	require.Equal(t, []any{
		"index.md",
		map[string]any{"About": "about.md"},
	}, got)
}

func TestPages_MixedMapAndListIsRejected(t *testing.T) {
	opt := NewPages(OSFileSystem{})
	_, err := opt.Check(testRun(), []any{
		map[string]any{"About": "about.md"},
		[]any{"index.md", "Home"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid pages configuration")
}

func TestPages_UnsupportedEntryTypeIsRejected(t *testing.T) {
	opt := NewPages(OSFileSystem{})
	_, err := opt.Check(testRun(), []any{"index.md", 42})
	require.Error(t, err)
}

func TestPages_NonListIsRejected(t *testing.T) {
	opt := NewPages(OSFileSystem{})
	_, err := opt.Check(testRun(), "index.md")
	require.Error(t, err)
}

func TestPages_EmptyListCountsAsAbsent(t *testing.T) {
	opt := NewPages(OSFileSystem{})
	got, err := opt.Check(testRun(), []any{})
	require.NoError(t, err)
	require.Nil(t, got, "empty list resolves to absent so auto-population runs")
}

func TestPages_AutoPopulationIndexFirstAndNested(t *testing.T) {
	docs := writeDocsTree(t,
		"index.md",
		"a.md",
		"z.md",
		"b/c.md",
		"b/a.md",
		"style.css", // not a doc file, excluded
	)
	opt := NewPages(OSFileSystem{})
	run := runWith(map[string]any{"pages": nil, "docs_dir": docs})

	require.NoError(t, opt.PostValidate(run, "pages"))
	got, _ := run.Config().Get("pages")
	require.Equal(t, []any{
		"index.md",
		"a.md",
		"z.md",
		map[string]any{"b": []any{
			filepath.Join("b", "a.md"),
			filepath.Join("b", "c.md"),
		}},
	}, got)
}

func TestPages_NestedIndexIsNotPromoted(t *testing.T) {
	docs := writeDocsTree(t, "a.md", "b/index.md")
	opt := NewPages(OSFileSystem{})
	run := runWith(map[string]any{"pages": nil, "docs_dir": docs})

	require.NoError(t, opt.PostValidate(run, "pages"))
	got, _ := run.Config().Get("pages")
	require.Equal(t, []any{
		"a.md",
		map[string]any{"b": []any{filepath.Join("b", "index.md")}},
	}, got)
}

func TestNumPages_Threshold(t *testing.T) {
	cases := []struct {
		pages any
		want  bool
	}{
		{[]any{}, false},
		{[]any{"index.md"}, false},
		{[]any{"index.md", "about.md"}, true},
		{nil, false},         // absent degrades to false
		{"not-a-list", true}, // a string is sized; 10 chars > 1
	}
	for _, c := range cases {
		opt := NewNumPages(1)
		run := runWith(map[string]any{"include_nav": nil, "pages": c.pages})
		require.NoError(t, opt.PostValidate(run, "include_nav"))
		got, _ := run.Config().Get("include_nav")
		require.Equal(t, c.want, got, "pages %v", c.pages)
	}
}

func TestNumPages_ExplicitValueWins(t *testing.T) {
	opt := NewNumPages(1)
	run := runWith(map[string]any{"include_nav": false, "pages": []any{"a", "b", "c"}})
	require.NoError(t, opt.PostValidate(run, "include_nav"))
	got, _ := run.Config().Get("include_nav")
	require.Equal(t, false, got)
}

func TestNumPages_DeclaresPagesDependency(t *testing.T) {
	require.Equal(t, []string{"pages"}, NewNumPages(1).DependsOn())
}
