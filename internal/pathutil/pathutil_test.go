package pathutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDocFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"index.md", true},
		{"guide/setup.markdown", true},
		{"notes.mkd", true},
		{"README.MD", true},
		{"style.css", false},
		{"script.js", false},
		{"md", false},
		{"archive.md.bak", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, IsDocFile(c.path), "path %s", c.path)
	}
}

func TestNestPaths_RootFilesStayFlat(t *testing.T) {
	got := NestPaths([]string{"index.md", "about.md"})
	require.Equal(t, []any{"index.md", "about.md"}, got)
}

func TestNestPaths_GroupsByDirectory(t *testing.T) {
	got := NestPaths([]string{"index.md", "b/c.md", "b/d.md", "e/f.md"})
	require.Equal(t, []any{
		"index.md",
		map[string]any{"b": []any{"b/c.md", "b/d.md"}},
		map[string]any{"e": []any{"e/f.md"}},
	}, got)
}

func TestNestPaths_NestsRecursively(t *testing.T) {
	got := NestPaths([]string{"a/b/c.md", "a/d.md"})
	require.Equal(t, []any{
		map[string]any{"a": []any{
			map[string]any{"b": []any{"a/b/c.md"}},
			"a/d.md",
		}},
	}, got)
}

func TestNestPaths_Empty(t *testing.T) {
	require.Equal(t, []any{}, NestPaths(nil))
}
