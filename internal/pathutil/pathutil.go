// Package pathutil classifies documentation source paths and provides the
// directory-nesting transform used by page-list auto-population.
package pathutil

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docschema/internal/util/sets"
)

var docExtensions = sets.New(".markdown", ".mdown", ".mkdn", ".mkd", ".md")

// IsDocFile reports whether the path names a documentation source file,
// judged by extension.
func IsDocFile(path string) bool {
	return docExtensions.Has(strings.ToLower(filepath.Ext(path)))
}

// NestPaths converts a flat list of relative paths into the nested
// navigation shape: root-level files stay plain strings, files in
// directories are grouped under one mapping per directory segment, with the
// full relative path kept at the leaf. Input order is preserved within each
// group.
//
//	["index.md", "a.md", "b/c.md", "b/d.md"]
//	  -> ["index.md", "a.md", {"b": ["b/c.md", "b/d.md"]}]
func NestPaths(paths []string) []any {
	nested := []any{}
	for _, p := range paths {
		nested = nestInto(nested, strings.Split(filepath.ToSlash(p), "/"), p)
	}
	return nested
}

func nestInto(branch []any, parts []string, full string) []any {
	if len(parts) == 1 {
		return append(branch, full)
	}
	head := parts[0]
	for _, item := range branch {
		if m, ok := item.(map[string]any); ok {
			if sub, found := m[head]; found {
				m[head] = nestInto(sub.([]any), parts[1:], full)
				return branch
			}
		}
	}
	return append(branch, map[string]any{head: nestInto([]any{}, parts[1:], full)})
}
