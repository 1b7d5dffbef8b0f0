// Package theme holds the registry of built-in theme names and the asset
// paths derived from them.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"git.home.luguber.info/inful/docschema/internal/util/sets"
)

// BuiltinNames are the themes bundled with the tool.
var BuiltinNames = []string{
	"docbuilder",
	"readthedocs",
	"amelia",
	"cerulean",
	"cosmo",
	"cyborg",
	"flatly",
	"journal",
	"readable",
	"simplex",
	"slate",
	"spacelab",
	"united",
	"yeti",
}

// retainedNames are the themes that will keep shipping with the tool. Every
// other recognized name validates with a deprecation warning.
var retainedNames = sets.New("docbuilder", "readthedocs")

// Registry resolves theme names and the directories derived from the shared
// assets base: per-theme template trees, the internal template directory,
// and the bundled search assets.
type Registry struct {
	baseDir string
	names   sets.Set[string]
}

// NewRegistry builds a registry rooted at baseDir holding the given names.
// With no names it holds the builtin set.
func NewRegistry(baseDir string, names ...string) *Registry {
	if len(names) == 0 {
		names = BuiltinNames
	}
	return &Registry{baseDir: baseDir, names: sets.New(names...)}
}

// Discover builds a registry from the theme directories actually present
// under baseDir/themes.
func Discover(baseDir string) (*Registry, error) {
	entries, err := os.ReadDir(filepath.Join(baseDir, "themes"))
	if err != nil {
		return nil, fmt.Errorf("listing themes under %s: %w", baseDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no themes found under %s", filepath.Join(baseDir, "themes"))
	}
	return NewRegistry(baseDir, names...), nil
}

// Contains reports whether name is a known theme.
func (r *Registry) Contains(name string) bool { return r.names.Has(name) }

// Retained reports whether name is in the closed retained set.
func (r *Registry) Retained(name string) bool { return retainedNames.Has(name) }

// Names returns the known theme names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.names))
	for n := range r.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Dir returns the template directory for the named built-in theme.
func (r *Registry) Dir(name string) string {
	return filepath.Join(r.baseDir, "themes", name)
}

// TemplatesDir returns the tool's internal template directory.
func (r *Registry) TemplatesDir() string {
	return filepath.Join(r.baseDir, "templates")
}

// SearchAssetsDir returns the bundled search-feature assets directory. It is
// appended to every assembled template search path so search works out of
// the box, while remaining overridable by higher-priority entries.
func (r *Registry) SearchAssetsDir() string {
	return filepath.Join(r.baseDir, "assets", "search")
}
