package config

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"git.home.luguber.info/inful/docschema/internal/legacy"
	"git.home.luguber.info/inful/docschema/internal/pathutil"
)

// FileListOption validates an optional list of files and, when the user
// supplied nothing, populates it by walking the docs tree and keeping the
// relative paths its matcher accepts. Reads the docs_dir key.
type FileListOption struct {
	BaseOption
	FS    FileSystem
	Match func(rel string) bool
}

// NewFileList constructs a file-list option with the given matcher.
func NewFileList(fsys FileSystem, match func(rel string) bool) *FileListOption {
	return &FileListOption{FS: fsys, Match: match}
}

// GlobMatcher compiles a glob pattern ('/'-separated, ** crosses directories)
// into a file matcher. Panics on an invalid pattern; patterns are schema
// constants.
func GlobMatcher(pattern string) func(rel string) bool {
	g := glob.MustCompile(pattern, '/')
	return func(rel string) bool {
		return g.Match(filepath.ToSlash(rel))
	}
}

func (o *FileListOption) Check(_ *Run, value any) (any, error) {
	if typeOf(value) != TypeList {
		return nil, newValidationError("expected a list but received %s", describeType(value))
	}
	return value, nil
}

func (o *FileListOption) PostValidate(run *Run, key string) error {
	cfg := run.Config()
	if v, _ := cfg.Get(key); v != nil {
		return nil
	}
	cfg.Set(key, walkDocs(o.FS, cfg.GetString("docs_dir"), o.Match))
	return nil
}

// PagesOption is the navigation page list. It accepts the current shape (a
// list mixing plain path strings with nested mappings) unchanged, migrates
// the legacy shape (strings mixed with nested lists) through the
// compatibility shim, and rejects any other mixture. An empty list counts as
// absent so auto-population still runs. Auto-population walks the docs tree
// like FileListOption, moves a root-level index file to the front, and nests
// the result by directory structure. Reads the docs_dir key.
type PagesOption struct {
	FileListOption
}

// NewPages constructs the pages option matching documentation source files.
func NewPages(fsys FileSystem) *PagesOption {
	return &PagesOption{FileListOption: FileListOption{FS: fsys, Match: pathutil.IsDocFile}}
}

func (o *PagesOption) Check(_ *Run, value any) (any, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, newValidationError("expected a list of pages but received %s", describeType(value))
	}
	if len(list) == 0 {
		return nil, nil
	}
	var hasMap, hasList bool
	for _, entry := range list {
		switch entry.(type) {
		case string:
		case map[string]any:
			hasMap = true
		case []any:
			hasList = true
		default:
			return nil, newValidationError("invalid pages configuration: unsupported entry type %s", describeType(entry))
		}
	}
	if hasMap && hasList {
		return nil, newValidationError("invalid pages configuration: mixes nested mappings with legacy nested lists")
	}
	if hasList {
		migrated, err := legacy.PagesCompatShim(list)
		if err != nil {
			return nil, newValidationError("invalid pages configuration: %v", err)
		}
		return migrated, nil
	}
	return list, nil
}

func (o *PagesOption) PostValidate(run *Run, key string) error {
	cfg := run.Config()
	if v, _ := cfg.Get(key); v != nil {
		return nil
	}
	var pages []string
	for _, rel := range walkDocs(o.FS, cfg.GetString("docs_dir"), o.Match) {
		if strings.TrimSuffix(rel, filepath.Ext(rel)) == "index" {
			pages = append([]string{rel}, pages...)
		} else {
			pages = append(pages, rel)
		}
	}
	cfg.Set(key, pathutil.NestPaths(pages))
	return nil
}

// NumPagesOption resolves to true when the finalized page list holds more
// than AtLeast entries. When the page list is absent or not a sized value it
// degrades to false rather than failing. Reads the pages key and must be
// declared after it.
type NumPagesOption struct {
	BaseOption
	AtLeast int
}

// NewNumPages constructs a threshold boolean over the page count.
func NewNumPages(atLeast int) *NumPagesOption {
	return &NumPagesOption{AtLeast: atLeast}
}

func (o *NumPagesOption) PostValidate(run *Run, key string) error {
	cfg := run.Config()
	if v, _ := cfg.Get(key); v != nil {
		return nil
	}
	pages, _ := cfg.Get("pages")
	n, ok := lengthOf(pages)
	if !ok {
		cfg.Set(key, false)
		return nil
	}
	cfg.Set(key, n > o.AtLeast)
	return nil
}

func (o *NumPagesOption) DependsOn() []string { return []string{"pages"} }
