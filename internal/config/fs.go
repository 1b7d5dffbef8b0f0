package config

import (
	"os"
	"path/filepath"
	"sort"
)

// DirEntry is one entry of a listed directory.
type DirEntry struct {
	Name  string
	IsDir bool
}

// FileSystem is the filesystem surface the validator needs. Injecting it
// keeps directory-dependent options deterministic and testable with fakes.
type FileSystem interface {
	IsDir(path string) bool
	ReadDir(path string) ([]DirEntry, error)
}

// OSFileSystem is the production FileSystem backed by the os package.
type OSFileSystem struct{}

func (OSFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSFileSystem) ReadDir(path string) ([]DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, DirEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, nil
}

// walkDocs walks root depth-first, visiting the files of each directory in
// sorted-filename order before descending into its subdirectories (also
// sorted). Paths handed to match/collect are relative to root. Unreadable or
// missing directories are skipped silently; auto-population of file lists
// degrades to empty rather than failing the run.
func walkDocs(fsys FileSystem, root string, match func(rel string) bool) []string {
	var out []string
	walkDocsDir(fsys, root, "", match, &out)
	return out
}

func walkDocsDir(fsys FileSystem, root, rel string, match func(rel string) bool, out *[]string) {
	entries, err := fsys.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	var dirs []string
	for _, e := range entries {
		if e.IsDir {
			dirs = append(dirs, e.Name)
			continue
		}
		relPath := filepath.Join(rel, e.Name)
		if match == nil || match(relPath) {
			*out = append(*out, relPath)
		}
	}
	for _, d := range dirs {
		walkDocsDir(fsys, root, filepath.Join(rel, d), match, out)
	}
}
