package config

import (
	"git.home.luguber.info/inful/docschema/internal/theme"
)

// DefaultSchema is the option set of the documentation-site builder.
// Declaration order matters: Pass 2 runs top to bottom, so options that read
// post-validated keys (the NumPages booleans reading pages) must come after
// them; NewSchema rejects violations.
func DefaultSchema(fsys FileSystem, reg *theme.Registry) (*Schema, error) {
	return NewSchema(
		Entry{"site_name", &TypeOption{BaseOption: BaseOption{IsRequired: true}, Types: []ValueType{TypeString}}},
		Entry{"pages", NewPages(fsys)},
		Entry{"site_url", &URLOption{}},
		Entry{"repo_url", &RepoURLOption{}},
		Entry{"repo_name", String()},
		Entry{"site_description", String()},
		Entry{"site_author", String()},
		Entry{"site_favicon", String()},
		Entry{"theme", NewTheme(reg, "docbuilder")},
		Entry{"docs_dir", NewDir(fsys, true, "docs")},
		Entry{"site_dir", NewSiteDir(fsys, "site")},
		Entry{"theme_dir", NewThemeDir(fsys, reg)},
		Entry{"copyright", String()},
		Entry{"google_analytics", &TypeOption{Types: []ValueType{TypeList}, Length: 2}},
		Entry{"dev_addr", StringDefault("127.0.0.1:8000")},
		Entry{"use_directory_urls", Bool(true)},
		Entry{"extra_css", NewFileList(fsys, GlobMatcher("**.css"))},
		Entry{"extra_javascript", NewFileList(fsys, GlobMatcher("**.js"))},
		Entry{"extra_templates", NewFileList(fsys, GlobMatcher("**.html"))},
		Entry{"include_search", Bool(false)},
		Entry{"include_404", Bool(false)},
		Entry{"include_sitemap", Bool(true)},
		Entry{"include_nav", NewNumPages(1)},
		Entry{"include_next_prev", NewNumPages(1)},
	)
}
