package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Snapshot is the typed view of a validated configuration for the builder
// layer. Pages stays loosely typed: it is a recursive mix of path strings
// and section mappings.
type Snapshot struct {
	SiteName         string   `mapstructure:"site_name"`
	Pages            []any    `mapstructure:"pages"`
	SiteURL          string   `mapstructure:"site_url"`
	RepoURL          string   `mapstructure:"repo_url"`
	RepoName         string   `mapstructure:"repo_name"`
	SiteDescription  string   `mapstructure:"site_description"`
	SiteAuthor       string   `mapstructure:"site_author"`
	SiteFavicon      string   `mapstructure:"site_favicon"`
	Theme            string   `mapstructure:"theme"`
	DocsDir          string   `mapstructure:"docs_dir"`
	SiteDir          string   `mapstructure:"site_dir"`
	ThemeDir         []string `mapstructure:"theme_dir"`
	TemplatesDir     string   `mapstructure:"templates_dir"`
	Copyright        string   `mapstructure:"copyright"`
	GoogleAnalytics  []string `mapstructure:"google_analytics"`
	DevAddr          string   `mapstructure:"dev_addr"`
	UseDirectoryURLs bool     `mapstructure:"use_directory_urls"`
	ExtraCSS         []string `mapstructure:"extra_css"`
	ExtraJavascript  []string `mapstructure:"extra_javascript"`
	ExtraTemplates   []string `mapstructure:"extra_templates"`
	IncludeSearch    bool     `mapstructure:"include_search"`
	Include404       bool     `mapstructure:"include_404"`
	IncludeSitemap   bool     `mapstructure:"include_sitemap"`
	IncludeNav       bool     `mapstructure:"include_nav"`
	IncludeNextPrev  bool     `mapstructure:"include_next_prev"`
}

// Snapshot decodes the validated mapping into its typed form. Call it only
// after a successful Validate; nil (unset optional) values decode to zero
// values.
func (c *Config) Snapshot() (*Snapshot, error) {
	var snap Snapshot
	if err := mapstructure.Decode(c.Map(), &snap); err != nil {
		return nil, fmt.Errorf("decoding validated config: %w", err)
	}
	return &snap, nil
}
