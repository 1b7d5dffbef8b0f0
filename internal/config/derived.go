package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docschema/internal/theme"
)

// RepoURLOption extends URLOption: after all values are validated it derives
// the repository display name from the URL host when the user did not supply
// one. Writes the repo_name key.
type RepoURLOption struct {
	URLOption
}

func (o *RepoURLOption) PostValidate(run *Run, key string) error {
	cfg := run.Config()
	raw, _ := cfg.Get(key)
	if raw == nil {
		return nil
	}
	if name, _ := cfg.Get("repo_name"); name != nil {
		return nil
	}
	parsed, err := url.Parse(raw.(string))
	if err != nil {
		return nil
	}
	host := strings.ToLower(parsed.Host)
	switch host {
	case "github.com":
		cfg.Set("repo_name", "GitHub")
	case "bitbucket.org":
		cfg.Set("repo_name", "Bitbucket")
	default:
		label, _, _ := strings.Cut(host, ".")
		cfg.Set("repo_name", cases.Title(language.English).String(label))
	}
	return nil
}

// SiteDirOption extends DirOption with a containment check between the docs
// source tree and the output tree. The comparison is a literal string-prefix
// check on the absolute paths (kept as-is for compatibility, not
// path-segment aware); either direction of nesting fails the run, since a
// build copying between nested trees would recurse into its own output.
// Reads the docs_dir key.
type SiteDirOption struct {
	DirOption
}

// NewSiteDir constructs the output-directory option.
func NewSiteDir(fsys FileSystem, def string) *SiteDirOption {
	return &SiteDirOption{DirOption: *NewDir(fsys, false, def)}
}

func (o *SiteDirOption) PostValidate(run *Run, key string) error {
	cfg := run.Config()
	docsDir := cfg.GetString("docs_dir")
	siteDir := cfg.GetString(key)
	if docsDir == "" || siteDir == "" {
		return nil
	}
	if strings.HasPrefix(docsDir, siteDir) {
		return newValidationError("the docs_dir %q cannot be within the site_dir %q", docsDir, siteDir)
	}
	if strings.HasPrefix(siteDir, docsDir) {
		return newValidationError("the site_dir %q cannot be within the docs_dir %q", siteDir, docsDir)
	}
	return nil
}

// ThemeDirOption extends DirOption: Pass 2 replaces the single optional
// user override with the ordered template search path. Reads the theme key
// and the source layers; rewrites its own key to a []string and writes the
// templates_dir key as a side effect.
//
// Assembly policy: the built-in theme directory for the chosen theme comes
// first unless the user supplied a custom theme_dir without explicitly
// mentioning a theme key in any layer, in which case the built-in directory
// is dropped entirely. A custom theme_dir always sorts before the built-in
// one so it wins on conflicting filenames. The bundled search assets
// directory is always appended last; earlier entries may override its files
// but it is never omitted.
type ThemeDirOption struct {
	DirOption
	Registry *theme.Registry
}

// NewThemeDir constructs the theme-directory option.
func NewThemeDir(fsys FileSystem, reg *theme.Registry) *ThemeDirOption {
	return &ThemeDirOption{DirOption: *NewDir(fsys, false, ""), Registry: reg}
}

func (o *ThemeDirOption) PostValidate(run *Run, key string) error {
	cfg := run.Config()
	themeInConfig := cfg.LayerMentions("theme")

	dirs := []string{o.Registry.Dir(cfg.GetString("theme"))}
	cfg.Set("templates_dir", o.Registry.TemplatesDir())

	if custom, _ := cfg.Get(key); custom != nil {
		if !themeInConfig {
			dirs = dirs[:0]
		}
		dirs = append([]string{custom.(string)}, dirs...)
	}

	dirs = append(dirs, o.Registry.SearchAssetsDir())
	cfg.Set(key, dirs)
	return nil
}

// ThemeOption validates a theme name against the registry of known themes.
// Retained names pass silently; recognized but deprecated names pass with a
// removal warning.
type ThemeOption struct {
	BaseOption
	Registry *theme.Registry
}

// NewTheme constructs the theme-name option with the given default.
func NewTheme(reg *theme.Registry, def string) *ThemeOption {
	return &ThemeOption{BaseOption: BaseOption{DefaultValue: def}, Registry: reg}
}

func (o *ThemeOption) Check(run *Run, value any) (any, error) {
	name, ok := value.(string)
	if !ok {
		return nil, newValidationError("expected a theme name string but received %s", describeType(value))
	}
	if !o.Registry.Contains(name) {
		return nil, newValidationError("unrecognised theme %q", name)
	}
	if !o.Registry.Retained(name) {
		run.Warn("theme", fmt.Sprintf("the theme %q is deprecated and will be removed in an upcoming release", name))
	}
	return name, nil
}
