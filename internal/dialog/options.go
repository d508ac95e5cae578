// Package dialog describes the file-open dialog the application asks its
// toolkit to show. Filtering itself is left to the toolkit dialog; the
// matcher here mirrors that filter for pickers that only list files.
package dialog

import (
	"path/filepath"
	"strings"

	"vectoriser/internal/config"
	"vectoriser/internal/errors"

	"github.com/gobwas/glob"
)

// Options configures one file-open dialog.
type Options struct {
	FilterName string
	Extensions []string
	Title      string
	StartDir   string
	// Multiple is always false: the application picks a single file.
	Multiple bool
}

// Defaults returns the image picker options.
func Defaults() Options {
	return FromConfig(config.New())
}

// FromConfig builds options from the dialog section of cfg.
func FromConfig(cfg *config.Config) Options {
	exts := make([]string, len(cfg.Dialog.Extensions))
	copy(exts, cfg.Dialog.Extensions)
	return Options{
		FilterName: cfg.Dialog.FilterName,
		Extensions: exts,
		Title:      cfg.Dialog.Title,
		StartDir:   cfg.Dialog.StartDir,
	}
}

// WithStartDir returns a copy of o that opens in dir.
func (o Options) WithStartDir(dir string) Options {
	o.Extensions = append([]string(nil), o.Extensions...)
	o.StartDir = dir
	return o
}

// DotExtensions returns the extensions with a leading dot, as toolkits
// expect them.
func (o Options) DotExtensions() []string {
	out := make([]string, len(o.Extensions))
	for i, ext := range o.Extensions {
		out[i] = "." + ext
	}
	return out
}

// Pattern returns the glob equivalent of the filter, e.g. *.{jpg,png}.
func (o Options) Pattern() string {
	switch len(o.Extensions) {
	case 0:
		return "*"
	case 1:
		return "*." + o.Extensions[0]
	default:
		return "*.{" + strings.Join(o.Extensions, ",") + "}"
	}
}

// Matcher compiles the filter into a matcher for base names.
func (o Options) Matcher() (glob.Glob, error) {
	g, err := glob.Compile(o.Pattern())
	if err != nil {
		return nil, errors.NewConfigError("invalid extension filter", o.Pattern(), errors.InvalidConfig, err)
	}
	return g, nil
}

// Allows reports whether the base name of path passes the filter.
// Matching is case-sensitive. Callers checking many paths should keep
// the result of Matcher instead.
func (o Options) Allows(path string) bool {
	g, err := o.Matcher()
	if err != nil {
		return false
	}
	return g.Match(filepath.Base(path))
}
