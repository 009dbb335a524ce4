package variant

import (
	"github.com/alexisbeaulieu97/accentgen/internal/metadata"
	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/internal/stylesheet"
)

// Layout holds the paths, relative to a theme tree, of the files that get patched.
type Layout struct {
	GTK4     string `yaml:"gtk4" toml:"gtk4" validate:"omitempty,rel_path"`
	GTK3     string `yaml:"gtk3" toml:"gtk3" validate:"omitempty,rel_path"`
	Shell    string `yaml:"shell" toml:"shell" validate:"omitempty,rel_path"`
	Metadata string `yaml:"metadata" toml:"metadata" validate:"omitempty,rel_path"`
}

// DefaultLayout matches the Tahoe theme trees.
var DefaultLayout = Layout{
	GTK4:     "gtk-4.0/gtk.css",
	GTK3:     "gtk-3.0/gtk.css",
	Shell:    "gnome-shell/gnome-shell.css",
	Metadata: "index.theme",
}

// Stylesheet returns the path of the stylesheet written in dialect d.
func (l Layout) Stylesheet(d stylesheet.Dialect) string {
	switch d {
	case stylesheet.GTK4:
		return l.GTK4
	case stylesheet.GTK3:
		return l.GTK3
	case stylesheet.Shell:
		return l.Shell
	}
	return ""
}

// Paths lists every patched path, stylesheets first.
func (l Layout) Paths() []string {
	return []string{l.GTK4, l.GTK3, l.Shell, l.Metadata}
}

// target is one file rewrite within a tree.
type target struct {
	rel   string
	apply func(content string) (stylesheet.Result, error)
}

// targets lists the rewrites for a tree whose theme name is treeName.
func (g *Generator) targets(p palette.Palette, treeName string) []target {
	out := make([]target, 0, len(stylesheet.Dialects)+1)
	for _, d := range stylesheet.Dialects {
		d := d
		rel := g.opts.Layout.Stylesheet(d)
		if rel == "" {
			continue
		}
		out = append(out, target{
			rel: rel,
			apply: func(content string) (stylesheet.Result, error) {
				return g.injector.Inject(d, content, p)
			},
		})
	}

	if g.opts.Layout.Metadata != "" {
		keys := g.opts.MetadataKeys
		out = append(out, target{
			rel: g.opts.Layout.Metadata,
			apply: func(content string) (stylesheet.Result, error) {
				patched, changed := metadata.Rewrite(content, treeName, keys)
				return stylesheet.Result{Content: patched, Changed: changed}, nil
			},
		})
	}
	return out
}
