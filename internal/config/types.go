package config

import (
	"path/filepath"

	"github.com/alexisbeaulieu97/accentgen/internal/metadata"
	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/internal/stylesheet"
	"github.com/alexisbeaulieu97/accentgen/internal/variant"
)

// Config represents the accentgen configuration document.
type Config struct {
	// ThemeRoot is the directory holding the source trees. A relative value
	// read from a file is resolved against the file's directory.
	ThemeRoot    string                     `yaml:"theme_root" toml:"theme_root" validate:"required"`
	Sources      []string                   `yaml:"sources" toml:"sources" validate:"required,min=1,unique,dive,required,tree_name"`
	OutputDir    string                     `yaml:"output_dir,omitempty" toml:"output_dir,omitempty"`
	Layout       variant.Layout             `yaml:"layout" toml:"layout"`
	Shell        stylesheet.ShellReferences `yaml:"shell" toml:"shell"`
	MetadataKeys []string                   `yaml:"metadata_keys" toml:"metadata_keys" validate:"required,min=1,dive,metadata_key"`
	Palettes     palette.Table              `yaml:"palettes" toml:"palettes" validate:"required,min=1,unique=Name,dive"`
}

// DefaultSources are the Tahoe source trees relative to the theme root, dark first.
var DefaultSources = []string{"gtk/Tahoe-Dark", "gtk/Tahoe-Light"}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ThemeRoot:    ".",
		Sources:      append([]string(nil), DefaultSources...),
		Layout:       variant.DefaultLayout,
		Shell:        stylesheet.DefaultShellReferences,
		MetadataKeys: append([]string(nil), metadata.DefaultKeys...),
		Palettes:     palette.Builtin(),
	}
}

// SourcePaths returns the source tree directories under ThemeRoot.
func (c *Config) SourcePaths() []string {
	paths := make([]string, 0, len(c.Sources))
	for _, s := range c.Sources {
		if filepath.IsAbs(s) {
			paths = append(paths, filepath.Clean(s))
			continue
		}
		paths = append(paths, filepath.Join(c.ThemeRoot, s))
	}
	return paths
}

// GeneratorOptions converts the configuration into variant generator options.
func (c *Config) GeneratorOptions() variant.Options {
	return variant.Options{
		Sources:      c.SourcePaths(),
		OutputDir:    c.OutputDir,
		Layout:       c.Layout,
		ShellRefs:    c.Shell,
		MetadataKeys: append([]string(nil), c.MetadataKeys...),
	}
}

// merge fills the zero-valued fields of file from def.
func merge(def, file *Config) *Config {
	out := *file
	if out.ThemeRoot == "" {
		out.ThemeRoot = def.ThemeRoot
	}
	if len(out.Sources) == 0 {
		out.Sources = def.Sources
	}
	if out.OutputDir == "" {
		out.OutputDir = def.OutputDir
	}
	if out.Layout.GTK4 == "" {
		out.Layout.GTK4 = def.Layout.GTK4
	}
	if out.Layout.GTK3 == "" {
		out.Layout.GTK3 = def.Layout.GTK3
	}
	if out.Layout.Shell == "" {
		out.Layout.Shell = def.Layout.Shell
	}
	if out.Layout.Metadata == "" {
		out.Layout.Metadata = def.Layout.Metadata
	}
	if out.Shell == (stylesheet.ShellReferences{}) {
		out.Shell = def.Shell
	}
	if len(out.MetadataKeys) == 0 {
		out.MetadataKeys = def.MetadataKeys
	}
	if len(out.Palettes) == 0 {
		out.Palettes = def.Palettes
	}
	return &out
}
