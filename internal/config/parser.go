package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	accenterrors "github.com/alexisbeaulieu97/accentgen/pkg/errors"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFor picks the syntax from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Load reads a configuration file, merges it over the defaults, resolves a
// relative theme root and output directory against the file's directory, and
// validates the result.
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, accenterrors.NewFileParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, accenterrors.NewFileParseError(path, 0, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		var perr *accenterrors.ParseError
		if errors.As(err, &perr) {
			perr.Input = path
		}
		return nil, err
	}

	dir := filepath.Dir(path)
	if !filepath.IsAbs(cfg.ThemeRoot) {
		cfg.ThemeRoot = filepath.Join(dir, cfg.ThemeRoot)
	}
	if cfg.OutputDir != "" && !filepath.IsAbs(cfg.OutputDir) {
		cfg.OutputDir = filepath.Join(dir, cfg.OutputDir)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data in the given format and merges it over the defaults.
// The result is not validated.
func Parse(data []byte, format Format) (*Config, error) {
	var file Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, accenterrors.NewFileParseError("config", extractLine(err), err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, accenterrors.NewFileParseError("config", extractLine(err), err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	return merge(Default(), &file), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
