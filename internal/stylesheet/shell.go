package stylesheet

import (
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
)

// ShellReferences are the hardcoded colors a GNOME Shell stylesheet ships with.
type ShellReferences struct {
	Accent      string `yaml:"accent" toml:"accent" validate:"required,hexcolor"`
	AccentLight string `yaml:"accent_light" toml:"accent_light" validate:"required,hexcolor"`
}

// DefaultShellReferences matches the stock Tahoe shell stylesheet.
var DefaultShellReferences = ShellReferences{Accent: "#0091ff", AccentLight: "#3484e2"}

// InjectShell replaces the reference colors with the palette. Color transform
// calls taking the accent as first argument, and st-mix calls taking it as
// second, get the base color in that operand only. Text matching none of
// these is left untouched.
func InjectShell(content string, p palette.Palette, refs ShellReferences) Result {
	pattern := shellPattern(refs)
	if pattern == nil {
		return newResult(content, content, nil)
	}
	patched := pattern.ReplaceAllStringFunc(content, func(match string) string {
		lower := strings.ToLower(match)
		switch {
		case strings.HasPrefix(lower, "st-"):
			// The accent literal always closes the match.
			return match[:len(match)-len(refs.Accent)] + p.Base
		case strings.EqualFold(match, refs.Accent):
			return p.Base
		default:
			return p.Hover
		}
	})
	return newResult(content, patched, nil)
}

// shellPattern matches every rewrite site in a single pass so a replacement
// can never be rewritten again by a later rule.
func shellPattern(refs ShellReferences) *regexp.Regexp {
	if refs.Accent == "" || refs.AccentLight == "" {
		return nil
	}
	accent := regexp.QuoteMeta(refs.Accent)
	light := regexp.QuoteMeta(refs.AccentLight)
	return regexp.MustCompile(`(?i)` +
		`st-(?:lighten|darken|transparentize)\(\s*` + accent +
		`|st-mix\([^,()]+,\s*` + accent +
		`|` + accent +
		`|` + light)
}
