// Package metadata rewrites the Key=value lines of a theme's index.theme file.
package metadata

import (
	"strings"
)

// DefaultKeys are the index.theme keys that carry the theme's name.
var DefaultKeys = []string{"Name", "GtkTheme"}

// Rewrite sets the value of the first line starting with "Key=" for each key
// to name. Later lines with the same key are left as they are. The returned
// flag reports whether anything changed.
func Rewrite(content, name string, keys []string) (string, bool) {
	lines := strings.SplitAfter(content, "\n")
	changed := false

	for _, key := range keys {
		prefix := key + "="
		for i, line := range lines {
			if !strings.HasPrefix(line, prefix) {
				continue
			}
			ending := lineEnding(line)
			replacement := prefix + name + ending
			if replacement != line {
				lines[i] = replacement
				changed = true
			}
			break
		}
	}

	if !changed {
		return content, false
	}
	return strings.Join(lines, ""), true
}

func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}
