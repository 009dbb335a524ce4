package stylesheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
)

const (
	accentBgMarker = "  --accent-bg-color:"
	accentFgValue  = "white"
	toggleBgName   = "--active-toggle-bg-color"
)

var (
	accentBgDecl   = regexp.MustCompile(`  --accent-bg-color:\s*[^;]+;`)
	accentFgDecl   = regexp.MustCompile(`  --accent-fg-color:\s*[^;]+;`)
	toggleBgDecl   = regexp.MustCompile(`\s*--active-toggle-bg-color:\s*[^;]+;`)
	toggleFgAnchor = regexp.MustCompile(`--active-toggle-fg-color\s*:`)
	legacyToggleBg = regexp.MustCompile(`\s*--active-toggle-bg-color:\s*rgb\(255 255 255 / 20%\);`)
)

// InjectGTK4 declares the accent custom properties in the first :root block.
// Files without a :root block are returned unchanged.
func InjectGTK4(content string, p palette.Palette) Result {
	if _, ok := findRootBlock(content); !ok {
		return newResult(content, content, nil)
	}

	// Dropping the superseded translucent-white default first keeps it from
	// matching a freshly inserted overlay when the base color is white.
	cleaned := legacyToggleBg.ReplaceAllString(content, "")
	blk, ok := findRootBlock(cleaned)
	if !ok {
		return newResult(content, content, nil)
	}

	patched, warnings := patchRootBlock(cleaned[blk.Start:blk.End], blk.Open-blk.Start, p)
	return newResult(content, cleaned[:blk.Start]+patched+cleaned[blk.End:], warnings)
}

func patchRootBlock(root string, brace int, p palette.Palette) (string, []string) {
	toggleDecl := fmt.Sprintf("%s: %s;", toggleBgName, p.Overlay)

	if !strings.Contains(root, accentBgMarker) {
		insert := fmt.Sprintf("\n  --accent-bg-color: %s;\n  --accent-fg-color: %s;\n  %s", p.Base, accentFgValue, toggleDecl)
		return root[:brace+1] + insert + root[brace+1:], nil
	}

	root = accentBgDecl.ReplaceAllLiteralString(root, fmt.Sprintf("  --accent-bg-color: %s;", p.Base))
	root = accentFgDecl.ReplaceAllLiteralString(root, fmt.Sprintf("  --accent-fg-color: %s;", accentFgValue))
	root = toggleBgDecl.ReplaceAllLiteralString(root, "")

	loc := toggleFgAnchor.FindStringIndex(root)
	if loc == nil {
		warning := fmt.Sprintf("no --active-toggle-fg-color declaration in :root; %s placed after the opening brace", toggleBgName)
		return root[:brace+1] + "\n  " + toggleDecl + root[brace+1:], []string{warning}
	}

	anchor := loc[0]
	lineStart := strings.LastIndexByte(root[:anchor], '\n') + 1
	indent := root[lineStart:anchor]
	if strings.TrimSpace(indent) != "" {
		// The anchor shares its line with other declarations.
		return root[:anchor] + toggleDecl + " " + root[anchor:], nil
	}
	return root[:lineStart] + indent + toggleDecl + "\n" + root[lineStart:], nil
}
