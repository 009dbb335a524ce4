package stylesheet

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
)

const (
	prologueBegin  = "/* accentgen:begin */"
	prologueEnd    = "/* accentgen:end */"
	prologueHeader = "/* GTK3 Accent Color Definitions */"

	// legacyPrologueTail is the last rule of a prologue written without sentinels.
	legacyPrologueTail = "button.suggested-action:active {"
)

const gtk3Template = prologueBegin + `
` + prologueHeader + `
@define-color accent_color %[1]s;
@define-color accent_color_hover %[2]s;
@define-color accent_color_active %[3]s;

/* Accent color applications */
switch:checked {
  background-color: @accent_color;
}

scale.horizontal > trough > highlight.top {
  background-color: @accent_color;
}

button.titlebutton.close {
  background-color: @accent_color;
}

button.titlebutton.close:hover {
  background-color: @accent_color_hover;
}

button.suggested-action {
  background-color: @accent_color;
}

button.suggested-action:hover {
  background-color: @accent_color_hover;
}

button.suggested-action:active {
  background-color: @accent_color_active;
}
` + prologueEnd + `
`

// InjectGTK3 prepends the accent color prologue. A prologue left by an earlier
// run is replaced rather than stacked.
func InjectGTK3(content string, p palette.Palette) Result {
	body := stripLegacyPrologues(stripPrologues(content))
	return newResult(content, Prologue(p)+"\n"+body, nil)
}

// Prologue returns the GTK3 prologue for p without any file content.
func Prologue(p palette.Palette) string {
	return fmt.Sprintf(gtk3Template, p.Base, p.Hover, p.Active)
}

func stripPrologues(content string) string {
	for {
		begin := strings.Index(content, prologueBegin)
		if begin < 0 {
			return content
		}
		end := strings.Index(content[begin:], prologueEnd)
		if end < 0 {
			return content
		}
		end += begin + len(prologueEnd)
		content = content[:begin] + trimNewlines(content[end:], 2)
	}
}

// stripLegacyPrologues removes unfenced prologues stacked at the head of the file.
func stripLegacyPrologues(content string) string {
	for strings.HasPrefix(content, prologueHeader) {
		tail := strings.Index(content, legacyPrologueTail)
		if tail < 0 {
			return content
		}
		closing := strings.Index(content[tail:], "}\n")
		if closing < 0 {
			return content
		}
		content = trimNewlines(content[tail+closing+2:], 1)
	}
	return content
}

func trimNewlines(s string, limit int) string {
	for i := 0; i < limit && strings.HasPrefix(s, "\n"); i++ {
		s = s[1:]
	}
	return s
}
