// Package stylesheet rewrites theme stylesheet text to carry an accent palette.
//
// Three dialects are supported, each with its own strategy:
//   - GTK4: custom properties inside the first :root block
//   - GTK3: an @define-color prologue with state overrides
//   - Shell: substitution of hardcoded reference colors
//
// Every injector takes raw text and returns patched text; none performs I/O.
package stylesheet

import (
	"fmt"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
)

// Dialect identifies a stylesheet format.
type Dialect int

const (
	GTK4 Dialect = iota
	GTK3
	Shell
)

// Dialects lists every supported dialect in application order.
var Dialects = []Dialect{GTK4, GTK3, Shell}

func (d Dialect) String() string {
	switch d {
	case GTK4:
		return "gtk4"
	case GTK3:
		return "gtk3"
	case Shell:
		return "shell"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

// Result is the outcome of one injection.
type Result struct {
	Content  string
	Changed  bool
	Warnings []string
}

func newResult(original, patched string, warnings []string) Result {
	return Result{Content: patched, Changed: patched != original, Warnings: warnings}
}

// Injector applies the dialect-specific rewrite with fixed reference settings.
type Injector struct {
	ShellRefs ShellReferences
}

// NewInjector returns an Injector using the given shell reference colors.
func NewInjector(refs ShellReferences) Injector {
	return Injector{ShellRefs: refs}
}

// Inject rewrites content for dialect d.
func (in Injector) Inject(d Dialect, content string, p palette.Palette) (Result, error) {
	switch d {
	case GTK4:
		return InjectGTK4(content, p), nil
	case GTK3:
		return InjectGTK3(content, p), nil
	case Shell:
		return InjectShell(content, p, in.ShellRefs), nil
	default:
		return Result{}, fmt.Errorf("unsupported stylesheet dialect %s", d)
	}
}
