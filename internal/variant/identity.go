package variant

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identity is a variant's human-facing name and its title-cased form used in
// directory names and theme metadata.
type Identity struct {
	Name      string
	Canonical string
}

// NewIdentity validates name and derives its canonical form.
func NewIdentity(name string) (Identity, error) {
	if err := ValidateName(name); err != nil {
		return Identity{}, err
	}
	return Identity{Name: name, Canonical: Canonical(name)}, nil
}

// Canonical title-cases name. "coral" becomes "Coral".
func Canonical(name string) string {
	// A Caser keeps state between calls and is not safe to share.
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// ValidateName rejects names that cannot safely become part of a directory name.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fmt.Errorf("variant name is empty")
	case trimmed == "." || trimmed == "..":
		return fmt.Errorf("variant name %q is reserved", name)
	case strings.ContainsAny(trimmed, "/\\\x00"):
		return fmt.Errorf("variant name %q contains a path separator", name)
	}
	return nil
}
