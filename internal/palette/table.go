package palette

import (
	"strings"

	"github.com/alexisbeaulieu97/accentgen/internal/color"
)

// Entry pairs a variant name with its base color.
type Entry struct {
	Name  string `yaml:"name" toml:"name" validate:"required,variant_name"`
	Color string `yaml:"color" toml:"color" validate:"required,accent_hex"`
}

// Table is an ordered list of entries.
type Table []Entry

var builtin = Table{
	{Name: "blue", Color: "#3b82f6"},
	{Name: "green", Color: "#10b981"},
	{Name: "purple", Color: "#8b5cf6"},
	{Name: "pink", Color: "#ec4899"},
	{Name: "orange", Color: "#f59e0b"},
	{Name: "red", Color: "#ef4444"},
	{Name: "teal", Color: "#14b8a6"},
	{Name: "indigo", Color: "#6366f1"},
	{Name: "rose", Color: "#f43f5e"},
	{Name: "emerald", Color: "#059669"},
	{Name: "violet", Color: "#7c3aed"},
	{Name: "amber", Color: "#d97706"},
	{Name: "cyan", Color: "#06b6d4"},
	{Name: "lime", Color: "#84cc16"},
	{Name: "sky", Color: "#0ea5e9"},
	{Name: "slate", Color: "#64748b"},
}

// Builtin returns a copy of the sixteen built-in accent colors.
func Builtin() Table {
	return append(Table(nil), builtin...)
}

// Lookup finds an entry by name, ignoring case.
func (t Table) Lookup(name string) (Entry, bool) {
	for _, e := range t {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolve interprets input as a table name first and a hex color otherwise,
// returning the normalized hex.
func (t Table) Resolve(input string) (string, error) {
	if e, ok := t.Lookup(strings.TrimSpace(input)); ok {
		return color.Normalize(e.Color)
	}
	return color.Normalize(input)
}
