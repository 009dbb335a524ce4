package components

import (
	"fmt"
	"strings"
)

// Status is the state of one variant in a batch.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusDone
	StatusFailed
)

// Icon returns the glyph representing s.
func (s Status) Icon() string {
	switch s {
	case StatusDone:
		return successStyle.Render("✓")
	case StatusRunning:
		return runningStyle.Render("⏳")
	case StatusFailed:
		return failedStyle.Render("✗")
	default:
		return mutedStyle.Render("…")
	}
}

// VariantEntry is one row of the variant list.
type VariantEntry struct {
	Name    string
	Color   string
	Status  Status
	Message string
}

// VariantList renders variants with their swatch and status.
type VariantList struct {
	entries []VariantEntry
}

// NewVariantList constructs a variant list component.
func NewVariantList(entries []VariantEntry) VariantList {
	clone := make([]VariantEntry, len(entries))
	copy(clone, entries)
	return VariantList{entries: clone}
}

// Entries returns the ordered entries.
func (l VariantList) Entries() []VariantEntry {
	clone := make([]VariantEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// View renders one line per entry. Pending entries past the first window
// lines are folded into a count.
func (l VariantList) View(window int) string {
	var lines []string
	hidden := 0
	for _, e := range l.entries {
		if window > 0 && len(lines) >= window && e.Status == StatusPending {
			hidden++
			continue
		}
		line := fmt.Sprintf(" %s %s %-10s %s", e.Status.Icon(), Swatch(e.Color), e.Name, mutedStyle.Render(e.Color))
		if strings.TrimSpace(e.Message) != "" {
			line = fmt.Sprintf("%s  %s", line, e.Message)
		}
		lines = append(lines, line)
	}
	if hidden > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf(" … %d more", hidden)))
	}
	return strings.Join(lines, "\n")
}
