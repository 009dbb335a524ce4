package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts for rendering summaries.
type SummaryData struct {
	Total     int
	Created   int
	Failed    int
	Finished  bool
	Cancelled bool
	Failures  []string
}

// Summary renders a textual batch summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Total > 0 {
		lines = append(lines, fmt.Sprintf("Variants: %d/%d created", s.data.Created, s.data.Total))
	}

	switch {
	case s.data.Cancelled:
		lines = append(lines, "Batch cancelled")
	case s.data.Finished && s.data.Total > 0 && s.data.Failed == 0:
		lines = append(lines, "Batch finished successfully")
	case s.data.Finished && s.data.Failed > 0:
		lines = append(lines, fmt.Sprintf("Batch finished with %d failed", s.data.Failed))
	}

	if len(s.data.Failures) > 0 {
		lines = append(lines, "Failures:")
		for _, f := range s.data.Failures {
			lines = append(lines, fmt.Sprintf("  ✗ %s", f))
		}
	}

	return strings.Join(lines, "\n")
}
