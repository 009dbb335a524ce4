package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/internal/tui/components"
	"github.com/alexisbeaulieu97/accentgen/internal/variant"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func swatch(w io.Writer, hex string) string {
	if !isTerminal(w) {
		return ""
	}
	return components.Swatch(hex)
}

func printVariant(w io.Writer, res *variant.Result) {
	fmt.Fprintf(w, "%s %s %s\n", okStyle.Render("✓"), headingStyle.Render(res.Identity.Canonical), mutedStyle.Render(res.Palette.Base))
	for _, shade := range res.Palette.Shades() {
		fmt.Fprintf(w, "  %-7s %s %s\n", shade.Name, shade.Value, swatch(w, shade.Value))
	}
	for _, tree := range res.Trees {
		fmt.Fprintf(w, "  → %s (%d patched", tree.Destination, len(tree.Patched))
		if len(tree.Skipped) > 0 {
			fmt.Fprintf(w, ", %d skipped", len(tree.Skipped))
		}
		fmt.Fprintln(w, ")")
		for _, warning := range tree.Warnings {
			fmt.Fprintf(w, "    %s %s\n", warnStyle.Render("!"), warning)
		}
	}
}

func printBatchSummary(w io.Writer, report *variant.BatchReport, total int) {
	fmt.Fprintf(w, "\n%s %d/%d variants created\n", headingStyle.Render("Summary:"), len(report.Results), total)
	if !report.Failed() {
		return
	}
	fmt.Fprintln(w, failStyle.Render("Failures:"))
	for _, err := range report.Failures {
		fmt.Fprintf(w, "  ✗ %v\n", err)
	}
}

// writeTable renders the palette table, with the derived shades when shades is set.
func writeTable(w io.Writer, table palette.Table, shades bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if shades {
		fmt.Fprintln(tw, "  NAME\tBASE\tHOVER\tACTIVE\tLIGHT\tDARK\t")
	}

	for _, entry := range table {
		if !shades {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", entry.Name, entry.Color, swatch(w, entry.Color))
			continue
		}
		p, err := palette.Build(entry.Color)
		if err != nil {
			return fmt.Errorf("palette %s: %w", entry.Name, err)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n", entry.Name, p.Base, p.Hover, p.Active, p.Light, p.Dark, swatch(w, p.Base))
	}
	return tw.Flush()
}
