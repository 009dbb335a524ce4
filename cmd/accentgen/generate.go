package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/internal/tui"
	"github.com/alexisbeaulieu97/accentgen/internal/variant"
)

func runGenerate(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	switch {
	case flags.all:
		return runBatch(cmd, app)
	case flags.color != "" && flags.name != "":
		return runSingle(cmd, app, flags.color, flags.name)
	default:
		return printUsage(cmd.OutOrStdout(), app.cfg.Palettes)
	}
}

func runSingle(cmd *cobra.Command, app *appContext, colorArg, name string) error {
	base, err := app.cfg.Palettes.Resolve(colorArg)
	if err != nil {
		return err
	}

	res, err := app.gen.Create(cmd.Context(), name, base)
	if err != nil {
		return err
	}

	printVariant(cmd.OutOrStdout(), res)
	return nil
}

func runBatch(cmd *cobra.Command, app *appContext) error {
	table := app.cfg.Palettes
	out := cmd.OutOrStdout()

	var (
		report *variant.BatchReport
		err    error
	)
	if app.interactive {
		report, err = tui.RunBatch(cmd.Context(), app.gen, "Accent variants", table, tea.WithOutput(out))
	} else {
		report = app.gen.Batch(cmd.Context(), table, &lineObserver{out: out})
	}

	if report != nil {
		printBatchSummary(out, report, len(table))
	}
	if err != nil {
		return err
	}
	if report.Failed() {
		return fmt.Errorf("%d of %d variants failed", len(report.Failures), len(table))
	}
	return nil
}

// lineObserver prints one line per finished variant.
type lineObserver struct {
	out io.Writer
}

func (o *lineObserver) VariantStarted(int, int, palette.Entry) {}

func (o *lineObserver) VariantFinished(index, total int, entry palette.Entry, result *variant.Result, err error) {
	prefix := fmt.Sprintf("[%d/%d]", index+1, total)
	if err != nil {
		fmt.Fprintf(o.out, "%s %s %s: %v\n", prefix, failStyle.Render("✗"), entry.Name, err)
		return
	}
	fmt.Fprintf(o.out, "%s %s %s %s\n", prefix, okStyle.Render("✓"), entry.Name, mutedStyle.Render(result.Palette.Base))
}

func printUsage(w io.Writer, table palette.Table) error {
	fmt.Fprintln(w, "Usage examples:")
	fmt.Fprintln(w, "  accentgen --color '#ff6b6b' --name coral")
	fmt.Fprintln(w, "  accentgen --color blue --name blue")
	fmt.Fprintln(w, "  accentgen --all")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available predefined colors:")
	return writeTable(w, table, false)
}
