package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
	"github.com/alexisbeaulieu97/accentgen/internal/variant"
	"github.com/alexisbeaulieu97/accentgen/internal/watch"
)

type watchOptions struct {
	color    string
	name     string
	all      bool
	debounce time.Duration
}

func newWatchCmd(flags *rootFlags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate variants whenever a source stylesheet or index.theme changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.all && (opts.color == "" || opts.name == "") {
				return fmt.Errorf("watch needs --all or both --color and --name")
			}

			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}

			table := app.cfg.Palettes
			if !opts.all {
				base, err := table.Resolve(opts.color)
				if err != nil {
					return err
				}
				table = palette.Table{{Name: opts.name, Color: base}}
			}

			return runWatch(cmd, app, table, opts.debounce)
		},
	}

	cmd.Flags().StringVar(&opts.color, "color", "", "Hex color or predefined color name")
	cmd.Flags().StringVar(&opts.name, "name", "", "Variant name")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Regenerate every predefined color")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", watch.DefaultDebounce, "Quiet period before regenerating")

	return cmd
}

func runWatch(cmd *cobra.Command, app *appContext, table palette.Table, debounce time.Duration) error {
	out := cmd.OutOrStdout()
	regenerate := func(ctx context.Context) {
		report := app.gen.Batch(ctx, table, &lineObserver{out: out})
		if report.Failed() {
			printBatchSummary(out, report, len(table))
		}
	}

	regenerate(cmd.Context())

	files := watchedFiles(app.gen.Options())
	w, err := watch.New(files, debounce, app.log)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Watching %d files. Press Ctrl+C to stop.\n", len(files))
	return w.Run(cmd.Context(), func(ctx context.Context, changed []string) {
		app.log.Info("sources changed", "files", changed)
		regenerate(ctx)
	})
}

// watchedFiles lists every patched file of every source tree.
func watchedFiles(opts variant.Options) []string {
	var files []string
	for _, source := range opts.Sources {
		for _, rel := range opts.Layout.Paths() {
			files = append(files, filepath.Join(source, rel))
		}
	}
	return files
}
