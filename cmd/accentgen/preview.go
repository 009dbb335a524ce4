package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

type previewOptions struct {
	color string
	name  string
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the changes a variant would make without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}

			base, err := app.cfg.Palettes.Resolve(opts.color)
			if err != nil {
				return err
			}

			diffs, err := app.gen.Preview(cmd.Context(), opts.name, base)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(diffs) == 0 {
				fmt.Fprintln(out, "No changes.")
				return nil
			}
			for _, d := range diffs {
				fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("== %s: %s", filepath.Base(d.Source), d.Path)))
				for _, w := range d.Warnings {
					fmt.Fprintf(out, "%s %s\n", warnStyle.Render("!"), w)
				}
				fmt.Fprint(out, d.Diff)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.color, "color", "", "Hex color or predefined color name")
	cmd.Flags().StringVar(&opts.name, "name", "", "Variant name")
	cmd.MarkFlagRequired("color") //nolint:errcheck
	cmd.MarkFlagRequired("name")  //nolint:errcheck

	return cmd
}
