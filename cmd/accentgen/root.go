package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	color      string
	name       string
	all        bool
	root       string
	configPath string
	output     string
	verbose    bool
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "accentgen",
		Short: "accentgen derives accent color variants of GTK themes",
		Long: "accentgen copies the dark and light source themes and rewrites their GTK4, GTK3\n" +
			"and GNOME Shell stylesheets and index.theme to carry a new accent color.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateRootFlags(flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.color, "color", "", "Hex color (e.g. '#ff6b6b') or predefined color name (e.g. blue)")
	cmd.Flags().StringVar(&flags.name, "name", "", "Variant name (e.g. coral)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "Generate every predefined color")

	cmd.PersistentFlags().StringVar(&flags.root, "root", ".", "Theme root containing the source trees")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML configuration file")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Directory receiving the variants (default: next to each source)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logFormatConsole, "Log format: console or json")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
