package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accentgen/internal/palette"
)

type listOptions struct {
	jsonOutput bool
	shades     bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the predefined accent colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return renderListJSON(cmd, cfg.Palettes)
			}
			return writeTable(cmd.OutOrStdout(), cfg.Palettes, opts.shades)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.shades, "shades", false, "Include the derived shades")

	return cmd
}

type listJSONColor struct {
	Name    string `json:"name"`
	Base    string `json:"base"`
	Hover   string `json:"hover"`
	Active  string `json:"active"`
	Light   string `json:"light"`
	Dark    string `json:"dark"`
	Overlay string `json:"overlay"`
}

type listJSONPayload struct {
	Count  int             `json:"count"`
	Colors []listJSONColor `json:"colors"`
}

func renderListJSON(cmd *cobra.Command, table palette.Table) error {
	payload := listJSONPayload{Count: len(table), Colors: make([]listJSONColor, 0, len(table))}
	for _, entry := range table {
		p, err := palette.Build(entry.Color)
		if err != nil {
			return err
		}
		payload.Colors = append(payload.Colors, listJSONColor{
			Name:    entry.Name,
			Base:    p.Base,
			Hover:   p.Hover,
			Active:  p.Active,
			Light:   p.Light,
			Dark:    p.Dark,
			Overlay: p.Overlay,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
