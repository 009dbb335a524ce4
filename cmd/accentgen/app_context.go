package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/accentgen/internal/config"
	"github.com/alexisbeaulieu97/accentgen/internal/logger"
	"github.com/alexisbeaulieu97/accentgen/internal/variant"
)

// appContext bundles the services a command works with.
type appContext struct {
	cfg         *config.Config
	log         *logger.Logger
	gen         *variant.Generator
	interactive bool
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}

	interactive := isTerminal(cmd.OutOrStdout())

	level := "info"
	switch {
	case flags.verbose:
		level = "debug"
	case interactive:
		// The progress view owns the terminal; only problems get through.
		level = "warn"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: flags.logFormat == logFormatConsole,
		NoColor:       !isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}

	return &appContext{
		cfg:         cfg,
		log:         log,
		gen:         variant.NewGenerator(cfg.GeneratorOptions(), log),
		interactive: interactive,
	}, nil
}

// loadConfig reads --config when given and applies the flag overrides.
// --root replaces the configured theme root only when set explicitly.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.configPath == "" || cmd.Flags().Changed("root") {
		cfg.ThemeRoot = flags.root
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = flags.output
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
