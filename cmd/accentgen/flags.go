package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

func validateRootFlags(flags *rootFlags) error {
	switch flags.logFormat {
	case logFormatConsole, logFormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q (want %s or %s)", flags.logFormat, logFormatConsole, logFormatJSON)
	}

	if strings.TrimSpace(flags.root) == "" {
		return fmt.Errorf("theme root must not be empty")
	}

	if flags.configPath != "" {
		info, err := os.Stat(flags.configPath)
		if err != nil {
			return fmt.Errorf("config file does not exist: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("config path %s is a directory", flags.configPath)
		}
	}

	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
