package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	accenterrors "github.com/alexisbeaulieu97/accentgen/pkg/errors"
)

func TestNoArgumentsPrintsUsageAndTable(t *testing.T) {
	out, _, err := executeCommand(newRootCmd())
	require.NoError(t, err)
	require.Contains(t, out, "Usage examples:")
	require.Contains(t, out, "accentgen --all")
	require.Contains(t, out, "Available predefined colors:")
	require.Contains(t, out, "blue")
	require.Contains(t, out, "#64748b")
}

func TestInsufficientArgumentsPrintsUsage(t *testing.T) {
	root := writeThemeRoot(t)
	out, _, err := executeCommand(newRootCmd(), "--root", root, "--color", "#ff6b6b")
	require.NoError(t, err)
	require.Contains(t, out, "Usage examples:")

	entries, err := os.ReadDir(filepath.Join(root, "gtk"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestSingleVariant(t *testing.T) {
	root := writeThemeRoot(t)

	out, _, err := executeCommand(newRootCmd(), "--root", root, "--color", "#ff6b6b", "--name", "coral")
	require.NoError(t, err)
	require.Contains(t, out, "Coral")
	require.Contains(t, out, "#ff6b6b")

	for _, name := range []string{"Tahoe-Dark-Coral", "Tahoe-Light-Coral"} {
		dir := filepath.Join(root, "gtk", name)
		index := readFile(t, filepath.Join(dir, "index.theme"))
		require.Contains(t, index, "Name="+name+"\n")
		require.Contains(t, index, "GtkTheme="+name+"\n")
		require.Contains(t, readFile(t, filepath.Join(dir, "gtk-4.0", "gtk.css")), "--accent-bg-color: #ff6b6b;")
		require.Contains(t, readFile(t, filepath.Join(dir, "gnome-shell", "gnome-shell.css")), "color: #ff6b6b;")
	}
}

func TestSingleVariantResolvesColorName(t *testing.T) {
	root := writeThemeRoot(t)

	_, _, err := executeCommand(newRootCmd(), "--root", root, "--color", "blue", "--name", "ocean")
	require.NoError(t, err)

	gtk3 := readFile(t, filepath.Join(root, "gtk", "Tahoe-Dark-Ocean", "gtk-3.0", "gtk.css"))
	require.Contains(t, gtk3, "@define-color accent_color #3b82f6;")
}

func TestSingleVariantRejectsMalformedColor(t *testing.T) {
	root := writeThemeRoot(t)

	_, _, err := executeCommand(newRootCmd(), "--root", root, "--color", "#ff6b6", "--name", "coral")
	var parseErr *accenterrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.NoDirExists(t, filepath.Join(root, "gtk", "Tahoe-Dark-Coral"))
}

func TestSingleVariantHonorsOutputFlag(t *testing.T) {
	root := writeThemeRoot(t)
	output := t.TempDir()

	_, _, err := executeCommand(newRootCmd(), "--root", root, "--output", output, "--color", "#ff6b6b", "--name", "coral")
	require.NoError(t, err)
	require.DirExists(t, filepath.Join(output, "Tahoe-Dark-Coral"))
	require.NoDirExists(t, filepath.Join(root, "gtk", "Tahoe-Dark-Coral"))
}

func TestBatchGeneratesEveryColor(t *testing.T) {
	root := writeThemeRoot(t)

	out, _, err := executeCommand(newRootCmd(), "--root", root, "--all")
	require.NoError(t, err)
	require.Contains(t, out, "[16/16]")
	require.Contains(t, out, "16/16 variants created")

	entries, err := os.ReadDir(filepath.Join(root, "gtk"))
	require.NoError(t, err)
	require.Len(t, entries, 2+32)

	seen := make(map[string]bool)
	for _, e := range entries {
		require.False(t, seen[e.Name()])
		seen[e.Name()] = true
	}
	require.True(t, seen["Tahoe-Light-Emerald"])
}

func TestBatchReportsFailures(t *testing.T) {
	root := writeThemeRoot(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "gtk", "Tahoe-Light")))

	out, _, err := executeCommand(newRootCmd(), "--root", root, "--all")
	require.Error(t, err)
	require.Equal(t, "16 of 16 variants failed", err.Error())
	require.Contains(t, out, "Failures:")
	require.Equal(t, 16, strings.Count(out, "  ✗ variant "))
	require.Contains(t, out, "variant blue failed")

	entries, err := os.ReadDir(filepath.Join(root, "gtk"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the source tree remains")
}

func TestJSONLogFormat(t *testing.T) {
	root := writeThemeRoot(t)

	_, logs, err := executeCommand(newRootCmd(), "--root", root, "--log-format", "json", "--color", "#ff6b6b", "--name", "coral")
	require.NoError(t, err)
	require.Contains(t, logs, `"message":"tree patched"`)
	require.Contains(t, logs, `"variant":"Coral"`)
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := executeCommand(newRootCmd(), "--log-format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported log format")
}
