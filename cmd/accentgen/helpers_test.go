package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const (
	testGTK4 = `:root {
  --window-bg-color: #242424;
  --active-toggle-bg-color: rgb(255 255 255 / 20%);
  --active-toggle-fg-color: #ffffff;
}
`
	testGTK3  = "window {\n  background-color: #242424;\n}\n"
	testShell = "#panel .clock { color: #0091ff; }\n"
)

// writeThemeRoot creates gtk/Tahoe-Dark and gtk/Tahoe-Light under a temp root.
func writeThemeRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range []string{"Tahoe-Dark", "Tahoe-Light"} {
		dir := filepath.Join(root, "gtk", name)
		files := map[string]string{
			"gtk-4.0/gtk.css":             testGTK4,
			"gtk-3.0/gtk.css":             testGTK3,
			"gnome-shell/gnome-shell.css": testShell,
			"index.theme":                 "[Desktop Entry]\nName=" + name + "\n\n[X-GNOME-Metatheme]\nGtkTheme=" + name + "\n",
		}
		for rel, content := range files {
			path := filepath.Join(dir, rel)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		}
	}
	return root
}

func executeCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	cmd.SetArgs(args)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
