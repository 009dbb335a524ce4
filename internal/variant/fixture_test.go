package variant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	fixtureGTK4 = `:root {
  --window-bg-color: #242424;
  --active-toggle-bg-color: rgb(255 255 255 / 20%);
  --active-toggle-fg-color: #ffffff;
}
`
	fixtureGTK3  = "window {\n  background-color: #242424;\n}\n"
	fixtureShell = ".button:focus {\n  color: #0091ff;\n  background-color: st-lighten(#0091ff, 5%);\n}\n"
)

func fixtureIndex(name string) string {
	return "[Desktop Entry]\nType=X-GNOME-Metatheme\nName=" + name + "\n\n[X-GNOME-Metatheme]\nGtkTheme=" + name + "\n"
}

// writeThemeRoot lays out Tahoe-Dark and Tahoe-Light under a temp directory
// and returns the root together with the two source paths.
func writeThemeRoot(t *testing.T) (string, []string) {
	t.Helper()

	root := t.TempDir()
	var sources []string
	for _, name := range []string{"Tahoe-Dark", "Tahoe-Light"} {
		dir := filepath.Join(root, name)
		writeFile(t, filepath.Join(dir, DefaultLayout.GTK4), fixtureGTK4)
		writeFile(t, filepath.Join(dir, DefaultLayout.GTK3), fixtureGTK3)
		writeFile(t, filepath.Join(dir, DefaultLayout.Shell), fixtureShell)
		writeFile(t, filepath.Join(dir, DefaultLayout.Metadata), fixtureIndex(name))
		writeFile(t, filepath.Join(dir, "assets", "check.svg"), "<svg/>")
		sources = append(sources, dir)
	}
	return root, sources
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
