package variant

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreviewWritesNothing(t *testing.T) {
	t.Parallel()

	root, sources := writeThemeRoot(t)
	gen := NewGenerator(Options{Sources: sources}, nil)

	diffs, err := gen.Preview(context.Background(), "coral", "#ff7f50")
	require.NoError(t, err)
	require.Len(t, diffs, 8)

	first := diffs[0]
	require.Equal(t, sources[0], first.Source)
	require.Equal(t, DefaultLayout.GTK4, first.Path)
	require.Contains(t, first.Diff, "--- Tahoe-Dark/gtk-4.0/gtk.css\n+++ Tahoe-Dark-Coral/gtk-4.0/gtk.css\n")
	require.Contains(t, first.Diff, "+  --accent-bg-color: #ff7f50;\n")

	index := diffs[3]
	require.Equal(t, DefaultLayout.Metadata, index.Path)
	require.Contains(t, index.Diff, "-Name=Tahoe-Dark\n+Name=Tahoe-Dark-Coral\n")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestPreviewSkipsMissingFiles(t *testing.T) {
	t.Parallel()

	_, sources := writeThemeRoot(t)
	require.NoError(t, os.Remove(filepath.Join(sources[0], DefaultLayout.GTK3)))

	diffs, err := NewGenerator(Options{Sources: sources}, nil).Preview(context.Background(), "coral", "#ff7f50")
	require.NoError(t, err)
	require.Len(t, diffs, 7)
}

func TestPreviewRequiresSourceTrees(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "Tahoe-Dark")
	_, err := NewGenerator(Options{Sources: []string{missing}}, nil).Preview(context.Background(), "coral", "#ff7f50")
	require.Error(t, err)
}
