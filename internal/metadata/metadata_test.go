package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const indexTheme = `[Desktop Entry]
Type=X-GNOME-Metatheme
Name=Tahoe-Dark
Comment=A macOS Tahoe like theme

[X-GNOME-Metatheme]
GtkTheme=Tahoe-Dark
MetacityTheme=Tahoe-Dark
IconTheme=Tahoe
Name=Trailing-Duplicate
`

func TestRewriteUpdatesFirstMatchOnly(t *testing.T) {
	t.Parallel()

	got, changed := Rewrite(indexTheme, "Tahoe-Dark-Coral", DefaultKeys)
	require.True(t, changed)
	require.Equal(t, `[Desktop Entry]
Type=X-GNOME-Metatheme
Name=Tahoe-Dark-Coral
Comment=A macOS Tahoe like theme

[X-GNOME-Metatheme]
GtkTheme=Tahoe-Dark-Coral
MetacityTheme=Tahoe-Dark
IconTheme=Tahoe
Name=Trailing-Duplicate
`, got)
}

func TestRewriteMatchesAtLineStartOnly(t *testing.T) {
	t.Parallel()

	input := "GenericName=Theme\n  Name=indented\n"
	got, changed := Rewrite(input, "X", DefaultKeys)
	require.False(t, changed)
	require.Equal(t, input, got)
}

func TestRewriteIsIdempotent(t *testing.T) {
	t.Parallel()

	once, _ := Rewrite(indexTheme, "Tahoe-Light-Sky", DefaultKeys)
	twice, changed := Rewrite(once, "Tahoe-Light-Sky", DefaultKeys)
	require.False(t, changed)
	require.Equal(t, once, twice)
}

func TestRewritePreservesLineEndings(t *testing.T) {
	t.Parallel()

	got, changed := Rewrite("Name=Old\r\nGtkTheme=Old", "New", DefaultKeys)
	require.True(t, changed)
	require.Equal(t, "Name=New\r\nGtkTheme=New", got)
}

func TestRewriteEmptyValue(t *testing.T) {
	t.Parallel()

	got, changed := Rewrite("Name=\n", "Tahoe-Dark-Red", []string{"Name"})
	require.True(t, changed)
	require.Equal(t, "Name=Tahoe-Dark-Red\n", got)
}
