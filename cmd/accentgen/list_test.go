package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCommandRendersTable(t *testing.T) {
	out, _, err := executeCommand(newRootCmd(), "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 16)
	require.Contains(t, lines[0], "blue")
	require.Contains(t, lines[0], "#3b82f6")
}

func TestListCommandRendersShades(t *testing.T) {
	out, _, err := executeCommand(newRootCmd(), "list", "--shades")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "HOVER")
	require.Contains(t, out, "#3d87ff")
	require.Contains(t, out, "#295bac")
}

func TestListCommandJSON(t *testing.T) {
	out, _, err := executeCommand(newRootCmd(), "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, 16, payload.Count)
	require.Equal(t, "blue", payload.Colors[0].Name)
	require.Equal(t, "#3575dd", payload.Colors[0].Active)
	require.Equal(t, "rgb(59 130 246 / 20%)", payload.Colors[0].Overlay)
}

func TestListCommandUsesConfigPalettes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accentgen.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[palettes]]\nname = \"coral\"\ncolor = \"#ff7f50\"\n"), 0o600))

	out, _, err := executeCommand(newRootCmd(), "--config", path, "list")
	require.NoError(t, err)
	require.Equal(t, "coral  #ff7f50", strings.TrimSpace(out))
}
