package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	accenterrors "github.com/alexisbeaulieu97/accentgen/pkg/errors"
)

func TestCopyTreeCopiesNestedFilesAndModes(t *testing.T) {
	src := t.TempDir()
	nested := filepath.Join(src, "gtk-4.0", "assets")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.theme"), []byte("Name=Tahoe\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "check.svg"), []byte("<svg/>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "install.sh"), []byte("#!/bin/sh\n"), 0o755))

	dst := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, CopyTree(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "gtk-4.0", "assets", "check.svg"))
	require.NoError(t, err)
	require.Equal(t, "<svg/>", string(data))

	info, err := os.Stat(filepath.Join(dst, "gtk-4.0", "assets", "check.svg"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	info, err = os.Stat(filepath.Join(dst, "install.sh"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCopyTreeRecreatesSymlinks(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "gtk.css"), []byte("a{}"), 0o644))
	require.NoError(t, os.Symlink("gtk.css", filepath.Join(src, "gtk-dark.css")))

	dst := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, CopyTree(src, dst))

	target, err := os.Readlink(filepath.Join(dst, "gtk-dark.css"))
	require.NoError(t, err)
	require.Equal(t, "gtk.css", target)
}

func TestReplaceTreeRemovesStaleFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "fresh.css"), []byte("new"), 0o644))

	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "stale.css"), []byte("old"), 0o644))

	require.NoError(t, ReplaceTree(src, dst))

	_, err := os.Stat(filepath.Join(dst, "stale.css"))
	require.True(t, errors.Is(err, os.ErrNotExist))
	_, err = os.Stat(filepath.Join(dst, "fresh.css"))
	require.NoError(t, err)
}

func TestReplaceTreeMissingSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out")
	err := ReplaceTree(filepath.Join(t.TempDir(), "absent"), dst)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))

	_, statErr := os.Stat(dst)
	require.True(t, errors.Is(statErr, os.ErrNotExist), "destination must not be created")
}

func TestReadTextMissingFile(t *testing.T) {
	_, _, err := ReadText(filepath.Join(t.TempDir(), "gtk.css"))
	require.ErrorIs(t, err, accenterrors.ErrFileNotFound)
}

func TestWriteAtomicKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gtk.css")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o640))

	content, perm, err := ReadText(path)
	require.NoError(t, err)
	require.Equal(t, "old", content)

	require.NoError(t, WriteAtomic(path, []byte("new"), perm))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteAtomicFlushesFullContentIntoNewDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gtk-4.0", "gtk.css")
	payload := make([]byte, 256*1024)
	for i := range payload {
		payload[i] = byte('a' + i%26)
	}

	require.NoError(t, WriteAtomic(path, payload, 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, payload, data)
}
