package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderName(t *testing.T) {
	assert.Equal(t, "handoff", FolderName(""))
	assert.Equal(t, "handoff-checkout-refactor", FolderName("checkout-refactor"))
}

func TestFolderPath(t *testing.T) {
	got := FolderPath("/proj", "dedup")
	assert.Equal(t, filepath.Join("/proj", "docs", "handoff-dedup"), got)
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("checkout-refactor"))
	assert.False(t, ValidSlug("Checkout"))
	assert.False(t, ValidSlug("x"))
}

func TestListMarkdown(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"02-B.md", "00-A.md", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.md"), 0o755))

	files, err := ListMarkdown(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"00-A.md", "02-B.md"}, files)
}

func TestListMarkdown_MissingDir(t *testing.T) {
	files, err := ListMarkdown(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFolders(t *testing.T) {
	docs := t.TempDir()
	for _, name := range []string{"handoff", "handoff-dedup", "assets"} {
		require.NoError(t, os.Mkdir(filepath.Join(docs, name), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(docs, "handoff-file.md"), []byte("x"), 0o644))

	folders, err := FindFolders(docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"handoff", "handoff-dedup"}, folders)
}
