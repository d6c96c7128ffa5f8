package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestExecute_RenamesWithBackup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "CO-00-MASTER_INDEX_2026-01-01.md", "index body")
	writeFile(t, dir, "ODD-NAME.md", "odd")

	files := []string{"CO-00-MASTER_INDEX_2026-01-01.md", "ODD-NAME.md"}
	plan := Plan(files, today)

	e := &Executor{Dir: dir}
	require.NoError(t, e.Execute(plan, today))

	// Renamed in place.
	renamed, err := os.ReadFile(filepath.Join(dir, "00-MASTER_INDEX_2026-02-20.md"))
	require.NoError(t, err)
	assert.Equal(t, "index body", string(renamed))
	_, err = os.Stat(filepath.Join(dir, "CO-00-MASTER_INDEX_2026-01-01.md"))
	assert.True(t, os.IsNotExist(err))

	// Backup holds the original.
	backup, err := os.ReadFile(filepath.Join(dir, ".backup-"+today, "CO-00-MASTER_INDEX_2026-01-01.md"))
	require.NoError(t, err)
	assert.Equal(t, "index body", string(backup))

	// Manual files are untouched.
	odd, err := os.ReadFile(filepath.Join(dir, "ODD-NAME.md"))
	require.NoError(t, err)
	assert.Equal(t, "odd", string(odd))
}

func TestExecute_NoRenamesNoBackupDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "00-MASTER_INDEX_2026-02-20.md", "fine")

	plan := Plan([]string{"00-MASTER_INDEX_2026-02-20.md"}, today)
	e := &Executor{Dir: dir}
	require.NoError(t, e.Execute(plan, today))

	_, err := os.Stat(filepath.Join(dir, ".backup-"+today))
	assert.True(t, os.IsNotExist(err))
}

func TestExecute_NeverOverwritesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "project-state.md", "new")
	writeFile(t, dir, "01-PROJECT_STATE_2026-02-20.md", "existing")

	// Plan only covers the stray file; the existing canonical target is
	// on disk but not in the plan input.
	plan := Plan([]string{"project-state.md"}, today)
	require.Equal(t, Rename, plan[0].Kind)

	e := &Executor{Dir: dir}
	require.NoError(t, e.Execute(plan, today))

	existing, err := os.ReadFile(filepath.Join(dir, "01-PROJECT_STATE_2026-02-20.md"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(existing), "planned rename must not clobber an unplanned file")

	_, err = os.Stat(filepath.Join(dir, "project-state.md"))
	assert.NoError(t, err, "source left in place for manual review")
}
