// SPDX-License-Identifier: AGPL-3.0-or-later
package migrate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Executor applies a migration plan to a session folder. Source and
// target live in the same directory, so renames are true renames, never
// copy-then-delete.
type Executor struct {
	Dir string

	// Logf receives progress lines; nil silences it.
	Logf func(format string, args ...any)
}

func (e *Executor) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

// Execute backs up every rename source into a dated backup directory and
// then performs the renames. Skip and manual actions touch nothing. The
// backup dir is created only when the plan contains at least one rename.
func (e *Executor) Execute(plan []Action, today string) error {
	var renames []Action
	for _, a := range plan {
		if a.Kind == Rename {
			renames = append(renames, a)
		}
	}
	if len(renames) == 0 {
		e.logf("nothing to rename")
		return nil
	}

	backupDir := filepath.Join(e.Dir, ".backup-"+today)
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return fmt.Errorf("creating backup dir: %w", err)
	}

	// Copy-before-mutate: all backups land before the first rename.
	for _, a := range renames {
		src := filepath.Join(e.Dir, a.OldName)
		if err := copyFile(src, filepath.Join(backupDir, a.OldName)); err != nil {
			return fmt.Errorf("backing up %s: %w", a.OldName, err)
		}
	}

	for _, a := range renames {
		src := filepath.Join(e.Dir, a.OldName)
		dst := filepath.Join(e.Dir, a.NewName)
		if _, err := os.Stat(dst); err == nil {
			// Target exists outside the plan; never overwrite it.
			e.logf("manual: %s -> %s (target exists)", a.OldName, a.NewName)
			continue
		}
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("renaming %s: %w", a.OldName, err)
		}
		e.logf("renamed: %s -> %s", a.OldName, a.NewName)
	}
	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
