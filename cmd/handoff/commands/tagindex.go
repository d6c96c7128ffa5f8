// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dabighomie/handoff/internal/docgen"
	"github.com/dabighomie/handoff/internal/naming"
	"github.com/dabighomie/handoff/internal/session"
)

// NewTagIndexCommand returns `handoff tag-index`: build the
// cross-session tag index from document frontmatter.
func NewTagIndexCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "tag-index",
		Short: "Build a cross-session index of frontmatter tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			project := projectDir(cmd)
			out := cmd.OutOrStdout()

			index, err := docgen.CollectTags(project)
			if err != nil {
				return err
			}

			content := docgen.RenderTagIndex(index, naming.TodayISO())
			if !write {
				fmt.Fprint(out, content)
				return nil
			}

			target := filepath.Join(session.DocsDir(project), "TAG_INDEX.md")
			if err := docgen.AtomicWrite(target, []byte(content)); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s (%d tags)\n", target, len(index))
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "write docs/TAG_INDEX.md instead of printing")

	return cmd
}
