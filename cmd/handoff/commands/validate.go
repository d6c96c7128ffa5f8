// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dabighomie/handoff/cmd/handoff/internal/clierr"
	"github.com/dabighomie/handoff/internal/quality"
	"github.com/dabighomie/handoff/internal/session"
)

// NewValidateCommand returns `handoff validate`: score the documents of
// one session folder (or every folder with --all) against the quality
// rubric.
func NewValidateCommand() *cobra.Command {
	var (
		sessionSlug string
		detailed    bool
		all         bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Score handoff documents against the quality rubric",
		RunE: func(cmd *cobra.Command, args []string) error {
			project := projectDir(cmd)
			out := cmd.OutOrStdout()

			var folders []string
			if all {
				found, err := session.FindFolders(session.DocsDir(project))
				if err != nil {
					return err
				}
				if len(found) == 0 {
					return clierr.Newf(1, "no handoff folders under %s", session.DocsDir(project))
				}
				folders = found
			} else {
				if sessionSlug != "" && !session.ValidSlug(sessionSlug) {
					return clierr.Newf(2, "invalid session slug %q: want lowercase kebab-case, 2-50 chars", sessionSlug)
				}
				folders = []string{session.FolderName(sessionSlug)}
			}

			failed := 0
			for i, folder := range folders {
				if i > 0 {
					fmt.Fprintln(out)
				}
				report, err := analyzeFolder(project, folder)
				if err != nil {
					return err
				}
				report.Print(out, detailed)
				if !report.Passed() {
					failed++
				}
			}

			if failed > 0 {
				return clierr.Newf(1, "%d of %d folders below the quality threshold", failed, len(folders))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionSlug, "session", "", "session slug (handoff-<slug>)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show the per-dimension score breakdown")
	cmd.Flags().BoolVar(&all, "all", false, "validate every handoff folder in the project")

	return cmd
}

func analyzeFolder(project, folder string) (quality.Report, error) {
	dir := filepath.Join(session.DocsDir(project), folder)
	files, err := session.ListMarkdown(dir)
	if err != nil {
		return quality.Report{}, err
	}

	docs := make([]quality.Document, 0, len(files))
	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return quality.Report{}, fmt.Errorf("reading %s: %w", name, err)
		}
		docs = append(docs, quality.Document{Name: name, Content: string(content)})
	}

	return quality.Analyze(folder, docs), nil
}
