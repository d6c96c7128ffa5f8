// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dabighomie/handoff/cmd/handoff/internal/clierr"
	"github.com/dabighomie/handoff/internal/config"
	"github.com/dabighomie/handoff/internal/docgen"
	"github.com/dabighomie/handoff/internal/gates"
	"github.com/dabighomie/handoff/internal/gitlog"
	"github.com/dabighomie/handoff/internal/naming"
	"github.com/dabighomie/handoff/internal/session"
)

const recentCommitCount = 10

// NewGenerateCommand returns `handoff generate`: run the configured
// quality gates and regenerate the project-state snapshot for a session.
func NewGenerateCommand() *cobra.Command {
	var sessionSlug string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run quality gates and regenerate the project-state document",
		RunE: func(cmd *cobra.Command, args []string) error {
			project := projectDir(cmd)
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			if sessionSlug != "" && !session.ValidSlug(sessionSlug) {
				return clierr.Newf(2, "invalid session slug %q: want lowercase kebab-case, 2-50 chars", sessionSlug)
			}

			dir := session.FolderPath(project, sessionSlug)
			docs, err := session.ListMarkdown(dir)
			if err != nil {
				return err
			}
			if docs == nil {
				return clierr.Newf(1, "no session folder at %s; run `handoff init` first", dir)
			}

			cfg, err := config.Load(config.Path(project))
			if err != nil {
				return clierr.Wrap(1, "loading gate config", err)
			}

			results := gates.NewRunner(project).RunAll(ctx, cfg)
			for _, res := range results {
				if res.Passed {
					fmt.Fprintf(out, "%s gate %s passed\n", color.GreenString("ok"), res.Name)
				} else {
					fmt.Fprintf(out, "%s gate %s failed (%d errors)\n", color.RedString("!!"), res.Name, res.ErrorCount)
				}
			}

			today := naming.TodayISO()
			content := docgen.RenderProjectState(docgen.StateInput{
				Project:   filepath.Base(absOrSelf(project)),
				Session:   session.FolderName(sessionSlug),
				Generated: today,
				Gates:     results,
				Commits:   gitlog.RecentCommits(ctx, project, recentCommitCount),
				Docs:      docs,
			})

			target := statePath(dir, docs, today)
			if err := docgen.AtomicWrite(target, []byte(content)); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nwrote %s\n", target)

			if !gates.AllRequiredPassed(results) {
				return clierr.New(1, "required quality gates failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionSlug, "session", "", "session slug (handoff-<slug>)")

	return cmd
}

// statePath picks the project-state file to overwrite. An existing
// sequence-01 document keeps its name and date; otherwise a fresh
// canonical name is minted for today.
func statePath(dir string, docs []string, today string) string {
	for _, name := range docs {
		if naming.LeadingSequence(name) == 1 && strings.Contains(name, "PROJECT_STATE") {
			return filepath.Join(dir, name)
		}
	}
	return filepath.Join(dir, naming.Canonical(1, "PROJECT_STATE", today))
}
