// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dabighomie/handoff/cmd/handoff/internal/clierr"
	"github.com/dabighomie/handoff/internal/migrate"
	"github.com/dabighomie/handoff/internal/naming"
	"github.com/dabighomie/handoff/internal/session"
)

// NewMigrateCommand returns `handoff migrate`: rename legacy documents
// to canonical names, backing everything up first. With --dry-run only
// the plan is printed.
func NewMigrateCommand() *cobra.Command {
	var (
		sessionSlug string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Rename legacy handoff documents to the canonical convention",
		RunE: func(cmd *cobra.Command, args []string) error {
			project := projectDir(cmd)
			out := cmd.OutOrStdout()

			if sessionSlug != "" && !session.ValidSlug(sessionSlug) {
				return clierr.Newf(2, "invalid session slug %q: want lowercase kebab-case, 2-50 chars", sessionSlug)
			}

			dir := session.FolderPath(project, sessionSlug)
			files, err := session.ListMarkdown(dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintf(out, "nothing to migrate in %s\n", dir)
				return nil
			}

			today := naming.TodayISO()
			plan := migrate.Plan(files, today)

			renames, manual := 0, 0
			for _, action := range plan {
				switch action.Kind {
				case migrate.Rename:
					renames++
					fmt.Fprintf(out, "  %s %s -> %s\n", color.GreenString("rename"), action.OldName, action.NewName)
				case migrate.Skip:
					fmt.Fprintf(out, "  skip   %s (%s)\n", action.OldName, action.Reason)
				case migrate.Manual:
					manual++
					fmt.Fprintf(out, "  %s %s (%s)\n", color.YellowString("manual"), action.OldName, action.Reason)
				}
			}
			fmt.Fprintf(out, "\n%d renames, %d manual, %d total\n", renames, manual, len(plan))

			if dryRun || renames == 0 {
				return nil
			}

			exec := &migrate.Executor{
				Dir: dir,
				Logf: func(format string, args ...any) {
					fmt.Fprintf(out, format+"\n", args...)
				},
			}
			if err := exec.Execute(plan, today); err != nil {
				return err
			}
			fmt.Fprintf(out, "migration complete; backups in .backup-%s/\n", today)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionSlug, "session", "", "session slug (handoff-<slug>)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the plan without touching files")

	return cmd
}
