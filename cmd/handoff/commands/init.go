// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dabighomie/handoff/cmd/handoff/internal/clierr"
	"github.com/dabighomie/handoff/internal/config"
	"github.com/dabighomie/handoff/internal/naming"
	"github.com/dabighomie/handoff/internal/scaffold"
	"github.com/dabighomie/handoff/internal/session"
)

// NewInitCommand returns `handoff init`: scaffold a session folder and
// write the default gate config if none exists.
func NewInitCommand() *cobra.Command {
	var (
		sessionSlug string
		tagsCSV     string
		all         bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new handoff session folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			project := projectDir(cmd)
			out := cmd.OutOrStdout()

			if sessionSlug != "" && !session.ValidSlug(sessionSlug) {
				return clierr.Newf(2, "invalid session slug %q: want lowercase kebab-case, 2-50 chars", sessionSlug)
			}
			tags := naming.ParseTagsCSV(tagsCSV)
			for _, tag := range tags {
				if !naming.IsValidTag(tag) {
					return clierr.Newf(2, "invalid tag %q: want lowercase kebab-case, 2-50 chars", tag)
				}
			}

			manifest, err := scaffold.LoadManifest()
			if err != nil {
				return err
			}

			folder := session.FolderName(sessionSlug)
			dir := session.FolderPath(project, sessionSlug)
			vars := scaffold.Vars{
				Project: filepath.Base(absOrSelf(project)),
				Session: folder,
				Date:    naming.TodayISO(),
				Tags:    tags,
			}

			res, err := scaffold.Scaffold(dir, manifest, vars, all)
			if err != nil {
				return err
			}

			for _, name := range res.Created {
				fmt.Fprintf(out, "created  %s\n", filepath.Join(folder, name))
			}
			for _, name := range res.Skipped {
				fmt.Fprintf(out, "skipped  %s (exists)\n", filepath.Join(folder, name))
			}

			cfgPath := config.Path(project)
			if _, statErr := os.Stat(cfgPath); os.IsNotExist(statErr) {
				if err := config.Save(cfgPath, config.Default()); err != nil {
					return clierr.Wrap(1, "writing default config", err)
				}
				fmt.Fprintf(out, "created  %s\n", config.FileName)
			}

			fmt.Fprintf(out, "\nSession ready: %s (%d documents)\n", dir, len(res.Created)+len(res.Skipped))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionSlug, "session", "", "session slug appended to the folder name (handoff-<slug>)")
	cmd.Flags().StringVar(&tagsCSV, "tags", "", "comma-separated tags stamped into frontmatter")
	cmd.Flags().BoolVar(&all, "all", false, "scaffold recommended templates too, not just the required set")

	return cmd
}

func absOrSelf(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
