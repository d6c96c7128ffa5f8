// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dabighomie/handoff/cmd/handoff/internal/clierr"
	"github.com/dabighomie/handoff/internal/session"
	"github.com/dabighomie/handoff/internal/validate"
)

// NewValidateNamingCommand returns `handoff validate:naming`: check a
// session folder's filenames and frontmatter against the convention.
func NewValidateNamingCommand() *cobra.Command {
	var sessionSlug string

	cmd := &cobra.Command{
		Use:   "validate:naming",
		Short: "Check session filenames and frontmatter against the naming convention",
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

			result := validate.Naming(files)

			issues := result.Issues
			for _, name := range files {
				content, err := os.ReadFile(filepath.Join(dir, name))
				if err != nil {
					return fmt.Errorf("reading %s: %w", name, err)
				}
				issues = append(issues, validate.Frontmatter(name, string(content))...)
			}
			result = validate.NewResult(issues)

			printNamingResult(out, session.FolderName(sessionSlug), result)

			if !result.Passed {
				return clierr.Newf(1, "naming validation failed with %d errors", result.Errors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionSlug, "session", "", "session slug (handoff-<slug>)")

	return cmd
}

func printNamingResult(w io.Writer, folder string, r validate.Result) {
	fmt.Fprintf(w, "Naming check: %s\n\n", folder)

	printSeverity(w, r.Issues, validate.SeverityError, color.New(color.FgRed))
	printSeverity(w, r.Issues, validate.SeverityWarning, color.New(color.FgYellow))
	printSeverity(w, r.Issues, validate.SeveritySuggestion, color.New(color.FgCyan))

	fmt.Fprintf(w, "Score: %d/100 (%d errors, %d warnings, %d suggestions)\n",
		r.Score, r.Errors, r.Warnings, r.Suggestions)
	if r.Passed {
		fmt.Fprintf(w, "%s\n", color.GreenString("PASSED"))
	} else {
		fmt.Fprintf(w, "%s\n", color.RedString("FAILED"))
	}
}

func printSeverity(w io.Writer, issues []validate.Issue, sev validate.Severity, c *color.Color) {
	found := false
	for _, issue := range issues {
		if issue.Severity != sev {
			continue
		}
		found = true
		loc := ""
		if issue.File != "" {
			loc = issue.File + ": "
		}
		fmt.Fprintf(w, "  %s %s%s [%s]\n", c.Sprintf("%-10s", string(sev)), loc, issue.Message, issue.Rule)
	}
	if found {
		fmt.Fprintln(w)
	}
}
