// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands wires the handoff CLI surface: scaffolding, document
// generation, naming and quality validation, and legacy migration.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dabighomie/handoff/internal/version"
)

// NewRootCmd constructs the handoff root Cobra command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "handoff",
		Short:         "handoff - documentation scaffolding for multi-agent project handoffs",
		Long:          "handoff scaffolds, validates, and migrates the structured document sets that let one coding agent pick up where another left off.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringP("project", "p", ".", "project root directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the handoff version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	})

	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewValidateNamingCommand())
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewTagIndexCommand())

	return cmd
}

func projectDir(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("project")
	if err != nil || dir == "" {
		return "."
	}
	return dir
}
