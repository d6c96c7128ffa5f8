// SPDX-License-Identifier: AGPL-3.0-or-later
package docgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dabighomie/handoff/internal/gates"
	"github.com/dabighomie/handoff/internal/naming"
)

// StateInput carries everything the project-state snapshot renders.
type StateInput struct {
	Project   string
	Session   string // session folder name, e.g. "handoff-auth-rework"
	Generated string // ISO date
	Gates     []gates.Result
	Commits   []string // one-line summaries, newest first
	Docs      []string // canonical filenames present in the session folder
}

// RenderProjectState renders the 01-PROJECT_STATE document body:
// gate outcomes, recent history, and the current document inventory.
func RenderProjectState(in StateInput) string {
	var b strings.Builder

	b.WriteString(Header(1, "Project State"))
	b.WriteString(fmt.Sprintf("**Project:** %s\n", in.Project))
	b.WriteString(fmt.Sprintf("**Session:** %s\n", in.Session))
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", in.Generated))

	b.WriteString(Header(2, "Quality Gates"))
	if len(in.Gates) == 0 {
		b.WriteString("No gates configured.\n\n")
	} else {
		rows := make([][]string, 0, len(in.Gates))
		for _, g := range in.Gates {
			status := "PASS"
			if !g.Passed {
				status = fmt.Sprintf("FAIL (%d errors)", g.ErrorCount)
			}
			required := "no"
			if g.Required {
				required = "yes"
			}
			rows = append(rows, []string{g.Name, status, required})
		}
		b.WriteString(Table([]string{"Gate", "Status", "Required"}, rows))
		b.WriteString("\n")
	}

	b.WriteString(Header(2, "Recent Commits"))
	if len(in.Commits) == 0 {
		b.WriteString("No git history available.\n\n")
	} else {
		b.WriteString(List(in.Commits))
		b.WriteString("\n")
	}

	b.WriteString(Header(2, "Documents"))
	if len(in.Docs) == 0 {
		b.WriteString("No documents yet.\n")
	} else {
		docs := append([]string(nil), in.Docs...)
		sort.Strings(docs)
		rows := make([][]string, 0, len(docs))
		for _, name := range docs {
			seq := naming.LeadingSequence(name)
			seqCell := "-"
			if seq >= 0 {
				seqCell = fmt.Sprintf("%02d", seq)
			}
			rows = append(rows, []string{seqCell, name})
		}
		b.WriteString(Table([]string{"Seq", "File"}, rows))
	}

	return b.String()
}
