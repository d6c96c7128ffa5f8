// SPDX-License-Identifier: AGPL-3.0-or-later
package docgen

import (
	"testing"

	"github.com/dabighomie/handoff/internal/gates"
	"github.com/dabighomie/handoff/internal/testutil/golden"
)

func TestRenderProjectState_Golden(t *testing.T) {
	out := RenderProjectState(StateInput{
		Project:   "payments",
		Session:   "handoff-auth-rework",
		Generated: "2026-02-20",
		Gates: []gates.Result{
			{Name: "lint", Passed: false, ErrorCount: 2},
			{Name: "typecheck", Passed: true, Required: true},
		},
		Commits: []string{"abc1234 fix token refresh", "def5678 add session scaffolding"},
		Docs:    []string{"00-MASTER_INDEX_2026-02-20.md", "01-PROJECT_STATE_2026-02-20.md"},
	})

	golden.Assert(t, golden.TestdataDir(t), "project_state", out)
}
