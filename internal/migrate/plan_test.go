package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "2026-02-20"

func TestPlan_LegacyPrefixed(t *testing.T) {
	plan := Plan([]string{"CO-00-MASTER_INDEX_2026-01-01.md"}, today)
	require.Len(t, plan, 1)
	assert.Equal(t, Rename, plan[0].Kind)
	assert.Equal(t, "00-MASTER_INDEX_2026-02-20.md", plan[0].NewName)
}

func TestPlan_CanonicalShortCircuits(t *testing.T) {
	plan := Plan([]string{"03-TASK_TRACKER_2026-02-20.md"}, today)
	require.Len(t, plan, 1)
	assert.Equal(t, Skip, plan[0].Kind)
}

func TestPlan_NoMatchingRule(t *testing.T) {
	plan := Plan([]string{"ODD-NAME.md"}, today)
	require.Len(t, plan, 1)
	assert.Equal(t, Manual, plan[0].Kind)
	assert.Equal(t, "No matching migration rule — review manually", plan[0].Reason)
}

func TestPlan_BareNames(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00-MASTER-HANDOFF-INDEX.md", "00-MASTER_INDEX_2026-02-20.md"},
		{"project-state.md", "01-PROJECT_STATE_2026-02-20.md"},
		{"CRITICAL_CONTEXT.md", "02-CRITICAL_CONTEXT_2026-02-20.md"},
		{"session_log_notes.md", "04-SESSION_LOG_2026-02-20.md"},
		{"next-steps.md", "05-NEXT_STEPS_2026-02-20.md"},
	}
	for _, tt := range tests {
		plan := Plan([]string{tt.in}, today)
		require.Len(t, plan, 1)
		assert.Equal(t, Rename, plan[0].Kind, tt.in)
		assert.Equal(t, tt.want, plan[0].NewName, tt.in)
	}
}

func TestPlan_PrefixedRulesWinOverBare(t *testing.T) {
	// A legacy prefixed name must resolve through the prefixed table even
	// though a bare rule could also match its tail.
	plan := Plan([]string{"CO-01-PROJECT_STATE_2025-11-01.md"}, today)
	require.Len(t, plan, 1)
	assert.Equal(t, "01-PROJECT_STATE_2026-02-20.md", plan[0].NewName)
}

func TestPlan_DuplicateTargetDemotedToManual(t *testing.T) {
	plan := Plan([]string{
		"CO-00-MASTER_INDEX_2026-01-01.md",
		"00-MASTER-HANDOFF-INDEX.md", // same target
	}, today)
	require.Len(t, plan, 2)
	assert.Equal(t, Rename, plan[0].Kind)
	assert.Equal(t, Manual, plan[1].Kind)
	assert.Equal(t, "duplicate target — review manually", plan[1].Reason)

	renames := 0
	for _, a := range plan {
		if a.Kind == Rename {
			renames++
		}
	}
	assert.Equal(t, 1, renames, "at most one file may claim a target")
}

func TestPlan_Deterministic(t *testing.T) {
	files := []string{
		"CO-00-MASTER_INDEX_2026-01-01.md",
		"00-MASTER-HANDOFF-INDEX.md",
		"ODD-NAME.md",
		"03-TASK_TRACKER_2026-02-20.md",
	}
	first := Plan(files, today)
	second := Plan(files, today)
	assert.Equal(t, first, second)
}

func TestPlan_MixedBatch(t *testing.T) {
	plan := Plan([]string{
		"00-MASTER_INDEX_2026-02-20.md",
		"OP-02-SESSION_LOG_2026-01-05.md",
		"stray-notes.md",
	}, today)
	require.Len(t, plan, 3)
	assert.Equal(t, Skip, plan[0].Kind)
	assert.Equal(t, Rename, plan[1].Kind)
	assert.Equal(t, "04-SESSION_LOG_2026-02-20.md", plan[1].NewName)
	assert.Equal(t, Manual, plan[2].Kind)
}
