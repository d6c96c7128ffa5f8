package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabighomie/handoff/internal/validate"
)

func fullBand() []string {
	return []string{
		"00-MASTER_INDEX_2026-02-20.md",
		"01-PROJECT_STATE_2026-02-20.md",
		"02-CRITICAL_CONTEXT_2026-02-20.md",
		"03-TASK_TRACKER_2026-02-20.md",
		"04-SESSION_LOG_2026-02-20.md",
		"05-NEXT_STEPS_2026-02-20.md",
	}
}

func TestCheckFolder_CleanFolder(t *testing.T) {
	files := append(fullBand(),
		"06-FINDINGS_2026-02-20.md",
		"12-SCRIPTS_REFERENCE_2026-02-20.md",
	)
	assert.Empty(t, CheckFolder("handoff-checkout", files))
}

func TestCheckFolderNaming(t *testing.T) {
	tests := []struct {
		folder string
		want   validate.Severity // empty means no issue
	}{
		{"handoff", ""},
		{"handoff-checkout-refactor", ""},
		{"Handoff-Stuff", validate.SeverityWarning},
		{"handoffX", validate.SeverityWarning},
		{"random-docs", validate.SeveritySuggestion},
	}
	for _, tt := range tests {
		issues := checkFolderNaming(tt.folder)
		if tt.want == "" {
			assert.Empty(t, issues, tt.folder)
			continue
		}
		require.Len(t, issues, 1, tt.folder)
		assert.Equal(t, tt.want, issues[0].Severity, tt.folder)
	}
}

func TestCheckRequiredSequences(t *testing.T) {
	missingTail := fullBand()[:4] // 00-03 present
	issues := checkRequiredSequences(missingTail)
	require.Len(t, issues, 1)
	assert.Equal(t, validate.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "04, 05")

	// Missing the master index upgrades the severity.
	issues = checkRequiredSequences(fullBand()[1:])
	require.Len(t, issues, 1)
	assert.Equal(t, validate.SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "00")
}

func TestCheckCategoryCoverage(t *testing.T) {
	issues := checkCategoryCoverage(fullBand())
	require.Len(t, issues, 1)
	assert.Equal(t, validate.SeveritySuggestion, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "Findings (06-11)")
	assert.Contains(t, issues[0].Message, "Reference (12-14)")

	covered := append(fullBand(),
		"07-ROUTE_AUDIT_2026-02-20.md",
		"13-QUICK_START_2026-02-20.md",
	)
	assert.Empty(t, checkCategoryCoverage(covered))
}

func TestCheckSequenceGaps(t *testing.T) {
	gapped := []string{
		"00-MASTER_INDEX_2026-02-20.md",
		"01-PROJECT_STATE_2026-02-20.md",
		"03-TASK_TRACKER_2026-02-20.md",
		"04-SESSION_LOG_2026-02-20.md",
	}
	issues := checkSequenceGaps(gapped)
	require.Len(t, issues, 1, "only the first gap is reported")
	assert.Contains(t, issues[0].Message, "expected 02 but next is 03")

	assert.Empty(t, checkSequenceGaps(fullBand()))
	assert.Empty(t, checkSequenceGaps([]string{"00-MASTER_INDEX_2026-02-20.md"}))
}

func TestAnalyze_FolderIssuesDoNotChangeScore(t *testing.T) {
	docs := []Document{
		{Name: "00-MASTER_INDEX_2026-02-20.md", Content: "# Index\n\nok"},
	}
	withIssues := Analyze("weird-folder", docs)
	clean := Analyze("handoff", docs)

	assert.NotEmpty(t, withIssues.FolderIssues)
	assert.Equal(t, clean.Overall, withIssues.Overall)
}
