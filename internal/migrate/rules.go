// SPDX-License-Identifier: AGPL-3.0-or-later

// Package migrate plans and executes the transition of a session folder
// from legacy or ad hoc filenames to the canonical numeric naming.
//
// Planning is pure: the full list of per-file actions is computed and
// logged before anything on disk moves, and every source file is backed
// up before a destructive rename.
package migrate

import "regexp"

// Rule maps a source filename pattern to a canonical target. Rules are
// evaluated in declaration order and the first match wins.
type Rule struct {
	Pattern        *regexp.Regexp
	TargetSequence int
	TargetSlug     string
}

// DefaultRules returns the ordered migration rule table. Legacy-prefixed
// patterns come first, bare-name patterns second, so a prefixed file never
// falls through to a looser bare rule.
func DefaultRules() []Rule {
	return []Rule{
		// Legacy prefixed generation (CO/AR/OP/QA/RF).
		{regexp.MustCompile(`^CO-00-MASTER_INDEX`), 0, "MASTER_INDEX"},
		{regexp.MustCompile(`^CO-01-PROJECT_STATE`), 1, "PROJECT_STATE"},
		{regexp.MustCompile(`^CO-02-CRITICAL_CONTEXT`), 2, "CRITICAL_CONTEXT"},
		{regexp.MustCompile(`^CO-03-TASK_TRACKER`), 3, "TASK_TRACKER"},
		{regexp.MustCompile(`^OP-02-SESSION_LOG`), 4, "SESSION_LOG"},
		{regexp.MustCompile(`^OP-01-DEPLOYMENT_ROADMAP`), 5, "NEXT_STEPS"},
		{regexp.MustCompile(`^OP-04-QUICK_START`), 13, "QUICK_START"},
		{regexp.MustCompile(`^OP-03-SCRIPTS_REFERENCE`), 12, "SCRIPTS_REFERENCE"},
		{regexp.MustCompile(`^AR-01-SYSTEM_ARCHITECTURE`), 6, "SYSTEM_ARCHITECTURE"},
		{regexp.MustCompile(`^AR-0[23]-COMPONENT`), 7, "COMPONENT_MAP"},
		{regexp.MustCompile(`^QA-01-`), 9, "TEST_FRAMEWORK"},
		{regexp.MustCompile(`^QA-02-GAP_ANALYSIS`), 10, "GAP_ANALYSIS"},
		{regexp.MustCompile(`^RF-0[12]-ROUTE_AUDIT`), 8, "ROUTE_AUDIT"},
		{regexp.MustCompile(`^RF-03-AUDIT_PROMPTS`), 11, "AUDIT_PROMPTS"},
		{regexp.MustCompile(`^RF-04-IMPROVEMENTS`), 14, "IMPROVEMENTS"},

		// Bare first-generation names.
		{regexp.MustCompile(`(?i)^\d{2}-master[-_]?(handoff[-_]?)?index`), 0, "MASTER_INDEX"},
		{regexp.MustCompile(`(?i)^master[-_]?(handoff[-_]?)?index`), 0, "MASTER_INDEX"},
		{regexp.MustCompile(`(?i)^(\d{2}-)?project[-_]?state`), 1, "PROJECT_STATE"},
		{regexp.MustCompile(`(?i)^(\d{2}-)?critical[-_]?context`), 2, "CRITICAL_CONTEXT"},
		{regexp.MustCompile(`(?i)^(\d{2}-)?task[-_]?tracker`), 3, "TASK_TRACKER"},
		{regexp.MustCompile(`(?i)^(\d{2}-)?session[-_]?log`), 4, "SESSION_LOG"},
		{regexp.MustCompile(`(?i)^(\d{2}-)?next[-_]?steps`), 5, "NEXT_STEPS"},
	}
}
