// SPDX-License-Identifier: AGPL-3.0-or-later
package migrate

import "github.com/dabighomie/handoff/internal/naming"

// ActionKind is the disposition of a single file in a migration plan.
type ActionKind string

const (
	Rename ActionKind = "rename"
	Skip   ActionKind = "skip"
	Manual ActionKind = "manual"
)

const (
	ReasonNoRule          = "No matching migration rule — review manually"
	ReasonDuplicateTarget = "duplicate target — review manually"
	ReasonCanonical       = "already canonical"
)

// Action is the planned outcome for one file. NewName is set only for
// renames.
type Action struct {
	Kind    ActionKind
	OldName string
	NewName string
	Reason  string
}

// Plan computes the migration plan for a file list using the default rule
// table. The plan is deterministic for a given input list and date, and
// collision-safe: at most one file ever claims a given target name.
func Plan(filenames []string, today string) []Action {
	return PlanWithRules(filenames, DefaultRules(), today)
}

// PlanWithRules computes per-file actions against an explicit rule table.
func PlanWithRules(filenames []string, rules []Rule, today string) []Action {
	actions := make([]Action, 0, len(filenames))
	for _, name := range filenames {
		actions = append(actions, planOne(name, rules, today))
	}
	return dedupeTargets(actions)
}

func planOne(name string, rules []Rule, today string) Action {
	if _, ok := naming.ParseCanonical(name); ok {
		return Action{Kind: Skip, OldName: name, Reason: ReasonCanonical}
	}
	for _, rule := range rules {
		if rule.Pattern.MatchString(name) {
			return Action{
				Kind:    Rename,
				OldName: name,
				NewName: naming.Canonical(rule.TargetSequence, rule.TargetSlug, today),
			}
		}
	}
	return Action{Kind: Manual, OldName: name, Reason: ReasonNoRule}
}

// dedupeTargets walks the plan in order and demotes any rename whose
// target was already claimed by an earlier action to a manual case. A
// flagged collision beats a silent overwrite.
func dedupeTargets(actions []Action) []Action {
	claimed := make(map[string]bool)
	for i, a := range actions {
		if a.Kind != Rename {
			continue
		}
		if claimed[a.NewName] {
			actions[i] = Action{Kind: Manual, OldName: a.OldName, Reason: ReasonDuplicateTarget}
			continue
		}
		claimed[a.NewName] = true
	}
	return actions
}
