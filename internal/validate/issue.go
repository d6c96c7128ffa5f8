// SPDX-License-Identifier: AGPL-3.0-or-later

// Package validate checks a session folder's file listing against the
// naming convention and accumulates structured issues. Nothing here
// mutates anything: malformed input becomes an error-severity issue, and
// only the calling command layer turns issues into exit codes.
package validate

// Severity grades a validation issue.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Issue is one finding against a file set. File is empty for set-level
// findings.
type Issue struct {
	Severity Severity
	Rule     string
	Message  string
	File     string
}

// Result aggregates issues with the derived score. Score starts at 100
// and loses 15 per error, 5 per warning, and 1 per suggestion, floored
// at zero. Passed means no error-severity issues.
type Result struct {
	Errors      int
	Warnings    int
	Suggestions int
	Issues      []Issue
	Score       int
	Passed      bool
}

// NewResult tallies issues into a scored result.
func NewResult(issues []Issue) Result {
	return newResult(issues)
}

func newResult(issues []Issue) Result {
	r := Result{Issues: issues}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			r.Errors++
		case SeverityWarning:
			r.Warnings++
		case SeveritySuggestion:
			r.Suggestions++
		}
	}
	r.Score = 100 - 15*r.Errors - 5*r.Warnings - 1*r.Suggestions
	if r.Score < 0 {
		r.Score = 0
	}
	r.Passed = r.Errors == 0
	return r
}
