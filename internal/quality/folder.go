// SPDX-License-Identifier: AGPL-3.0-or-later
package quality

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dabighomie/handoff/internal/category"
	"github.com/dabighomie/handoff/internal/naming"
	"github.com/dabighomie/handoff/internal/validate"
)

// requiredSequences is the band a complete handoff must fill.
var requiredSequences = []int{0, 1, 2, 3, 4, 5}

var (
	folderNameRe  = regexp.MustCompile(`^handoff(-[a-z0-9-]+)?$`)
	folderProseRe = regexp.MustCompile(`(?i)^handoff`)
)

// FolderIssue is a folder-level structural finding. These sit beside the
// numeric score; they never change it.
type FolderIssue struct {
	Severity validate.Severity
	Message  string
}

// CheckFolder runs the folder-level checks over a session folder name and
// its markdown file listing.
func CheckFolder(folderName string, files []string) []FolderIssue {
	var issues []FolderIssue
	issues = append(issues, checkFolderNaming(folderName)...)
	issues = append(issues, checkRequiredSequences(files)...)
	issues = append(issues, checkCategoryCoverage(files)...)
	issues = append(issues, checkSequenceGaps(files)...)
	return issues
}

func checkFolderNaming(folderName string) []FolderIssue {
	if folderNameRe.MatchString(folderName) {
		return nil
	}
	if folderProseRe.MatchString(folderName) {
		return []FolderIssue{{
			Severity: validate.SeverityWarning,
			Message:  fmt.Sprintf("folder %q should follow pattern: handoff-{session-slug}", folderName),
		}}
	}
	return []FolderIssue{{
		Severity: validate.SeveritySuggestion,
		Message:  fmt.Sprintf("folder %q is not a standard handoff folder name", folderName),
	}}
}

func sequencesOf(files []string) []int {
	var seqs []int
	for _, f := range files {
		if s := naming.LeadingSequence(f); s >= 0 {
			seqs = append(seqs, s)
		}
	}
	return seqs
}

func checkRequiredSequences(files []string) []FolderIssue {
	present := make(map[int]bool)
	for _, s := range sequencesOf(files) {
		present[s] = true
	}

	var missing []string
	missingZero := false
	for _, req := range requiredSequences {
		if !present[req] {
			missing = append(missing, fmt.Sprintf("%02d", req))
			if req == 0 {
				missingZero = true
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	severity := validate.SeverityWarning
	if missingZero {
		severity = validate.SeverityError
	}
	return []FolderIssue{{
		Severity: severity,
		Message: fmt.Sprintf("missing required sequences: %s (00-05 are required for a complete handoff)",
			strings.Join(missing, ", ")),
	}}
}

func checkCategoryCoverage(files []string) []FolderIssue {
	seqs := sequencesOf(files)
	var uncovered []string
	for _, c := range category.All {
		r := category.RangeOf(c)
		covered := false
		for _, s := range seqs {
			if s >= r.Min && s <= r.Max {
				covered = true
				break
			}
		}
		if !covered {
			uncovered = append(uncovered, r.Label)
		}
	}
	if len(uncovered) == 0 {
		return nil
	}
	return []FolderIssue{{
		Severity: validate.SeveritySuggestion,
		Message:  "missing category coverage: " + strings.Join(uncovered, ", "),
	}}
}

// checkSequenceGaps reports the first hole in the leading slots, not all
// of them.
func checkSequenceGaps(files []string) []FolderIssue {
	seqs := sequencesOf(files)
	if len(seqs) < 2 {
		return nil
	}
	sort.Ints(seqs)

	limit := min(len(seqs), len(requiredSequences))
	for i := 0; i < limit; i++ {
		if seqs[i] != i {
			return []FolderIssue{{
				Severity: validate.SeveritySuggestion,
				Message:  fmt.Sprintf("sequence gap: expected %02d but next is %02d", i, seqs[i]),
			}}
		}
	}
	return nil
}
