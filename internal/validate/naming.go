// SPDX-License-Identifier: AGPL-3.0-or-later
package validate

import (
	"fmt"
	"sort"

	"github.com/dabighomie/handoff/internal/category"
	"github.com/dabighomie/handoff/internal/frontmatter"
	"github.com/dabighomie/handoff/internal/naming"
)

// RequiredDoc is a (sequence, slug) pair every complete session must have.
type RequiredDoc struct {
	Sequence int
	Slug     string
}

// RequiredDocs is the fixed required set: the full 00-05 context and
// session band.
var RequiredDocs = []RequiredDoc{
	{0, "MASTER_INDEX"},
	{1, "PROJECT_STATE"},
	{2, "CRITICAL_CONTEXT"},
	{3, "TASK_TRACKER"},
	{4, "SESSION_LOG"},
	{5, "NEXT_STEPS"},
}

// requiredBandMax is the top of the contiguous required sequence band.
const requiredBandMax = 5

// Naming validates a session folder's markdown file listing. Checks run
// in a fixed order and accumulate into one issue list; a file failing one
// check does not stop the others or the rest of the batch.
func Naming(filenames []string) Result {
	if len(filenames) == 0 {
		return newResult([]Issue{{
			Severity: SeverityError,
			Rule:     "no-docs",
			Message:  "no markdown files found to validate",
		}})
	}

	var issues []Issue
	var files []naming.File

	for _, name := range filenames {
		f, ok := naming.ParseCanonical(name)
		if !ok {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     "filename-format",
				Message:  "does not match NN-SLUG_YYYY-MM-DD.md",
				File:     name,
			})
			continue
		}
		if !naming.IsValidISODate(f.Date) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     "invalid-date",
				Message:  fmt.Sprintf("date %q is not a real calendar date", f.Date),
				File:     name,
			})
		}
		// Re-validated independently of the grammar so a relaxed grammar
		// would still catch bad slugs.
		if !naming.IsValidSlug(f.Slug) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     "invalid-slug",
				Message:  fmt.Sprintf("slug %q is not uppercase snake case", f.Slug),
				File:     name,
			})
		}
		files = append(files, f)
	}

	issues = append(issues, checkDuplicates(files)...)

	missing := missingRequired(files)
	issues = append(issues, checkGaps(files, missing)...)
	for _, doc := range missing {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Rule:     "required-doc",
			Message: fmt.Sprintf("missing required document %s",
				naming.Canonical(doc.Sequence, doc.Slug, "YYYY-MM-DD")),
		})
	}

	return newResult(issues)
}

func checkDuplicates(files []naming.File) []Issue {
	var issues []Issue
	seen := make(map[int]bool)
	for _, f := range files {
		if seen[f.Sequence] {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Rule:     "duplicate-sequence",
				Message:  fmt.Sprintf("sequence %02d is used more than once", f.Sequence),
				File:     naming.Canonical(f.Sequence, f.Slug, f.Date),
			})
			continue
		}
		seen[f.Sequence] = true
	}
	return issues
}

// checkGaps warns on holes between consecutive present sequences inside
// the required band. Holes already reported as missing required documents
// are not double-reported.
func checkGaps(files []naming.File, missing []RequiredDoc) []Issue {
	missingSeq := make(map[int]bool, len(missing))
	for _, doc := range missing {
		missingSeq[doc.Sequence] = true
	}

	var band []int
	seen := make(map[int]bool)
	for _, f := range files {
		if f.Sequence <= requiredBandMax && !seen[f.Sequence] {
			band = append(band, f.Sequence)
			seen[f.Sequence] = true
		}
	}
	sort.Ints(band)

	var issues []Issue
	for i := 1; i < len(band); i++ {
		if band[i]-band[i-1] <= 1 {
			continue
		}
		covered := true
		for s := band[i-1] + 1; s < band[i]; s++ {
			if !missingSeq[s] {
				covered = false
				break
			}
		}
		if covered {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Rule:     "sequence-gap",
			Message:  fmt.Sprintf("gap between %02d and %02d in the required band", band[i-1], band[i]),
		})
	}
	return issues
}

func missingRequired(files []naming.File) []RequiredDoc {
	present := make(map[RequiredDoc]bool)
	for _, f := range files {
		present[RequiredDoc{f.Sequence, f.Slug}] = true
	}
	var missing []RequiredDoc
	for _, doc := range RequiredDocs {
		if !present[doc] {
			missing = append(missing, doc)
		}
	}
	return missing
}

// Frontmatter flags documents whose frontmatter disagrees with itself or
// with the tag grammar. The codec never corrects these; callers decide
// which side wins.
func Frontmatter(filename, content string) []Issue {
	fm, _ := frontmatter.Parse(content)
	if fm == nil {
		return nil
	}
	var issues []Issue
	if fm.Sequence >= 0 && category.ForSequence(fm.Sequence) != fm.Category {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Rule:     "frontmatter-category-mismatch",
			Message: fmt.Sprintf("category %q disagrees with sequence %d (implies %q)",
				fm.Category, fm.Sequence, category.ForSequence(fm.Sequence)),
			File: filename,
		})
	}
	for _, tag := range fm.Tags {
		if !naming.IsValidTag(tag) {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Rule:     "invalid-tag",
				Message:  fmt.Sprintf("tag %q is not a valid tag slug", tag),
				File:     filename,
			})
		}
	}
	return issues
}
