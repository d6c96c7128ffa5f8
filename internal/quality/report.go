// SPDX-License-Identifier: AGPL-3.0-or-later
package quality

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/dabighomie/handoff/internal/validate"
)

// Document is one markdown file presented for scoring.
type Document struct {
	Name    string
	Content string
}

// FileScore pairs a document name with its grade.
type FileScore struct {
	File  string
	Score Score
}

// Report is the graded result for a whole session folder.
type Report struct {
	Folder       string
	Files        []FileScore
	FolderIssues []FolderIssue
	Overall      int
}

// Passed reports whether the folder mean reaches the pass threshold.
func (r Report) Passed() bool {
	return r.Overall >= PassThreshold
}

// Analyze grades each document and runs the folder checks. The overall
// score is the rounded arithmetic mean of per-file totals.
func Analyze(folderName string, docs []Document) Report {
	r := Report{Folder: folderName}

	names := make([]string, 0, len(docs))
	sum := 0
	for _, doc := range docs {
		score := ScoreDocument(doc.Content, doc.Name)
		r.Files = append(r.Files, FileScore{File: doc.Name, Score: score})
		names = append(names, doc.Name)
		sum += score.Total
	}
	if len(docs) > 0 {
		r.Overall = int(math.Round(float64(sum) / float64(len(docs))))
	}
	r.FolderIssues = CheckFolder(folderName, names)
	return r
}

// Rating is the rubric tier for a score.
type Rating struct {
	Icon  string
	Label string
}

// RatingFor maps a score to its rubric tier.
func RatingFor(score int) Rating {
	switch {
	case score >= 90:
		return Rating{"***", "Excellent - Production ready"}
	case score >= 80:
		return Rating{"**", "Good - Ready for handoff"}
	case score >= 70:
		return Rating{"*", "Acceptable - Needs improvement"}
	case score >= 60:
		return Rating{"x", "Needs work before handoff"}
	}
	return Rating{"x", "Incomplete - Not ready"}
}

// scoreBar renders a 20-slot progress bar for a 0-100 score.
func scoreBar(score int) string {
	filled := int(math.Round(float64(score) / 5))
	if filled > 20 {
		filled = 20
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	switch {
	case score >= 80:
		return color.GreenString(bar)
	case score >= 70:
		return color.YellowString(bar)
	}
	return color.RedString(bar)
}

// Print writes the human report: per-file scores, folder analysis, and
// the overall verdict. Detailed mode adds improvement hints and
// per-document recommendations.
func (r Report) Print(w io.Writer, detailed bool) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "\n%s\n\n", bold(cyan("Handoff Documentation Quality Report")))
	fmt.Fprintf(w, "%s\n\n", cyan("File Scores:"))

	for _, fs := range r.Files {
		rating := RatingFor(fs.Score.Total)
		fmt.Fprintf(w, "  %3d%% %s %s\n", fs.Score.Total, scoreBar(fs.Score.Total), fs.File)
		fmt.Fprintf(w, "       %s %s\n", rating.Icon, rating.Label)
		if detailed {
			if hints := fs.Score.Breakdown.Hints(); len(hints) > 0 {
				fmt.Fprintf(w, "       %s\n", dim("Improve: "+strings.Join(hints, ", ")))
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.FolderIssues) > 0 {
		fmt.Fprintf(w, "%s\n\n", cyan("Folder Analysis:"))
		for _, issue := range r.FolderIssues {
			fmt.Fprintf(w, "  %s %s\n", issueMarker(issue.Severity), issue.Message)
		}
		fmt.Fprintln(w)
	}

	rating := RatingFor(r.Overall)
	fmt.Fprintln(w, strings.Repeat("━", 50))
	fmt.Fprintf(w, "%s %s\n", bold(fmt.Sprintf("Overall Score: %d%%", r.Overall)), scoreBar(r.Overall))
	fmt.Fprintf(w, "%s %s\n\n", rating.Icon, rating.Label)

	if r.Passed() {
		fmt.Fprintf(w, "%s\n", color.GreenString("Handoff docs meet quality standards"))
	} else {
		fmt.Fprintf(w, "%s\n", color.RedString("Handoff docs need improvement before handoff"))
	}

	if detailed {
		r.printRecommendations(w)
	}
}

func (r Report) printRecommendations(w io.Writer) {
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	printed := false
	for _, fs := range r.Files {
		if fs.Score.Total >= PassThreshold {
			continue
		}
		if !printed {
			fmt.Fprintf(w, "\n%s\n\n", cyan("Recommendations:"))
			printed = true
		}
		fmt.Fprintf(w, "  %s\n", yellow("-> "+fs.File))
		bd := fs.Score.Breakdown
		if bd.Naming < 8 {
			fmt.Fprintln(w, "    * Rename to numeric format: NN-SLUG_YYYY-MM-DD.md")
		}
		if bd.Structure < 10 {
			fmt.Fprintln(w, "    * Add more sections (##), tables, or bullet lists")
		}
		if bd.Completeness < 14 {
			fmt.Fprintln(w, "    * Add more substantive content (target 2000+ characters)")
		}
		if bd.Actionability < 8 {
			fmt.Fprintln(w, "    * Add agent actions (EXECUTE, READ FIRST), execution order, code blocks")
		}
		if bd.CrossRefs < 5 {
			fmt.Fprintln(w, "    * Reference other handoff docs by filename")
		}
		if bd.Metadata < 6 {
			fmt.Fprintln(w, "    * Add date, session context, and status info")
		}
		if bd.Investigation < 5 {
			fmt.Fprintln(w, "    * Include specific data (counts, file paths, concrete findings)")
		}
		fmt.Fprintln(w)
	}
}

func issueMarker(s validate.Severity) string {
	switch s {
	case validate.SeverityError:
		return color.RedString("✗")
	case validate.SeverityWarning:
		return color.YellowString("⚠")
	}
	return color.New(color.Faint).Sprint("→")
}
