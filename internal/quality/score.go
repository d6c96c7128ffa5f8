// SPDX-License-Identifier: AGPL-3.0-or-later

// Package quality grades handoff documents on structural and content
// heuristics. Scoring is a pure function of document text and filename;
// folder-level concerns (required docs, category coverage, sequencing)
// are reported as separate issues beside the numeric mean, never folded
// into it.
package quality

import (
	"regexp"
	"strings"

	"github.com/dabighomie/handoff/internal/naming"
)

// PassThreshold is the folder mean a handoff must reach to pass.
const PassThreshold = 75

// Dimension weights. They sum to 100; each dimension's sub-scores are
// additive and capped at the weight.
const (
	weightNaming        = 10
	weightStructure     = 15
	weightCompleteness  = 20
	weightActionability = 15
	weightCrossRefs     = 10
	weightMetadata      = 10
	weightCoverage      = 10
	weightInvestigation = 10
)

// Breakdown holds the per-dimension sub-scores of one document.
type Breakdown struct {
	Naming        int
	Structure     int
	Completeness  int
	Actionability int
	CrossRefs     int
	Metadata      int
	Coverage      int
	Investigation int
}

// Score is the graded result for one document.
type Score struct {
	Total     int
	Breakdown Breakdown
}

// Strict naming for scoring is the canonical shape with the date
// optional: a fresh doc that has not been dated yet still earns full
// marks here, while validation keeps the date mandatory.
var strictNameRe = regexp.MustCompile(`^\d{2}-[A-Z][A-Z0-9_]*(?:_\d{4}-\d{2}-\d{2})?\.md$`)

// Relaxed naming accepts lowercase slugs and hyphens; the shapes real
// agent output actually produces.
var relaxedNameRe = regexp.MustCompile(`^\d{2}-[A-Za-z][A-Za-z0-9_-]*(?:_\d{4}-\d{2}-\d{2})?\.md$`)

var (
	titleRe        = regexp.MustCompile(`^#\s`)
	sectionRe      = regexp.MustCompile(`(?m)^#{2,3}\s`)
	tableRe        = regexp.MustCompile(`\|.*\|.*\|`)
	bulletListRe   = regexp.MustCompile(`(?m)^[-*]\s`)
	numberedListRe = regexp.MustCompile(`(?m)^\d+\.\s`)

	placeholderRe = regexp.MustCompile(`(?i)(<!-- INVESTIGATE|TODO|TBD|PLACEHOLDER|FILL IN)`)
	placeholderCountRe = regexp.MustCompile(`(?i)(<!-- INVESTIGATE|TODO|TBD|PLACEHOLDER)`)

	agentActionRe    = regexp.MustCompile(`\b(EXECUTE|READ FIRST|REFERENCE|IMPLEMENT|DEPLOY|RUN|VERIFY)\b`)
	executionOrderRe = regexp.MustCompile(`(?i)(execution order|phase \d|step \d|priority|p[0-3])`)
	codeBlockRe      = regexp.MustCompile("(?i)```(bash|sql|typescript|tsx?|jsx?|shell|sh|go)")
	commandRe        = regexp.MustCompile(`\b(npx|npm run|node |git |go |make )`)

	internalRefRe  = regexp.MustCompile("`\\d{2}-[A-Z][A-Z0-9_-]+(_\\d{4}-\\d{2}-\\d{2})?\\.md`")
	markdownLinkRe = regexp.MustCompile(`\[[^\]]*\]\([^)]*\.md\)`)

	dateWordRe = regexp.MustCompile(`(?i)\b(date|updated|created|last|january|february|march|april|may|june|july|august|september|october|november|december)\b`)
	isoDateRe  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	sessionRe  = regexp.MustCompile(`(?i)(session|handoff|agent)`)
	statusRe   = regexp.MustCompile(`(?i)(status|severity|priority|critical|warning|blocked|complete)`)

	specificDataRe    = regexp.MustCompile(`(?i)\d+\s*(duplicates|errors|warnings|tests|pages|routes|components|files|commits)`)
	fileRefRe         = regexp.MustCompile("(?i)`(src|scripts|cmd|internal|docs|pkg)/")
	concreteFindingRe = regexp.MustCompile(`(?i)(found|discovered|identified|detected|audit|analyzed)`)
	genericFillerRe   = regexp.MustCompile(`(?i)(lorem ipsum|example text|sample content)`)
)

// ScoreDocument grades a single document's text against its filename.
func ScoreDocument(content, filename string) Score {
	bd := Breakdown{
		Naming:        scoreNaming(filename),
		Structure:     scoreStructure(content),
		Completeness:  scoreCompleteness(content),
		Actionability: scoreActionability(content),
		CrossRefs:     scoreCrossRefs(content),
		Metadata:      scoreMetadata(content),
		Coverage:      scoreCoverage(filename),
		Investigation: scoreInvestigation(content),
	}
	total := bd.Naming + bd.Structure + bd.Completeness + bd.Actionability +
		bd.CrossRefs + bd.Metadata + bd.Coverage + bd.Investigation
	return Score{Total: total, Breakdown: bd}
}

// scoreNaming has three discrete tiers: full-strictness match, relaxed
// match, no match.
func scoreNaming(filename string) int {
	if strictNameRe.MatchString(filename) {
		return weightNaming
	}
	if relaxedNameRe.MatchString(filename) {
		return 7
	}
	return 2
}

func scoreStructure(content string) int {
	score := 0
	if titleRe.MatchString(content) {
		score += 4
	}
	sections := len(sectionRe.FindAllString(content, -1))
	switch {
	case sections >= 3:
		score += 4
	case sections >= 1:
		score += 2
	}
	if tableRe.MatchString(content) {
		score += 4
	}
	if bulletListRe.MatchString(content) || numberedListRe.MatchString(content) {
		score += 3
	}
	return min(weightStructure, score)
}

// scoreCompleteness tiers on character and non-blank line counts, then
// subtracts a floored penalty for placeholder-heavy docs.
func scoreCompleteness(content string) int {
	chars := len(content)
	lines := 0
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) != "" {
			lines++
		}
	}

	var score int
	switch {
	case chars > 2000 && lines > 40: // deep
		score = 18
	case chars > 500 && lines > 15: // substantive
		score = 14
	case lines > 8:
		score = 8
	default:
		score = 3
	}

	placeholders := len(placeholderCountRe.FindAllString(content, -1))
	switch {
	case placeholders > 5:
		score = max(3, score-5)
	case placeholders > 2:
		score = max(5, score-2)
	}
	return min(weightCompleteness, score)
}

func scoreActionability(content string) int {
	score := 0
	if agentActionRe.MatchString(content) {
		score += 5
	}
	if executionOrderRe.MatchString(content) {
		score += 4
	}
	if codeBlockRe.MatchString(content) {
		score += 3
	}
	if commandRe.MatchString(content) {
		score += 3
	}
	return min(weightActionability, score)
}

// scoreCrossRefs tiers on the count of references to other numbered docs
// plus markdown links.
func scoreCrossRefs(content string) int {
	refs := len(internalRefRe.FindAllString(content, -1)) +
		len(markdownLinkRe.FindAllString(content, -1))
	switch {
	case refs >= 5:
		return weightCrossRefs
	case refs >= 3:
		return 8
	case refs >= 1:
		return 5
	}
	return 0
}

func scoreMetadata(content string) int {
	score := 0
	if dateWordRe.MatchString(content) || isoDateRe.MatchString(content) {
		score += 4
	}
	if sessionRe.MatchString(content) {
		score += 3
	}
	if statusRe.MatchString(content) {
		score += 3
	}
	return min(weightMetadata, score)
}

// scoreCoverage is the file-level proxy only: credit for carrying a
// leading sequence at all. True category coverage is a folder concern.
func scoreCoverage(filename string) int {
	if naming.LeadingSequence(filename) >= 0 {
		return 7
	}
	return 2
}

func scoreInvestigation(content string) int {
	score := 0
	if specificDataRe.MatchString(content) {
		score += 3
	}
	if fileRefRe.MatchString(content) {
		score += 3
	}
	if concreteFindingRe.MatchString(content) {
		score += 2
	}
	if !genericFillerRe.MatchString(content) {
		score += 2
	}
	return min(weightInvestigation, score)
}

// Hints names the weak dimensions of a breakdown, for the detailed
// report's improvement lines.
func (bd Breakdown) Hints() []string {
	var hints []string
	if bd.Naming < 8 {
		hints = append(hints, "naming")
	}
	if bd.Completeness < 14 {
		hints = append(hints, "content depth")
	}
	if bd.Actionability < 8 {
		hints = append(hints, "actionability")
	}
	if bd.CrossRefs < 5 {
		hints = append(hints, "cross-refs")
	}
	if bd.Investigation < 5 {
		hints = append(hints, "investigation evidence")
	}
	return hints
}
