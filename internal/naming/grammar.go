// SPDX-License-Identifier: AGPL-3.0-or-later

// Package naming defines the handoff filename grammar.
//
// Two generations of names exist on disk. The current (canonical) form is
//
//	NN-SLUG_YYYY-MM-DD.md
//
// where NN is a zero-padded 2-digit sequence and SLUG is uppercase snake
// case starting with a letter. The legacy form carries a 2-letter category
// code prefix (CO, AR, OP, QA, RF) before the sequence. A filename matches
// exactly one generation or none; malformed names are reported as no match,
// never as an error.
package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// LegacyPrefixes is the fixed set of 2-letter category codes used by the
// prior naming generation.
var LegacyPrefixes = []string{"CO", "AR", "OP", "QA", "RF"}

var (
	canonicalRe = regexp.MustCompile(`^(\d{2})-([A-Z][A-Z0-9_]*)_(\d{4}-\d{2}-\d{2})\.md$`)
	legacyRe    = regexp.MustCompile(`^(CO|AR|OP|QA|RF)-(\d{2})-([A-Z][A-Z0-9_]*)_(\d{4}-\d{2}-\d{2})\.md$`)
	slugRe      = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	dateShapeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	sequenceRe  = regexp.MustCompile(`^(\d{2})`)
)

// File holds the fields extracted from a well-formed filename.
type File struct {
	Prefix   string // legacy category code; empty for canonical names
	Sequence int
	Slug     string
	Date     string
}

// ParseCanonical matches name against the current-generation grammar.
func ParseCanonical(name string) (File, bool) {
	m := canonicalRe.FindStringSubmatch(name)
	if m == nil {
		return File{}, false
	}
	seq, _ := strconv.Atoi(m[1])
	return File{Sequence: seq, Slug: m[2], Date: m[3]}, true
}

// ParseLegacy matches name against the prefixed legacy grammar.
func ParseLegacy(name string) (File, bool) {
	m := legacyRe.FindStringSubmatch(name)
	if m == nil {
		return File{}, false
	}
	seq, _ := strconv.Atoi(m[2])
	return File{Prefix: m[1], Sequence: seq, Slug: m[3], Date: m[4]}, true
}

// Parse matches name against either generation, canonical first.
func Parse(name string) (File, bool) {
	if f, ok := ParseCanonical(name); ok {
		return f, true
	}
	return ParseLegacy(name)
}

// Canonical renders the current-generation filename for the given fields.
func Canonical(seq int, slug, date string) string {
	return fmt.Sprintf("%02d-%s_%s.md", seq, slug, date)
}

// IsValidSlug reports whether s is an uppercase snake token starting with
// a letter. The grammar already implies this for matched names; it is
// exposed for independent re-validation.
func IsValidSlug(s string) bool {
	return slugRe.MatchString(s)
}

// IsValidISODate reports whether s is a calendar-correct YYYY-MM-DD date.
// Shape alone is not enough: 2026-02-30 has the right shape and is still
// rejected.
func IsValidISODate(s string) bool {
	if !dateShapeRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// TodayISO returns today's date in YYYY-MM-DD form.
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}

// LeadingSequence extracts the 2-digit sequence from the front of a
// filename, for names that carry one even when the rest of the name does
// not parse. Returns -1 when absent.
func LeadingSequence(name string) int {
	m := sequenceRe.FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	seq, _ := strconv.Atoi(m[1])
	return seq
}
