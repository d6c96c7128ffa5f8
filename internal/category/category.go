// SPDX-License-Identifier: AGPL-3.0-or-later

// Package category maps document sequence numbers to the four fixed
// handoff categories. The mapping is pure range data: context owns 00-02,
// session 03-05, findings 06-11, reference 12-14, and anything at 15 or
// above falls into reference as the custom-doc overflow bucket.
package category

import "fmt"

// Category is one of the four fixed document groupings.
type Category string

const (
	Context   Category = "context"
	Session   Category = "session"
	Findings  Category = "findings"
	Reference Category = "reference"
)

// Range is the closed sequence interval a category owns.
type Range struct {
	Min   int
	Max   int
	Label string
}

// All lists the categories in sequence order.
var All = []Category{Context, Session, Findings, Reference}

var ranges = map[Category]Range{
	Context:   {Min: 0, Max: 2, Label: "Context (00-02)"},
	Session:   {Min: 3, Max: 5, Label: "Session (03-05)"},
	Findings:  {Min: 6, Max: 11, Label: "Findings (06-11)"},
	Reference: {Min: 12, Max: 14, Label: "Reference (12-14)"},
}

func init() {
	if err := checkPartition(); err != nil {
		panic(err)
	}
}

// checkPartition verifies that the declared ranges cover 0-14 contiguously
// with no gaps and no overlaps. Run at package init so broken range data
// cannot ship.
func checkPartition() error {
	next := 0
	for _, c := range All {
		r := ranges[c]
		if r.Min != next {
			return fmt.Errorf("category %s starts at %d, want %d", c, r.Min, next)
		}
		if r.Max < r.Min {
			return fmt.Errorf("category %s has inverted range [%d,%d]", c, r.Min, r.Max)
		}
		next = r.Max + 1
	}
	if next != 15 {
		return fmt.Errorf("category ranges end at %d, want 15", next)
	}
	return nil
}

// ForSequence returns the category owning the given sequence number.
// Sequences of 15 and above map to Reference. Negative sequences are a
// caller error; they also return Reference rather than panicking.
func ForSequence(seq int) Category {
	for _, c := range All {
		r := ranges[c]
		if seq >= r.Min && seq <= r.Max {
			return c
		}
	}
	return Reference
}

// RangeOf returns the declared range and human label for a category.
func RangeOf(c Category) Range {
	return ranges[c]
}

// Parse returns the category named by s, reporting whether s is a
// recognized category value.
func Parse(s string) (Category, bool) {
	for _, c := range All {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
