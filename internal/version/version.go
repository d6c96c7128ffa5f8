// SPDX-License-Identifier: AGPL-3.0-or-later

// Package version carries the release identity printed by the CLI and
// stamped into generated documents.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Name is the tool name as it appears in output.
	Name = "handoff"
	// Version is the semantic release version.
	Version = "3.0.0"
	// Date is the release date of Version.
	Date = "2026-02-20"
)

// Info is the parsed form of Version.
type Info struct {
	Major, Minor, Patch int
}

// Parse splits Version into its numeric parts. The constant is under
// our control, so a malformed value is a programming error.
func Parse() Info {
	parts := strings.SplitN(Version, ".", 3)
	if len(parts) != 3 {
		panic(fmt.Sprintf("malformed version %q", Version))
	}
	n := func(s string) int {
		v, err := strconv.Atoi(s)
		if err != nil {
			panic(fmt.Sprintf("malformed version %q", Version))
		}
		return v
	}
	return Info{Major: n(parts[0]), Minor: n(parts[1]), Patch: n(parts[2])}
}

// String renders the full identity, e.g. "handoff@3.0.0 (2026-02-20)".
func String() string {
	return fmt.Sprintf("%s@%s (%s)", Name, Version, Date)
}
