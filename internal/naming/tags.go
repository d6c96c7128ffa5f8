// SPDX-License-Identifier: AGPL-3.0-or-later
package naming

import (
	"regexp"
	"strings"
)

// Tag slugs are lowercase kebab case: alphanumerics with single internal
// hyphens, no leading, trailing, or doubled hyphen.
var tagRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidTag reports whether s is a valid tag slug of 2 to 50 characters.
func IsValidTag(s string) bool {
	if len(s) < 2 || len(s) > 50 {
		return false
	}
	return tagRe.MatchString(s)
}

// ParseTagsCSV splits a comma-separated tag list, trimming whitespace and
// dropping empty entries. Validation is left to the caller.
func ParseTagsCSV(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
