// SPDX-License-Identifier: AGPL-3.0-or-later

// Package frontmatter reads and writes the delimited metadata header at
// the top of a handoff document.
//
// The format is a deliberately tiny flat subset of YAML: `key: value`
// lines between two `---` delimiter lines. Values are either a quoted
// string, a bracketed comma list, a bare integer, or a plain string.
// Nested structures have no meaning here, which is why this is a
// hand-rolled reader and not a general YAML parser: a general parser
// would accept documents this format does not define.
package frontmatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dabighomie/handoff/internal/category"
)

const delimiter = "---"

// Frontmatter is the metadata header of a handoff document.
type Frontmatter struct {
	Tags     []string
	Topic    string // empty means absent
	Created  string
	Sequence int // -1 means unknown
	Category category.Category
}

// BuildDefault constructs a frontmatter value for a document at the given
// sequence, deriving the category from the sequence.
func BuildDefault(seq int, created string, tags []string) *Frontmatter {
	if tags == nil {
		tags = []string{}
	}
	return &Frontmatter{
		Tags:     tags,
		Created:  created,
		Sequence: seq,
		Category: category.ForSequence(seq),
	}
}

// Parse splits content into its frontmatter header and body. When no
// opening delimiter is present the frontmatter is nil and the body is the
// content unchanged; this is the normal case, not an error.
func Parse(content string) (*Frontmatter, string) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != delimiter {
		return nil, content
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		// Unterminated header; treat as plain content.
		return nil, content
	}

	// Duplicate keys: last write wins.
	values := make(map[string]any)
	for _, line := range lines[1:end] {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		values[key] = value
	}

	body := strings.Join(lines[end+1:], "\n")
	body = strings.TrimPrefix(body, "\n")
	return coerce(values), body
}

// parseLine applies the per-line value rules. Blank lines, comment lines,
// and lines without a colon are skipped.
func parseLine(line string) (key string, value any, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", nil, false
	}
	idx := strings.Index(trimmed, ":")
	if idx < 0 {
		return "", nil, false
	}
	key = strings.TrimSpace(trimmed[:idx])
	raw := strings.TrimSpace(trimmed[idx+1:])
	return key, parseValue(raw), true
}

// parseValue interprets a raw value: bracketed list, quoted string, bare
// integer, or plain string, in that order.
func parseValue(raw string) any {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		inner := strings.TrimSpace(raw[1 : len(raw)-1])
		if inner == "" {
			return []string{}
		}
		parts := strings.Split(inner, ",")
		items := make([]string, 0, len(parts))
		for _, p := range parts {
			items = append(items, unquote(strings.TrimSpace(p)))
		}
		return items
	}
	unquoted := unquote(raw)
	if unquoted == raw && raw != "" && isDigits(raw) {
		n, err := strconv.Atoi(raw)
		if err == nil {
			return n
		}
	}
	return unquoted
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// coerce shapes the raw key map into the fixed frontmatter fields,
// applying the documented defaults for absent or mistyped values.
func coerce(values map[string]any) *Frontmatter {
	fm := &Frontmatter{
		Tags:     []string{},
		Sequence: -1,
		Category: category.All[0],
	}
	if tags, ok := values["tags"].([]string); ok {
		fm.Tags = tags
	}
	if topic, ok := values["topic"].(string); ok {
		fm.Topic = topic
	}
	if created, ok := values["created"].(string); ok {
		fm.Created = created
	}
	if seq, ok := values["sequence"].(int); ok {
		fm.Sequence = seq
	}
	if raw, ok := values["category"].(string); ok {
		if c, ok := category.Parse(raw); ok {
			fm.Category = c
		}
	}
	return fm
}

// Serialize renders the textual header form, opening and closing with the
// delimiter line. Topic is emitted only when non-empty.
func Serialize(fm *Frontmatter) string {
	var b strings.Builder
	b.WriteString(delimiter + "\n")
	b.WriteString("tags: [" + strings.Join(fm.Tags, ", ") + "]\n")
	if fm.Topic != "" {
		b.WriteString(fmt.Sprintf("topic: %q\n", fm.Topic))
	}
	b.WriteString(fmt.Sprintf("created: %q\n", fm.Created))
	b.WriteString(fmt.Sprintf("sequence: %d\n", fm.Sequence))
	b.WriteString(fmt.Sprintf("category: %q\n", fm.Category))
	b.WriteString(delimiter)
	return b.String()
}

// Inject replaces any existing header block in content with the freshly
// serialized one, preserving the body verbatim. Content without a header
// gets one prepended. Injecting twice leaves exactly one header block.
func Inject(content string, fm *Frontmatter) string {
	_, body := Parse(content)
	return Serialize(fm) + "\n" + body
}
