// SPDX-License-Identifier: AGPL-3.0-or-later
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dabighomie/handoff/internal/docgen"
	"github.com/dabighomie/handoff/internal/frontmatter"
	"github.com/dabighomie/handoff/internal/naming"
)

// Vars are the values substituted into template bodies.
type Vars struct {
	Project string
	Session string // session folder name
	Date    string // ISO date
	Tags    []string
}

// Result reports what a scaffold run did.
type Result struct {
	Created []string
	Skipped []string // already present, left untouched
}

// Render produces the full document for one template: default
// frontmatter, a title header, and the body with {{VAR}} placeholders
// substituted.
func Render(t Template, vars Vars) string {
	fm := frontmatter.BuildDefault(t.Sequence, vars.Date, vars.Tags)
	fm.Topic = vars.Session

	body := docgen.Header(1, t.Title) + substitute(t.Body, vars)
	return frontmatter.Serialize(fm) + "\n\n" + strings.TrimRight(body, "\n") + "\n"
}

func substitute(body string, vars Vars) string {
	r := strings.NewReplacer(
		"{{PROJECT}}", vars.Project,
		"{{SESSION}}", vars.Session,
		"{{DATE}}", vars.Date,
	)
	return r.Replace(body)
}

// Scaffold writes the manifest's templates into dir, naming each file
// canonically for its sequence and the run date. Existing files are
// never overwritten. When includeRecommended is false only the required
// set is written.
func Scaffold(dir string, m *Manifest, vars Vars, includeRecommended bool) (Result, error) {
	templates := m.Required()
	if includeRecommended {
		templates = append(templates, m.Recommended()...)
	}

	var res Result
	for _, t := range templates {
		name := naming.Canonical(t.Sequence, t.Slug, vars.Date)
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); err == nil {
			res.Skipped = append(res.Skipped, name)
			continue
		}

		if err := docgen.AtomicWrite(path, []byte(Render(t, vars))); err != nil {
			return res, fmt.Errorf("scaffolding %s: %w", name, err)
		}
		res.Created = append(res.Created, name)
	}
	return res, nil
}
