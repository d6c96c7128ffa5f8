// SPDX-License-Identifier: AGPL-3.0-or-later
package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dabighomie/handoff/internal/frontmatter"
	"github.com/dabighomie/handoff/internal/session"
)

// TagRef locates one tagged document.
type TagRef struct {
	Folder string // session folder name
	File   string
}

// TagIndex maps tag slug to the documents carrying it.
type TagIndex map[string][]TagRef

// CollectTags scans every session folder under the project's docs
// directory and indexes documents by their frontmatter tags. Documents
// without frontmatter are skipped; unreadable files are skipped too,
// since a partial index is still useful.
func CollectTags(projectDir string) (TagIndex, error) {
	folders, err := session.FindFolders(session.DocsDir(projectDir))
	if err != nil {
		return nil, err
	}

	index := make(TagIndex)
	for _, folder := range folders {
		dir := filepath.Join(session.DocsDir(projectDir), folder)
		files, err := session.ListMarkdown(dir)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			content, err := os.ReadFile(filepath.Join(dir, file))
			if err != nil {
				continue
			}
			fm, _ := frontmatter.Parse(string(content))
			if fm == nil {
				continue
			}
			for _, tag := range fm.Tags {
				index[tag] = append(index[tag], TagRef{Folder: folder, File: file})
			}
		}
	}
	return index, nil
}

// RenderTagIndex renders the cross-session tag index as Markdown. Tags
// are sorted lexicographically and refs by folder then file.
func RenderTagIndex(index TagIndex, generated string) string {
	var b strings.Builder
	b.WriteString(Header(1, "Tag Index"))
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", generated))

	if len(index) == 0 {
		b.WriteString("No tagged documents found.\n")
		return b.String()
	}

	tags := make([]string, 0, len(index))
	for tag := range index {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		refs := append([]TagRef(nil), index[tag]...)
		sort.Slice(refs, func(i, j int) bool {
			if refs[i].Folder != refs[j].Folder {
				return refs[i].Folder < refs[j].Folder
			}
			return refs[i].File < refs[j].File
		})

		b.WriteString(Header(2, tag))
		items := make([]string, 0, len(refs))
		for _, ref := range refs {
			items = append(items, fmt.Sprintf("[%s](%s/%s)", ref.File, ref.Folder, ref.File))
		}
		b.WriteString(List(items))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
