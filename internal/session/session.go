// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session locates handoff session folders and their documents.
// A project keeps its handoff docs under docs/, in a default "handoff"
// folder or topic folders named "handoff-<slug>".
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dabighomie/handoff/internal/naming"
)

// DefaultFolder is the session folder used when no slug is given.
const DefaultFolder = "handoff"

// DocsDir returns the docs base directory of a project.
func DocsDir(projectDir string) string {
	return filepath.Join(projectDir, "docs")
}

// FolderName returns the session folder name for a slug. An empty slug
// selects the default folder.
func FolderName(slug string) string {
	if slug == "" {
		return DefaultFolder
	}
	return DefaultFolder + "-" + slug
}

// FolderPath returns the absolute session folder path for a project and
// optional slug.
func FolderPath(projectDir, slug string) string {
	return filepath.Join(DocsDir(projectDir), FolderName(slug))
}

// ValidSlug reports whether a session slug is acceptable; the grammar is
// the tag slug grammar.
func ValidSlug(slug string) bool {
	return naming.IsValidTag(slug)
}

// ListMarkdown returns the sorted markdown filenames directly inside dir.
// A missing directory yields an empty list, not an error.
func ListMarkdown(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}

// FindFolders returns the session folder names under a docs directory,
// sorted. Only directories whose name starts with the default folder
// name count.
func FindFolders(docsDir string) ([]string, error) {
	entries, err := os.ReadDir(docsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", docsDir, err)
	}

	var folders []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), DefaultFolder) {
			folders = append(folders, e.Name())
		}
	}
	sort.Strings(folders)
	return folders, nil
}
