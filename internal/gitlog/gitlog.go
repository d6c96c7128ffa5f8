// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gitlog reads recent commit summaries for generated documents.
package gitlog

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// RecentCommits returns up to n one-line commit summaries from the
// repository at dir, newest first. A missing git binary or a directory
// that is not a repository yields nil; callers render "no history".
func RecentCommits(ctx context.Context, dir string, n int) []string {
	if n <= 0 {
		return nil
	}
	cmd := exec.CommandContext(ctx, "git", "log", "--oneline", "-n", strconv.Itoa(n))
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	commits := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			commits = append(commits, line)
		}
	}
	if len(commits) == 0 {
		return nil
	}
	return commits
}
