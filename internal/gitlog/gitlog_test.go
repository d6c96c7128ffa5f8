// SPDX-License-Identifier: AGPL-3.0-or-later

package gitlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentCommits_NotARepo(t *testing.T) {
	commits := RecentCommits(context.Background(), t.TempDir(), 5)
	assert.Nil(t, commits)
}

func TestRecentCommits_ZeroCount(t *testing.T) {
	assert.Nil(t, RecentCommits(context.Background(), t.TempDir(), 0))
}
