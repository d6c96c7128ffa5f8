// SPDX-License-Identifier: AGPL-3.0-or-later
package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	info := Parse()
	assert.Equal(t, 3, info.Major)
	assert.Equal(t, 0, info.Minor)
	assert.Equal(t, 0, info.Patch)
}

func TestString(t *testing.T) {
	assert.Equal(t, "handoff@3.0.0 (2026-02-20)", String())
}
