package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, 0, ExitCodeOf(nil))
	assert.Equal(t, 1, ExitCodeOf(errors.New("plain")))
	assert.Equal(t, 2, ExitCodeOf(New(2, "usage")))
	assert.Equal(t, 1, ExitCodeOf(New(0, "never zero")))
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(1, "writing default config", cause)

	assert.Equal(t, "writing default config: permission denied", err.Error())
	assert.Equal(t, 1, ExitCodeOf(err))
	assert.ErrorIs(t, err, cause)

	// wrapping survives further fmt wrapping
	outer := fmt.Errorf("init: %w", err)
	assert.Equal(t, 1, ExitCodeOf(outer))

	assert.Equal(t, "bare", Wrap(1, "bare", nil).Error())
}
