package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTag(t *testing.T) {
	valid := []string{
		"checkout", "stripe", "db",
		"checkout-flow", "db-migration", "e2e-tests", "a-b-c",
		"v2", "phase-3", "20x",
		"ab", strings.Repeat("a", 50),
	}
	for _, tag := range valid {
		assert.True(t, IsValidTag(tag), "expected %q to be valid", tag)
	}

	invalid := []string{
		"Checkout", "DB-Migration", // uppercase
		"checkout flow",             // space
		"-checkout", "checkout-",    // leading/trailing hyphen
		"checkout--flow",            // doubled hyphen
		"", "a",                     // too short
		strings.Repeat("a", 51),     // too long
	}
	for _, tag := range invalid {
		assert.False(t, IsValidTag(tag), "expected %q to be invalid", tag)
	}
}

func TestParseTagsCSV(t *testing.T) {
	assert.Equal(t, []string{"checkout", "stripe", "db-migration"},
		ParseTagsCSV("checkout,stripe,db-migration"))
	assert.Equal(t, []string{"checkout", "stripe"},
		ParseTagsCSV(" checkout , stripe "))
	assert.Equal(t, []string{"checkout"}, ParseTagsCSV("checkout"))
	assert.Nil(t, ParseTagsCSV(""))
	assert.Nil(t, ParseTagsCSV(" , "))
}
