package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Contains(t, c.Gates, "typecheck")
	assert.Contains(t, c.Gates, "lint")
	assert.Contains(t, c.Gates, "build")
}

func TestValidate_EnabledGateNeedsCommand(t *testing.T) {
	c := Config{Gates: map[string]Gate{
		"lint": {Enabled: true, Command: ""},
	}}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gate lint")
}

func TestValidate_DisabledGateMayBeEmpty(t *testing.T) {
	c := Config{Gates: map[string]Gate{
		"lint": {Enabled: false},
	}}
	assert.NoError(t, c.Validate())
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", FileName)
	in := Config{Gates: map[string]Gate{
		"build": {Enabled: true, Required: true, Command: "go build ./..."},
	}}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"gates":{"lint":{"enabled":true,"command":""}}}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
