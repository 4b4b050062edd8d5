package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "steno.yaml"), []byte(body), 0o644))
}

func TestLoadDefaultsWithNoFile(t *testing.T) {
	dir := t.TempDir()
	cfg, clamped, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, clamped, "defaults should not require clamping")
	assert.Equal(t, HardHistoryBound, cfg.HistoryBound)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "dictionaries.toml", cfg.ManifestPath)
}

func TestLoadHistoryBoundAboveCeilingIsClamped(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "history_bound: 500\n")
	cfg, clamped, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, clamped)
	assert.Equal(t, HardHistoryBound, cfg.HistoryBound)
}

func TestLoadHistoryBoundZeroOrNegativeIsClamped(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		dir := t.TempDir()
		writeConfig(t, dir, "history_bound: "+strconv.Itoa(n)+"\n")
		cfg, clamped, err := Load(dir)
		require.NoError(t, err)
		assert.Truef(t, clamped, "n=%d: expected clamping to be reported", n)
		assert.Equalf(t, HardHistoryBound, cfg.HistoryBound, "n=%d", n)
	}
}

func TestLoadHistoryBoundWithinRangeIsUntouched(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "history_bound: 42\n")
	cfg, clamped, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, clamped, "42 is within range, should not be clamped")
	assert.Equal(t, 42, cfg.HistoryBound)
}

func TestLoadEnvOverridesFileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log_level: info\n")
	t.Setenv("STENO_LOG_LEVEL", "debug")
	cfg, _, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMalformedConfigIsAnError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "history_bound: [this is not a scalar\n")
	_, _, err := Load(dir)
	assert.Error(t, err)
}
