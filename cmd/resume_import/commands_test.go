package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jane.txt", janeDoe)

	stdout, _, err := runCLI(t, "", "lines", path, "--sections")
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	assert.Equal(t, "   0   Jane Doe", lines[0])
	assert.Equal(t, "   2 H Experience", lines[2])
	assert.Equal(t, "   6 * • Shipped V2 of the platform", lines[6])
	assert.Contains(t, stdout, "experience line 2")
	assert.Contains(t, stdout, "education  not found")
}

func TestLinesCommand_RequiresFile(t *testing.T) {
	_, _, err := runCLI(t, "", "lines")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	src := writeFile(t, dir, "jane.txt", janeDoe)

	_, _, err := runCLI(t, "", "parse", src, "--out", outDir)
	require.NoError(t, err)

	good := filepath.Join(outDir, "jane.resume.json")
	bad := writeFile(t, dir, "bad.resume.json", `{"profile": {}}`)

	stdout, _, err := runCLI(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ok   "+good)

	stdout, _, err = runCLI(t, "", "validate", good, bad)
	require.Error(t, err)
	assert.Equal(t, "1 of 2 files failed validation", err.Error())
	assert.Contains(t, stdout, "FAIL "+bad)
}

func TestServeCommand_InvalidPort(t *testing.T) {
	_, _, err := runCLI(t, "", "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.json", `{"concurrency": 2, "port": 9000}`)
	t.Setenv("RESUME_IMPORT_PORT", "9100")

	resetFlags(t)
	configPath = cfgPath
	verbose = true
	defer resetFlags(t)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.Equal(t, 9100, cfg.Port)
	assert.True(t, cfg.Verbose)
	_, statErr := os.Stat(cfgPath)
	assert.NoError(t, statErr)
}
