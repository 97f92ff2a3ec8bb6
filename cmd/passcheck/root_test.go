package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasExpectedSubcommands(t *testing.T) {
	root := newRootCommand()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["version"])
	assert.True(t, names["config"])
}

func TestRootCommandWithoutTTYShowsHelp(t *testing.T) {
	// Under `go test` stdin/stdout are pipes, so the root command must
	// fall back to help instead of blocking on a password prompt.
	root := newRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(nil)

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "passcheck")
	assert.Contains(t, out.String(), "Usage:")
}

func TestLoadConfigAppliesFlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	logFile := filepath.Join(t.TempDir(), "log.txt")

	cfg, err := loadConfig(&cliOptions{
		logFile: logFile,
		noColor: true,
		debug:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, logFile, cfg.LogFile)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Debug)
}

func TestConfigInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passcheck.yaml")

	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"config", "init", "--config", path})

	require.NoError(t, root.Execute())

	root2 := newRootCommand()
	root2.SetOut(&bytes.Buffer{})
	root2.SetArgs([]string{"config", "init", "--config", path})
	assert.Error(t, root2.Execute(), "second init must refuse to clobber")
}

func TestAppVersionNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, appVersion())
}
