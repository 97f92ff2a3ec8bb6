package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrNopReturnsNopForNil(t *testing.T) {
	t.Parallel()

	logger := OrNop(nil)
	require.NotNil(t, logger)

	// Must be callable without panicking.
	logger.Debug("debug %d", 1)
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
}

func TestOrNopKeepsNonNilLogger(t *testing.T) {
	t.Parallel()

	var typedNil *FileLogger
	assert.True(t, IsNil(typedNil), "typed nil pointer should count as nil")

	nop := Nop()
	assert.Equal(t, nop, OrNop(nop))
}

func TestSanitizeLineMasksSensitivePairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"password pair",
			"attempt rejected password=hunter2 score=1",
			"attempt rejected password=" + Placeholder + " score=1",
		},
		{
			"quoted secret",
			`config loaded "secret": "abc123"`,
			`config loaded "secret": ` + Placeholder + `"`,
		},
		{
			"api key",
			"api_key: sk-abcdef",
			"api_key: " + Placeholder,
		},
		{
			"clean line untouched",
			"session finished attempts=3 rating=Medium",
			"session finished attempts=3 rating=Medium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLine(tt.in))
		})
	}
}

func TestFileLoggerWritesRedactedLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	logger.Info("starting session %s", "session-123")
	logger.Warn("retry declined password=topsecret")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "session-123")
	assert.Contains(t, content, Placeholder)
	assert.NotContains(t, content, "topsecret")
}

func TestFileLoggerAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "debug.log")

	first, err := NewFileLogger(path)
	require.NoError(t, err)
	first.Info("first run")
	require.NoError(t, first.Close())

	second, err := NewFileLogger(path)
	require.NoError(t, err)
	second.Info("second run")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "first run")
	assert.Contains(t, content, "second run")
	assert.Equal(t, 2, strings.Count(content, "\n"))
}
