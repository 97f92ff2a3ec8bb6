package sessionlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pcerrors "passcheck/internal/errors"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	logger, err := New(filepath.Join(t.TempDir(), "PasswordChecker", "password_log.txt"))
	require.NoError(t, err)
	return logger
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestAppendAttemptFormat(t *testing.T) {
	t.Parallel()

	logger := newTestLogger(t)
	at := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)

	require.NoError(t, logger.AppendAttempt(Entry{Time: at, Attempt: 2, Score: 4, Rating: "Medium"}))

	lines := readLines(t, logger.Path())
	require.Len(t, lines, 1)
	assert.Equal(t, "2026-08-30T14:05:00Z | Attempt 2 | Score: 4/5 | Rating: Medium", lines[0])
}

func TestAppendCreatesMissingDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	logger, err := New(filepath.Join(base, "a", "b", "c", "log.txt"))
	require.NoError(t, err)

	require.NoError(t, logger.AppendAttempt(Entry{Time: time.Now(), Attempt: 1, Score: 0, Rating: "Weak"}))

	_, statErr := os.Stat(logger.Path())
	assert.NoError(t, statErr)
}

func TestAppendNeverOverwrites(t *testing.T) {
	t.Parallel()

	logger := newTestLogger(t)
	entry := Entry{Time: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC), Attempt: 1, Score: 3, Rating: "Medium"}

	// The same entry appended twice must produce two distinct lines.
	require.NoError(t, logger.AppendAttempt(entry))
	require.NoError(t, logger.AppendAttempt(entry))

	lines := readLines(t, logger.Path())
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0], lines[1])
}

func TestSessionMarkersAroundAttempts(t *testing.T) {
	t.Parallel()

	logger := newTestLogger(t)
	id := NewSessionID()
	at := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	require.NoError(t, logger.AppendSessionStart(id, at))
	require.NoError(t, logger.AppendAttempt(Entry{Time: at, Attempt: 1, Score: 5, Rating: "Strong"}))
	require.NoError(t, logger.AppendSummary(id, Summary{Time: at, Attempts: 1, Rating: "Strong", Outcome: "strong"}))

	lines := readLines(t, logger.Path())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], id+" | start")
	assert.Contains(t, lines[2], "end | attempts=1 | rating=Strong | outcome=strong")
}

func TestSummaryWithoutAttemptsUsesPlaceholderRating(t *testing.T) {
	t.Parallel()

	logger := newTestLogger(t)
	at := time.Now()

	require.NoError(t, logger.AppendSummary("session-x", Summary{Time: at, Attempts: 0, Rating: "", Outcome: "aborted"}))

	lines := readLines(t, logger.Path())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "attempts=0 | rating=- | outcome=aborted")
}

func TestRecordsStaySingleLine(t *testing.T) {
	t.Parallel()

	logger := newTestLogger(t)
	require.NoError(t, logger.AppendAttempt(Entry{
		Time:    time.Now(),
		Attempt: 1,
		Score:   0,
		Rating:  "Weak\ninjected line",
	}))

	lines := readLines(t, logger.Path())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Weak injected line")
}

func TestAppendFailureIsTypedLoggingError(t *testing.T) {
	t.Parallel()

	// Point the log inside a path segment that is a regular file so the
	// directory creation fails.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	logger, err := New(filepath.Join(blocker, "log.txt"))
	require.NoError(t, err)

	appendErr := logger.AppendAttempt(Entry{Time: time.Now(), Attempt: 1, Score: 1, Rating: "Weak"})
	require.Error(t, appendErr)
	assert.True(t, pcerrors.IsLogging(appendErr))
	assert.False(t, pcerrors.IsFatal(appendErr))
}

func TestNewSessionIDHasStablePrefix(t *testing.T) {
	t.Parallel()

	first := NewSessionID()
	second := NewSessionID()
	assert.True(t, strings.HasPrefix(first, "session-"))
	assert.NotEqual(t, first, second)
}
