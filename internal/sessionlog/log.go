// Package sessionlog appends one human-readable line per password
// attempt (plus session start/summary markers) to a local log file.
// Records carry timestamps, counters and ratings only; the password
// itself never reaches this package.
package sessionlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	pcerrors "passcheck/internal/errors"
)

// DefaultRelativePath is the log location under the user's home directory.
const DefaultRelativePath = "Documents/PasswordChecker/password_log.txt"

// Entry is one scored attempt's persisted metadata.
type Entry struct {
	Time    time.Time
	Attempt int
	Score   int
	Rating  string
}

// Summary closes out a session in the log.
type Summary struct {
	Time     time.Time
	Attempts int
	Rating   string
	Outcome  string
}

// NewSessionID generates a display identifier for one check session.
func NewSessionID() string {
	return fmt.Sprintf("session-%s", uuid.NewString())
}

// Logger appends records to a single log file, creating its parent
// directory on first write. Every append opens, writes one line and
// closes; nothing is held open between attempts.
type Logger struct {
	path string
}

// New creates a logger targeting path. "~/" expands to the home
// directory, matching how the path appears in config files.
func New(path string) (*Logger, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, pcerrors.NewFatalError(err, "cannot resolve your home directory for the session log")
		}
		path = filepath.Join(home, path[2:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, pcerrors.NewFatalError(err, fmt.Sprintf("cannot resolve session log path %q", path))
	}
	return &Logger{path: abs}, nil
}

// Path returns the absolute log file path.
func (l *Logger) Path() string {
	return l.path
}

// AppendAttempt writes one attempt record:
//
//	<RFC3339> | Attempt <n> | Score: <s>/5 | Rating: <label>
func (l *Logger) AppendAttempt(entry Entry) error {
	line := fmt.Sprintf("%s | Attempt %d | Score: %d/5 | Rating: %s",
		entry.Time.Format(time.RFC3339), entry.Attempt, entry.Score, singleLine(entry.Rating))
	return l.appendLine(line)
}

// AppendSessionStart marks the beginning of a session.
func (l *Logger) AppendSessionStart(sessionID string, at time.Time) error {
	line := fmt.Sprintf("%s | %s | start", at.Format(time.RFC3339), singleLine(sessionID))
	return l.appendLine(line)
}

// AppendSummary writes the closing record for a session. The key=value
// tail keeps the attempt history self-contained for anyone reading the
// raw file.
func (l *Logger) AppendSummary(sessionID string, s Summary) error {
	rating := singleLine(s.Rating)
	if rating == "" {
		rating = "-"
	}
	line := fmt.Sprintf("%s | %s | end | attempts=%d | rating=%s | outcome=%s",
		s.Time.Format(time.RFC3339), singleLine(sessionID), s.Attempts, rating, singleLine(s.Outcome))
	return l.appendLine(line)
}

// appendLine performs one append-mode write of a newline-terminated
// record. The file handle is released on every exit path, including a
// failed write, so an interrupt never leaves a dangling descriptor.
func (l *Logger) appendLine(line string) (err error) {
	if mkdirErr := os.MkdirAll(filepath.Dir(l.path), 0755); mkdirErr != nil {
		return pcerrors.NewLoggingError(mkdirErr, l.path, "could not create the session log directory")
	}

	f, openErr := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if openErr != nil {
		return pcerrors.NewLoggingError(openErr, l.path, "could not open the session log")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = pcerrors.NewLoggingError(closeErr, l.path, "could not close the session log")
		}
	}()

	if _, writeErr := f.WriteString(line + "\n"); writeErr != nil {
		return pcerrors.NewLoggingError(writeErr, l.path, "could not write to the session log")
	}
	return nil
}

// singleLine collapses any line breaks in a field so every record stays
// exactly one line in the file.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
