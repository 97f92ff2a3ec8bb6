package logging

import (
	"io"
	"regexp"
)

// Placeholder replaces redacted values in diagnostic output.
const Placeholder = "[REDACTED]"

var sensitiveKeyValuePattern = regexp.MustCompile(
	`(?i)((?:"|')?(?:password|passwd|pass|secret|token|api[_-]?key|credential)(?:"|')?\s*(?:=|:)\s*)(?:"|')?([^"'\s,;]+)((?:"|')?)`,
)

// SanitizeLine masks secret-looking key/value pairs in a log line.
// The checker never hands passwords to the logger in the first place;
// the scrub guards against accidental formatting of sensitive values.
func SanitizeLine(line string) string {
	return sensitiveKeyValuePattern.ReplaceAllStringFunc(line, func(match string) string {
		submatches := sensitiveKeyValuePattern.FindStringSubmatch(match)
		if len(submatches) != 4 {
			return match
		}
		return submatches[1] + Placeholder + submatches[3]
	})
}

// redactingWriter scrubs each chunk before handing it to the wrapped writer.
type redactingWriter struct {
	out io.Writer
}

func (w *redactingWriter) Write(p []byte) (int, error) {
	if _, err := w.out.Write([]byte(SanitizeLine(string(p)))); err != nil {
		return 0, err
	}
	// Report the caller's length; redaction may change the byte count.
	return len(p), nil
}
