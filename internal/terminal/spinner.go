package terminal

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

const (
	spinnerDuration = 1400 * time.Millisecond
	spinnerInterval = time.Second / 14
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// Spin runs a short synchronous spinner next to message, overwriting the
// frame in place. Off-terminal (or when disabled) it degrades to a single
// plain line so piped output stays clean.
func (t *Term) Spin(message string) {
	if !t.spinnerEnabled || !t.outputIsTerminal() {
		fmt.Fprintln(t.out, message+"... ✓")
		return
	}

	fmt.Fprint(t.out, t.colorize(message+"... ", color.FgYellow))
	deadline := time.Now().Add(spinnerDuration)
	for i := 0; time.Now().Before(deadline); i++ {
		fmt.Fprint(t.out, spinnerFrames[i%len(spinnerFrames)])
		time.Sleep(spinnerInterval)
		fmt.Fprint(t.out, "\b")
	}
	fmt.Fprintln(t.out, "✓")
}
