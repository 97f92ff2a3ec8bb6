package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// Term is the real terminal-backed console.
type Term struct {
	in             io.Reader
	out            io.Writer
	reader         *bufio.Reader
	colorEnabled   bool
	spinnerEnabled bool
}

// New creates a console bound to the given streams. Secure (no-echo)
// input engages only when in is a terminal; otherwise input falls back
// to a visible line reader.
func New(in io.Reader, out io.Writer, colorEnabled, spinnerEnabled bool) *Term {
	return &Term{
		in:             in,
		out:            out,
		reader:         bufio.NewReader(in),
		colorEnabled:   colorEnabled,
		spinnerEnabled: spinnerEnabled,
	}
}

// ReadPassword reads secret input without echoing when the input stream
// is a terminal. On terminals that reject the raw-mode read it warns and
// switches to visible input rather than failing the session.
func (t *Term) ReadPassword(prompt string) (string, error) {
	if fd, ok := t.inputFd(); ok {
		fmt.Fprint(t.out, t.colorize(prompt, color.FgCyan))
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(t.out)
		if err == nil {
			return string(raw), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(t.out, t.colorize("(secure input not supported here; switching to visible input)", color.FgYellow))
	}
	return t.readLine(prompt)
}

// Confirm asks label as a yes/no question. On a terminal it runs a
// promptui confirm prompt; otherwise it falls back to a plain y/n line.
// Unrecognized answers decline.
func (t *Term) Confirm(label string) (bool, error) {
	if _, ok := t.inputFd(); ok {
		prompt := promptui.Prompt{
			Label:     label,
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return false, fmt.Errorf("failed to read input: %w", err)
			}
			// ErrAbort and anything unrecognized count as no.
			return false, nil
		}
		return true, nil
	}

	input, err := t.readLine(label + " (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine prompts and reads one visible line from the input stream.
// A final unterminated line still counts as input.
func (t *Term) readLine(prompt string) (string, error) {
	fmt.Fprint(t.out, t.colorize(prompt, color.FgCyan))
	input, err := t.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimRight(input, "\r\n"), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(input, "\r\n"), nil
}

// inputFd returns the input file descriptor when it belongs to a terminal.
func (t *Term) inputFd() (int, bool) {
	file, ok := t.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	return fd, true
}

// outputIsTerminal reports whether animated output will render sanely.
func (t *Term) outputIsTerminal() bool {
	file, ok := t.out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// colorize applies color to text if color is enabled
func (t *Term) colorize(text string, attributes ...color.Attribute) string {
	if !t.colorEnabled {
		return text
	}
	c := color.New(attributes...)
	return c.Sprint(text)
}
