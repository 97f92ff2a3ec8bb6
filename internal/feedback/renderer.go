package feedback

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Renderer writes check-flow output to a terminal-style writer.
type Renderer struct {
	out          io.Writer
	colorEnabled bool
}

// NewRenderer creates a renderer. Pass colorEnabled=false for plain text,
// e.g. when stdout is not a terminal.
func NewRenderer(out io.Writer, colorEnabled bool) *Renderer {
	return &Renderer{
		out:          out,
		colorEnabled: colorEnabled,
	}
}

// RenderBanner prints the welcome header shown on startup.
func (r *Renderer) RenderBanner(version string) {
	title := "🔐  Welcome to the Password Strength Checker!  🔐"

	if !r.colorEnabled {
		separator := strings.Repeat("=", utf8.RuneCountInString(title))
		fmt.Fprintln(r.out, separator)
		fmt.Fprintln(r.out, title)
		fmt.Fprintln(r.out, separator)
		if version != "" {
			fmt.Fprintf(r.out, "v%s\n", version)
		}
		fmt.Fprintln(r.out)
		return
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#6B7280")).
		Foreground(lipgloss.Color("10")).
		Bold(true).
		Padding(0, 1)

	banner := boxStyle.Render(title)
	if version != "" {
		banner += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Render("v"+version)
	}
	fmt.Fprintln(r.out, banner)
	fmt.Fprintln(r.out)
}

// RenderChecking announces that scoring is about to run.
func (r *Renderer) RenderChecking() {
	fmt.Fprintln(r.out, r.colorize("\nChecking password strength...", color.FgYellow))
}

// RenderAttemptResult prints the outcome of one scored attempt.
// Failures show a single actionable hint plus the score line; the strong
// case celebrates and reports how many attempts it took.
func (r *Renderer) RenderAttemptResult(p Payload, attempts int) {
	if p.Strong {
		fmt.Fprintln(r.out, r.colorize(
			fmt.Sprintf("✅ Hurray! You created a strong password in %d attempt(s)! You're good to go.", attempts),
			color.FgGreen))
		fmt.Fprintln(r.out, r.colorize(
			fmt.Sprintf("🔥 Password score: %d/%d → %s", p.Score, p.MaxScore, p.Rating),
			color.FgGreen))
		return
	}

	fmt.Fprintln(r.out, r.colorize("❌ "+p.Hint, color.FgRed))
	fmt.Fprintln(r.out, r.colorize(
		fmt.Sprintf("⚠️ Password score: %d/%d → %s", p.Score, p.MaxScore, p.Rating),
		color.FgYellow))
}

// RenderEmptyInput warns that blank input is skipped without scoring.
func (r *Renderer) RenderEmptyInput() {
	fmt.Fprintln(r.out, r.colorize("❌ Empty input! Please type a password (not just Enter).", color.FgRed))
}

// RenderInterrupted reports that the input stream ended mid-session.
func (r *Renderer) RenderInterrupted() {
	fmt.Fprintln(r.out, r.colorize("\n(Interrupted) Exiting the password checker.", color.FgRed))
}

// RenderAllDone closes out a finished check session.
func (r *Renderer) RenderAllDone() {
	fmt.Fprintln(r.out, r.colorize("✅ All done! Thanks for checking your password with me.", color.FgGreen))
}

// RenderAttemptsFarewell thanks a user who stopped before reaching strong.
func (r *Renderer) RenderAttemptsFarewell(attempts int) {
	fmt.Fprintln(r.out, r.colorize(
		fmt.Sprintf("\nThanks for using the password checker! Attempts made: %d. Have a great day!", attempts),
		color.FgGreen))
}

// RenderGoodbye prints the final farewell after the outer session loop.
func (r *Renderer) RenderGoodbye() {
	fmt.Fprintln(r.out, r.colorize("\nThanks for using the checker! Stay secure out there 🔒", color.FgGreen))
}

// RenderLogSaved confirms where the session log landed.
func (r *Renderer) RenderLogSaved(path string) {
	fmt.Fprintln(r.out, r.colorize(fmt.Sprintf("(Log saved to %s)", path), color.FgYellow))
}

// RenderLogFailure warns that an append failed; the check flow continues.
// The cause comes from the filesystem and never contains password text.
func (r *Renderer) RenderLogFailure(path string, err error) {
	fmt.Fprintln(r.out, r.colorize(
		fmt.Sprintf("⚠️ Could not write to the session log at %s (%v)", path, err),
		color.FgYellow))
}

// colorize applies color to text if color is enabled
func (r *Renderer) colorize(text string, attributes ...color.Attribute) string {
	if !r.colorEnabled {
		return text
	}
	c := color.New(attributes...)
	return c.Sprint(text)
}
