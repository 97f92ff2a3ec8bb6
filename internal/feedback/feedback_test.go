package feedback

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"passcheck/internal/strength"
)

func TestBuildUsesFirstMissingRequirementAsHint(t *testing.T) {
	t.Parallel()

	result := strength.DefaultEvaluator().Evaluate("abc")
	payload := Build(result)

	assert.False(t, payload.Strong)
	assert.Equal(t, 1, payload.Score)
	assert.Equal(t, 5, payload.MaxScore)
	assert.Equal(t, strength.RatingWeak, payload.Rating)
	assert.Contains(t, payload.Hint, "at least 8 characters")
}

func TestBuildStrongPayloadHasNoHint(t *testing.T) {
	t.Parallel()

	result := strength.DefaultEvaluator().Evaluate("Abc123!@")
	payload := Build(result)

	assert.True(t, payload.Strong)
	assert.Equal(t, 5, payload.Score)
	assert.Empty(t, payload.Hint)
}

func TestRenderAttemptResultFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewRenderer(&buf, false)

	renderer.RenderAttemptResult(Payload{
		Score:    4,
		MaxScore: 5,
		Rating:   strength.RatingMedium,
		Hint:     "Haste makes waste! Please add at least one special character (@, $, !, %, *, ?, &).",
	}, 2)

	out := buf.String()
	assert.Contains(t, out, "❌ Haste makes waste!")
	assert.Contains(t, out, "(@, $, !, %, *, ?, &)")
	assert.Contains(t, out, "Password score: 4/5 → Medium")
}

func TestRenderAttemptResultStrong(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewRenderer(&buf, false)

	renderer.RenderAttemptResult(Payload{
		Strong:   true,
		Score:    5,
		MaxScore: 5,
		Rating:   strength.RatingStrong,
	}, 3)

	out := buf.String()
	assert.Contains(t, out, "strong password in 3 attempt(s)")
	assert.Contains(t, out, "Password score: 5/5 → Strong")
	assert.NotContains(t, out, "❌")
}

func TestRenderBannerPlain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewRenderer(&buf, false)
	renderer.RenderBanner("1.2.3")

	lines := strings.Split(buf.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "===="))
	assert.Contains(t, lines[1], "Welcome to the Password Strength Checker!")
	assert.Equal(t, lines[0], lines[2], "separators should match")
	assert.Equal(t, "v1.2.3", lines[3])
}

func TestPlainOutputCarriesNoEscapeCodes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewRenderer(&buf, false)

	renderer.RenderChecking()
	renderer.RenderEmptyInput()
	renderer.RenderLogSaved("/tmp/password_log.txt")
	renderer.RenderLogFailure("/tmp/password_log.txt", assert.AnError)
	renderer.RenderAllDone()
	renderer.RenderAttemptsFarewell(4)
	renderer.RenderGoodbye()

	assert.NotContains(t, buf.String(), "\x1b[", "plain mode must not emit ANSI sequences")
	assert.Contains(t, buf.String(), "(Log saved to /tmp/password_log.txt)")
	assert.Contains(t, buf.String(), "Attempts made: 4")
}
