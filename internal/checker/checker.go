// Package checker runs one interactive password-check session: prompt,
// score, report, retry. All terminal and file access goes through
// injected capabilities so the loop is testable without a real TTY.
package checker

import (
	"strings"
	"time"

	pcerrors "passcheck/internal/errors"
	"passcheck/internal/feedback"
	"passcheck/internal/logging"
	"passcheck/internal/sessionlog"
	"passcheck/internal/strength"
	"passcheck/internal/terminal"
)

// Outcome says how a session ended.
type Outcome string

const (
	// OutcomeStrong - the user produced a password satisfying every rule.
	OutcomeStrong Outcome = "strong"
	// OutcomeDeclined - the user stopped before reaching a strong password.
	OutcomeDeclined Outcome = "declined"
	// OutcomeAborted - the input stream ended or was interrupted.
	OutcomeAborted Outcome = "aborted"
)

// Summary is the terminal state of one session.
type Summary struct {
	SessionID   string
	Attempts    int
	FinalScore  int
	FinalRating strength.Rating
	Outcome     Outcome
}

// Session holds the capabilities and the explicit loop state for one
// check session. The attempt counter lives here, never in a global.
type Session struct {
	console   terminal.Console
	renderer  *feedback.Renderer
	evaluator *strength.Evaluator
	log       *sessionlog.Logger
	logger    logging.Logger

	id       string
	attempts int
	now      func() time.Time
}

// New wires a session from its dependencies. logger may be nil.
func New(console terminal.Console, renderer *feedback.Renderer, evaluator *strength.Evaluator, log *sessionlog.Logger, logger logging.Logger) *Session {
	return &Session{
		console:   console,
		renderer:  renderer,
		evaluator: evaluator,
		log:       log,
		logger:    logging.OrNop(logger),
		id:        sessionlog.NewSessionID(),
		now:       time.Now,
	}
}

const passwordPrompt = "Please enter your password to continue: "

// Run drives the session to completion: prompting, evaluating,
// reporting and asking to retry until the password is strong or the
// user declines. The returned error is non-nil only when the input
// stream died; the Summary is valid either way.
//
// The raw password never leaves the loop iteration that read it: it is
// passed to the evaluator and dropped, never stored, logged or placed
// in an error.
func (s *Session) Run() (Summary, error) {
	s.logger.Info("session %s starting", s.id)
	s.appendOrWarn(s.log.AppendSessionStart(s.id, s.now()))

	var last strength.Result
	outcome := OutcomeAborted

	for {
		password, err := s.console.ReadPassword(passwordPrompt)
		if err != nil {
			s.logger.Warn("session %s: input stream closed: %v", s.id, err)
			s.renderer.RenderInterrupted()
			summary := s.summarize(last, OutcomeAborted)
			s.appendOrWarn(s.log.AppendSummary(s.id, summaryRecord(summary, s.now())))
			return summary, pcerrors.NewInputError(err, "input was interrupted")
		}

		// Bare Enter (or whitespace) is not an attempt; warn and re-prompt.
		if strings.TrimSpace(password) == "" {
			s.renderer.RenderEmptyInput()
			continue
		}

		s.attempts++
		s.renderer.RenderChecking()
		s.console.Spin("Analyzing password")

		last = s.evaluator.Evaluate(password)
		password = ""

		payload := feedback.Build(last)
		s.renderer.RenderAttemptResult(payload, s.attempts)
		s.logger.Debug("session %s: attempt %d scored %d/%d (%s)",
			s.id, s.attempts, last.Score, last.MaxScore, last.Rating)

		s.appendOrWarn(s.log.AppendAttempt(sessionlog.Entry{
			Time:    s.now(),
			Attempt: s.attempts,
			Score:   last.Score,
			Rating:  string(last.Rating),
		}))

		if last.Strong() {
			s.renderer.RenderAllDone()
			outcome = OutcomeStrong
			break
		}

		retry, err := s.console.Confirm("Password not strong enough! Would you like to try again?")
		if err != nil {
			s.logger.Warn("session %s: input stream closed during retry prompt: %v", s.id, err)
			s.renderer.RenderInterrupted()
			summary := s.summarize(last, OutcomeAborted)
			s.appendOrWarn(s.log.AppendSummary(s.id, summaryRecord(summary, s.now())))
			return summary, pcerrors.NewInputError(err, "input was interrupted")
		}
		if !retry {
			s.renderer.RenderAllDone()
			s.renderer.RenderAttemptsFarewell(s.attempts)
			outcome = OutcomeDeclined
			break
		}
	}

	summary := s.summarize(last, outcome)
	if err := s.log.AppendSummary(s.id, summaryRecord(summary, s.now())); err != nil {
		s.warnLogFailure(err)
	} else {
		s.renderer.RenderLogSaved(s.log.Path())
	}
	s.logger.Info("session %s finished: outcome=%s attempts=%d", s.id, summary.Outcome, summary.Attempts)
	return summary, nil
}

func (s *Session) summarize(last strength.Result, outcome Outcome) Summary {
	summary := Summary{
		SessionID: s.id,
		Attempts:  s.attempts,
		Outcome:   outcome,
	}
	if s.attempts > 0 {
		summary.FinalScore = last.Score
		summary.FinalRating = last.Rating
	}
	return summary
}

func summaryRecord(summary Summary, at time.Time) sessionlog.Summary {
	return sessionlog.Summary{
		Time:     at,
		Attempts: summary.Attempts,
		Rating:   string(summary.FinalRating),
		Outcome:  string(summary.Outcome),
	}
}

// appendOrWarn surfaces a session-log failure as a warning and moves
// on. Logging trouble never blocks the check flow.
func (s *Session) appendOrWarn(err error) {
	if err != nil {
		s.warnLogFailure(err)
	}
}

func (s *Session) warnLogFailure(err error) {
	s.logger.Warn("session %s: log append failed: %v", s.id, err)
	s.renderer.RenderLogFailure(s.log.Path(), err)
}
