package feedback

import "passcheck/internal/strength"

// Payload is the user-facing outcome of one scored attempt.
type Payload struct {
	Strong   bool
	Score    int
	MaxScore int
	Rating   strength.Rating
	Hint     string // First unmet requirement; empty when Strong
}

// Build maps an evaluation result onto the display payload. The hint is
// the first unmet requirement so feedback stays incremental: fix one
// thing, check again.
func Build(result strength.Result) Payload {
	payload := Payload{
		Strong:   result.Strong(),
		Score:    result.Score,
		MaxScore: result.MaxScore,
		Rating:   result.Rating,
	}
	if len(result.Missing) > 0 {
		payload.Hint = result.Missing[0].Message
	}
	return payload
}
