package strength

// Result carries the outcome of scoring one password. The password itself
// is never retained.
type Result struct {
	Score    int
	MaxScore int
	Rating   Rating
	Missing  []Requirement // Unmet requirements in rule order
}

// Strong reports whether every rule was satisfied.
func (r Result) Strong() bool {
	return r.Score == r.MaxScore
}

// Evaluator scores passwords against an ordered rule set.
// Evaluation is pure: no I/O, no stored state, deterministic per input.
type Evaluator struct {
	rules []Rule
}

// NewEvaluator constructs an evaluator with the provided rules.
func NewEvaluator(rules ...Rule) *Evaluator {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Evaluator{rules: copied}
}

// DefaultEvaluator applies the standard five rules with default parameters.
func DefaultEvaluator() *Evaluator {
	return NewEvaluator(StandardRules(DefaultMinLength, DefaultSpecialChars)...)
}

// Evaluate walks every rule and counts the satisfied ones. It never
// short-circuits, so Missing lists all unmet requirements in rule order.
func (e *Evaluator) Evaluate(password string) Result {
	result := Result{MaxScore: len(e.rules)}
	for _, rule := range e.rules {
		if req := rule.Check(password); req != nil {
			result.Missing = append(result.Missing, *req)
			continue
		}
		result.Score++
	}
	result.Rating = RatingFromScore(result.Score)
	return result
}
