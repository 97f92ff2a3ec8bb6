package strength

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Policy defaults shared by the CLI and the config layer.
const (
	DefaultMinLength    = 8
	DefaultSpecialChars = "@$!%*?&"
)

// Requirement describes a single unmet composition rule.
type Requirement struct {
	Code    string
	Message string
}

// Rule checks one composition requirement of a password.
// Check returns nil when the requirement is satisfied.
type Rule interface {
	Check(password string) *Requirement
}

// RuleFunc adapts a function to be used as a Rule.
type RuleFunc func(password string) *Requirement

// Check executes the underlying rule function.
func (f RuleFunc) Check(password string) *Requirement {
	return f(password)
}

// MinLengthRule requires at least min characters (counted as runes).
func MinLengthRule(min int) Rule {
	return RuleFunc(func(password string) *Requirement {
		if utf8.RuneCountInString(password) >= min {
			return nil
		}
		return &Requirement{
			Code:    "min_length",
			Message: fmt.Sprintf("Oops, too short! Password must be at least %d characters.", min),
		}
	})
}

// RequireUppercaseRule requires at least one ASCII uppercase letter.
func RequireUppercaseRule() Rule {
	return RuleFunc(func(password string) *Requirement {
		for _, r := range password {
			if r >= 'A' && r <= 'Z' {
				return nil
			}
		}
		return &Requirement{
			Code:    "uppercase",
			Message: "Not quite strong enough! Add at least one uppercase letter.",
		}
	})
}

// RequireLowercaseRule requires at least one ASCII lowercase letter.
func RequireLowercaseRule() Rule {
	return RuleFunc(func(password string) *Requirement {
		for _, r := range password {
			if r >= 'a' && r <= 'z' {
				return nil
			}
		}
		return &Requirement{
			Code:    "lowercase",
			Message: "Try again! Your password needs at least one lowercase letter.",
		}
	})
}

// RequireDigitRule requires at least one ASCII digit.
func RequireDigitRule() Rule {
	return RuleFunc(func(password string) *Requirement {
		for _, r := range password {
			if r >= '0' && r <= '9' {
				return nil
			}
		}
		return &Requirement{
			Code:    "digit",
			Message: "Drat! You forgot to add at least one number.",
		}
	})
}

// RequireSpecialRule requires at least one character from the given set.
func RequireSpecialRule(specials string) Rule {
	hint := formatSpecials(specials)
	return RuleFunc(func(password string) *Requirement {
		if strings.ContainsAny(password, specials) {
			return nil
		}
		return &Requirement{
			Code:    "special",
			Message: fmt.Sprintf("Haste makes waste! Please add at least one special character (%s).", hint),
		}
	})
}

// StandardRules returns the five composition rules in reporting order.
// The count and order are fixed; only the parameters vary.
func StandardRules(minLength int, specials string) []Rule {
	if minLength < 1 {
		minLength = DefaultMinLength
	}
	if specials == "" {
		specials = DefaultSpecialChars
	}
	return []Rule{
		MinLengthRule(minLength),
		RequireUppercaseRule(),
		RequireLowercaseRule(),
		RequireDigitRule(),
		RequireSpecialRule(specials),
	}
}

func formatSpecials(specials string) string {
	chars := make([]string, 0, utf8.RuneCountInString(specials))
	for _, r := range specials {
		chars = append(chars, string(r))
	}
	return strings.Join(chars, ", ")
}
