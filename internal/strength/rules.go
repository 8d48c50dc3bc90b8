package strength

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/pwmeter/internal/model"
)

// Input is the per-call data every rule sees.
// It is computed once by the engine so rules stay cheap and pure.
type Input struct {
	// Password is the raw password.
	Password string

	// Lower is the lowercased password.
	Lower string

	// Length is the password length in runes.
	Length int

	// Classes records which character classes are present.
	Classes model.CharacterClasses
}

// NewInput derives the rule input for password.
func NewInput(password string) Input {
	return Input{
		Password: password,
		Lower:    strings.ToLower(password),
		Length:   utf8.RuneCountInString(password),
		Classes:  Classify(password),
	}
}

// Outcome is what a rule contributes to the running score.
// An empty Suggestion means the rule adds no hint.
type Outcome struct {
	Delta      int
	Suggestion string
}

// Rule is a single scoring rule.
//
// Design decision: Rules are values behind an interface rather than inline
// conditionals because:
//  1. Each rule can be tested on its own
//  2. The engine reduces to a fold over an ordered list
//  3. The order of suggestions is the order of the list
type Rule interface {
	// Name returns the rule's identifier for logging and tests.
	Name() string

	// Apply evaluates the rule against the input.
	Apply(in Input) Outcome
}

// ruleFunc adapts a plain function to the Rule interface.
type ruleFunc struct {
	name  string
	apply func(Input) Outcome
}

// Name returns the rule name.
func (r ruleFunc) Name() string { return r.name }

// Apply runs the rule.
func (r ruleFunc) Apply(in Input) Outcome { return r.apply(in) }

// Penalty and bonus amounts.
const (
	patternPenalty = -10

	lengthBonus     = 25
	minLength       = 8
	longLength      = 12
	lowerBonus      = 10
	upperBonus      = 10
	digitBonus      = 10
	symbolBonus     = 20
	repeatRunLength = 3
)

// predictableSequences are matched case-insensitively anywhere in the password.
var predictableSequences = []string{"1234", "abcd", "qwerty"}

// yearPattern matches a 19xx or 20xx run of ASCII digits.
var yearPattern = regexp.MustCompile(`(?:19|20)[0-9]{2}`)

// isWordChar reports whether r is in [A-Za-z0-9_].
func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// hasRepeatedRun reports whether a word character occurs n or more times in a row.
// Identity is case-sensitive, so "aAa" is not a run.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n && isWordChar(r) {
			return true
		}
	}
	return false
}

// hasPredictableSequence reports whether lower contains a listed sequence.
func hasPredictableSequence(lower string) bool {
	for _, seq := range predictableSequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}
	return false
}

// RepeatedCharactersRule penalizes a run of three identical word characters.
func RepeatedCharactersRule() Rule {
	return ruleFunc{name: "repeated-characters", apply: func(in Input) Outcome {
		if hasRepeatedRun(in.Password, repeatRunLength) {
			return Outcome{Delta: patternPenalty, Suggestion: model.SuggestionRepeated}
		}
		return Outcome{}
	}}
}

// PredictableSequenceRule penalizes 1234, abcd and qwerty in any casing.
func PredictableSequenceRule() Rule {
	return ruleFunc{name: "predictable-sequence", apply: func(in Input) Outcome {
		if hasPredictableSequence(in.Lower) {
			return Outcome{Delta: patternPenalty, Suggestion: model.SuggestionSequence}
		}
		return Outcome{}
	}}
}

// EmbeddedYearRule penalizes a four-digit 19xx or 20xx run.
func EmbeddedYearRule() Rule {
	return ruleFunc{name: "embedded-year", apply: func(in Input) Outcome {
		if yearPattern.MatchString(in.Password) {
			return Outcome{Delta: patternPenalty, Suggestion: model.SuggestionYear}
		}
		return Outcome{}
	}}
}

// MinimumLengthBonusRule adds a bonus at 8 characters.
func MinimumLengthBonusRule() Rule {
	return ruleFunc{name: "length-8", apply: func(in Input) Outcome {
		if in.Length >= minLength {
			return Outcome{Delta: lengthBonus}
		}
		return Outcome{}
	}}
}

// LongLengthBonusRule adds a second bonus at 12 characters.
func LongLengthBonusRule() Rule {
	return ruleFunc{name: "length-12", apply: func(in Input) Outcome {
		if in.Length >= longLength {
			return Outcome{Delta: lengthBonus}
		}
		return Outcome{}
	}}
}

// classBonusRule adds delta when present reports true for the input classes.
func classBonusRule(name string, delta int, present func(model.CharacterClasses) bool) Rule {
	return ruleFunc{name: name, apply: func(in Input) Outcome {
		if present(in.Classes) {
			return Outcome{Delta: delta}
		}
		return Outcome{}
	}}
}

// missingClassRule suggests adding a class when present reports false.
func missingClassRule(name, suggestion string, present func(model.CharacterClasses) bool) Rule {
	return ruleFunc{name: name, apply: func(in Input) Outcome {
		if !present(in.Classes) {
			return Outcome{Suggestion: suggestion}
		}
		return Outcome{}
	}}
}

func hasLower(c model.CharacterClasses) bool  { return c.Lower }
func hasUpper(c model.CharacterClasses) bool  { return c.Upper }
func hasDigit(c model.CharacterClasses) bool  { return c.Digit }
func hasSymbol(c model.CharacterClasses) bool { return c.Symbol }

// ShortLengthRule suggests a minimum length of 8.
func ShortLengthRule() Rule {
	return ruleFunc{name: "short-length", apply: func(in Input) Outcome {
		if in.Length < minLength {
			return Outcome{Suggestion: model.SuggestionMinimumLength}
		}
		return Outcome{}
	}}
}

// DefaultRules returns the ordered rule list used by the engine:
// penalties, then bonuses, then missing-property suggestions.
func DefaultRules() []Rule {
	return []Rule{
		RepeatedCharactersRule(),
		PredictableSequenceRule(),
		EmbeddedYearRule(),

		MinimumLengthBonusRule(),
		LongLengthBonusRule(),
		classBonusRule("lowercase-bonus", lowerBonus, hasLower),
		classBonusRule("uppercase-bonus", upperBonus, hasUpper),
		classBonusRule("digit-bonus", digitBonus, hasDigit),
		classBonusRule("symbol-bonus", symbolBonus, hasSymbol),

		missingClassRule("missing-uppercase", model.SuggestionAddUppercase, hasUpper),
		missingClassRule("missing-lowercase", model.SuggestionAddLowercase, hasLower),
		missingClassRule("missing-digit", model.SuggestionIncludeNumbers, hasDigit),
		missingClassRule("missing-symbol", model.SuggestionIncludeSymbols, hasSymbol),
		ShortLengthRule(),
	}
}
