package strength

import "github.com/nao1215/pwmeter/internal/model"

// Classify reports which character classes occur in s.
// Only ASCII letters and digits count as letters and digits; every other
// rune, including non-ASCII letters, is a symbol.
func Classify(s string) model.CharacterClasses {
	var c model.CharacterClasses
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= '0' && r <= '9':
			c.Digit = true
		default:
			c.Symbol = true
		}
	}
	return c
}
