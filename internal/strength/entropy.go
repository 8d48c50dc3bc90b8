package strength

import (
	"math"
	"unicode/utf8"

	"github.com/nao1215/pwmeter/internal/model"
)

// Per-class alphabet contributions.
const (
	lowerAlphabet  = 26
	upperAlphabet  = 26
	digitAlphabet  = 10
	symbolAlphabet = 33
)

// AlphabetSize returns the inferred alphabet size for the given classes.
// Classes are additive and are not checked against the characters actually used.
func AlphabetSize(c model.CharacterClasses) int {
	size := 0
	if c.Lower {
		size += lowerAlphabet
	}
	if c.Upper {
		size += upperAlphabet
	}
	if c.Digit {
		size += digitAlphabet
	}
	if c.Symbol {
		size += symbolAlphabet
	}
	return size
}

// Entropy returns length × log2(alphabet) bits for password, or 0 when it is empty.
// This is an idealized upper bound assuming uniform random choice over the
// inferred classes, not the Shannon entropy of the string.
func Entropy(password string) float64 {
	length := utf8.RuneCountInString(password)
	if length == 0 {
		return 0
	}
	size := AlphabetSize(Classify(password))
	if size == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(size))
}
