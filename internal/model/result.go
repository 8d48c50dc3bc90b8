package model

// Rating is the categorical strength label shown next to the score.
type Rating string

const (
	// RatingStart is the placeholder shown before anything has been typed.
	RatingStart Rating = "Start typing..."

	// RatingWeak covers both weak bands (score <= 50) and every short-circuit.
	RatingWeak Rating = "Weak"

	// RatingFair is used for scores in (50, 70].
	RatingFair Rating = "Fair"

	// RatingStrong is used for scores above 70.
	RatingStrong Rating = "Strong"
)

// String returns the display text of the rating.
func (r Rating) String() string {
	return string(r)
}

// ColorHint is a presentation token that lets a renderer tell apart bands
// that share the same rating text.
type ColorHint string

const (
	// ColorNeutral accompanies RatingStart.
	ColorNeutral ColorHint = "neutral"

	// ColorPositive accompanies RatingStrong.
	ColorPositive ColorHint = "positive"

	// ColorCaution accompanies RatingFair.
	ColorCaution ColorHint = "caution"

	// ColorElevatedAlert accompanies the upper weak band (30, 50].
	ColorElevatedAlert ColorHint = "elevated-alert"

	// ColorAlert accompanies the lower weak band and every short-circuit.
	ColorAlert ColorHint = "alert"
)

// String returns the token name.
func (c ColorHint) String() string {
	return string(c)
}

// CSS returns the CSS color the browser front end used for this hint.
func (c ColorHint) CSS() string {
	switch c {
	case ColorNeutral:
		return "#ddd"
	case ColorPositive:
		return "green"
	case ColorCaution:
		return "orange"
	case ColorElevatedAlert:
		return "tomato"
	case ColorAlert:
		return "red"
	default:
		return ""
	}
}

// CharacterClasses records which character classes occur in a string.
// Symbol means any character outside [A-Za-z0-9], including non-ASCII letters.
type CharacterClasses struct {
	Lower  bool `json:"lower"`
	Upper  bool `json:"upper"`
	Digit  bool `json:"digit"`
	Symbol bool `json:"symbol"`
}

// Count returns how many of the four classes are present.
func (c CharacterClasses) Count() int {
	n := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Symbol} {
		if present {
			n++
		}
	}
	return n
}

// AnalysisResult is the value returned for every analysis.
// It is never mutated after the engine returns it.
type AnalysisResult struct {
	// Score is the clamped score in [0, 100].
	Score int `json:"score"`

	// Rating is the categorical label derived from Score.
	Rating Rating `json:"rating"`

	// Color distinguishes bands that share a rating label.
	Color ColorHint `json:"color"`

	// Suggestions lists improvement hints in the order the rules produced them.
	// It is empty, never nil, when the password satisfies every rule.
	Suggestions []string `json:"suggestions"`

	// Entropy is the idealized bits-of-entropy estimate for the raw password.
	Entropy float64 `json:"entropy"`
}

// HasSuggestions reports whether any improvement hint was produced.
func (r AnalysisResult) HasSuggestions() bool {
	return len(r.Suggestions) > 0
}

// Equal reports whether two results carry the same values.
func (r AnalysisResult) Equal(other AnalysisResult) bool {
	if r.Score != other.Score || r.Rating != other.Rating || r.Color != other.Color || r.Entropy != other.Entropy {
		return false
	}
	if len(r.Suggestions) != len(other.Suggestions) {
		return false
	}
	for i := range r.Suggestions {
		if r.Suggestions[i] != other.Suggestions[i] {
			return false
		}
	}
	return true
}
