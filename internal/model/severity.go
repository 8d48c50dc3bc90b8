package model

// Severity represents how much a finding weakens a password.
// This allows ordering suggestions by their impact when rendering reports.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates informational findings with no direct impact on the score.
	SeverityInfo Severity = iota

	// SeverityLow indicates a missing character class.
	// The password loses a small bonus but may still be long enough to be strong.
	SeverityLow

	// SeverityMedium indicates a predictable pattern that costs score points.
	// Examples: repeated characters, keyboard sequences, embedded years.
	SeverityMedium

	// SeverityHigh indicates the password is too short for any length bonus.
	SeverityHigh

	// SeverityCritical indicates a short-circuit rule fired and the score is zero.
	// Examples: the password is a well-known common password or contains the username.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Suggestion texts produced by the scoring engine.
// Report writers and the history database match on these exact strings.
const (
	SuggestionCommonPassword = "Avoid common passwords."
	SuggestionUsername       = "Password should not contain or resemble your username."
	SuggestionRepeated       = "Avoid repeated characters."
	SuggestionSequence       = "Avoid predictable sequences."
	SuggestionYear           = "Avoid using years."
	SuggestionAddUppercase   = "Add uppercase letters."
	SuggestionAddLowercase   = "Add lowercase letters."
	SuggestionIncludeNumbers = "Include numbers."
	SuggestionIncludeSymbols = "Include symbols like !@#$."
	SuggestionMinimumLength  = "Use at least 8 characters."
)

// FindingTypeGuessable is used by the guess-based estimate, which is not an
// engine suggestion and never changes the score.
const FindingTypeGuessable = "guessable"

const (
	findingTypeUnknown        = "unknown"
	findingTypeCommonPassword = "common_password"
	findingTypeUsername       = "username_match"
	findingTypeRepeated       = "repeated_characters"
	findingTypeSequence       = "predictable_sequence"
	findingTypeYear           = "embedded_year"
	findingTypeMissingUpper   = "missing_uppercase"
	findingTypeMissingLower   = "missing_lowercase"
	findingTypeMissingDigit   = "missing_digit"
	findingTypeMissingSymbol  = "missing_symbol"
	findingTypeShortLength    = "short_length"
)

// suggestionTypes maps each engine suggestion to its finding type.
var suggestionTypes = map[string]string{
	SuggestionCommonPassword: findingTypeCommonPassword,
	SuggestionUsername:       findingTypeUsername,
	SuggestionRepeated:       findingTypeRepeated,
	SuggestionSequence:       findingTypeSequence,
	SuggestionYear:           findingTypeYear,
	SuggestionAddUppercase:   findingTypeMissingUpper,
	SuggestionAddLowercase:   findingTypeMissingLower,
	SuggestionIncludeNumbers: findingTypeMissingDigit,
	SuggestionIncludeSymbols: findingTypeMissingSymbol,
	SuggestionMinimumLength:  findingTypeShortLength,
}

// FindingTypeForSuggestion returns the finding type for an engine suggestion.
// Unrecognized suggestions map to "unknown".
func FindingTypeForSuggestion(suggestion string) string {
	if t, ok := suggestionTypes[suggestion]; ok {
		return t
	}
	return findingTypeUnknown
}

// FindingInfo contains metadata about a finding type including severity,
// impact description, and remediation recommendation.
type FindingInfo struct {
	Severity       Severity
	Title          string
	Impact         string
	Recommendation string
}

// findingInfoMapping maps finding types to their metadata.
// This centralized mapping ensures consistent severity assessment across
// the text, JSON and Markdown reports.
var findingInfoMapping = map[string]FindingInfo{
	findingTypeCommonPassword: {
		Severity:       SeverityCritical,
		Title:          "Common Password",
		Impact:         "The password appears on lists of the most frequently used passwords and is tried first by any attacker.",
		Recommendation: "Choose a password that is not a dictionary favourite, such as a generated passphrase.",
	},
	findingTypeUsername: {
		Severity:       SeverityCritical,
		Title:          "Contains Username",
		Impact:         "Anyone who knows the account name can guess the password.",
		Recommendation: "Remove the username from the password entirely.",
	},
	findingTypeShortLength: {
		Severity:       SeverityHigh,
		Title:          "Too Short",
		Impact:         "Passwords under 8 characters receive no length bonus and can be exhausted quickly.",
		Recommendation: "Use at least 8 characters; 12 or more earns the full length bonus.",
	},
	findingTypeRepeated: {
		Severity:       SeverityMedium,
		Title:          "Repeated Characters",
		Impact:         "Runs of the same character add length without adding unpredictability.",
		Recommendation: "Break up runs of three or more identical characters.",
	},
	findingTypeSequence: {
		Severity:       SeverityMedium,
		Title:          "Predictable Sequence",
		Impact:         "Keyboard and alphabet sequences are among the first patterns guessed.",
		Recommendation: "Avoid 1234, abcd and qwerty anywhere in the password.",
	},
	findingTypeYear: {
		Severity:       SeverityMedium,
		Title:          "Embedded Year",
		Impact:         "Years such as birth years or the current year are easy to guess.",
		Recommendation: "Replace 19xx and 20xx numbers with unrelated digits.",
	},
	findingTypeMissingUpper: {
		Severity:       SeverityLow,
		Title:          "No Uppercase Letters",
		Impact:         "The inferred alphabet is smaller without uppercase letters.",
		Recommendation: "Mix in uppercase letters.",
	},
	findingTypeMissingLower: {
		Severity:       SeverityLow,
		Title:          "No Lowercase Letters",
		Impact:         "The inferred alphabet is smaller without lowercase letters.",
		Recommendation: "Mix in lowercase letters.",
	},
	findingTypeMissingDigit: {
		Severity:       SeverityLow,
		Title:          "No Digits",
		Impact:         "The inferred alphabet is smaller without digits.",
		Recommendation: "Add a few digits.",
	},
	findingTypeMissingSymbol: {
		Severity:       SeverityLow,
		Title:          "No Symbols",
		Impact:         "Symbols contribute the largest class bonus and are missing.",
		Recommendation: "Add symbols such as ! @ # $.",
	},
	FindingTypeGuessable: {
		Severity:       SeverityInfo,
		Title:          "Guess-Based Estimate",
		Impact:         "A dictionary-and-pattern estimator rates this password as easy to guess.",
		Recommendation: "Prefer longer passphrases built from unrelated words.",
	},
}

// GetSeverity returns the severity level for a finding type.
// Returns SeverityInfo if the finding type is not in the mapping.
func GetSeverity(findingType string) Severity {
	if info, ok := findingInfoMapping[findingType]; ok {
		return info.Severity
	}
	return SeverityInfo
}

// GetFindingInfo returns the full finding information for a finding type.
// Returns a default FindingInfo with SeverityInfo if the type is not in the mapping.
func GetFindingInfo(findingType string) FindingInfo {
	if info, ok := findingInfoMapping[findingType]; ok {
		return info
	}
	return FindingInfo{
		Severity:       SeverityInfo,
		Title:          "Suggestion",
		Impact:         "Unknown finding type. Review manually.",
		Recommendation: "Follow the suggestion text.",
	}
}
