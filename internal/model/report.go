package model

import (
	"time"
	"unicode/utf8"
)

// PasswordReport is the main analysis result structure.
// It wraps the engine's AnalysisResult with the metadata needed for
// reporting and history, and never contains the password itself.
//
// Design decision: We use a single struct rather than many small ones
// to simplify serialization and database storage. Findings are derived from
// the suggestions so that writers do not need to re-run any rule.
type PasswordReport struct {
	// Label identifies the password in reports (for example "#3" in a batch,
	// or a user-supplied name). It is never the password.
	Label string `json:"label"`

	// DateAnalyzed is the timestamp when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Length is the password length in characters.
	Length int `json:"length"`

	// Classes records which character classes are present.
	Classes CharacterClasses `json:"classes"`

	// Result is the scoring engine output.
	Result AnalysisResult `json:"result"`

	// Findings are the suggestions annotated with severity and guidance.
	Findings []Finding `json:"findings,omitempty"`

	// GuessEstimate is an informational cross-check from a guess-based
	// estimator. It never influences Result.
	GuessEstimate *GuessEstimate `json:"guess_estimate,omitempty"`

	// Fingerprint is the salted hash used to recognize a password across
	// history entries. Empty when history is disabled.
	Fingerprint string `json:"-"`

	// SeenBefore is how many earlier history entries share the fingerprint.
	SeenBefore int `json:"seen_before,omitempty"`

	// PerformedSteps lists the pipeline steps that ran.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds the last step error, if any.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// GuessEstimate summarizes a guess-based strength estimate.
type GuessEstimate struct {
	// Score is the estimator's 0-4 score.
	Score int `json:"score"`

	// Entropy is the estimator's minimum-entropy match in bits.
	Entropy float64 `json:"entropy"`

	// CrackTime is the estimated seconds to crack.
	CrackTime float64 `json:"crack_time_seconds"`

	// CrackTimeDisplay is a human-readable form of CrackTime.
	CrackTimeDisplay string `json:"crack_time_display"`
}

// Finding represents a single suggestion annotated for reporting.
type Finding struct {
	// Type is the finding type identifier.
	// This maps to findingInfoMapping in severity.go.
	Type string `json:"type"`

	// Severity is the impact level.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`

	// Title is a short description of the finding.
	Title string `json:"title"`

	// Suggestion is the exact text produced by the engine.
	Suggestion string `json:"suggestion"`

	// Impact explains why the finding matters.
	Impact string `json:"impact,omitempty"`

	// Recommendation provides guidance on how to address this finding.
	Recommendation string `json:"recommendation,omitempty"`
}

// NewPasswordReport creates a new PasswordReport for the given label.
// The password is only used to record its length.
func NewPasswordReport(label, password string) *PasswordReport {
	return &PasswordReport{
		Label:        label,
		DateAnalyzed: time.Now(),
		Length:       utf8.RuneCountInString(password),
	}
}

// SetResult stores the engine result and derives findings from it.
func (r *PasswordReport) SetResult(result AnalysisResult) {
	r.Result = result
	r.Findings = make([]Finding, 0, len(result.Suggestions))
	for _, s := range result.Suggestions {
		r.addFinding(FindingTypeForSuggestion(s), s)
	}
}

// AddGuessFinding records an informational finding for a low guess-based score.
func (r *PasswordReport) AddGuessFinding(display string) {
	r.addFinding(FindingTypeGuessable, "Estimated crack time: "+display+".")
}

// addFinding appends a finding with metadata looked up by type.
func (r *PasswordReport) addFinding(findingType, suggestion string) {
	info := GetFindingInfo(findingType)
	r.Findings = append(r.Findings, Finding{
		Type:           findingType,
		Severity:       info.Severity,
		SeverityText:   info.Severity.String(),
		Title:          info.Title,
		Suggestion:     suggestion,
		Impact:         info.Impact,
		Recommendation: info.Recommendation,
	})
}

// GetFindingsBySeverity returns findings filtered by severity.
func (r *PasswordReport) GetFindingsBySeverity(severity Severity) []Finding {
	var result []Finding
	for _, f := range r.Findings {
		if f.Severity == severity {
			result = append(result, f)
		}
	}
	return result
}

// HighestSeverity returns the most severe finding level, or SeverityInfo
// when there are no findings.
func (r *PasswordReport) HighestSeverity() Severity {
	highest := SeverityInfo
	for _, f := range r.Findings {
		if f.Severity > highest {
			highest = f.Severity
		}
	}
	return highest
}
