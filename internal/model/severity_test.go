package model

import "testing"

// TestSeverityString tests the String method of Severity.
func TestSeverityString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		severity Severity
		expected string
	}{
		{SeverityInfo, "INFO"},
		{SeverityLow, "LOW"},
		{SeverityMedium, "MEDIUM"},
		{SeverityHigh, "HIGH"},
		{SeverityCritical, "CRITICAL"},
		{Severity(999), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.severity.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.severity.String(), tc.expected)
			}
		})
	}
}

// TestGetSeverity tests the GetSeverity function.
func TestGetSeverity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		findingType string
		expected    Severity
	}{
		{"common_password", SeverityCritical},
		{"username_match", SeverityCritical},
		{"short_length", SeverityHigh},
		{"repeated_characters", SeverityMedium},
		{"predictable_sequence", SeverityMedium},
		{"embedded_year", SeverityMedium},
		{"missing_uppercase", SeverityLow},
		{"missing_symbol", SeverityLow},
		{FindingTypeGuessable, SeverityInfo},

		// Unknown finding type defaults to Info
		{"unknown_type", SeverityInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.findingType, func(t *testing.T) {
			t.Parallel()
			result := GetSeverity(tc.findingType)
			if result != tc.expected {
				t.Errorf("GetSeverity(%q) = %v, expected %v", tc.findingType, result, tc.expected)
			}
		})
	}
}

// TestSeverityOrdering tests that severities sort from least to most severe.
func TestSeverityOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Severity{SeverityInfo, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %s < %s", ordered[i-1], ordered[i])
		}
	}
}

// TestFindingTypeForSuggestion tests that every engine suggestion has a finding type.
func TestFindingTypeForSuggestion(t *testing.T) {
	t.Parallel()

	suggestions := []string{
		SuggestionCommonPassword,
		SuggestionUsername,
		SuggestionRepeated,
		SuggestionSequence,
		SuggestionYear,
		SuggestionAddUppercase,
		SuggestionAddLowercase,
		SuggestionIncludeNumbers,
		SuggestionIncludeSymbols,
		SuggestionMinimumLength,
	}

	for _, s := range suggestions {
		t.Run(s, func(t *testing.T) {
			t.Parallel()

			findingType := FindingTypeForSuggestion(s)
			if findingType == "unknown" {
				t.Fatalf("suggestion %q has no finding type", s)
			}

			info := GetFindingInfo(findingType)
			if info.Title == "" {
				t.Errorf("finding type %q has empty Title", findingType)
			}
			if info.Impact == "" {
				t.Errorf("finding type %q has empty Impact", findingType)
			}
			if info.Recommendation == "" {
				t.Errorf("finding type %q has empty Recommendation", findingType)
			}
		})
	}

	t.Run("unrecognized suggestion maps to unknown", func(t *testing.T) {
		t.Parallel()
		if got := FindingTypeForSuggestion("Be creative."); got != "unknown" {
			t.Errorf("expected unknown, got %q", got)
		}
	})
}

// TestGetFindingInfo tests the GetFindingInfo function.
func TestGetFindingInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		findingType string
		want        Severity
	}{
		{name: "known type", findingType: "common_password", want: SeverityCritical},
		{name: "guess estimate", findingType: FindingTypeGuessable, want: SeverityInfo},
		{name: "unknown type falls back to info", findingType: "completely_unknown_type", want: SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := GetFindingInfo(tt.findingType)
			if info.Severity != tt.want {
				t.Errorf("expected %s, got %s", tt.want, info.Severity)
			}
			if info.Impact == "" || info.Recommendation == "" {
				t.Errorf("expected Impact and Recommendation, got %+v", info)
			}
		})
	}
}
