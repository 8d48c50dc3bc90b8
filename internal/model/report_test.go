package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

// TestColorHintCSS tests the CSS colors carried over from the browser front end.
func TestColorHintCSS(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		hint     ColorHint
		expected string
	}{
		{ColorNeutral, "#ddd"},
		{ColorPositive, "green"},
		{ColorCaution, "orange"},
		{ColorElevatedAlert, "tomato"},
		{ColorAlert, "red"},
		{ColorHint("purple"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.hint.String(), func(t *testing.T) {
			t.Parallel()
			if got := tc.hint.CSS(); got != tc.expected {
				t.Errorf("CSS() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

// TestCharacterClassesCount tests the Count helper.
func TestCharacterClassesCount(t *testing.T) {
	t.Parallel()

	if got := (CharacterClasses{}).Count(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := (CharacterClasses{Lower: true, Symbol: true}).Count(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := (CharacterClasses{Lower: true, Upper: true, Digit: true, Symbol: true}).Count(); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}

// TestAnalysisResultEqual tests value comparison of results.
func TestAnalysisResultEqual(t *testing.T) {
	t.Parallel()

	base := AnalysisResult{
		Score:       40,
		Rating:      RatingWeak,
		Color:       ColorElevatedAlert,
		Suggestions: []string{SuggestionAddUppercase},
		Entropy:     37.6,
	}

	t.Run("identical values are equal", func(t *testing.T) {
		t.Parallel()
		other := base
		other.Suggestions = []string{SuggestionAddUppercase}
		if !base.Equal(other) {
			t.Error("expected results to be equal")
		}
	})

	t.Run("different suggestions are not equal", func(t *testing.T) {
		t.Parallel()
		other := base
		other.Suggestions = []string{SuggestionIncludeNumbers}
		if base.Equal(other) {
			t.Error("expected results to differ")
		}
	})

	t.Run("different score is not equal", func(t *testing.T) {
		t.Parallel()
		other := base
		other.Score = 41
		if base.Equal(other) {
			t.Error("expected results to differ")
		}
	})
}

// TestAnalysisResultJSON tests the JSON field names consumed by front ends.
func TestAnalysisResultJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(AnalysisResult{
		Rating:      RatingStart,
		Color:       ColorNeutral,
		Suggestions: []string{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := string(data)
	for _, want := range []string{`"score":0`, `"rating":"Start typing..."`, `"color":"neutral"`, `"suggestions":[]`, `"entropy":0`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in %s", want, output)
		}
	}
}

// TestNewPasswordReport tests the PasswordReport constructor.
func TestNewPasswordReport(t *testing.T) {
	t.Parallel()

	report := NewPasswordReport("#1", "héllo")

	t.Run("sets label", func(t *testing.T) {
		t.Parallel()
		if report.Label != "#1" {
			t.Errorf("got %q, expected %q", report.Label, "#1")
		}
	})

	t.Run("counts length in characters", func(t *testing.T) {
		t.Parallel()
		if report.Length != 5 {
			t.Errorf("got %d, expected 5", report.Length)
		}
	})

	t.Run("sets analysis timestamp", func(t *testing.T) {
		t.Parallel()
		if report.DateAnalyzed.IsZero() {
			t.Error("expected DateAnalyzed to be set")
		}
		if time.Since(report.DateAnalyzed) > time.Second {
			t.Error("DateAnalyzed is too old")
		}
	})
}

// TestPasswordReportSetResult tests deriving findings from suggestions.
func TestPasswordReportSetResult(t *testing.T) {
	t.Parallel()

	report := NewPasswordReport("test", "aaaa")
	report.SetResult(AnalysisResult{
		Score:  0,
		Rating: RatingWeak,
		Color:  ColorAlert,
		Suggestions: []string{
			SuggestionRepeated,
			SuggestionAddUppercase,
			SuggestionMinimumLength,
		},
	})

	if len(report.Findings) != 3 {
		t.Fatalf("expected 3 findings, got %d", len(report.Findings))
	}

	t.Run("findings keep suggestion order", func(t *testing.T) {
		t.Parallel()
		if report.Findings[0].Suggestion != SuggestionRepeated {
			t.Errorf("unexpected first finding: %+v", report.Findings[0])
		}
		if report.Findings[2].Suggestion != SuggestionMinimumLength {
			t.Errorf("unexpected last finding: %+v", report.Findings[2])
		}
	})

	t.Run("findings carry severity text", func(t *testing.T) {
		t.Parallel()
		if report.Findings[0].SeverityText != "MEDIUM" {
			t.Errorf("expected MEDIUM, got %q", report.Findings[0].SeverityText)
		}
	})

	t.Run("highest severity", func(t *testing.T) {
		t.Parallel()
		if got := report.HighestSeverity(); got != SeverityHigh {
			t.Errorf("expected SeverityHigh, got %v", got)
		}
	})

	t.Run("filter by severity", func(t *testing.T) {
		t.Parallel()
		low := report.GetFindingsBySeverity(SeverityLow)
		if len(low) != 1 || low[0].Type != "missing_uppercase" {
			t.Errorf("unexpected low findings: %+v", low)
		}
	})
}

// TestPasswordReportJSONOmitsSecrets tests that the fingerprint and raw
// error value never reach JSON output.
func TestPasswordReportJSONOmitsSecrets(t *testing.T) {
	t.Parallel()

	report := NewPasswordReport("test", "Secret123!")
	report.Fingerprint = "deadbeef"
	report.Error = errors.New("boom")
	report.ErrorMessage = "boom"

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := string(data)
	if strings.Contains(output, "deadbeef") {
		t.Error("fingerprint must not be serialized")
	}
	if strings.Contains(output, "Secret123!") {
		t.Error("password must not be serialized")
	}
	if !strings.Contains(output, `"error":"boom"`) {
		t.Errorf("expected error message in output: %s", output)
	}
}

// TestNewSummary tests batch aggregation.
func TestNewSummary(t *testing.T) {
	t.Parallel()

	strong := NewPasswordReport("#1", "Aa1!Aa1!Aa1!")
	strong.SetResult(AnalysisResult{Score: 100, Rating: RatingStrong, Color: ColorPositive, Suggestions: []string{}, Entropy: 78.8})

	weak := NewPasswordReport("#2", "password")
	weak.SetResult(AnalysisResult{Score: 0, Rating: RatingWeak, Color: ColorAlert, Suggestions: []string{SuggestionCommonPassword}, Entropy: 37.6})

	empty := NewPasswordReport("#3", "")
	empty.SetResult(AnalysisResult{Rating: RatingStart, Color: ColorNeutral, Suggestions: []string{}})

	summary := NewSummary([]*PasswordReport{strong, nil, weak, empty})

	if summary.Total != 3 {
		t.Errorf("expected 3 reports, got %d", summary.Total)
	}
	if summary.StrongCount != 1 || summary.WeakCount != 1 || summary.EmptyCount != 1 || summary.FairCount != 0 {
		t.Errorf("unexpected rating counts: %+v", summary)
	}
	if summary.CriticalCount != 1 {
		t.Errorf("expected 1 critical finding, got %d", summary.CriticalCount)
	}
	if summary.TotalFindings() != 1 || !summary.HasFindings() {
		t.Errorf("expected exactly one finding, got %d", summary.TotalFindings())
	}
	if summary.AverageScore < 33.3 || summary.AverageScore > 33.4 {
		t.Errorf("unexpected average score %f", summary.AverageScore)
	}
}

// TestNewSummaryEmpty tests aggregation of an empty batch.
func TestNewSummaryEmpty(t *testing.T) {
	t.Parallel()

	summary := NewSummary(nil)
	if summary.Total != 0 || summary.AverageScore != 0 || summary.HasFindings() {
		t.Errorf("unexpected summary for empty batch: %+v", summary)
	}
	if summary.Reports == nil {
		t.Error("expected non-nil Reports slice")
	}
}
