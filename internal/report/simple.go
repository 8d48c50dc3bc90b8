package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nao1215/pwmeter/internal/model"
)

// ruleWidth is the width of the horizontal rules in text output.
const ruleWidth = 70

// barWidth is the number of cells in the score bar.
const barWidth = 20

// SimpleWriter outputs human-readable text reports.
// The score bar and rating are colored by the result's color hint, matching
// the meter of the browser front end.
//
// Design decision: Colors are applied with fatih/color and can be switched
// off per writer, so piped output and tests stay plain ASCII.
type SimpleWriter struct {
	baseWriter

	// useColor enables ANSI colors.
	useColor bool

	// verbose adds impact and recommendation text to each finding.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables or disables ANSI colors.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.useColor = enabled
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
// Colors are off unless WithColor(true) is given.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs a single report in human-readable format.
func (w *SimpleWriter) Write(report *model.PasswordReport) (int, error) {
	var sb strings.Builder

	w.writeBanner(&sb, "PASSWORD STRENGTH REPORT")
	w.writeResult(&sb, report)
	w.writeFindings(&sb, report.Findings)
	w.writeFooter(&sb)

	return io.WriteString(w.output, sb.String())
}

// WriteSummary outputs a batch summary followed by a compact line per report.
func (w *SimpleWriter) WriteSummary(summary *model.Summary) (int, error) {
	var sb strings.Builder

	w.writeBanner(&sb, "PASSWORD BATCH REPORT")

	fmt.Fprintf(&sb, "Analyzed:       %d password(s)\n", summary.Total)
	fmt.Fprintf(&sb, "Average Score:  %.1f/100\n", summary.AverageScore)
	fmt.Fprintf(&sb, "Average Entropy: %.1f bits\n\n", summary.AverageEntropy)

	w.writeSection(&sb, "RATING DISTRIBUTION")
	fmt.Fprintf(&sb, "  Strong: %d\n", summary.StrongCount)
	fmt.Fprintf(&sb, "  Fair:   %d\n", summary.FairCount)
	fmt.Fprintf(&sb, "  Weak:   %d\n", summary.WeakCount)
	fmt.Fprintf(&sb, "  Empty:  %d\n\n", summary.EmptyCount)

	w.writeSection(&sb, "SEVERITY SUMMARY")
	fmt.Fprintf(&sb, "  CRITICAL: %d\n", summary.CriticalCount)
	fmt.Fprintf(&sb, "  HIGH:     %d\n", summary.HighCount)
	fmt.Fprintf(&sb, "  MEDIUM:   %d\n", summary.MediumCount)
	fmt.Fprintf(&sb, "  LOW:      %d\n", summary.LowCount)
	fmt.Fprintf(&sb, "  INFO:     %d\n\n", summary.InfoCount)
	fmt.Fprintf(&sb, "  TOTAL:    %d findings\n\n", summary.TotalFindings())

	w.writeSection(&sb, "PASSWORDS")
	for _, r := range summary.Reports {
		line := fmt.Sprintf("%3d/100 %-15s", r.Result.Score, r.Result.Rating)
		fmt.Fprintf(&sb, "  %-12s %s %s\n", r.Label, w.colorize(r.Result.Color, line), w.bar(r.Result))
		if r.ErrorMessage != "" {
			fmt.Fprintf(&sb, "               error: %s\n", r.ErrorMessage)
		}
	}
	sb.WriteString("\n")

	w.writeFooter(&sb)

	return io.WriteString(w.output, sb.String())
}

// writeBanner writes the double-ruled title block.
func (w *SimpleWriter) writeBanner(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	pad := max(0, (ruleWidth-len(title))/2)
	sb.WriteString(strings.Repeat(" ", pad) + title + "\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
}

// writeSection writes a single-ruled section header.
func (w *SimpleWriter) writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

// writeResult writes the score, rating and entropy block.
func (w *SimpleWriter) writeResult(sb *strings.Builder, report *model.PasswordReport) {
	if report.Label != "" {
		fmt.Fprintf(sb, "Label:      %s\n", report.Label)
	}
	fmt.Fprintf(sb, "Analyzed:   %s\n", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Length:     %d characters\n", report.Length)
	fmt.Fprintf(sb, "Score:      %s %s\n",
		w.colorize(report.Result.Color, fmt.Sprintf("%d/100", report.Result.Score)),
		w.bar(report.Result))
	fmt.Fprintf(sb, "Rating:     %s\n", w.colorize(report.Result.Color, report.Result.Rating.String()))
	fmt.Fprintf(sb, "Entropy:    %.1f bits\n", report.Result.Entropy)

	if g := report.GuessEstimate; g != nil {
		fmt.Fprintf(sb, "Crack Time: %s (estimator score %d/4)\n", g.CrackTimeDisplay, g.Score)
	}
	if report.SeenBefore > 0 {
		fmt.Fprintf(sb, "History:    seen %d time(s) before\n", report.SeenBefore)
	}
	if report.ErrorMessage != "" {
		fmt.Fprintf(sb, "Status:     ERROR - %s\n", report.ErrorMessage)
	}
	sb.WriteString("\n")
}

// writeFindings writes findings grouped by severity.
func (w *SimpleWriter) writeFindings(sb *strings.Builder, findings []model.Finding) {
	w.writeSection(sb, "SUGGESTIONS")

	if len(findings) == 0 {
		sb.WriteString("  No suggestions. Nice password.\n\n")
		return
	}

	for _, severity := range severityOrder {
		var group []model.Finding
		for _, f := range findings {
			if f.Severity == severity {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(sb, "[%s] %s\n", severityIndicator(severity), severity.String())
		for _, f := range group {
			fmt.Fprintf(sb, "  * %s\n", f.Suggestion)
			if w.verbose {
				if f.Impact != "" {
					fmt.Fprintf(sb, "    Impact: %s\n", f.Impact)
				}
				if f.Recommendation != "" {
					fmt.Fprintf(sb, "    Fix:    %s\n", f.Recommendation)
				}
			}
		}
		sb.WriteString("\n")
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

// bar renders the score as a fixed-width meter.
func (w *SimpleWriter) bar(result model.AnalysisResult) string {
	filled := result.Score * barWidth / 100
	meter := strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
	return "[" + w.colorize(result.Color, meter) + "]"
}

// colorize wraps s in the ANSI color for the hint when colors are enabled.
func (w *SimpleWriter) colorize(hint model.ColorHint, s string) string {
	c := hintColor(hint)
	if w.useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// hintColor maps a color hint to a terminal color.
func hintColor(hint model.ColorHint) *color.Color {
	switch hint {
	case model.ColorPositive:
		return color.New(color.FgGreen, color.Bold)
	case model.ColorCaution:
		return color.New(color.FgYellow)
	case model.ColorElevatedAlert:
		return color.New(color.FgHiRed)
	case model.ColorAlert:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

// severityIndicator returns a visual indicator for the severity level.
func severityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityCritical:
		return "!!!"
	case model.SeverityHigh:
		return "!!"
	case model.SeverityMedium:
		return "!"
	case model.SeverityLow:
		return "-"
	case model.SeverityInfo:
		return "i"
	default:
		return "?"
	}
}
