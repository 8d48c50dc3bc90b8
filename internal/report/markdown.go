package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/pwmeter/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, for example when
// auditing a list of service account passwords.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs a single report in Markdown format.
func (w *MarkdownWriter) Write(report *model.PasswordReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Strength Report")
	md.PlainText("")
	w.writeResultTable(md, report)
	w.writeAlert(md, report.Result, report.HighestSeverity())
	w.writeFindings(md, report.Findings)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteSummary outputs a batch summary in Markdown format.
func (w *MarkdownWriter) WriteSummary(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Batch Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Analyzed", summary.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
			{"Passwords", strconv.Itoa(summary.Total)},
			{"Average Score", fmt.Sprintf("%.1f/100", summary.AverageScore)},
			{"Average Entropy", fmt.Sprintf("%.1f bits", summary.AverageEntropy)},
		},
	})
	md.PlainText("")

	md.H2("Rating Distribution")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Rating", "Count"},
		Rows: [][]string{
			{"🟢 Strong", strconv.Itoa(summary.StrongCount)},
			{"🟠 Fair", strconv.Itoa(summary.FairCount)},
			{"🔴 Weak", strconv.Itoa(summary.WeakCount)},
			{"⚪ Empty", strconv.Itoa(summary.EmptyCount)},
		},
	})
	md.PlainText("")
	if summary.Total > 0 {
		w.writeRatingChart(md, summary)
	}

	w.writeBatchAlert(md, summary)

	md.H2("Passwords")
	md.PlainText("")
	if len(summary.Reports) == 0 {
		md.PlainText("No passwords analyzed.")
		md.PlainText("")
	} else {
		rows := make([][]string, len(summary.Reports))
		for i, r := range summary.Reports {
			rows[i] = []string{
				r.Label,
				strconv.Itoa(r.Result.Score),
				ratingBadge(r.Result.Color) + " " + r.Result.Rating.String(),
				fmt.Sprintf("%.1f", r.Result.Entropy),
				strconv.Itoa(len(r.Findings)),
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Label", "Score", "Rating", "Entropy", "Findings"},
			Rows:   rows,
		})
		md.PlainText("")

		for _, r := range summary.Reports {
			if len(r.Findings) == 0 {
				continue
			}
			md.Details(r.Label, joinSuggestions(r.Findings))
		}
		md.PlainText("")
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeResultTable writes the result overview table.
func (w *MarkdownWriter) writeResultTable(md *markdown.Markdown, report *model.PasswordReport) {
	rows := [][]string{}
	if report.Label != "" {
		rows = append(rows, []string{"Label", report.Label})
	}
	rows = append(rows,
		[]string{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
		[]string{"Length", strconv.Itoa(report.Length)},
		[]string{"Score", strconv.Itoa(report.Result.Score) + "/100"},
		[]string{"Rating", ratingBadge(report.Result.Color) + " " + report.Result.Rating.String()},
		[]string{"Entropy", fmt.Sprintf("%.1f bits", report.Result.Entropy)},
	)
	if g := report.GuessEstimate; g != nil {
		rows = append(rows, []string{"Crack Time", fmt.Sprintf("%s (estimator score %d/4)", g.CrackTimeDisplay, g.Score)})
	}
	if report.SeenBefore > 0 {
		rows = append(rows, []string{"Seen Before", strconv.Itoa(report.SeenBefore)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRatingChart writes a mermaid pie chart of the rating distribution.
func (w *MarkdownWriter) writeRatingChart(md *markdown.Markdown, summary *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Rating Distribution"),
		piechart.WithShowData(true),
	)

	if summary.StrongCount > 0 {
		chart.LabelAndIntValue("Strong", uint64(summary.StrongCount))
	}
	if summary.FairCount > 0 {
		chart.LabelAndIntValue("Fair", uint64(summary.FairCount))
	}
	if summary.WeakCount > 0 {
		chart.LabelAndIntValue("Weak", uint64(summary.WeakCount))
	}
	if summary.EmptyCount > 0 {
		chart.LabelAndIntValue("Empty", uint64(summary.EmptyCount))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert for a single result.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result model.AnalysisResult, highest model.Severity) {
	switch {
	case result.Rating == model.RatingStart:
		md.Note("No password was given.")
	case highest == model.SeverityCritical:
		md.Cautionf("This password is trivially guessable and scored %d/100.", result.Score)
	case result.Rating == model.RatingWeak:
		md.Warningf("This password is weak (%d/100).", result.Score)
	case result.Rating == model.RatingFair:
		md.Importantf("This password is fair (%d/100) and can be improved.", result.Score)
	default:
		md.Tip("This password is strong.")
	}
	md.PlainText("")
}

// writeBatchAlert writes an alert summarizing the batch.
func (w *MarkdownWriter) writeBatchAlert(md *markdown.Markdown, summary *model.Summary) {
	switch {
	case summary.CriticalCount > 0:
		md.Cautionf("%d password(s) are common or contain the username.", summary.CriticalCount)
	case summary.WeakCount > 0:
		md.Warningf("%d password(s) are rated Weak.", summary.WeakCount)
	case summary.FairCount > 0:
		md.Importantf("%d password(s) are rated Fair.", summary.FairCount)
	case summary.Total > 0:
		md.Tip("Every password is rated Strong.")
	default:
		md.Note("No passwords analyzed.")
	}
	md.PlainText("")
}

// writeFindings writes findings grouped by severity.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, findings []model.Finding) {
	md.H2("Suggestions")
	md.PlainText("")

	if len(findings) == 0 {
		md.PlainText("No suggestions.")
		md.PlainText("")
		return
	}

	headers := map[model.Severity]string{
		model.SeverityCritical: "### 🔴 Critical",
		model.SeverityHigh:     "### 🟠 High",
		model.SeverityMedium:   "### 🟡 Medium",
		model.SeverityLow:      "### 🔵 Low",
		model.SeverityInfo:     "### ⚪ Info",
	}

	for _, severity := range severityOrder {
		var rows [][]string
		for _, f := range findings {
			if f.Severity != severity {
				continue
			}
			rows = append(rows, []string{f.Title, f.Suggestion, truncateString(orDash(f.Recommendation), 60)})
		}
		if len(rows) == 0 {
			continue
		}

		md.PlainText(headers[severity])
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Title", "Suggestion", "Recommendation"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [pwmeter](https://github.com/nao1215/pwmeter)*")
}

// ratingBadge returns an emoji for the color hint.
func ratingBadge(hint model.ColorHint) string {
	switch hint {
	case model.ColorPositive:
		return "🟢"
	case model.ColorCaution:
		return "🟠"
	case model.ColorElevatedAlert, model.ColorAlert:
		return "🔴"
	default:
		return "⚪"
	}
}

// joinSuggestions renders findings as a line-separated list.
func joinSuggestions(findings []model.Finding) string {
	s := ""
	for i, f := range findings {
		if i > 0 {
			s += "<br>"
		}
		s += fmt.Sprintf("%s: %s", f.SeverityText, f.Suggestion)
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
