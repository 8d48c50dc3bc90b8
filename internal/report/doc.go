// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output with a colored score bar
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub-flavored Markdown with tables and a pie chart
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) so new output formats can be added
// without touching the scoring code.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output. No writer ever
// receives the password itself.
package report
