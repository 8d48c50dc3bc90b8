package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nao1215/pwmeter/internal/config"
	"github.com/nao1215/pwmeter/internal/database"
	"github.com/nao1215/pwmeter/internal/model"
	"github.com/nao1215/pwmeter/internal/pipeline"
	"github.com/nao1215/pwmeter/internal/report"
)

// ErrNoTerminal is returned when a password prompt is needed but stdin is
// not a terminal.
var ErrNoTerminal = errors.New("stdin is not a terminal (use --stdin or --list)")

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a password and suggest improvements",
		Long: `Analyze scores a password from 0 to 100, rates it Weak, Fair or Strong,
and lists concrete suggestions for improving it.

The password is read from a hidden prompt by default. It is never accepted
as a command line argument, because arguments end up in shell history and
process listings.

Examples:
  # Prompt for a password
  pwmeter analyze

  # Check that the password does not contain the username
  pwmeter analyze -u alice@example.com

  # Read the password from a pipe
  printf '%s\n' "$PASSWORD" | pwmeter analyze --stdin

  # Analyze a file with one password per line
  pwmeter analyze --list passwords.txt --markdown -o report.md

  # Record the result in the history database
  pwmeter analyze --history --label "mail account"`,
		Args: cobra.NoArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("username", "u", "",
		"Username or email the password must not contain")
	cmd.Flags().StringP("label", "l", "",
		"Label for this password in reports and history")

	// Input flags
	cmd.Flags().Bool("stdin", false,
		"Read the password from the first line of standard input")
	cmd.Flags().StringP("list", "L", "",
		"Analyze every line of the given file (batch mode)")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses in batch mode")

	// Analysis flags
	cmd.Flags().Bool("no-estimate", false,
		"Skip the guess-based crack time estimate")
	cmd.Flags().BoolP("history", "H", false,
		"Record the result in the history database (fingerprint only)")

	addConfigFlag(cmd)

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-color", false,
		"Disable colored output")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	candidates, err := readCandidates(cmd, cfg)
	if err != nil {
		return err
	}

	// Every password is registered as a secret so it is masked even if it
	// reaches a log message by accident.
	secrets := make([]string, 0, len(candidates))
	for _, c := range candidates {
		secrets = append(secrets, c.Password)
	}
	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose, secrets...)

	ctx, cancel := signalContext(logger)
	defer cancel()

	return runAnalyze(ctx, cfg, candidates, cmd.OutOrStdout(), logger)
}

// buildAnalyzeConfig creates a Config from the analyze command flags.
// Config file values are applied first so that flags take precedence.
func buildAnalyzeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if err := loadSettings(cmd, cfg); err != nil {
		return nil, err
	}

	var err error

	if cfg.Username, err = cmd.Flags().GetString("username"); err != nil {
		return nil, err
	}
	if cfg.Label, err = cmd.Flags().GetString("label"); err != nil {
		return nil, err
	}
	if cfg.ReadStdin, err = cmd.Flags().GetBool("stdin"); err != nil {
		return nil, err
	}
	if cfg.ListFile, err = cmd.Flags().GetString("list"); err != nil {
		return nil, err
	}
	if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
		return nil, err
	}

	noEstimate, err := cmd.Flags().GetBool("no-estimate")
	if err != nil {
		return nil, err
	}
	cfg.Estimate = !noEstimate

	if cmd.Flags().Changed("history") {
		if cfg.SaveToDB, err = cmd.Flags().GetBool("history"); err != nil {
			return nil, err
		}
	}

	if err := readReportFlags(cmd, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readReportFlags reads the report format and destination flags.
func readReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	if cfg.NoColor, err = cmd.Flags().GetBool("no-color"); err != nil {
		return err
	}
	return nil
}

// readCandidates collects the passwords to analyze from the list file,
// standard input, or an interactive prompt.
func readCandidates(cmd *cobra.Command, cfg *config.Config) ([]pipeline.Candidate, error) {
	switch {
	case cfg.ListFile != "":
		return readPasswordList(cfg.ListFile, cfg.Username)

	case cfg.ReadStdin:
		password, err := readLine(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return []pipeline.Candidate{{Label: singleLabel(cfg), Username: cfg.Username, Password: password}}, nil

	default:
		password, err := promptPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		return []pipeline.Candidate{{Label: singleLabel(cfg), Username: cfg.Username, Password: password}}, nil
	}
}

// singleLabel returns the label for a single analysis.
func singleLabel(cfg *config.Config) string {
	if cfg.Label != "" {
		return cfg.Label
	}
	return "#1"
}

// readLine reads the first line of r without its line terminator.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(in io.Reader, prompt io.Writer) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return "", ErrNoTerminal
	}

	fmt.Fprint(prompt, "Password: ")
	password, err := term.ReadPassword(int(f.Fd())) //nolint:gosec // fd fits in int
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// readPasswordList reads one password per line. Blank lines are skipped and
// each password is labelled with its line number.
func readPasswordList(path, username string) ([]pipeline.Candidate, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open password list: %w", err)
	}
	defer f.Close()

	var candidates []pipeline.Candidate
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		password := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(password) == "" {
			continue
		}
		candidates = append(candidates, pipeline.Candidate{
			Label:    fmt.Sprintf("line %d", line),
			Username: username,
			Password: password,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password list: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no passwords found in %s", path)
	}
	return candidates, nil
}

// runAnalyze analyzes the candidates and writes the report.
// A single candidate outside list mode gets a full report; anything else
// gets a batch summary.
func runAnalyze(ctx context.Context, cfg *config.Config, candidates []pipeline.Candidate, stdout io.Writer, logger *slog.Logger) error {
	newPipeline, closeHistory, err := pipelineFactory(cfg, logger)
	if err != nil {
		return err
	}
	defer closeHistory()

	out, closeOutput, err := openOutput(cfg, stdout)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // close errors after a successful write are not actionable

	writer := newReportWriter(cfg, out)

	if len(candidates) == 1 && cfg.ListFile == "" {
		// The report is printed even if history failed; the error is in it.
		rep, _ := newPipeline().Run(ctx, candidates[0]) //nolint:errcheck // recorded in report
		_, err := writer.Write(rep)
		return err
	}

	bp := pipeline.NewBatchProcessor(newPipeline,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)
	reports, err := bp.ProcessBatch(ctx, candidates)
	if err != nil {
		return fmt.Errorf("batch analysis interrupted: %w", err)
	}

	_, err = writer.WriteSummary(model.NewSummary(reports))
	return err
}

// pipelineFactory returns a function building the configured pipeline, and
// a function closing the history database if one was opened.
func pipelineFactory(cfg *config.Config, logger *slog.Logger) (func() *pipeline.Pipeline, func(), error) {
	engine := newEngine(cfg, logger)

	configOpts := []pipeline.DefaultPipelineOption{
		pipeline.WithPipelineEngine(engine),
		pipeline.WithPipelineEstimate(cfg.Estimate),
	}

	closeHistory := func() {}
	if cfg.SaveToDB {
		db, err := database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open history database: %w", err)
		}
		logger.Debug("history database opened", "dir", cfg.DBDir)
		configOpts = append(configOpts, pipeline.WithPipelineHistory(db, true))
		closeHistory = func() { _ = db.Close() }
	}

	pipelineOpts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithContinueOnError(true),
	}

	return func() *pipeline.Pipeline {
		return pipeline.DefaultPipeline(pipelineOpts, configOpts...)
	}, closeHistory, nil
}

// newReportWriter selects the report writer for the configured format.
// Colors are used only for a terminal on stdout.
func newReportWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		useColor := !cfg.NoColor && cfg.ReportFile == "" && !color.NoColor
		return report.NewSimpleWriter(out,
			report.WithColor(useColor),
			report.WithVerbose(cfg.Verbose),
		)
	}
}
