package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwmeter/internal/config"
	"github.com/nao1215/pwmeter/internal/database"
)

// historyOutput is the JSON form of the history listing.
type historyOutput struct {
	Label   string                  `json:"label,omitempty"`
	Entries []database.HistoryEntry `json:"entries"`
	Trend   *int                    `json:"trend,omitempty"`
}

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recorded analyses",
		Long: `History shows analyses recorded with 'pwmeter analyze --history'.

Only the label, score, rating, entropy, suggestions and a salted
fingerprint are stored. Passwords are never written to the database.

Examples:
  # List the most recent analyses
  pwmeter history

  # Show entries for one label and the score trend
  pwmeter history --label "mail account"

  # Remove all entries
  pwmeter history --clear`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().Bool("list", true,
		"List recorded analyses (default action)")
	cmd.Flags().StringP("label", "l", "",
		"Show only entries with this label, with the score trend")
	cmd.Flags().Bool("clear", false,
		"Delete all recorded analyses")
	cmd.Flags().Int("limit", config.DefaultHistoryLimit,
		"Maximum number of entries to show")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON")
	addConfigFlag(cmd)

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if err := loadSettings(cmd, cfg); err != nil {
		return err
	}

	var err error
	if cfg.Label, err = cmd.Flags().GetString("label"); err != nil {
		return err
	}
	if cfg.HistoryLimit, err = cmd.Flags().GetInt("limit"); err != nil {
		return err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	clearAll, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return err
	}
	if clearAll && cmd.Flags().Changed("list") {
		return errors.New("conflicting actions: --list and --clear cannot be used together")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	out := cmd.OutOrStdout()

	if _, err := os.Stat(filepath.Join(cfg.DBDir, database.DBFileName)); errors.Is(err, os.ErrNotExist) {
		_, err := fmt.Fprintln(out, "No history recorded yet.")
		return err
	}

	db, err := database.Open(cfg.DBDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()
	logger.Debug("history database opened", "path", db.Path())

	ctx, cancel := signalContext(logger)
	defer cancel()

	if clearAll {
		n, err := db.Clear(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		_, err = fmt.Fprintf(out, "Removed %d entries.\n", n)
		return err
	}

	return showHistory(ctx, db, cfg, out)
}

// showHistory prints the recorded entries, newest first.
func showHistory(ctx context.Context, db *database.HistoryDB, cfg *config.Config, out io.Writer) error {
	var (
		entries []database.HistoryEntry
		err     error
	)
	if cfg.Label != "" {
		entries, err = db.ByLabel(ctx, cfg.Label, cfg.HistoryLimit)
	} else {
		entries, err = db.List(ctx, cfg.HistoryLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	result := historyOutput{Label: cfg.Label, Entries: entries}
	if cfg.Label != "" {
		if delta, ok := database.Trend(entries); ok {
			result.Trend = &delta
		}
	}

	if cfg.JSONReport {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return writeHistoryTable(out, result)
}

// writeHistoryTable prints entries as an aligned table.
func writeHistoryTable(out io.Writer, h historyOutput) error {
	if len(h.Entries) == 0 {
		_, err := fmt.Fprintln(out, "No history recorded yet.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tLABEL\tSCORE\tRATING\tENTROPY\tSUGGESTIONS")
	for _, e := range h.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%.1f\t%s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			e.Label,
			e.Score,
			e.Rating,
			e.Entropy,
			strings.Join(e.Suggestions, " "),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if h.Trend != nil {
		_, err := fmt.Fprintf(out, "\nTrend: %s\n", formatTrend(*h.Trend))
		return err
	}
	return nil
}

// formatTrend describes a score change.
func formatTrend(delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("+%d (improved)", delta)
	case delta < 0:
		return fmt.Sprintf("%d (worse)", delta)
	default:
		return "0 (unchanged)"
	}
}
