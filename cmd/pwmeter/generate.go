package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwmeter/internal/config"
	"github.com/nao1215/pwmeter/internal/model"
)

// generatedPassphrase is the JSON form of one generated passphrase.
type generatedPassphrase struct {
	Password string                `json:"password"`
	Analysis *model.AnalysisResult `json:"analysis,omitempty"`
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate memorable passphrases",
		Long: `Generate builds passphrases from an adjective, a noun, a two-digit number,
a three-digit number and two symbols, shuffled into a random order.
For example: 42Brave#Tiger517!

Examples:
  # Generate one passphrase
  pwmeter generate

  # Generate five passphrases and score each of them
  pwmeter generate -n 5 --analyze

  # Machine readable output
  pwmeter generate -n 3 --json`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().IntP("count", "n", config.DefaultCount,
		fmt.Sprintf("Number of passphrases to generate (1-%d)", config.MaxCount))
	cmd.Flags().BoolP("analyze", "a", false,
		"Score each generated passphrase")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON")
	addConfigFlag(cmd)

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if err := loadSettings(cmd, cfg); err != nil {
		return err
	}

	var err error
	if cfg.Count, err = cmd.Flags().GetInt("count"); err != nil {
		return err
	}
	if cfg.AnalyzeGenerated, err = cmd.Flags().GetBool("analyze"); err != nil {
		return err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	generator := newGenerator(cfg)
	engine := newEngine(cfg, logger)

	passphrases := make([]generatedPassphrase, 0, cfg.Count)
	for range cfg.Count {
		gp := generatedPassphrase{Password: generator.Generate()}
		if cfg.AnalyzeGenerated {
			result := engine.Analyze("", gp.Password)
			gp.Analysis = &result
		}
		passphrases = append(passphrases, gp)
	}
	logger.Debug("passphrases generated", "count", len(passphrases))

	if cfg.JSONReport {
		return writeGeneratedJSON(cmd.OutOrStdout(), passphrases)
	}
	return writeGeneratedText(cmd.OutOrStdout(), passphrases)
}

// writeGeneratedJSON writes the passphrases as an indented JSON array.
func writeGeneratedJSON(w io.Writer, passphrases []generatedPassphrase) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(passphrases); err != nil {
		return fmt.Errorf("failed to encode passphrases: %w", err)
	}
	return nil
}

// writeGeneratedText writes one passphrase per line, followed by its score
// and suggestions when analyzed.
func writeGeneratedText(w io.Writer, passphrases []generatedPassphrase) error {
	for _, gp := range passphrases {
		if gp.Analysis == nil {
			if _, err := fmt.Fprintln(w, gp.Password); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s  %d/100 %s (%.1f bits)\n",
			gp.Password, gp.Analysis.Score, gp.Analysis.Rating, gp.Analysis.Entropy); err != nil {
			return err
		}
		for _, s := range gp.Analysis.Suggestions {
			if _, err := fmt.Fprintf(w, "  - %s\n", s); err != nil {
				return err
			}
		}
	}
	return nil
}
