package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwmeter/internal/config"
	pwlog "github.com/nao1215/pwmeter/internal/log"
	"github.com/nao1215/pwmeter/internal/passphrase"
	"github.com/nao1215/pwmeter/internal/strength"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// addConfigFlag registers the -c/--config flag.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pwmeter in current or home directory)")
}

// loadSettings reads the config file named by --config and applies it to cfg.
// An explicitly named file must exist.
func loadSettings(cmd *cobra.Command, cfg *config.Config) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg.ConfigFilePath = path

	settings, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyFile(settings)
	return nil
}

// setupLogger creates a secure text logger on stderr. Any secrets given are
// masked wherever they appear in log output.
func setupLogger(w io.Writer, verbose bool, secrets ...string) *slog.Logger {
	return pwlog.NewSecureLogger(w, verbose, secrets...)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// newEngine builds a scoring engine with the configured common passwords.
func newEngine(cfg *config.Config, logger *slog.Logger) *strength.Engine {
	return strength.NewEngine(
		strength.WithExtraCommonPasswords(cfg.Settings.ExtraCommonPasswords()),
		strength.WithLogger(logger),
	)
}

// newGenerator builds a passphrase generator with the configured extra words.
func newGenerator(cfg *config.Config) *passphrase.Generator {
	return passphrase.NewGenerator(passphrase.WithExtraWords(cfg.Settings.GeneratorWords()))
}

// openOutput returns the report destination: the file named by
// cfg.ReportFile, created with owner-only permissions, or stdout.
// The returned close function is always non-nil.
func openOutput(cfg *config.Config, stdout io.Writer) (io.Writer, func() error, error) {
	if cfg.ReportFile == "" {
		return stdout, func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports may reveal how weak a password is, so only the owner may read them.
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
