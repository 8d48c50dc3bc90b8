package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwmeter/internal/config"
	pwlog "github.com/nao1215/pwmeter/internal/log"
	"github.com/nao1215/pwmeter/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP API",
		Long: `Serve exposes the strength meter and passphrase generator over HTTP.

Endpoints:
  POST /v1/analyze   {"username": "...", "password": "..."} -> analysis
  POST /v1/generate  -> {"password": "...", "analysis": {...}}
  GET  /healthz      -> {"status": "ok"}

The server listens on the loopback interface by default. Passwords are
never logged. Request bodies larger than --max-body-size are rejected
with 413.

Examples:
  # Listen on the default address (127.0.0.1:8787)
  pwmeter serve

  # Analyze a password with curl
  curl -s -X POST localhost:8787/v1/analyze -d '{"password":"hunter2"}'`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().String("listen", config.DefaultListenAddress,
		"Address to listen on (host:port)")
	cmd.Flags().Int("max-connections", config.DefaultMaxConnections,
		"Maximum number of simultaneous connections")
	cmd.Flags().Int64("max-body-size", config.DefaultMaxBodySize,
		"Maximum request body size in bytes")
	cmd.Flags().Duration("read-timeout", config.DefaultReadTimeout,
		"Request read timeout")
	addConfigFlag(cmd)

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if err := loadSettings(cmd, cfg); err != nil {
		return err
	}

	var err error
	if cfg.ListenAddress, err = cmd.Flags().GetString("listen"); err != nil {
		return err
	}
	if cfg.MaxConnections, err = cmd.Flags().GetInt("max-connections"); err != nil {
		return err
	}
	if cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size"); err != nil {
		return err
	}
	if cfg.ReadTimeout, err = cmd.Flags().GetDuration("read-timeout"); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := pwlog.NewSecureJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)

	ctx, cancel := signalContext(logger)
	defer cancel()

	srv := server.New(
		server.WithEngine(newEngine(cfg, logger)),
		server.WithGenerator(newGenerator(cfg)),
		server.WithLogger(logger),
		server.WithMaxBodySize(cfg.MaxBodySize),
		server.WithMaxConnections(cfg.MaxConnections),
		server.WithReadTimeout(cfg.ReadTimeout),
	)

	fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", cfg.ListenAddress)
	return srv.ListenAndServe(ctx, cfg.ListenAddress)
}
