package config

import (
	"net"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pwmeter"

	// DefaultBatchSize is the number of passwords analyzed concurrently in
	// batch mode. Scoring is CPU-bound, so a small pool is enough.
	DefaultBatchSize = 8

	// DefaultCount is the number of passphrases generated per invocation.
	DefaultCount = 1

	// MaxCount caps the generate command to keep output readable.
	MaxCount = 100

	// DefaultListenAddress binds the HTTP API to loopback only.
	// Passwords travel in request bodies, so exposing the API beyond the
	// local machine must be an explicit choice.
	DefaultListenAddress = "127.0.0.1:8787"

	// DefaultMaxConnections limits concurrent HTTP connections.
	DefaultMaxConnections = 64

	// DefaultMaxBodySize limits HTTP request bodies. A password and username
	// fit comfortably in 4 KiB.
	DefaultMaxBodySize = 4 * 1024

	// DefaultReadTimeout bounds how long the server waits for a request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultHistoryLimit is the number of entries shown by history --list.
	DefaultHistoryLimit = 20
)

// Config holds all configuration options for pwmeter.
// This struct is populated from CLI flags and passed through the application
// via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of one struct per
// command. Most options are shared (report format, history, config file),
// and nesting would add complexity without significant benefit.
type Config struct {
	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .pwmeter in the current directory,
	// the user's home directory and the XDG config directory.
	ConfigFilePath string

	// Settings holds the contents of the configuration file.
	// It is never nil after the command builds its config.
	Settings *File

	// Username is compared against the password by the username rule.
	Username string

	// Label names the password in reports and history.
	Label string

	// ReadStdin reads the password from standard input instead of prompting.
	ReadStdin bool

	// ListFile is a file with one password per line for batch analysis.
	ListFile string

	// BatchSize is the number of concurrent analyses in batch mode.
	BatchSize int

	// Estimate enables the guess-based estimate step.
	Estimate bool

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// NoColor disables ANSI colors in the text report.
	NoColor bool

	// DBDir is the directory path for storing the SQLite history database.
	// Defaults to XDG data directory (~/.local/share/pwmeter on Linux).
	DBDir string

	// SaveToDB records each analysis in the history database.
	// Only fingerprints and results are stored, never the password.
	SaveToDB bool

	// Count is the number of passphrases to generate.
	Count int

	// AnalyzeGenerated scores each generated passphrase.
	AnalyzeGenerated bool

	// ListenAddress is the HTTP API address in "host:port" format.
	ListenAddress string

	// MaxConnections limits concurrent HTTP connections.
	MaxConnections int

	// MaxBodySize limits HTTP request bodies in bytes.
	MaxBodySize int64

	// ReadTimeout bounds how long the server waits for a request.
	ReadTimeout time.Duration

	// HistoryLimit is the number of entries listed by the history command.
	HistoryLimit int
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (batch size, listen address).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Settings:       &File{},
		BatchSize:      DefaultBatchSize,
		Estimate:       true,
		DBDir:          XDGDataDir(),
		Count:          DefaultCount,
		ListenAddress:  DefaultListenAddress,
		MaxConnections: DefaultMaxConnections,
		MaxBodySize:    DefaultMaxBodySize,
		ReadTimeout:    DefaultReadTimeout,
		HistoryLimit:   DefaultHistoryLimit,
	}
}

// ApplyFile stores the configuration file contents and applies the history
// settings it carries. Flags parsed afterwards take precedence.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		f = &File{}
	}
	c.Settings = f
	if f.History.Enabled != nil {
		c.SaveToDB = *f.History.Enabled
	}
	if f.History.Dir != "" {
		c.DBDir = f.History.Dir
	}
}

// XDGDataDir returns the XDG data directory for pwmeter.
// On Linux: ~/.local/share/pwmeter
// On macOS: ~/Library/Application Support/pwmeter
// On Windows: %LOCALAPPDATA%\pwmeter
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for pwmeter.
// On Linux: ~/.config/pwmeter
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast with clear error messages upfront.
func (c *Config) Validate() error {
	if c.ReadStdin && c.ListFile != "" {
		return ErrConflictingInputs
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.Count <= 0 || c.Count > MaxCount {
		return ErrInvalidCount
	}

	if _, _, err := net.SplitHostPort(c.ListenAddress); err != nil {
		return ErrInvalidListenAddress
	}

	if c.MaxConnections <= 0 {
		return ErrInvalidMaxConnections
	}

	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}

	if c.ReadTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.HistoryLimit <= 0 {
		return ErrInvalidHistoryLimit
	}

	return nil
}
