package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrConflictingInputs is returned when both --stdin and --list are given.
	ErrConflictingInputs = errors.New("conflicting inputs: --stdin and --list cannot be used together")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidCount is returned when the passphrase count is out of range.
	ErrInvalidCount = errors.New("invalid count: must be between 1 and 100")

	// ErrInvalidListenAddress is returned when the listen address is not host:port.
	ErrInvalidListenAddress = errors.New("invalid listen address: must be in host:port form")

	// ErrInvalidMaxConnections is returned when the connection limit is not positive.
	ErrInvalidMaxConnections = errors.New("invalid max connections: must be positive")

	// ErrInvalidMaxBodySize is returned when the body size limit is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrInvalidTimeout is returned when the read timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidHistoryLimit is returned when the history limit is not positive.
	ErrInvalidHistoryLimit = errors.New("invalid history limit: must be positive")
)
