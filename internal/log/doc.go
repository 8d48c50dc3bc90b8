// Package log provides secure logging functionality with automatic masking
// of sensitive information, built on top of the standard slog package.
//
// # Security Features
//
// The SecureHandler masks:
//   - Attributes whose key names password material, usernames, salts or
//     fingerprints (password, passphrase, username, fingerprint, ...)
//   - Values that look like bearer tokens, JWTs or hex digests
//   - Known literal secrets registered with WithSecrets, wherever they
//     appear in the message or in string, error and Stringer values
//
// Even in verbose mode, sensitive values are masked so that logs can be
// shared without leaking the passwords that were analyzed.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose, password)
//	logger.Debug("analyzing", "password", password) // password=***REDACTED***
//	slog.SetDefault(logger)
package log
