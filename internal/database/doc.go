// Package database provides SQLite-based history storage for pwmeter.
//
// The HistoryDB stores one row per analyzed password: its label, score,
// rating, entropy and suggestions, plus an argon2id fingerprint used to
// notice when the same password is analyzed again. The password itself is
// never written to disk.
//
// Design decision: We use SQLite (via modernc.org/sqlite) because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. WAL mode lets the server and the CLI share one history file
package database
