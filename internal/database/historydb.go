package database

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/argon2"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/pwmeter/internal/model"
)

// DBFileName is the name of the history database inside the data directory.
const DBFileName = "pwmeter.db"

// Argon2id parameters for fingerprints.
// These follow the OWASP minimum for argon2id (19 MiB, t=1, p=1).
const (
	argonTime    = 1
	argonMemory  = 19 * 1024
	argonThreads = 1
	argonKeyLen  = 32
	saltLen      = 16
)

// ErrNoFingerprint is returned when saving a report without a fingerprint.
var ErrNoFingerprint = errors.New("report has no fingerprint")

// HistoryDB provides SQLite-based storage for analysis history.
// It never stores a password. Entries are linked by an argon2id
// fingerprint computed with a salt that is unique to the database file.
//
// Design decision: The salt lives in the database rather than in the
// config file so that copying the config to another machine does not make
// fingerprints comparable across history files.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// salt is the per-database fingerprint salt.
	salt []byte
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the given directory.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	if err := hdb.loadSalt(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load fingerprint salt: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Meta holds per-database values such as the fingerprint salt
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	-- History stores one row per analyzed password, without the password
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		score INTEGER NOT NULL,
		rating TEXT NOT NULL,
		entropy REAL NOT NULL,
		suggestions TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_history_label ON history(label);
	CREATE INDEX IF NOT EXISTS idx_history_fingerprint ON history(fingerprint);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// loadSalt reads the salt, creating it on first use.
func (hdb *HistoryDB) loadSalt() error {
	ctx := context.Background()

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return err
	}

	// INSERT OR IGNORE keeps the first salt if another process won the race.
	if _, err := hdb.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO meta (key, value) VALUES ('salt', ?)`,
		hex.EncodeToString(salt),
	); err != nil {
		return err
	}

	var stored string
	if err := hdb.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'salt'`).Scan(&stored); err != nil {
		return err
	}

	decoded, err := hex.DecodeString(stored)
	if err != nil {
		return err
	}
	hdb.salt = decoded
	return nil
}

// Fingerprint returns the hex-encoded argon2id hash of the password under
// this database's salt. Equal passwords give equal fingerprints within one
// database only.
func (hdb *HistoryDB) Fingerprint(password string) string {
	key := argon2.IDKey([]byte(password), hdb.salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// HistoryEntry represents a stored analysis.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	Label       string    `json:"label"`
	Fingerprint string    `json:"-"`
	Score       int       `json:"score"`
	Rating      string    `json:"rating"`
	Entropy     float64   `json:"entropy"`
	Suggestions []string  `json:"suggestions"`
	Timestamp   time.Time `json:"timestamp"`
}

// Save stores a report. The report must carry a fingerprint.
func (hdb *HistoryDB) Save(ctx context.Context, report *model.PasswordReport) (int64, error) {
	if report.Fingerprint == "" {
		return 0, ErrNoFingerprint
	}

	suggestions := report.Result.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	suggestionsJSON, err := json.Marshal(suggestions)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize suggestions: %w", err)
	}

	query := `
	INSERT INTO history (label, fingerprint, score, rating, entropy, suggestions)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		report.Label,
		report.Fingerprint,
		report.Result.Score,
		report.Result.Rating.String(),
		report.Result.Entropy,
		string(suggestionsJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save history entry: %w", err)
	}

	return result.LastInsertId()
}

// CountFingerprint returns how many entries share the fingerprint.
func (hdb *HistoryDB) CountFingerprint(ctx context.Context, fingerprint string) (int, error) {
	var count int
	err := hdb.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM history WHERE fingerprint = ?`,
		fingerprint,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count fingerprint: %w", err)
	}
	return count, nil
}

// List returns the most recent entries, newest first.
// A limit of zero or less returns every entry.
func (hdb *HistoryDB) List(ctx context.Context, limit int) ([]HistoryEntry, error) {
	return hdb.query(ctx, "", limit)
}

// ByLabel returns the entries for a label, newest first.
func (hdb *HistoryDB) ByLabel(ctx context.Context, label string, limit int) ([]HistoryEntry, error) {
	return hdb.query(ctx, label, limit)
}

// query lists entries with an optional label filter.
func (hdb *HistoryDB) query(ctx context.Context, label string, limit int) ([]HistoryEntry, error) {
	query := `
	SELECT id, label, fingerprint, score, rating, entropy, suggestions, timestamp
	FROM history
	WHERE 1=1
	`
	args := make([]any, 0, 2)

	if label != "" {
		query += " AND label = ?"
		args = append(args, label)
	}

	// LIMIT -1 means no limit in SQLite.
	if limit <= 0 {
		limit = -1
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var suggestionsJSON string
		var timestamp string

		if err := rows.Scan(
			&e.ID,
			&e.Label,
			&e.Fingerprint,
			&e.Score,
			&e.Rating,
			&e.Entropy,
			&suggestionsJSON,
			&timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		e.Timestamp = parseTimestamp(timestamp)
		if err := json.Unmarshal([]byte(suggestionsJSON), &e.Suggestions); err != nil {
			e.Suggestions = []string{}
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Clear deletes every history entry and returns how many were removed.
// The salt is kept so fingerprints stay comparable.
func (hdb *HistoryDB) Clear(ctx context.Context) (int64, error) {
	result, err := hdb.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return result.RowsAffected()
}

// Trend returns the score change between the two most recent entries.
// Entries must be ordered newest first. ok is false with fewer than two entries.
func Trend(entries []HistoryEntry) (delta int, ok bool) {
	if len(entries) < 2 {
		return 0, false
	}
	return entries[0].Score - entries[1].Score, true
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
