package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"snipyard/internal/ports"
)

// HistoryStore implements ports.History using SQLite. One database per
// corpus path, so histories of different corpora never mix.
type HistoryStore struct {
	db *sql.DB
}

// Ensure HistoryStore implements History
var _ ports.History = (*HistoryStore)(nil)

// OpenHistory opens (creating if needed) the history database for corpusPath.
func OpenHistory(corpusPath string) (*HistoryStore, error) {
	dbPath := databasePath(corpusPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS history (
			display TEXT NOT NULL,
			chosen_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_chosen_at ON history(chosen_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &HistoryStore{db: db}, nil
}

// Close closes the database connection
func (h *HistoryStore) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Add records a picked candidate's display string.
func (h *HistoryStore) Add(display string) error {
	_, err := h.db.Exec(
		`INSERT INTO history (display, chosen_at) VALUES (?, ?)`,
		display, time.Now().Unix(),
	)
	return err
}

// Recent returns up to limit display strings, most recent first, without
// duplicates.
func (h *HistoryStore) Recent(limit int) ([]string, error) {
	rows, err := h.db.Query(`
		SELECT display FROM history
		GROUP BY display
		ORDER BY MAX(chosen_at) DESC, MAX(rowid) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var displays []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		displays = append(displays, d)
	}
	return displays, rows.Err()
}

// databasePath returns the path for the SQLite database
func databasePath(corpusPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash corpus path for unique DB name
	h := sha256.Sum256([]byte(corpusPath))
	hash := hex.EncodeToString(h[:8])

	return filepath.Join(dataHome, "snipyard", hash+".db")
}
