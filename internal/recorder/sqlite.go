package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists dispatched updates to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS updates (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp   INTEGER NOT NULL,
		kind        TEXT NOT NULL,
		price_usd   REAL,
		price_eur   REAL,
		alert       TEXT,
		chart_sent  INTEGER,
		note        TEXT
	)`
	if _, err := r.db.Exec(stmt); err != nil {
		return fmt.Errorf("create updates table: %w", err)
	}
	return nil
}

// RecordUpdate inserts one dispatched update.
func (r *SQLiteRecorder) RecordUpdate(evt *UpdateEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO updates (timestamp, kind, price_usd, price_eur, alert, chart_sent, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), evt.Kind, evt.PriceUSD, evt.PriceEUR, evt.Alert, evt.ChartSent, evt.Note,
	)
	if err != nil {
		return fmt.Errorf("insert update: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
