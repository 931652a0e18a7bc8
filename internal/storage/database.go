package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const defaultDSN = ":memory:"

// SQLiteStore keeps documents and attempts in a SQLite database. The default
// DSN is an in-memory database that lives as long as the process.
type SQLiteStore struct {
	db           *sql.DB
	historyLimit int
}

// OpenSQLite keeps at most historyLimit attempts (default 500 when <= 0).
func OpenSQLite(ctx context.Context, dsn string, historyLimit int) (*SQLiteStore, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite(): failed to open database: %w", err)
	}
	// :memory: 는 커넥션마다 별도 DB가 생기므로 1개로 고정
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to connect to database: %w", err)
	}

	createDocumentsTable := `
	CREATE TABLE IF NOT EXISTS documents (
			"id" TEXT PRIMARY KEY,
			"subject_name" TEXT NOT NULL,
			"organization" TEXT NOT NULL,
			"role" TEXT NOT NULL,
			"issue_date" TEXT NOT NULL,
			"duration_label" TEXT NOT NULL,
			"status" TEXT NOT NULL,
			"remark" TEXT NOT NULL
	);`
	createAttemptsTable := `
	CREATE TABLE IF NOT EXISTS attempts (
			"seq" INTEGER PRIMARY KEY AUTOINCREMENT,
			"id" TEXT NOT NULL UNIQUE,
			"document_id" TEXT NOT NULL,
			"source" TEXT NOT NULL,
			"outcome" TEXT NOT NULL,
			"requested_at" TEXT NOT NULL,
			"completed_at" TEXT NOT NULL
	)`

	if _, err := db.ExecContext(ctx, createDocumentsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to create documents table: %w", err)
	}
	if _, err := db.ExecContext(ctx, createAttemptsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to create attempts table: %w", err)
	}
	return &SQLiteStore{db: db, historyLimit: historyLimit}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
