package storage

import (
	"context"
	"time"

	"DocVerifier_BluestockProject/internal/models"
)

const timeLayout = time.RFC3339Nano

func (s *SQLiteStore) RecordAttempt(ctx context.Context, attempt models.Attempt) error {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO attempts(id, document_id, source, outcome, requested_at, completed_at) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		attempt.ID,
		attempt.DocumentID,
		string(attempt.Source),
		string(attempt.Outcome),
		attempt.RequestedAt.UTC().Format(timeLayout),
		attempt.CompletedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return err
	}

	// 최근 historyLimit 건만 유지
	_, err = s.db.ExecContext(ctx,
		"DELETE FROM attempts WHERE seq <= (SELECT MAX(seq) FROM attempts) - ?",
		s.historyLimit,
	)
	return err
}

// ListAttempts returns up to limit attempts, newest first. limit <= 0 returns all.
func (s *SQLiteStore) ListAttempts(ctx context.Context, limit int) ([]models.Attempt, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT id, document_id, source, outcome, requested_at, completed_at
		FROM attempts
		ORDER BY seq DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := make([]models.Attempt, 0)
	for rows.Next() {
		var a models.Attempt
		var source, outcome string
		var requestedStr, completedStr string // SQLite는 시간을 문자열로 저장함

		if err := rows.Scan(&a.ID, &a.DocumentID, &source, &outcome, &requestedStr, &completedStr); err != nil {
			return nil, err
		}
		a.Source = models.Source(source)
		a.Outcome = models.Outcome(outcome)
		if a.RequestedAt, err = time.Parse(timeLayout, requestedStr); err != nil {
			return nil, err
		}
		if a.CompletedAt, err = time.Parse(timeLayout, completedStr); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
