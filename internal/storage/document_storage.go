package storage

import (
	"context"
	"database/sql"
	"errors"

	"DocVerifier_BluestockProject/internal/models"
)

func (s *SQLiteStore) Get(ctx context.Context, id string) (models.Record, error) {
	var r models.Record
	var status string

	row := s.db.QueryRowContext(ctx, `
		SELECT id, subject_name, organization, role, issue_date, duration_label, status, remark
		FROM documents
		WHERE id = ?`, id)
	if err := row.Scan(
		&r.ID, &r.SubjectName,
		&r.Organization,
		&r.Role,
		&r.IssueDate,
		&r.DurationLabel,
		&status,
		&r.Remark,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrNotFound
		}
		return models.Record{}, err
	}
	r.Status = models.Status(status)
	return r, nil
}

// Put inserts the record or replaces every column of an existing row with the same id.
func (s *SQLiteStore) Put(ctx context.Context, record models.Record) error {
	if record.ID == "" {
		return ErrEmptyID
	}
	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO documents(id, subject_name, organization, role, issue_date, duration_label, status, remark)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			subject_name = excluded.subject_name,
			organization = excluded.organization,
			role = excluded.role,
			issue_date = excluded.issue_date,
			duration_label = excluded.duration_label,
			status = excluded.status,
			remark = excluded.remark`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		record.ID,
		record.SubjectName,
		record.Organization,
		record.Role,
		record.IssueDate,
		record.DurationLabel,
		string(record.Status),
		record.Remark,
	)
	return err
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
