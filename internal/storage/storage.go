package storage

import (
	"context"
	"errors"
	"fmt"

	"DocVerifier_BluestockProject/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrEmptyID       = errors.New("record id is empty")
	ErrUnknownDriver = errors.New("unknown store driver")
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Store is the full surface the service needs from a backing store.
type Store interface {
	Get(ctx context.Context, id string) (models.Record, error)
	Put(ctx context.Context, record models.Record) error
	Count(ctx context.Context) (int, error)
	RecordAttempt(ctx context.Context, attempt models.Attempt) error
	ListAttempts(ctx context.Context, limit int) ([]models.Attempt, error)
	Close() error
}

// Open builds the store selected by driver and loads the seed table into it.
func Open(ctx context.Context, driver, dsn string, historyLimit int) (Store, error) {
	var (
		s   Store
		err error
	)
	switch driver {
	case DriverMemory, "":
		s = NewMemoryStore(historyLimit)
	case DriverSQLite:
		s, err = OpenSQLite(ctx, dsn, historyLimit)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("storage.Open(): %w: %q", ErrUnknownDriver, driver)
	}

	if err := Seed(ctx, s, SeedRecords()); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Seed writes records into the store, overwriting any entry with the same id.
func Seed(ctx context.Context, s Store, records []models.Record) error {
	for _, r := range records {
		if err := s.Put(ctx, r); err != nil {
			return fmt.Errorf("storage.Seed(): %s: %w", r.ID, err)
		}
	}
	return nil
}
