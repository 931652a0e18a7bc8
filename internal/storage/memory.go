package storage

import (
	"context"
	"sync"

	"DocVerifier_BluestockProject/internal/models"
)

const defaultHistoryLimit = 500

// MemoryStore keeps documents in a map and the newest attempts in a bounded slice.
type MemoryStore struct {
	mu           sync.RWMutex
	records      map[string]models.Record
	attempts     []models.Attempt
	historyLimit int
}

func NewMemoryStore(historyLimit int, seed ...models.Record) *MemoryStore {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	s := &MemoryStore{
		records:      make(map[string]models.Record, len(seed)),
		attempts:     make([]models.Attempt, 0),
		historyLimit: historyLimit,
	}
	for _, r := range seed {
		s.records[r.ID] = r
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.records[id]; ok {
		return r, nil
	}
	return models.Record{}, ErrNotFound
}

func (s *MemoryStore) Put(_ context.Context, record models.Record) error {
	if record.ID == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

func (s *MemoryStore) RecordAttempt(_ context.Context, attempt models.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, attempt)
	if over := len(s.attempts) - s.historyLimit; over > 0 {
		s.attempts = append(s.attempts[:0:0], s.attempts[over:]...)
	}
	return nil
}

// ListAttempts returns up to limit attempts, newest first. limit <= 0 returns all.
func (s *MemoryStore) ListAttempts(_ context.Context, limit int) ([]models.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.attempts)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.Attempt, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.attempts[i])
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
