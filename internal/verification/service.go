package verification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"DocVerifier_BluestockProject/internal/metrics"
	"DocVerifier_BluestockProject/internal/models"
	"DocVerifier_BluestockProject/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const DefaultDelay = time.Second

var (
	ErrEmptyID       = errors.New("document id is empty")
	ErrNotFound      = errors.New("document not found")
	ErrInvalidFormat = errors.New("invalid document id format")
)

// Store is the record table the service reads from and inserts into.
type Store interface {
	Get(ctx context.Context, id string) (models.Record, error)
	Put(ctx context.Context, record models.Record) error
}

// AttemptLog receives one entry per resolved Verify call.
type AttemptLog interface {
	RecordAttempt(ctx context.Context, attempt models.Attempt) error
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits on a timer and honours ctx.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoSleep returns immediately. Tests use it to resolve Verify synchronously.
func NoSleep(context.Context, time.Duration) error { return nil }

// Result is the single value delivered by Verify.
type Result struct {
	AttemptID string
	ID        string
	Record    models.Record
	Err       error
}

type Service struct {
	store         Store
	attempts      AttemptLog
	metrics       *metrics.Metrics
	log           zerolog.Logger
	sleep         SleepFunc
	delay         time.Duration
	enforceFormat bool
	now           func() time.Time
}

type Option func(*Service)

func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

func WithSleep(fn SleepFunc) Option {
	return func(s *Service) { s.sleep = fn }
}

// WithFormatEnforcement makes Verify reject ids that fail ValidateIDFormat
// before any lookup happens.
func WithFormatEnforcement(on bool) Option {
	return func(s *Service) { s.enforceFormat = on }
}

func WithAttemptLog(log AttemptLog) Option {
	return func(s *Service) { s.attempts = log }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   log.With().Str("component", "verification-service").Logger(),
		sleep: Sleep,
		delay: DefaultDelay,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) EnforcesFormat() bool { return s.enforceFormat }

// Lookup returns the record stored under id. The id is used verbatim: no
// trimming, case folding, or format check.
func (s *Service) Lookup(ctx context.Context, id string) (models.Record, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Record{}, ErrNotFound
		}
		return models.Record{}, fmt.Errorf("lookup %q: %w", id, err)
	}
	return r, nil
}

// Insert adds record or replaces the entry with the same id.
func (s *Service) Insert(ctx context.Context, record models.Record) error {
	if record.ID == "" {
		return ErrEmptyID
	}
	if record.Status == "" {
		record.Status = models.StatusVerified
	}
	if err := s.store.Put(ctx, record); err != nil {
		return fmt.Errorf("insert %q: %w", record.ID, err)
	}
	s.metrics.IncrementDocumentsInserted()
	s.log.Info().Str("document_id", record.ID).Msg("document added")
	return nil
}

// Verify runs the user-facing verification flow in the background: the input
// is trimmed, empty and (optionally) malformed ids are rejected at once, and
// anything else is looked up after the configured delay. The returned channel
// receives exactly one Result and is then closed.
func (s *Service) Verify(ctx context.Context, input string, source models.Source) <-chan Result {
	out := make(chan Result, 1)
	requestedAt := s.now()
	id := strings.TrimSpace(input)

	go func() {
		defer close(out)
		res := s.resolve(ctx, id)
		res.AttemptID = uuid.NewString()
		s.record(ctx, res, source, requestedAt)
		out <- res
	}()
	return out
}

func (s *Service) resolve(ctx context.Context, id string) Result {
	res := Result{ID: id}
	if id == "" {
		res.Err = ErrEmptyID
		return res
	}
	if s.enforceFormat && !ValidateIDFormat(id) {
		res.Err = ErrInvalidFormat
		return res
	}
	if err := s.sleep(ctx, s.delay); err != nil {
		res.Err = err
		return res
	}
	res.Record, res.Err = s.Lookup(ctx, id)
	return res
}

func (s *Service) record(ctx context.Context, res Result, source models.Source, requestedAt time.Time) {
	completedAt := s.now()
	outcome := OutcomeOf(res.Err)
	s.metrics.ObserveVerification(string(source), string(outcome), completedAt.Sub(requestedAt))

	s.log.Debug().
		Str("document_id", res.ID).
		Str("source", string(source)).
		Str("outcome", string(outcome)).
		AnErr("error", res.Err).
		Msg("verification resolved")

	if s.attempts == nil {
		return
	}
	// 요청이 취소돼도 기록은 남긴다
	err := s.attempts.RecordAttempt(context.WithoutCancel(ctx), models.Attempt{
		ID:          res.AttemptID,
		DocumentID:  res.ID,
		Source:      source,
		Outcome:     outcome,
		RequestedAt: requestedAt,
		CompletedAt: completedAt,
	})
	if err != nil {
		s.log.Error().Err(err).Str("document_id", res.ID).Msg("record attempt")
	}
}

// OutcomeOf classifies a Verify error.
func OutcomeOf(err error) models.Outcome {
	switch {
	case err == nil:
		return models.OutcomeVerified
	case errors.Is(err, ErrEmptyID):
		return models.OutcomeEmpty
	case errors.Is(err, ErrInvalidFormat):
		return models.OutcomeInvalidFormat
	case errors.Is(err, ErrNotFound):
		return models.OutcomeNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.OutcomeCanceled
	default:
		return models.OutcomeError
	}
}
