package verification

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"DocVerifier_BluestockProject/internal/metrics"
	"DocVerifier_BluestockProject/internal/models"
	"DocVerifier_BluestockProject/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, opts ...Option) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore(0, storage.SeedRecords()...)
	opts = append([]Option{WithSleep(NoSleep), WithAttemptLog(store)}, opts...)
	return NewService(store, zerolog.Nop(), opts...), store
}

func TestLookupReturnsStoredRecord(t *testing.T) {
	svc, _ := newTestService(t)
	for _, want := range storage.SeedRecords() {
		got, err := svc.Lookup(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLookupScenario(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.Lookup(context.Background(), "BFT11385")
	require.NoError(t, err)
	assert.Equal(t, "Kaushal", got.SubjectName)
	assert.Equal(t, "Software Development Engineer", got.Role)
	assert.Equal(t, "2024-01-15", got.IssueDate)
	assert.Equal(t, "1 Jan 2024 - 15 Jan 2024", got.DurationLabel)
	assert.Equal(t, "verified", got.Remark)
}

func TestLookupNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	tests := []struct {
		name string
		id   string
	}{
		{"well formed", "BFT99999"},
		{"four digits", "BFT1138"},
		{"wrong prefix", "XYZ11383"},
		{"lower case", "bft11383"},
		{"padded", " BFT11383 "},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Lookup(context.Background(), tt.id)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (models.Record, error) {
	return models.Record{}, f.err
}
func (f failingStore) Put(context.Context, models.Record) error { return f.err }

func TestLookupWrapsStoreErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewService(failingStore{err: boom}, zerolog.Nop())

	_, err := svc.Lookup(context.Background(), "BFT11383")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, models.OutcomeError, OutcomeOf(err))
}

func TestValidateIDFormat(t *testing.T) {
	assert.True(t, ValidateIDFormat("BFT11383"))
	assert.True(t, ValidateIDFormat("BFT00000"))
	assert.False(t, ValidateIDFormat("BFT1138"))
	assert.False(t, ValidateIDFormat("BFT113833"))
	assert.False(t, ValidateIDFormat("XYZ11383"))
	assert.False(t, ValidateIDFormat("bft11383"))
	assert.False(t, ValidateIDFormat(" BFT11383"))
	assert.False(t, ValidateIDFormat(""))
}

func TestInsertThenLookup(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	fresh := models.Record{ID: "BFT20001", SubjectName: "New Intern", Organization: "Bluestock Fintech", Status: models.StatusVerified}
	require.NoError(t, svc.Insert(ctx, fresh))
	got, err := svc.Lookup(ctx, "BFT20001")
	require.NoError(t, err)
	assert.Equal(t, fresh, got)

	overwrite := models.Record{ID: "BFT11383", SubjectName: "Replaced", Status: models.StatusVerified}
	require.NoError(t, svc.Insert(ctx, overwrite))
	got, err = svc.Lookup(ctx, "BFT11383")
	require.NoError(t, err)
	assert.Equal(t, overwrite, got)
}

func TestInsertDefaultsStatusAndRejectsEmptyID(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc, _ := newTestService(t, WithMetrics(m))
	ctx := context.Background()

	assert.ErrorIs(t, svc.Insert(ctx, models.Record{SubjectName: "anon"}), ErrEmptyID)

	require.NoError(t, svc.Insert(ctx, models.Record{ID: "any-id-at-all"}))
	got, err := svc.Lookup(ctx, "any-id-at-all")
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, got.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DocumentsInserted))
}

func collect(t *testing.T, ch <-chan Result) Result {
	t.Helper()
	select {
	case res, ok := <-ch:
		require.True(t, ok, "channel closed without a result")
		_, open := <-ch
		assert.False(t, open, "channel must close after the single result")
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("verify did not resolve")
		return Result{}
	}
}

func TestVerifyFound(t *testing.T) {
	svc, store := newTestService(t)

	res := collect(t, svc.Verify(context.Background(), "  BFT11385 ", models.SourceForm))
	require.NoError(t, res.Err)
	assert.Equal(t, "BFT11385", res.ID)
	assert.Equal(t, "Kaushal", res.Record.SubjectName)
	assert.NotEmpty(t, res.AttemptID)

	attempts, err := store.ListAttempts(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, models.OutcomeVerified, attempts[0].Outcome)
	assert.Equal(t, models.SourceForm, attempts[0].Source)
	assert.Equal(t, res.AttemptID, attempts[0].ID)
}

func TestVerifyNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	res := collect(t, svc.Verify(context.Background(), "BFT99999", models.SourceLink))
	assert.ErrorIs(t, res.Err, ErrNotFound)
}

func TestVerifyTracesAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	store := storage.NewMemoryStore(0, storage.SeedRecords()...)
	svc := NewService(store, zerolog.New(&buf).Level(zerolog.InfoLevel), WithSleep(NoSleep))

	for _, id := range []string{"BFT99999", "", "BFT11383"} {
		collect(t, svc.Verify(context.Background(), id, models.SourceForm))
	}
	assert.Empty(t, buf.String())

	buf.Reset()
	svc = NewService(store, zerolog.New(&buf).Level(zerolog.DebugLevel), WithSleep(NoSleep))
	collect(t, svc.Verify(context.Background(), "BFT99999", models.SourceForm))
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), `"outcome":"not_found"`)
}

type countingStore struct {
	*storage.MemoryStore
	mu   sync.Mutex
	gets int
}

func (c *countingStore) Get(ctx context.Context, id string) (models.Record, error) {
	c.mu.Lock()
	c.gets++
	c.mu.Unlock()
	return c.MemoryStore.Get(ctx, id)
}

func TestVerifyEmptySkipsLookup(t *testing.T) {
	store := &countingStore{MemoryStore: storage.NewMemoryStore(0, storage.SeedRecords()...)}
	slept := false
	svc := NewService(store, zerolog.Nop(), WithSleep(func(context.Context, time.Duration) error {
		slept = true
		return nil
	}))

	for _, in := range []string{"", "   ", "\t\n"} {
		res := collect(t, svc.Verify(context.Background(), in, models.SourceForm))
		assert.ErrorIs(t, res.Err, ErrEmptyID)
	}
	assert.Zero(t, store.gets)
	assert.False(t, slept)
}

func TestVerifyFormatEnforcement(t *testing.T) {
	t.Run("permissive by default", func(t *testing.T) {
		svc, _ := newTestService(t)
		res := collect(t, svc.Verify(context.Background(), "XYZ11383", models.SourceForm))
		assert.ErrorIs(t, res.Err, ErrNotFound)
	})

	t.Run("malformed ids still reach the table", func(t *testing.T) {
		svc, _ := newTestService(t)
		require.NoError(t, svc.Insert(context.Background(), models.Record{ID: "legacy-7"}))
		res := collect(t, svc.Verify(context.Background(), "legacy-7", models.SourceForm))
		assert.NoError(t, res.Err)
	})

	t.Run("enforced", func(t *testing.T) {
		svc, _ := newTestService(t, WithFormatEnforcement(true))
		assert.True(t, svc.EnforcesFormat())
		res := collect(t, svc.Verify(context.Background(), "XYZ11383", models.SourceForm))
		assert.ErrorIs(t, res.Err, ErrInvalidFormat)

		res = collect(t, svc.Verify(context.Background(), "BFT11383", models.SourceForm))
		assert.NoError(t, res.Err)
	})
}

func TestVerifyUsesConfiguredDelay(t *testing.T) {
	var got time.Duration
	svc, _ := newTestService(t, WithDelay(250*time.Millisecond), WithSleep(func(_ context.Context, d time.Duration) error {
		got = d
		return nil
	}))

	res := collect(t, svc.Verify(context.Background(), "BFT11383", models.SourceForm))
	require.NoError(t, res.Err)
	assert.Equal(t, 250*time.Millisecond, got)
}

func TestVerifyCanceledDuringDelay(t *testing.T) {
	svc, store := newTestService(t, WithSleep(Sleep), WithDelay(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	ch := svc.Verify(ctx, "BFT11383", models.SourceWS)
	cancel()

	res := collect(t, ch)
	assert.ErrorIs(t, res.Err, context.Canceled)

	attempts, err := store.ListAttempts(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, models.OutcomeCanceled, attempts[0].Outcome)
}

func TestVerifyRecordsMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc, _ := newTestService(t, WithMetrics(m))

	collect(t, svc.Verify(context.Background(), "BFT11383", models.SourceForm))
	collect(t, svc.Verify(context.Background(), "BFT99999", models.SourceLink))
	collect(t, svc.Verify(context.Background(), "", models.SourceForm))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Verifications.WithLabelValues("form", "verified")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Verifications.WithLabelValues("link", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Verifications.WithLabelValues("form", "empty")))
}

func TestConcurrentVerifiesResolveIndependently(t *testing.T) {
	svc, store := newTestService(t)
	ids := []string{"BFT11383", "BFT11384", "BFT99999", "BFT11387"}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			res := <-svc.Verify(context.Background(), id, models.SourceForm)
			assert.Equal(t, id, res.ID)
		}(id)
	}
	wg.Wait()

	attempts, err := store.ListAttempts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, attempts, len(ids))
}

func TestSleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
}
