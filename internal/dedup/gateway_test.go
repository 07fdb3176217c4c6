package dedup

import (
	"context"
	"sync"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadflow-cli/internal/model"
	"github.com/sells-group/leadflow-cli/internal/store"
)

// fakeStore records inserts in memory and honors the conditional-insert
// contract: a duplicate source_id reports (false, nil).
type fakeStore struct {
	mu        sync.Mutex
	leads     map[string]model.Lead
	insertErr error
	idsErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{leads: make(map[string]model.Lead)}
}

func (f *fakeStore) InsertLead(_ context.Context, lead model.Lead) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return false, f.insertErr
	}
	if _, ok := f.leads[lead.SourceID]; ok {
		return false, nil
	}
	f.leads[lead.SourceID] = lead
	return true, nil
}

func (f *fakeStore) LeadExists(_ context.Context, sourceID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.leads[sourceID]
	return ok, nil
}

func (f *fakeStore) SourceIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.idsErr != nil {
		return nil, f.idsErr
	}
	ids := make([]string, 0, len(f.leads))
	for id := range f.leads {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeStore) ListLeads(_ context.Context, _ store.LeadFilter) ([]model.Lead, error) {
	return nil, nil
}

func (f *fakeStore) CountLeads(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.leads), nil
}

func (f *fakeStore) Migrate(_ context.Context) error { return nil }
func (f *fakeStore) Close() error                    { return nil }

func TestInsert_NewLead(t *testing.T) {
	gw := NewGateway(newFakeStore(), NewCache())
	out := gw.Insert(context.Background(), model.Lead{SourceID: "a1"})
	assert.Equal(t, Inserted, out)
}

func TestInsert_CacheHitSkips(t *testing.T) {
	fs := newFakeStore()
	cache := NewCache()
	cache.Load([]string{"a1"})
	gw := NewGateway(fs, cache)

	out := gw.Insert(context.Background(), model.Lead{SourceID: "a1"})
	assert.Equal(t, Skipped, out)
	// The store was never touched.
	n, _ := fs.CountLeads(context.Background())
	assert.Zero(t, n)
}

func TestInsert_StoreConflictSkips(t *testing.T) {
	fs := newFakeStore()
	_, err := fs.InsertLead(context.Background(), model.Lead{SourceID: "a1"})
	require.NoError(t, err)

	// Empty cache, so the duplicate is only visible at the store.
	gw := NewGateway(fs, NewCache())
	out := gw.Insert(context.Background(), model.Lead{SourceID: "a1"})
	assert.Equal(t, Skipped, out)
}

func TestInsert_StoreErrorFails(t *testing.T) {
	fs := newFakeStore()
	fs.insertErr = eris.New("connection reset")
	gw := NewGateway(fs, NewCache())

	out := gw.Insert(context.Background(), model.Lead{SourceID: "a1"})
	assert.Equal(t, Failed, out)
}

func TestInsert_SameIDTwiceInRun(t *testing.T) {
	gw := NewGateway(newFakeStore(), NewCache())
	ctx := context.Background()

	first := gw.Insert(ctx, model.Lead{SourceID: "dup"})
	second := gw.Insert(ctx, model.Lead{SourceID: "dup"})
	assert.Equal(t, Inserted, first)
	assert.Equal(t, Skipped, second)
}

func TestInsert_ConcurrentSameID(t *testing.T) {
	gw := NewGateway(newFakeStore(), NewCache())
	ctx := context.Background()

	const workers = 16
	outcomes := make([]Outcome, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = gw.Insert(ctx, model.Lead{SourceID: "race"})
		}()
	}
	wg.Wait()

	inserted := 0
	for _, o := range outcomes {
		switch o {
		case Inserted:
			inserted++
		case Failed:
			t.Fatalf("unexpected failure outcome")
		}
	}
	assert.Equal(t, 1, inserted)
}

func TestPreload_WarmsCache(t *testing.T) {
	fs := newFakeStore()
	ctx := context.Background()
	_, err := fs.InsertLead(ctx, model.Lead{SourceID: "x"})
	require.NoError(t, err)
	_, err = fs.InsertLead(ctx, model.Lead{SourceID: "y"})
	require.NoError(t, err)

	cache := NewCache()
	gw := NewGateway(fs, cache)
	require.NoError(t, gw.Preload(ctx))
	assert.Equal(t, 2, cache.Len())
	assert.True(t, cache.Contains("x"))
}

func TestPreload_FailureDegradesToEmptyCache(t *testing.T) {
	fs := newFakeStore()
	fs.idsErr = eris.New("relation does not exist")
	cache := NewCache()
	gw := NewGateway(fs, cache)

	err := gw.Preload(context.Background())
	require.Error(t, err)
	assert.Zero(t, cache.Len())

	// Inserts still work and still dedup through the store.
	fs.idsErr = nil
	assert.Equal(t, Inserted, gw.Insert(context.Background(), model.Lead{SourceID: "a"}))
	assert.Equal(t, Skipped, gw.Insert(context.Background(), model.Lead{SourceID: "a"}))
}
