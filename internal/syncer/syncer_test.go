package syncer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yutarok/tabinote/internal/docstore"
	"github.com/yutarok/tabinote/internal/domain"
	"github.com/yutarok/tabinote/internal/state"
)

const testTrip = "helsinki-trip-2026"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStore(t *testing.T) *docstore.Store {
	t.Helper()
	db, err := docstore.Open(filepath.Join(t.TempDir(), "tabinote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return docstore.NewStore(db)
}

// newSyncedFixture wires store → adapter → docstore the way main does:
// the state store's persist hook feeds the adapter's write queue.
func newSyncedFixture(t *testing.T, docs *docstore.Store) (*state.Store, *Adapter) {
	t.Helper()
	var adapter *Adapter
	store := state.NewStore(func(collection string, value any) {
		adapter.Persist(collection, value)
	})
	adapter = New(docs, store, testTrip, 10*time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go adapter.Run(ctx)

	return store, adapter
}

func TestSeedOnFirstSubscribe(t *testing.T) {
	docs := openTestStore(t)
	store, adapter := newSyncedFixture(t, docs)

	assert.Equal(t, ModeSynced, adapter.Mode())

	// The missing document triggers exactly one full seed write.
	assert.Eventually(t, func() bool {
		return len(store.Items()) == 3 && len(store.Schedule()) == 10
	}, 2*time.Second, 10*time.Millisecond)

	// Let several poll ticks pass: the revision must stay at 1 until a
	// user mutation occurs.
	time.Sleep(100 * time.Millisecond)
	doc, err := docs.Get(context.Background(), testTrip)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, int64(1), doc.Rev)

	var items []domain.PackingItem
	require.NoError(t, json.Unmarshal(doc.Items, &items))
	assert.Equal(t, domain.SeedItems(), items)
}

func TestPersistMirrorsReplacement(t *testing.T) {
	docs := openTestStore(t)
	store, _ := newSyncedFixture(t, docs)

	assert.Eventually(t, func() bool { return len(store.Items()) == 3 }, 2*time.Second, 10*time.Millisecond)

	next := append(store.Items(), domain.PackingItem{ID: "x1", Text: "毛布", Category: domain.ItemOther})
	store.ReplaceItems(next)

	assert.Eventually(t, func() bool {
		doc, err := docs.Get(context.Background(), testTrip)
		if err != nil || doc == nil {
			return false
		}
		var items []domain.PackingItem
		if err := json.Unmarshal(doc.Items, &items); err != nil {
			return false
		}
		return len(items) == 4 && doc.Rev == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRemoteChangeRehydratesLocalState(t *testing.T) {
	docs := openTestStore(t)
	store, _ := newSyncedFixture(t, docs)

	assert.Eventually(t, func() bool { return len(store.Spots()) == 2 }, 2*time.Second, 10*time.Millisecond)

	// Another client writes the spots field directly.
	remote := []domain.Spot{{ID: "r1", Title: "Suomenlinna", Category: domain.SpotSightseeing, Links: []domain.LinkItem{}}}
	payload, err := json.Marshal(remote)
	require.NoError(t, err)
	require.NoError(t, docs.Merge(context.Background(), testTrip, docstore.FieldSpots, payload, "other-client"))

	// The snapshot overwrites local state wholesale.
	assert.Eventually(t, func() bool {
		spots := store.Spots()
		return len(spots) == 1 && spots[0].Title == "Suomenlinna"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestMalformedRemoteFieldFailsClosed(t *testing.T) {
	docs := openTestStore(t)
	store, _ := newSyncedFixture(t, docs)

	assert.Eventually(t, func() bool { return len(store.Items()) == 3 }, 2*time.Second, 10*time.Millisecond)

	// Garbage items alongside a valid expenses update in later revisions.
	require.NoError(t, docs.Merge(context.Background(), testTrip, docstore.FieldItems, []byte(`{not json`), "other-client"))
	payload, err := json.Marshal([]domain.Expense{})
	require.NoError(t, err)
	require.NoError(t, docs.Merge(context.Background(), testTrip, docstore.FieldExpenses, payload, "other-client"))

	assert.Eventually(t, func() bool {
		return len(store.Expenses()) == 0
	}, 2*time.Second, 10*time.Millisecond)

	// The malformed field kept its prior local value.
	assert.Len(t, store.Items(), 3)
}

func TestLocalOnlyMode(t *testing.T) {
	var adapter *Adapter
	store := state.NewStore(func(collection string, value any) {
		adapter.Persist(collection, value)
	})
	adapter = New(nil, store, testTrip, 10*time.Millisecond, discardLogger())

	assert.Equal(t, ModeLocal, adapter.Mode())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go adapter.Run(ctx)

	assert.Eventually(t, func() bool { return len(store.Items()) == 3 }, 2*time.Second, 10*time.Millisecond)

	// Persist must be a silent no-op.
	store.ReplaceItems(nil)
	assert.Empty(t, store.Items())
}
