// Package state holds the in-memory trip state: the four mutable
// collections plus the active view. The store is the single owner of
// collection values; consumers get read-only snapshots and request
// whole-collection replacement, never direct mutation.
package state

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yutarok/tabinote/internal/domain"
)

// Collection names, matching the backing document's top-level fields.
const (
	CollectionItems    = "items"
	CollectionSpots    = "spots"
	CollectionSchedule = "schedule"
	CollectionExpenses = "expenses"
)

// PersistFunc mirrors a replaced collection out to the backing document.
// It is invoked fire-and-forget on every local Replace; remote applies
// do not trigger it.
type PersistFunc func(collection string, value any)

// Store is safe for concurrent use. Values handed in and out are
// treated as immutable snapshots: mutation operations build a complete
// new collection, so a shallow copy of the outer slice is all the
// isolation Get needs.
type Store struct {
	mu        sync.RWMutex
	items     []domain.PackingItem
	spots     []domain.Spot
	schedule  []domain.ScheduleDay
	expenses  []domain.Expense
	activeTab domain.Tab

	persist PersistFunc
	subs    map[uuid.UUID]func(collection string)
}

// NewStore creates a Store with empty collections. persist may be nil
// (local-only mode).
func NewStore(persist PersistFunc) *Store {
	return &Store{
		activeTab: domain.TabHome,
		persist:   persist,
		subs:      make(map[uuid.UUID]func(string)),
	}
}

// Subscribe registers a callback invoked after any collection changes,
// local or remote. The returned token releases the subscription via
// Unsubscribe.
func (s *Store) Subscribe(fn func(collection string)) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.New()
	s.subs[token] = fn
	return token
}

// Unsubscribe removes a subscription; unknown tokens are a no-op.
func (s *Store) Unsubscribe(token uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, token)
}

func (s *Store) notify(collection string) {
	s.mu.RLock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(collection)
	}
}

// ActiveTab returns the current view selector.
func (s *Store) ActiveTab() domain.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// SetActiveTab switches the view; unknown tabs are ignored. Navigation
// state is UI-local and never persisted.
func (s *Store) SetActiveTab(tab domain.Tab) {
	if !domain.ValidTab(tab) {
		return
	}
	s.mu.Lock()
	s.activeTab = tab
	s.mu.Unlock()
}

// Items returns a snapshot of the packing checklist.
func (s *Store) Items() []domain.PackingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PackingItem, len(s.items))
	copy(out, s.items)
	return out
}

// ReplaceItems stores the complete next checklist unconditionally and
// mirrors it to the backing document.
func (s *Store) ReplaceItems(items []domain.PackingItem) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.notify(CollectionItems)
	if s.persist != nil {
		s.persist(CollectionItems, items)
	}
}

// ApplyRemoteItems replaces the checklist from a remote snapshot
// without echoing the value back out as a write.
func (s *Store) ApplyRemoteItems(items []domain.PackingItem) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.notify(CollectionItems)
}

// Spots returns a snapshot of the wish list.
func (s *Store) Spots() []domain.Spot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Spot, len(s.spots))
	copy(out, s.spots)
	return out
}

func (s *Store) ReplaceSpots(spots []domain.Spot) {
	s.mu.Lock()
	s.spots = spots
	s.mu.Unlock()
	s.notify(CollectionSpots)
	if s.persist != nil {
		s.persist(CollectionSpots, spots)
	}
}

func (s *Store) ApplyRemoteSpots(spots []domain.Spot) {
	s.mu.Lock()
	s.spots = spots
	s.mu.Unlock()
	s.notify(CollectionSpots)
}

// Schedule returns a snapshot of the itinerary.
func (s *Store) Schedule() []domain.ScheduleDay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ScheduleDay, len(s.schedule))
	copy(out, s.schedule)
	return out
}

func (s *Store) ReplaceSchedule(days []domain.ScheduleDay) {
	s.mu.Lock()
	s.schedule = days
	s.mu.Unlock()
	s.notify(CollectionSchedule)
	if s.persist != nil {
		s.persist(CollectionSchedule, days)
	}
}

func (s *Store) ApplyRemoteSchedule(days []domain.ScheduleDay) {
	s.mu.Lock()
	s.schedule = days
	s.mu.Unlock()
	s.notify(CollectionSchedule)
}

// Expenses returns a snapshot of the ledger.
func (s *Store) Expenses() []domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

func (s *Store) ReplaceExpenses(expenses []domain.Expense) {
	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()
	s.notify(CollectionExpenses)
	if s.persist != nil {
		s.persist(CollectionExpenses, expenses)
	}
}

func (s *Store) ApplyRemoteExpenses(expenses []domain.Expense) {
	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()
	s.notify(CollectionExpenses)
}
