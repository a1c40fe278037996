// Package syncer bridges the in-memory state store and the backing trip
// document. It subscribes to the document (seeding it on first contact),
// rehydrates local state whenever the document's revision moves, and
// mirrors local replacements back as field-level merge writes.
//
// Conflict policy is last-write-wins: a remote snapshot overwrites local
// state unconditionally, and whichever merge write lands last at the
// document store is what subsequent readers observe. Within one client,
// all writes drain through a single queue so they leave in issue order.
package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yutarok/tabinote/internal/docstore"
	"github.com/yutarok/tabinote/internal/domain"
	"github.com/yutarok/tabinote/internal/state"
)

// Mode reports whether the adapter is mirroring to the document store or
// degraded to local-only operation.
type Mode string

const (
	ModeSynced Mode = "synced"
	ModeLocal  Mode = "local"
)

// documentStore is the subset of docstore.Store the adapter requires.
type documentStore interface {
	Get(ctx context.Context, tripID string) (*docstore.Document, error)
	Merge(ctx context.Context, tripID, field string, payload []byte, writerID string) error
	Seed(ctx context.Context, doc *docstore.Document, writerID string) (bool, error)
}

type persistReq struct {
	field   string
	payload []byte
}

// Adapter owns no entity state itself; it is a conduit between the
// state store and one document addressed by a fixed trip id.
type Adapter struct {
	docs     documentStore
	store    *state.Store
	tripID   string
	writerID string
	interval time.Duration
	logger   *slog.Logger

	queue   chan persistReq
	lastRev int64
}

// New constructs the adapter. A nil docs puts it in local-only mode:
// the state store still works from seed data and Persist is a no-op.
func New(docs documentStore, store *state.Store, tripID string, interval time.Duration, logger *slog.Logger) *Adapter {
	return &Adapter{
		docs:     docs,
		store:    store,
		tripID:   tripID,
		writerID: uuid.NewString(),
		interval: interval,
		logger:   logger,
		queue:    make(chan persistReq, 64),
	}
}

// Mode reports synced or local-only operation.
func (a *Adapter) Mode() Mode {
	if a.docs == nil {
		return ModeLocal
	}
	return ModeSynced
}

// Persist mirrors one replaced collection to the backing document. The
// call is fire-and-forget: it queues the write and returns; failures are
// logged, never surfaced. In local-only mode it does nothing.
func (a *Adapter) Persist(collection string, value any) {
	if a.docs == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		a.logger.Error("failed to encode collection for persist", "collection", collection, "error", err)
		return
	}
	a.queue <- persistReq{field: collection, payload: payload}
}

// Run drives the subscription loop and the persist worker until ctx is
// cancelled. In local-only mode it seeds the state store and blocks
// until cancellation.
func (a *Adapter) Run(ctx context.Context) {
	if a.docs == nil {
		a.seedLocal()
		<-ctx.Done()
		return
	}

	go a.drainQueue(ctx)

	a.poll(ctx)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.poll(ctx)
		}
	}
}

func (a *Adapter) drainQueue(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-a.queue:
			if err := a.docs.Merge(ctx, a.tripID, req.field, req.payload, a.writerID); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("failed to persist collection", "collection", req.field, "error", err)
			}
		}
	}
}

func (a *Adapter) seedLocal() {
	a.applySeedData()
	a.logger.Info("running in local-only mode", "trip_id", a.tripID)
}

func (a *Adapter) applySeedData() {
	a.store.ApplyRemoteItems(domain.SeedItems())
	a.store.ApplyRemoteSpots(domain.SeedSpots())
	a.store.ApplyRemoteSchedule(domain.SeedSchedule())
	a.store.ApplyRemoteExpenses(domain.SeedExpenses())
}

// seedDocument encodes the default dataset as a full document.
func (a *Adapter) seedDocument() (*docstore.Document, error) {
	doc := &docstore.Document{TripID: a.tripID}
	var err error
	if doc.Items, err = json.Marshal(domain.SeedItems()); err != nil {
		return nil, err
	}
	if doc.Spots, err = json.Marshal(domain.SeedSpots()); err != nil {
		return nil, err
	}
	if doc.Schedule, err = json.Marshal(domain.SeedSchedule()); err != nil {
		return nil, err
	}
	if doc.Expenses, err = json.Marshal(domain.SeedExpenses()); err != nil {
		return nil, err
	}
	return doc, nil
}

// poll is one subscription delivery: read the document, seed it if it
// does not exist, otherwise rehydrate local state when the revision has
// moved. Read failures leave local state as-is.
func (a *Adapter) poll(ctx context.Context) {
	doc, err := a.docs.Get(ctx, a.tripID)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			a.logger.Error("failed to read trip document", "trip_id", a.tripID, "error", err)
		}
		return
	}

	if doc == nil {
		seed, err := a.seedDocument()
		if err != nil {
			a.logger.Error("failed to encode seed document", "error", err)
			return
		}
		seeded, err := a.docs.Seed(ctx, seed, a.writerID)
		if err != nil {
			a.logger.Error("failed to seed trip document", "trip_id", a.tripID, "error", err)
			return
		}
		if seeded {
			a.logger.Info("seeded trip document", "trip_id", a.tripID)
		}
		a.applySeedData()
		a.lastRev = 1
		return
	}

	if doc.Rev == a.lastRev {
		return
	}
	a.rehydrate(doc)
	a.lastRev = doc.Rev
}

// rehydrate decodes every field present on the document and overwrites
// the corresponding local collection wholesale. A malformed field fails
// closed: that collection keeps its prior local value and the error is
// logged.
func (a *Adapter) rehydrate(doc *docstore.Document) {
	if doc.Items != nil {
		var items []domain.PackingItem
		if err := json.Unmarshal(doc.Items, &items); err != nil {
			a.logger.Error("malformed items field in trip document", "error", err)
		} else {
			a.store.ApplyRemoteItems(items)
		}
	}
	if doc.Spots != nil {
		var spots []domain.Spot
		if err := json.Unmarshal(doc.Spots, &spots); err != nil {
			a.logger.Error("malformed spots field in trip document", "error", err)
		} else {
			a.store.ApplyRemoteSpots(spots)
		}
	}
	if doc.Schedule != nil {
		var schedule []domain.ScheduleDay
		if err := json.Unmarshal(doc.Schedule, &schedule); err != nil {
			a.logger.Error("malformed schedule field in trip document", "error", err)
		} else {
			a.store.ApplyRemoteSchedule(schedule)
		}
	}
	if doc.Expenses != nil {
		var expenses []domain.Expense
		if err := json.Unmarshal(doc.Expenses, &expenses); err != nil {
			a.logger.Error("malformed expenses field in trip document", "error", err)
		} else {
			a.store.ApplyRemoteExpenses(expenses)
		}
	}
}
