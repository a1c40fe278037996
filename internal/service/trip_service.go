// Package service contains the application logic for the trip planner.
// It runs the pure mutation operations against the state store's current
// values, and it is the layer where suggestion backend failures are
// swallowed into empty results.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/yutarok/tabinote/internal/domain"
	"github.com/yutarok/tabinote/internal/state"
	"github.com/yutarok/tabinote/internal/suggest"
	"github.com/yutarok/tabinote/internal/syncer"
	"github.com/yutarok/tabinote/internal/trip"
)

// Accent colors assigned to new spots. Manually added spots and accepted
// suggestions are distinguishable by color, as in the original planner.
const (
	manualSpotColor    = "bg-indigo-400"
	suggestedSpotColor = "bg-pink-400"
)

// syncStatus is the subset of the sync adapter the service requires.
type syncStatus interface {
	Mode() syncer.Mode
}

type TripService struct {
	// mu serializes read-modify-write cycles so two concurrent requests
	// cannot lose each other's update between Get and Replace.
	mu        sync.Mutex
	store     *state.Store
	sync      syncStatus
	completer suggest.Completer
	tripID    string
	logger    *slog.Logger
}

func NewTripService(store *state.Store, sync syncStatus, completer suggest.Completer, tripID string, logger *slog.Logger) *TripService {
	return &TripService{
		store:     store,
		sync:      sync,
		completer: completer,
		tripID:    tripID,
		logger:    logger,
	}
}

// Status describes the sync state surfaced as a passive banner.
type Status struct {
	TripID string      `json:"tripId"`
	Mode   syncer.Mode `json:"mode"`
}

func (s *TripService) Status() Status {
	return Status{TripID: s.tripID, Mode: s.sync.Mode()}
}

// Flights returns the static flight reference data.
func (s *TripService) Flights() []domain.Flight {
	return domain.Flights
}

// ActiveTab and SetActiveTab expose the view selector.
func (s *TripService) ActiveTab() domain.Tab       { return s.store.ActiveTab() }
func (s *TripService) SetActiveTab(tab domain.Tab) { s.store.SetActiveTab(tab) }

// ---- packing checklist ----

func (s *TripService) Items() []domain.PackingItem {
	return s.store.Items()
}

func (s *TripService) Completion() int {
	return trip.Completion(s.store.Items())
}

func (s *TripService) AddItem(text string, category domain.ItemCategory) ([]domain.PackingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.AddItem(s.store.Items(), text, category)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceItems(next)
	return next, nil
}

func (s *TripService) DeleteItem(id string) []domain.PackingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := trip.DeleteItem(s.store.Items(), id)
	s.store.ReplaceItems(next)
	return next
}

func (s *TripService) ToggleItem(id string) ([]domain.PackingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.ToggleItem(s.store.Items(), id)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceItems(next)
	return next, nil
}

// ---- wish list ----

func (s *TripService) Spots() []domain.Spot {
	return s.store.Spots()
}

func (s *TripService) AddSpot(title, description string, category domain.SpotCategory) ([]domain.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.AddSpot(s.store.Spots(), title, description, category, manualSpotColor)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceSpots(next)
	return next, nil
}

func (s *TripService) DeleteSpot(id string) []domain.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := trip.DeleteSpot(s.store.Spots(), id)
	s.store.ReplaceSpots(next)
	return next
}

func (s *TripService) UpdateSpotDescription(id, description string) ([]domain.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.UpdateSpotDescription(s.store.Spots(), id, description)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceSpots(next)
	return next, nil
}

func (s *TripService) AddLink(spotID, title, url string) ([]domain.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.AddLink(s.store.Spots(), spotID, title, url)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceSpots(next)
	return next, nil
}

func (s *TripService) DeleteLink(spotID, linkID string) ([]domain.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.DeleteLink(s.store.Spots(), spotID, linkID)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceSpots(next)
	return next, nil
}

// ---- itinerary ----

func (s *TripService) Schedule() []domain.ScheduleDay {
	return s.store.Schedule()
}

func (s *TripService) UpdateDay(id, title string, icon domain.IconType, content string) ([]domain.ScheduleDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.UpdateDay(s.store.Schedule(), id, title, icon, content)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceSchedule(next)
	return next, nil
}

func (s *TripService) AddEvent(dayID string, ev domain.ScheduleEvent) ([]domain.ScheduleDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.AddEvent(s.store.Schedule(), dayID, ev)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceSchedule(next)
	return next, nil
}

func (s *TripService) DeleteEvent(dayID, eventID string) ([]domain.ScheduleDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.DeleteEvent(s.store.Schedule(), dayID, eventID)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceSchedule(next)
	return next, nil
}

func (s *TripService) SwapDays(aID, bID string) ([]domain.ScheduleDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.SwapDayContent(s.store.Schedule(), aID, bID)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceSchedule(next)
	return next, nil
}

// ---- ledger ----

func (s *TripService) Expenses() []domain.Expense {
	return s.store.Expenses()
}

func (s *TripService) AddExpense(e domain.Expense) ([]domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.AddExpense(s.store.Expenses(), e)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceExpenses(next)
	return next, nil
}

func (s *TripService) DeleteExpense(id string) []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := trip.DeleteExpense(s.store.Expenses(), id)
	s.store.ReplaceExpenses(next)
	return next
}

func (s *TripService) Balance(eurRate float64) trip.BalanceSummary {
	return trip.Balance(s.store.Expenses(), eurRate)
}

// ---- suggestions ----

// SuggestPacking asks the backend for missing packing items. Backend
// failures yield an empty result, never an error; suggestions are a
// soft feature.
func (s *TripService) SuggestPacking(ctx context.Context) []string {
	prompt := suggest.PackingPrompt(s.store.Items())
	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("packing suggestion call failed", "error", err)
		return []string{}
	}
	return suggest.ParseList(raw)
}

// SuggestSpots asks the backend for new spot candidates. Malformed
// replies and backend failures both yield an empty result.
func (s *TripService) SuggestSpots(ctx context.Context) []suggest.SpotSuggestion {
	prompt := suggest.SpotsPrompt(s.store.Spots())
	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("spot suggestion call failed", "error", err)
		return []suggest.SpotSuggestion{}
	}
	spots := suggest.ParseSpots(raw)
	if spots == nil {
		return []suggest.SpotSuggestion{}
	}
	return spots
}

// AcceptPackingSuggestion adds an accepted chip to the checklist with
// category "other".
func (s *TripService) AcceptPackingSuggestion(text string) ([]domain.PackingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.AddItem(s.store.Items(), text, domain.ItemOther)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceItems(next)
	return next, nil
}

// AcceptSpotSuggestion adds an accepted candidate with the fixed
// suggestion accent color.
func (s *TripService) AcceptSpotSuggestion(sg suggest.SpotSuggestion) ([]domain.Spot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := trip.AddSpot(s.store.Spots(), sg.Title, sg.Description, sg.Category, suggestedSpotColor)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceSpots(next)
	return next, nil
}
