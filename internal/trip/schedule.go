package trip

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yutarok/tabinote/internal/domain"
)

// UpdateDay replaces the editable fields (title, icon, free text) of one
// day slot. The id, date and day-of-week of a slot never change.
func UpdateDay(days []domain.ScheduleDay, id, title string, icon domain.IconType, content string) ([]domain.ScheduleDay, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return days, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !domain.ValidIconType(icon) {
		return days, fmt.Errorf("%w: unknown icon %q", domain.ErrValidation, icon)
	}

	next := make([]domain.ScheduleDay, len(days))
	copy(next, days)
	for i := range next {
		if next[i].ID == id {
			next[i].Title = title
			next[i].IconType = icon
			next[i].Content = content
			return next, nil
		}
	}
	return days, fmt.Errorf("%w: schedule day %s", domain.ErrNotFound, id)
}

// AddEvent appends a timed event to a day and re-sorts the day's events
// ascending by time. "HH:MM" strings compare lexicographically in
// chronological order, so a plain string sort suffices.
func AddEvent(days []domain.ScheduleDay, dayID string, ev domain.ScheduleEvent) ([]domain.ScheduleDay, error) {
	if strings.TrimSpace(ev.Title) == "" {
		return days, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	next := make([]domain.ScheduleDay, len(days))
	copy(next, days)
	for i := range next {
		if next[i].ID != dayID {
			continue
		}
		ev.ID = domain.NewID()
		events := make([]domain.ScheduleEvent, len(next[i].Events), len(next[i].Events)+1)
		copy(events, next[i].Events)
		events = append(events, ev)
		sort.SliceStable(events, func(a, b int) bool { return events[a].Time < events[b].Time })
		next[i].Events = events
		return next, nil
	}
	return days, fmt.Errorf("%w: schedule day %s", domain.ErrNotFound, dayID)
}

// DeleteEvent removes one event from a day. An unknown event id is a
// no-op; an unknown day id is an error.
func DeleteEvent(days []domain.ScheduleDay, dayID, eventID string) ([]domain.ScheduleDay, error) {
	next := make([]domain.ScheduleDay, len(days))
	copy(next, days)
	for i := range next {
		if next[i].ID != dayID {
			continue
		}
		events := make([]domain.ScheduleEvent, 0, len(next[i].Events))
		for _, e := range next[i].Events {
			if e.ID != eventID {
				events = append(events, e)
			}
		}
		next[i].Events = events
		return next, nil
	}
	return days, fmt.Errorf("%w: schedule day %s", domain.ErrNotFound, dayID)
}

// SwapDayContent exchanges the content (title, icon, free text, events)
// of two day slots while their ids, dates and day-of-week labels stay
// put. This keeps the itinerary's date column chronological while plans
// move between days. Applying the same swap twice restores the original
// assignment.
func SwapDayContent(days []domain.ScheduleDay, aID, bID string) ([]domain.ScheduleDay, error) {
	if aID == bID {
		return days, fmt.Errorf("%w: cannot swap a day with itself", domain.ErrValidation)
	}

	ai, bi := -1, -1
	for i := range days {
		switch days[i].ID {
		case aID:
			ai = i
		case bID:
			bi = i
		}
	}
	if ai < 0 {
		return days, fmt.Errorf("%w: schedule day %s", domain.ErrNotFound, aID)
	}
	if bi < 0 {
		return days, fmt.Errorf("%w: schedule day %s", domain.ErrNotFound, bID)
	}

	next := make([]domain.ScheduleDay, len(days))
	copy(next, days)
	next[ai].Title, next[bi].Title = next[bi].Title, next[ai].Title
	next[ai].IconType, next[bi].IconType = next[bi].IconType, next[ai].IconType
	next[ai].Content, next[bi].Content = next[bi].Content, next[ai].Content
	next[ai].Events, next[bi].Events = next[bi].Events, next[ai].Events
	return next, nil
}
