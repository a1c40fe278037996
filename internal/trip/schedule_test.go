package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yutarok/tabinote/internal/domain"
)

func TestUpdateDay(t *testing.T) {
	days := domain.SeedSchedule()

	next, err := UpdateDay(days, "d3", "イッタラ", domain.IconShopping, "アウトレットに変更")
	require.NoError(t, err)
	assert.Equal(t, "イッタラ", next[2].Title)
	assert.Equal(t, "アウトレットに変更", next[2].Content)
	// Slot identity stays fixed.
	assert.Equal(t, "d3", next[2].ID)
	assert.Equal(t, "6/21", next[2].Date)
	// Siblings untouched.
	assert.Equal(t, days[0], next[0])
}

func TestUpdateDayValidation(t *testing.T) {
	days := domain.SeedSchedule()

	_, err := UpdateDay(days, "d1", "", domain.IconPlane, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = UpdateDay(days, "d1", "出発", domain.IconType("rocket"), "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = UpdateDay(days, "d99", "出発", domain.IconPlane, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddEventSortsByTime(t *testing.T) {
	days := domain.SeedSchedule()

	var err error
	for _, tm := range []string{"09:00", "07:30", "12:15"} {
		days, err = AddEvent(days, "d2", domain.ScheduleEvent{Time: tm, Title: "予定 " + tm})
		require.NoError(t, err)
	}

	events := days[1].Events
	require.Len(t, events, 3)
	assert.Equal(t, "07:30", events[0].Time)
	assert.Equal(t, "09:00", events[1].Time)
	assert.Equal(t, "12:15", events[2].Time)
}

func TestAddEventValidation(t *testing.T) {
	days := domain.SeedSchedule()

	_, err := AddEvent(days, "d1", domain.ScheduleEvent{Time: "10:00", Title: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = AddEvent(days, "d99", domain.ScheduleEvent{Time: "10:00", Title: "出発"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteEvent(t *testing.T) {
	days := domain.SeedSchedule()

	days, err := AddEvent(days, "d5", domain.ScheduleEvent{Time: "15:00", Title: "Löyly予約"})
	require.NoError(t, err)

	next, err := DeleteEvent(days, "d5", days[4].Events[0].ID)
	require.NoError(t, err)
	assert.Empty(t, next[4].Events)

	_, err = DeleteEvent(days, "d99", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSwapDayContent(t *testing.T) {
	days := domain.SeedSchedule()

	days, err := AddEvent(days, "d1", domain.ScheduleEvent{Time: "20:00", Title: "空港集合"})
	require.NoError(t, err)

	swapped, err := SwapDayContent(days, "d1", "d2")
	require.NoError(t, err)

	// Slot identity stays fixed, content switches sides.
	assert.Equal(t, "d1", swapped[0].ID)
	assert.Equal(t, "6/19", swapped[0].Date)
	assert.Equal(t, "到着", swapped[0].Title)
	assert.Empty(t, swapped[0].Events)

	assert.Equal(t, "d2", swapped[1].ID)
	assert.Equal(t, "6/20", swapped[1].Date)
	assert.Equal(t, "出発", swapped[1].Title)
	require.Len(t, swapped[1].Events, 1)
	assert.Equal(t, "空港集合", swapped[1].Events[0].Title)

	// Swapping twice restores the original assignment.
	restored, err := SwapDayContent(swapped, "d1", "d2")
	require.NoError(t, err)
	assert.Equal(t, days, restored)
}

func TestSwapDayContentErrors(t *testing.T) {
	days := domain.SeedSchedule()

	_, err := SwapDayContent(days, "d1", "d1")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = SwapDayContent(days, "d1", "d99")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = SwapDayContent(days, "d99", "d1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
