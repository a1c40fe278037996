package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yutarok/tabinote/internal/domain"
)

func TestAddItem(t *testing.T) {
	items := domain.SeedItems()

	next, err := AddItem(items, "サングラス", domain.ItemOther)
	require.NoError(t, err)
	assert.Len(t, next, 4)
	assert.Equal(t, "サングラス", next[3].Text)
	assert.Equal(t, domain.ItemOther, next[3].Category)
	assert.False(t, next[3].Checked)
	assert.NotEmpty(t, next[3].ID)

	// The input collection must be left untouched.
	assert.Len(t, items, 3)
}

func TestAddItemValidation(t *testing.T) {
	items := domain.SeedItems()

	next, err := AddItem(items, "   ", domain.ItemOther)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, items, next)

	next, err = AddItem(items, "Towel", domain.ItemCategory("snacks"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, items, next)
}

func TestAddThenDeleteRestoresSurvivors(t *testing.T) {
	items := domain.SeedItems()

	next, err := AddItem(items, "折りたたみ傘", domain.ItemOther)
	require.NoError(t, err)

	restored := DeleteItem(next, next[3].ID)
	assert.Equal(t, items, restored)
}

func TestDeleteItemUnknownIDIsNoop(t *testing.T) {
	items := domain.SeedItems()
	next := DeleteItem(items, "nope")
	assert.Equal(t, items, next)
}

func TestToggleItemTwiceIsIdentity(t *testing.T) {
	items := domain.SeedItems()

	once, err := ToggleItem(items, "1")
	require.NoError(t, err)
	assert.True(t, once[0].Checked)

	twice, err := ToggleItem(once, "1")
	require.NoError(t, err)
	assert.Equal(t, items, twice)
}

func TestToggleItemNotFound(t *testing.T) {
	items := domain.SeedItems()
	_, err := ToggleItem(items, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompletion(t *testing.T) {
	assert.Equal(t, 0, Completion(nil))

	items := domain.SeedItems()
	assert.Equal(t, 0, Completion(items))

	one, err := ToggleItem(items, "1")
	require.NoError(t, err)
	// 1 of 3 checked → round(33.3) = 33
	assert.Equal(t, 33, Completion(one))

	two, err := ToggleItem(one, "2")
	require.NoError(t, err)
	// 2 of 3 checked → round(66.7) = 67
	assert.Equal(t, 67, Completion(two))

	three, err := ToggleItem(two, "3")
	require.NoError(t, err)
	assert.Equal(t, 100, Completion(three))
}
