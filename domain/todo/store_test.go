package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLists_FindRemoveRename(t *testing.T) {
	lists := Lists{}
	lists.Append(&List{ID: 1, Name: "A"})
	lists.Append(&List{ID: 2, Name: "B"})
	lists.Append(&List{ID: 3, Name: "C"})

	l, err := lists.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "B", l.Name)

	_, err = lists.FindByID(99)
	assert.ErrorIs(t, err, ErrListNotFound)

	lists.Rename(2, "Bee")
	assert.Equal(t, "Bee", lists[1].Name)
	lists.Rename(99, "ignored")

	lists.RemoveByID(2)
	require.Len(t, lists, 2)
	assert.Equal(t, 1, lists[0].ID)
	assert.Equal(t, 3, lists[1].ID)

	lists.RemoveByID(2)
	assert.Len(t, lists, 2, "removing an absent id is a no-op")
}

func TestItems_SetCompletedAndCompleteAll(t *testing.T) {
	items := Items{{ID: 1, Name: "milk"}, {ID: 2, Name: "eggs", Completed: true}}

	items.SetCompleted(1, true)
	assert.True(t, items[0].Completed)
	items.SetCompleted(2, false)
	assert.False(t, items[1].Completed)
	items.SetCompleted(42, true)

	items.CompleteAll()
	for _, i := range items {
		assert.True(t, i.Completed)
	}

	_, err := items.FindByID(42)
	assert.ErrorIs(t, err, ErrItemNotFound)

	items.RemoveByID(1)
	items.RemoveByID(1)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
}

func TestList_IsComplete(t *testing.T) {
	tests := []struct {
		name      string
		items     Items
		complete  bool
		remaining int
	}{
		{"no items", Items{}, false, 0},
		{"all completed", Items{{ID: 1, Completed: true}, {ID: 2, Completed: true}}, true, 0},
		{"mixed", Items{{ID: 1}, {ID: 2, Completed: true}}, false, 1},
		{"none completed", Items{{ID: 1}}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &List{ID: 1, Name: "L", Items: tt.items}
			assert.Equal(t, tt.complete, l.IsComplete())
			assert.Equal(t, tt.remaining, l.Remaining())
			assert.Equal(t, len(tt.items), l.Count())
		})
	}
}
