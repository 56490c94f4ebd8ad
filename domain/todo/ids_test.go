package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextID_EmptyCollection(t *testing.T) {
	assert.Equal(t, 1, NextID(Items{}, 0))
	assert.Equal(t, 1, NextID[*Item](nil, 0))
}

func TestNextID_GreaterThanEveryExistingID(t *testing.T) {
	tests := []struct {
		name  string
		items Items
		want  int
	}{
		{"single", Items{{ID: 1}}, 2},
		{"ordered", Items{{ID: 1}, {ID: 2}, {ID: 3}}, 4},
		{"gaps", Items{{ID: 2}, {ID: 7}, {ID: 4}}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextID(tt.items, 0)
			assert.Equal(t, tt.want, got)
			for _, i := range tt.items {
				assert.Greater(t, got, i.ID)
			}
		})
	}
}

func TestNextID_NeverReusesDeletedIDs(t *testing.T) {
	list := &List{ID: 1, Name: "A"}
	milk := list.AddItem("milk")
	bread := list.AddItem("bread")
	assert.Equal(t, 1, milk.ID)
	assert.Equal(t, 2, bread.ID)

	list.Items.RemoveByID(bread.ID)
	list.Items.RemoveByID(milk.ID)

	next := NextID(list.Items, list.LastItemID)
	assert.Equal(t, 3, next)
}
