package serialization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolists/domain/session"
)

func TestSessionStateSerializer_PreservesIDHistoryAndFlash(t *testing.T) {
	s := NewSessionStateSerializer()

	st := session.New()
	list := st.AddList("Groceries")
	list.AddItem("milk")
	list.AddItem("eggs").Completed = true
	list.Items.RemoveByID(2)
	st.Lists.RemoveByID(list.ID)
	st.AddList("Chores")
	st.SetError("The list name must be unique.")

	data, err := s.SerializeState(st)
	require.NoError(t, err)

	got, err := s.DeserializeState(data)
	require.NoError(t, err)

	require.Len(t, got.Lists, 1)
	assert.Equal(t, 2, got.Lists[0].ID)
	assert.Equal(t, 2, got.LastListID)
	require.NotNil(t, got.Flash)
	assert.Equal(t, session.FlashError, got.Flash.Kind)

	next := got.AddList("Errands")
	assert.Equal(t, 3, next.ID)
}

func TestSessionStateSerializer_EmptyAndNullInputs(t *testing.T) {
	s := NewSessionStateSerializer()

	st, err := s.DeserializeState("")
	require.NoError(t, err)
	assert.NotNil(t, st.Lists)
	assert.Empty(t, st.Lists)

	st, err = s.DeserializeState(`{"lists":[{"id":1,"name":"A","items":null}]}`)
	require.NoError(t, err)
	require.Len(t, st.Lists, 1)
	assert.NotNil(t, st.Lists[0].Items)

	_, err = s.DeserializeState("{not json")
	assert.Error(t, err)
}
