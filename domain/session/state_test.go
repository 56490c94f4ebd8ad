package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_AddListAssignsIncreasingIDs(t *testing.T) {
	s := New()

	a := s.AddList("A")
	b := s.AddList("B")
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Empty(t, b.Items)

	s.Lists.RemoveByID(b.ID)
	c := s.AddList("C")
	assert.Equal(t, 3, c.ID, "deleted list ids are not reused")
}

func TestState_TakeFlashIsOneShot(t *testing.T) {
	s := New()
	assert.Nil(t, s.TakeFlash())

	s.SetError("bad")
	s.SetSuccess("good")

	f := s.TakeFlash()
	require.NotNil(t, f)
	assert.Equal(t, FlashSuccess, f.Kind)
	assert.Equal(t, "good", f.Message)

	assert.Nil(t, s.TakeFlash())
}
