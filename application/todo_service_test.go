package application

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolists/domain/session"
	"todolists/test/helpers"
)

func requireFlash(t *testing.T, st *session.State, kind session.FlashKind, msg string) {
	t.Helper()
	f := st.TakeFlash()
	require.NotNil(t, f, "expected a flash message")
	assert.Equal(t, kind, f.Kind)
	assert.Equal(t, msg, f.Message)
}

func TestTodoService_CreateList_Success(t *testing.T) {
	// Arrange
	service := NewTodoService()
	st := helpers.NewTestData().EmptySession()

	// Act
	out := service.CreateList(st, "  Groceries  ")

	// Assert
	assert.Equal(t, OutcomeRedirect, out.Kind)
	assert.Equal(t, ListsPath, out.Path)
	assert.Equal(t, http.StatusSeeOther, out.Status)

	require.Len(t, st.Lists, 1)
	assert.Equal(t, 1, st.Lists[0].ID)
	assert.Equal(t, "Groceries", st.Lists[0].Name, "name is trimmed")
	requireFlash(t, st, session.FlashSuccess, MsgListCreated)
}

func TestTodoService_CreateList_DuplicateNameRejected(t *testing.T) {
	service := NewTodoService()
	st := helpers.NewTestData().EmptySession()

	service.CreateList(st, "Groceries")
	st.TakeFlash()

	out := service.CreateList(st, "Groceries")

	assert.Equal(t, OutcomeRender, out.Kind)
	assert.Equal(t, ViewNewList, out.View)
	assert.Equal(t, "Groceries", out.Data.Input, "rejected input is retained")
	assert.Len(t, st.Lists, 1)
	requireFlash(t, st, session.FlashError, "The list name must be unique.")
}

func TestTodoService_CreateList_LengthRejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"blank", "   "},
		{"too long", strings.Repeat("a", 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewTodoService()
			st := helpers.NewTestData().EmptySession()

			out := service.CreateList(st, tt.input)

			assert.Equal(t, OutcomeRender, out.Kind)
			assert.Equal(t, ViewNewList, out.View)
			assert.Empty(t, st.Lists)
			requireFlash(t, st, session.FlashError, "The list name must be between 1 and 100 characters.")
		})
	}
}

func TestTodoService_RenameList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := NewTodoService()
		st := helpers.NewTestData().SessionWithLists("Groceries", "Chores")

		out := service.RenameList(st, 2, " Housework ")

		assert.Equal(t, OutcomeRedirect, out.Kind)
		assert.Equal(t, "/lists/2", out.Path)
		assert.Equal(t, "Housework", st.Lists[1].Name)
		requireFlash(t, st, session.FlashSuccess, MsgListUpdated)
	})

	t.Run("unchanged name is accepted", func(t *testing.T) {
		service := NewTodoService()
		st := helpers.NewTestData().SessionWithLists("Groceries")

		out := service.RenameList(st, 1, "Groceries")

		assert.Equal(t, OutcomeRedirect, out.Kind)
		requireFlash(t, st, session.FlashSuccess, MsgListUpdated)
	})

	t.Run("name of another list is rejected", func(t *testing.T) {
		service := NewTodoService()
		st := helpers.NewTestData().SessionWithLists("Groceries", "Chores")

		out := service.RenameList(st, 2, "Groceries")

		assert.Equal(t, OutcomeRender, out.Kind)
		assert.Equal(t, ViewEditList, out.View)
		assert.Equal(t, 2, out.Data.ListID)
		assert.Equal(t, "Groceries", out.Data.Input)
		assert.Equal(t, "Chores", st.Lists[1].Name)
		requireFlash(t, st, session.FlashError, "The list name must be unique.")
	})

	t.Run("unknown list", func(t *testing.T) {
		service := NewTodoService()
		st := helpers.NewTestData().SessionWithLists("Groceries")

		out := service.RenameList(st, 999, "Anything")

		assert.Equal(t, OutcomeRedirect, out.Kind)
		assert.Equal(t, ListsPath, out.Path)
		require.Len(t, st.Lists, 1)
		assert.Equal(t, "Groceries", st.Lists[0].Name)
		requireFlash(t, st, session.FlashError, "The specified list was not found.")
	})
}

func TestTodoService_DeleteList(t *testing.T) {
	t.Run("async request gets bare status", func(t *testing.T) {
		service := NewTodoService()
		st := helpers.NewTestData().SessionWithLists("A", "B")

		out := service.DeleteList(st, 1, true)

		assert.Equal(t, OutcomeStatus, out.Kind)
		assert.Equal(t, http.StatusNoContent, out.Status)
		assert.Empty(t, out.Path)
		assert.Nil(t, st.Flash)
		require.Len(t, st.Lists, 1)
		assert.Equal(t, "B", st.Lists[0].Name)
	})

	t.Run("browser request redirects with flash", func(t *testing.T) {
		service := NewTodoService()
		st := helpers.NewTestData().SessionWithLists("A")

		out := service.DeleteList(st, 1, false)

		assert.Equal(t, OutcomeRedirect, out.Kind)
		assert.Equal(t, ListsPath, out.Path)
		assert.Empty(t, st.Lists)
		requireFlash(t, st, session.FlashSuccess, MsgListDeleted)
	})

	t.Run("unknown list is a no-op", func(t *testing.T) {
		service := NewTodoService()
		st := helpers.NewTestData().SessionWithLists("A")

		out := service.DeleteList(st, 42, false)

		assert.Equal(t, OutcomeRedirect, out.Kind)
		assert.Len(t, st.Lists, 1)
	})
}

func TestTodoService_CompleteAll(t *testing.T) {
	service := NewTodoService()
	st := helpers.NewTestData().SessionWithItems("Chores", false, true)

	out := service.CompleteAll(st, 1)

	assert.Equal(t, OutcomeRedirect, out.Kind)
	assert.Equal(t, "/lists/1", out.Path)
	for _, item := range st.Lists[0].Items {
		assert.True(t, item.Completed)
	}
	assert.True(t, st.Lists[0].IsComplete())
	requireFlash(t, st, session.FlashSuccess, MsgAllCompleted)
}

func TestTodoService_CompleteAll_UnknownList(t *testing.T) {
	service := NewTodoService()
	st := helpers.NewTestData().EmptySession()

	out := service.CompleteAll(st, 3)

	assert.Equal(t, ListsPath, out.Path)
	requireFlash(t, st, session.FlashError, "The specified list was not found.")
}

func TestTodoService_AddItem_IDsNotReused(t *testing.T) {
	service := NewTodoService()
	st := helpers.NewTestData().EmptySession()

	service.CreateList(st, "A")
	service.AddItem(st, 1, "milk")
	require.Equal(t, 1, st.Lists[0].Items[0].ID)

	service.DeleteItem(st, 1, 1, false)
	require.Empty(t, st.Lists[0].Items)

	out := service.AddItem(st, 1, "eggs")

	assert.Equal(t, OutcomeRedirect, out.Kind)
	require.Len(t, st.Lists[0].Items, 1)
	assert.Equal(t, 2, st.Lists[0].Items[0].ID)
	assert.Equal(t, "eggs", st.Lists[0].Items[0].Name)
	assert.False(t, st.Lists[0].Items[0].Completed)
	requireFlash(t, st, session.FlashSuccess, MsgTodoAdded)
}

func TestTodoService_AddItem_InvalidName(t *testing.T) {
	service := NewTodoService()
	st := helpers.NewTestData().SessionWithLists("A")

	out := service.AddItem(st, 1, strings.Repeat("z", 101))

	assert.Equal(t, OutcomeRender, out.Kind)
	assert.Equal(t, ViewList, out.View)
	assert.Equal(t, 1, out.Data.ListID)
	assert.Len(t, out.Data.Input, 101)
	assert.Empty(t, st.Lists[0].Items)
	requireFlash(t, st, session.FlashError, "The todo name must be between 1 and 100 characters.")
}

func TestTodoService_DeleteItem(t *testing.T) {
	service := NewTodoService()
	st := helpers.NewTestData().SessionWithItems("A", false, false)

	out := service.DeleteItem(st, 1, 1, true)
	assert.Equal(t, OutcomeStatus, out.Kind)
	assert.Equal(t, http.StatusNoContent, out.Status)
	assert.Nil(t, st.Flash)
	require.Len(t, st.Lists[0].Items, 1)
	assert.Equal(t, 2, st.Lists[0].Items[0].ID)

	out = service.DeleteItem(st, 1, 99, false)
	assert.Equal(t, "/lists/1", out.Path)
	requireFlash(t, st, session.FlashSuccess, MsgTodoDeleted)

	out = service.DeleteItem(st, 7, 2, false)
	assert.Equal(t, ListsPath, out.Path)
	requireFlash(t, st, session.FlashError, "The specified list was not found.")
}

func TestTodoService_UpdateItemStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		completed bool
	}{
		{"true marks completed", "true", true},
		{"false clears", "false", false},
		{"anything else clears", "TRUE", false},
		{"missing clears", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewTodoService()
			st := helpers.NewTestData().SessionWithItems("A", !tt.completed)

			out := service.UpdateItemStatus(st, 1, 1, tt.input)

			assert.Equal(t, OutcomeRedirect, out.Kind)
			assert.Equal(t, "/lists/1", out.Path)
			assert.Equal(t, tt.completed, st.Lists[0].Items[0].Completed)
			requireFlash(t, st, session.FlashSuccess, MsgTodoUpdated)
		})
	}
}

func TestTodoService_UpdateItemStatus_UnknownItem(t *testing.T) {
	service := NewTodoService()
	st := helpers.NewTestData().SessionWithItems("A", false)

	out := service.UpdateItemStatus(st, 1, 5, "true")

	assert.Equal(t, OutcomeRedirect, out.Kind)
	assert.Equal(t, "/lists/1", out.Path)
	assert.False(t, st.Lists[0].Items[0].Completed)
	requireFlash(t, st, session.FlashError, "The specified todo was not found.")
}

func TestTodoService_ReadTransitions(t *testing.T) {
	service := NewTodoService()
	st := helpers.NewTestData().SessionWithLists("Groceries")

	assert.Equal(t, ListsPath, service.Home(st).Path)
	assert.Equal(t, ViewLists, service.ShowLists(st).View)
	assert.Equal(t, ViewNewList, service.NewListForm(st).View)

	out := service.ShowList(st, 1)
	assert.Equal(t, ViewList, out.View)
	assert.Equal(t, 1, out.Data.ListID)

	out = service.EditListForm(st, 1)
	assert.Equal(t, ViewEditList, out.View)
	assert.Equal(t, "Groceries", out.Data.Input)
	assert.Nil(t, st.Flash)

	out = service.ShowList(st, 0)
	assert.Equal(t, OutcomeRedirect, out.Kind)
	assert.Equal(t, ListsPath, out.Path)
	requireFlash(t, st, session.FlashError, "The specified list was not found.")
}
