package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolists/domain/todo"
	"todolists/interfaces/web/presenters"
	"todolists/test/helpers"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestListsPage_EscapesNamesAndShowsCounts(t *testing.T) {
	presenter := presenters.NewListPresenter()
	td := helpers.NewTestData()
	lists := todo.Lists{
		td.SimpleList(1, "<b>Groceries</b>", &todo.Item{ID: 1, Name: "milk"}),
	}

	html := render(t, ListsPage(nil, presenter.ToListsPageVM(lists)))

	assert.Contains(t, html, "&lt;b&gt;Groceries&lt;/b&gt;")
	assert.NotContains(t, html, "<b>Groceries</b>")
	assert.Contains(t, html, "1 / 1")
	assert.Contains(t, html, `href="/lists/1"`)
	assert.NotContains(t, html, `class="flash`)
}

func TestListsPage_Empty(t *testing.T) {
	html := render(t, ListsPage(nil, &presenters.ListsPageVM{}))

	assert.Contains(t, html, "You have no lists yet.")
}

func TestListPage_RendersFlashItemsAndInput(t *testing.T) {
	presenter := presenters.NewListPresenter()
	list := helpers.NewTestData().SimpleList(2, "Chores",
		&todo.Item{ID: 1, Name: "sweep", Completed: true},
		&todo.Item{ID: 2, Name: "dust"},
	)
	flash := &presenters.FlashVM{Kind: "error", Message: "The todo name must be between 1 and 100 characters."}

	html := render(t, ListPage(flash, presenter.ToListPageVM(list, `"quoted"`)))

	assert.Contains(t, html, `class="flash error"`)
	assert.Contains(t, html, "The todo name must be between 1 and 100 characters.")
	assert.Contains(t, html, `class="complete"`)
	assert.Contains(t, html, `action="/lists/2/todos/1/delete"`)
	assert.Contains(t, html, `action="/lists/2/complete"`)
	assert.Contains(t, html, `value="&#34;quoted&#34;"`)
	assert.Less(t, bytes.Index([]byte(html), []byte("dust")), bytes.Index([]byte(html), []byte("sweep")))
}

func TestEditListPage(t *testing.T) {
	presenter := presenters.NewListPresenter()
	list := helpers.NewTestData().SimpleList(3, "Work")

	html := render(t, EditListPage(nil, presenter.ToEditListVM(list, "Office")))

	assert.Contains(t, html, "Editing &#39;Work&#39;")
	assert.Contains(t, html, `value="Office"`)
	assert.Contains(t, html, `action="/lists/3/destroy"`)
	assert.Contains(t, html, `class="delete"`)
}

func TestNewListPage(t *testing.T) {
	presenter := presenters.NewListPresenter()
	flash := &presenters.FlashVM{Kind: "error", Message: "The list name must be unique."}

	html := render(t, NewListPage(flash, presenter.ToNewListVM("Groceries")))

	assert.Contains(t, html, "The list name must be unique.")
	assert.Contains(t, html, `value="Groceries"`)
	assert.Contains(t, html, `action="/lists"`)
}
