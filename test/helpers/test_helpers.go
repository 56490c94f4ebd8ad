package helpers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todolists/domain/session"
	"todolists/domain/todo"
)

// TestData provides builders for common session fixtures.
type TestData struct{}

// NewTestData creates a new fixture builder.
func NewTestData() *TestData {
	return &TestData{}
}

// EmptySession returns a session with no lists.
func (td *TestData) EmptySession() *session.State {
	return session.New()
}

// SessionWithLists returns a session holding one empty list per name, with
// ids assigned from 1.
func (td *TestData) SessionWithLists(names ...string) *session.State {
	st := session.New()
	for _, name := range names {
		st.AddList(name)
	}
	return st
}

// SessionWithItems returns a session holding a single list with id 1 whose
// items carry the given completion flags, named "todo 1", "todo 2", ...
func (td *TestData) SessionWithItems(listName string, completed ...bool) *session.State {
	st := session.New()
	list := st.AddList(listName)
	for i, done := range completed {
		item := list.AddItem(ItemName(i + 1))
		item.Completed = done
	}
	return st
}

// SimpleList returns a detached list with the given id and items.
func (td *TestData) SimpleList(id int, name string, items ...*todo.Item) *todo.List {
	l := &todo.List{ID: id, Name: name, Items: todo.Items{}}
	for _, i := range items {
		l.Items.Append(i)
		if i.ID > l.LastItemID {
			l.LastItemID = i.ID
		}
	}
	return l
}

// ItemName returns the fixture name of the n-th item.
func ItemName(n int) string {
	return "todo " + string(rune('0'+n))
}

// WithURLParams attaches chi route parameters to a request, as the router
// would when dispatching.
func WithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
