// Package pages holds the full-page views.
package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"todolists/interfaces/web/presenters"
	"todolists/interfaces/web/templates/components/core"
	"todolists/interfaces/web/templates/components/ui"
)

// ListsPage renders every list with its remaining/total counter.
func ListsPage(flash *presenters.FlashVM, vm *presenters.ListsPageVM) templ.Component {
	body := core.Component(func(_ context.Context, w *core.Writer) {
		w.Raw(`<section class="lists"><header><h2>Your Lists</h2>`)
		w.Raw(`<a class="button" href="/lists/new">New List</a></header>`)
		if len(vm.Lists) == 0 {
			w.Raw(`<p class="empty">You have no lists yet.</p>`)
		} else {
			w.Raw(`<ul id="lists">`)
			for _, l := range vm.Lists {
				w.Raw(`<li`, core.Class(l.CSSClass), core.Attr("data-id", strconv.Itoa(l.ID)), `>`)
				w.Raw(`<a`, core.Attr("href", l.Path), `><h3>`)
				w.Text(l.Name)
				w.Raw(`</h3><p class="count">`)
				w.Text(l.CountLabel)
				w.Raw(`</p></a></li>`)
			}
			w.Raw(`</ul>`)
		}
		w.Raw(`</section>`)
	})
	return core.Layout("Lists", ui.Flash(flash), body)
}

// NewListPage renders the list creation form.
func NewListPage(flash *presenters.FlashVM, vm *presenters.NewListVM) templ.Component {
	body := core.Component(func(_ context.Context, w *core.Writer) {
		w.Raw(`<section class="new-list"><h2>Create a New List</h2>`)
		w.Raw(`<form method="post"`, core.Attr("action", vm.CreatePath), `>`)
		w.Raw(`<label for="list_name">Enter the name for your new list:</label>`)
		w.Raw(`<input id="list_name" name="list_name" maxlength="100" autofocus`, core.Attr("value", vm.Input), `>`)
		w.Raw(`<button type="submit">Save</button> <a href="/lists">Cancel</a>`)
		w.Raw(`</form></section>`)
	})
	return core.Layout("New List", ui.Flash(flash), body)
}
