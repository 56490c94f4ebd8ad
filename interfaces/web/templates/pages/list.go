package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"todolists/interfaces/web/presenters"
	"todolists/interfaces/web/templates/components/core"
	"todolists/interfaces/web/templates/components/ui"
)

// ListPage renders a single list with its todos, the complete-all action and
// the add-todo form.
func ListPage(flash *presenters.FlashVM, vm *presenters.ListPageVM) templ.Component {
	body := core.Component(func(ctx context.Context, w *core.Writer) {
		w.Raw(`<section id="todos"`, core.Class(vm.List.CSSClass), `><header><h2>`)
		w.Text(vm.List.Name)
		w.Raw(`</h2><p class="count">`)
		w.Text(vm.List.CountLabel)
		w.Raw(`</p><ul class="actions">`)
		w.Raw(`<li><form method="post"`, core.Attr("action", vm.CompletePath), `>`)
		w.Raw(`<button class="check" type="submit">Complete All</button></form></li>`)
		w.Raw(`<li><a class="edit"`, core.Attr("href", vm.EditPath), `>Edit List</a></li>`)
		w.Raw(`</ul></header><ul>`)

		for _, item := range vm.Items {
			w.Raw(`<li`, core.Class(item.CSSClass), core.Attr("data-id", strconv.Itoa(item.ID)), `>`)
			w.Raw(`<form method="post" class="check"`, core.Attr("action", item.TogglePath), `>`)
			w.Raw(`<input type="hidden" name="completed"`, core.Attr("value", item.ToggleValue), `>`)
			w.Raw(`<button type="submit">Toggle</button></form><h3>`)
			w.Text(item.Name)
			w.Raw(`</h3>`)
			w.Render(ctx, ui.DeleteButton(item.DeletePath, "Delete"))
			w.Raw(`</li>`)
		}

		w.Raw(`</ul></section><section class="add-todo">`)
		w.Raw(`<form method="post"`, core.Attr("action", vm.AddItemPath), `>`)
		w.Raw(`<label for="todo">Enter a new todo item:</label>`)
		w.Raw(`<input id="todo" name="todo" placeholder="Something to do" maxlength="100"`, core.Attr("value", vm.ItemInput), `>`)
		w.Raw(`<button type="submit">Add</button></form></section>`)
		w.Raw(`<p><a href="/lists">All Lists</a></p>`)
	})
	return core.Layout(vm.List.Name, ui.Flash(flash), body)
}

// EditListPage renders the rename form and the delete action.
func EditListPage(flash *presenters.FlashVM, vm *presenters.EditListVM) templ.Component {
	body := core.Component(func(ctx context.Context, w *core.Writer) {
		w.Raw(`<section class="edit-list"><h2>Editing &#39;`)
		w.Text(vm.CurrentName)
		w.Raw(`&#39;</h2>`)
		w.Raw(`<form method="post"`, core.Attr("action", vm.UpdatePath), `>`)
		w.Raw(`<label for="list_name">Enter the new name for the list:</label>`)
		w.Raw(`<input id="list_name" name="list_name" maxlength="100" autofocus`, core.Attr("value", vm.Input), `>`)
		w.Raw(`<button type="submit">Save</button> <a`, core.Attr("href", vm.BackPath), `>Cancel</a></form>`)
		w.Render(ctx, ui.DeleteButton(vm.DestroyPath, "Delete List"))
		w.Raw(`</section>`)
	})
	return core.Layout("Edit "+vm.CurrentName, ui.Flash(flash), body)
}
