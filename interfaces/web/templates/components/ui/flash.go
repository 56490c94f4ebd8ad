// Package ui holds small reusable view fragments.
package ui

import (
	"context"

	"github.com/a-h/templ"

	"todolists/interfaces/web/presenters"
	"todolists/interfaces/web/templates/components/core"
)

// Flash renders the one-shot message block. A nil flash renders nothing.
func Flash(vm *presenters.FlashVM) templ.Component {
	if vm == nil {
		return nil
	}
	return core.Component(func(_ context.Context, w *core.Writer) {
		w.Raw(`<div`, core.Class("flash", vm.Kind), ` role="status"><p>`)
		w.Text(vm.Message)
		w.Raw(`</p></div>`)
	})
}

// DeleteButton renders a form that posts to action. Forms with the delete
// class are submitted in the background by app.js when scripts are enabled.
func DeleteButton(action, label string) templ.Component {
	return core.Component(func(_ context.Context, w *core.Writer) {
		w.Raw(`<form method="post" class="delete"`, core.Attr("action", action), `>`)
		w.Raw(`<button type="submit">`)
		w.Text(label)
		w.Raw(`</button></form>`)
	})
}
