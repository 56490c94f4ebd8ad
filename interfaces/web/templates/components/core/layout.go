package core

import (
	"context"

	"github.com/a-h/templ"
)

// Layout wraps a page body in the document shell. flash is rendered above
// the body when set.
func Layout(title string, flash templ.Component, body templ.Component) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		w.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Raw(`<title>`)
		w.Text(title)
		w.Raw(` | Todo Tracker</title>`)
		w.Raw(`<link rel="stylesheet" href="/assets/app.css">`)
		w.Raw(`<script src="/assets/app.js" defer></script>`)
		w.Raw(`</head><body><header><h1><a href="/lists">Todo Tracker</a></h1></header><main>`)
		w.Render(ctx, flash)
		w.Render(ctx, body)
		w.Raw(`</main></body></html>`)
	})
}
