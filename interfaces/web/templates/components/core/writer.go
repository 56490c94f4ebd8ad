// Package core provides the markup primitives and page layout shared by all views.
package core

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Writer emits markup and keeps the first write error, so a view can be
// written top to bottom and checked once.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is.
func (w *Writer) Raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

// Text writes user-supplied text, HTML-escaped.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Render writes a nested component.
func (w *Writer) Render(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Err returns the first error encountered.
func (w *Writer) Err() error {
	return w.err
}

// Attr formats an escaped attribute with a leading space.
func Attr(name, value string) string {
	return " " + name + `="` + templ.EscapeString(value) + `"`
}

// Class formats a class attribute from the non-empty names, or nothing.
func Class(names ...string) string {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return Attr("class", strings.Join(kept, " "))
}

// Component adapts a writer callback into a templ component.
func Component(fn func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewWriter(out)
		fn(ctx, w)
		return w.Err()
	})
}
