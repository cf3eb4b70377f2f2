// Package layout renders the HTML shell shared by every full page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Shell classes applied to the page chrome.
const (
	BodyClass    = "min-h-screen bg-stone-50 text-stone-900"
	PanelClass   = "rounded-lg border border-stone-200 bg-white p-6 shadow-sm"
	MutedClass   = "text-sm text-stone-500"
	AccentClass  = "text-emerald-700"
	ButtonClass  = "rounded bg-emerald-700 px-4 py-2 text-white hover:bg-emerald-800"
	MessageClass = "rounded border border-amber-300 bg-amber-50 px-3 py-2 text-sm text-amber-900"
)

// NavLink is one entry of the header navigation.
type NavLink struct {
	Label string
	Href  string
}

// Navigation returns the header links for a visitor or a signed-in user.
func Navigation(signedIn bool) []NavLink {
	links := []NavLink{{Label: "Search", Href: "/search"}}
	if signedIn {
		return append(links, NavLink{Label: "Catalog", Href: "/app"}, NavLink{Label: "Sign out", Href: "/logout"})
	}
	return append(links, NavLink{Label: "Sign in", Href: "/login"})
}

// Page wraps body in the document shell.
func Page(title string, signedIn bool, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &Writer{W: w}
		out.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		out.Raw(`<title>`)
		out.Text(title)
		out.Raw(` · Oleum</title><script src="https://unpkg.com/htmx.org@2.0.4"></script></head>`)
		out.Raw(`<body class="` + BodyClass + `"><header class="flex items-center justify-between px-8 py-4"><a href="/search" class="text-xl font-semibold ` + AccentClass + `">Oleum</a><nav class="flex gap-4">`)
		for _, link := range Navigation(signedIn) {
			out.Raw(`<a href="`)
			out.Text(link.Href)
			out.Raw(`">`)
			out.Text(link.Label)
			out.Raw(`</a>`)
		}
		out.Raw(`</nav></header><main id="content" class="mx-auto max-w-4xl px-8 py-6">`)
		out.Render(ctx, body)
		out.Raw(`</main></body></html>`)
		return out.Err
	})
}

// Writer accumulates the first write error so components can emit markup without checking every call.
type Writer struct {
	W   io.Writer
	Err error
}

func (w *Writer) Raw(s string) {
	if w.Err == nil {
		_, w.Err = io.WriteString(w.W, s)
	}
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

func (w *Writer) Render(ctx context.Context, c templ.Component) {
	if w.Err == nil && c != nil {
		w.Err = c.Render(ctx, w.W)
	}
}
