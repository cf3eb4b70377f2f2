package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"oleum/internal/views/layout"
)

// Login renders the full sign-in page. next is the local path to return to.
func Login(message, email, next string) templ.Component {
	return layout.Page("Sign in", false, LoginPartial(message, email, next))
}

// LoginPartial renders the sign-in form for HTMX swaps.
func LoginPartial(message, email, next string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &layout.Writer{W: w}
		out.Raw(`<section id="auth" class="` + layout.PanelClass + `"><h1 class="mb-4 text-2xl">Sign in</h1>`)
		writeMessage(out, message)
		out.Raw(`<form method="post" action="/login" hx-post="/login" hx-target="#auth" hx-swap="outerHTML" class="grid gap-3">`)
		out.Raw(`<label>Email <input type="email" name="email" required value="`)
		out.Text(email)
		out.Raw(`"></label><label>Password <input type="password" name="password" required></label>`)
		if next != "" {
			out.Raw(`<input type="hidden" name="next" value="`)
			out.Text(next)
			out.Raw(`">`)
		}
		out.Raw(`<button type="submit" class="` + layout.ButtonClass + `">Sign in</button></form>`)
		out.Raw(`<p class="` + layout.MutedClass + `">No account yet? <a href="/signup">Create one</a>.</p></section>`)
		return out.Err
	})
}

// Signup renders the full registration page.
func Signup(message, name, email string) templ.Component {
	return layout.Page("Create account", false, SignupPartial(message, name, email))
}

// SignupPartial renders the registration form for HTMX swaps.
func SignupPartial(message, name, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &layout.Writer{W: w}
		out.Raw(`<section id="auth" class="` + layout.PanelClass + `"><h1 class="mb-4 text-2xl">Create account</h1>`)
		writeMessage(out, message)
		out.Raw(`<form method="post" action="/signup" hx-post="/signup" hx-target="#auth" hx-swap="outerHTML" class="grid gap-3">`)
		out.Raw(`<label>Name <input type="text" name="name" value="`)
		out.Text(name)
		out.Raw(`"></label><label>Email <input type="email" name="email" required value="`)
		out.Text(email)
		out.Raw(`"></label><label>Password <input type="password" name="password" minlength="8" required></label>`)
		out.Raw(`<label>Confirm password <input type="password" name="confirm_password" minlength="8" required></label>`)
		out.Raw(`<button type="submit" class="` + layout.ButtonClass + `">Create account</button></form>`)
		out.Raw(`<p class="` + layout.MutedClass + `">Already registered? <a href="/login">Sign in</a>.</p></section>`)
		return out.Err
	})
}

func writeMessage(out *layout.Writer, message string) {
	if message == "" {
		return
	}
	out.Raw(`<p role="alert" class="` + layout.MessageClass + `">`)
	out.Text(message)
	out.Raw(`</p>`)
}
