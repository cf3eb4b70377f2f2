package handlers

import (
	"net/http"
	"strings"

	applog "oleum/internal/log"
	"oleum/internal/views/pages"
)

const loginFailedMessage = "We were unable to sign you in. Please try again."

// Login serves the sign-in form. A successful submission returns the user to the
// local path carried in "next", or to the catalog overview.
func Login(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "handling login request", "method", r.Method, "htmx", isHTMX(r))

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		showLogin(w, r)
	case http.MethodPost:
		submitLogin(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func showLogin(w http.ResponseWriter, r *http.Request) {
	next := returnTarget(r.URL.Query().Get("next"))
	if ActiveSession(r) {
		redirect(w, r, next)
		return
	}
	message := ""
	if sessionManager != nil {
		message = sessionManager.PopString(r.Context(), sessionLoginMessageKey)
	}
	renderLogin(w, r, message, "", next)
}

func submitLogin(w http.ResponseWriter, r *http.Request) {
	if sessionManager == nil || database == nil {
		applog.Debug(r.Context(), "authentication dependencies unavailable", "hasSession", sessionManager != nil, "hasDatabase", database != nil)
		http.Error(w, "authentication not available", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse login form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	next := returnTarget(r.PostFormValue("next"))

	if email == "" || password == "" {
		renderLogin(w, r, "Email and password are required.", email, next)
		return
	}

	if !authenticate(w, r, email, password) {
		applog.Debug(r.Context(), "authentication failed", "email", strings.ToLower(email))
		message := sessionManager.PopString(r.Context(), sessionLoginMessageKey)
		if message == "" {
			message = loginFailedMessage
		}
		renderLogin(w, r, message, email, next)
		return
	}

	applog.Info(r.Context(), "user signed in", "email", strings.ToLower(email))
	redirect(w, r, next)
}

// renderLogin omits the default target from the form.
func renderLogin(w http.ResponseWriter, r *http.Request, message, email, next string) {
	if next == "/app" {
		next = ""
	}
	if isHTMX(r) {
		renderComponent(w, r, pages.LoginPartial(message, email, next))
		return
	}
	renderComponent(w, r, pages.Login(message, email, next))
}
