package handlers

import "net/http"

// Home sends visitors of the bare domain to the search page.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/search", http.StatusFound)
}
