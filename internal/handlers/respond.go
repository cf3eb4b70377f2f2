package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a-h/templ"

	applog "oleum/internal/log"
	"oleum/internal/validation"
)

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

type validationResponse struct {
	Error  string            `json:"error"`
	Errors validation.Result `json:"errors"`
}

func writeValidation(w http.ResponseWriter, status int, result validation.Result) {
	writeJSON(w, status, validationResponse{Error: result.First(), Errors: result})
}

// writeLookupError maps not-found errors to 404 and everything else to 500.
func writeLookupError(w http.ResponseWriter, r *http.Request, kind string, err error) {
	if errors.Is(err, validation.ErrNotFound) {
		applog.Debug(r.Context(), "record not found", "kind", kind, "error", err)
		writeJSONError(w, http.StatusNotFound, kind+" not found")
		return
	}
	applog.Error(r.Context(), "failed to load record", "kind", kind, "error", err)
	writeJSONError(w, http.StatusInternalServerError, "unable to load "+kind)
}

func renderComponent(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render component", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
