package handlers

import (
	"encoding/json"
	"net/http"

	applog "oleum/internal/log"
	"oleum/internal/views/pages"
	"oleum/models"
)

// Search renders the effect search form and, once rows are submitted, the ranked essential oils.
func Search(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	form := pages.SearchFormFromRequest(r)
	data := pages.SearchPage{Form: form, SignedIn: ActiveSession(r)}

	applog.Debug(ctx, "handling search request", "submitted", form.Submitted(), "htmx", isHTMX(r))

	if searchEngine == nil {
		data.Message = "Search is currently unavailable."
	} else {
		if !isHTMX(r) {
			data.EffectNames = effectNames(r)
		}
		if form.Submitted() {
			result, err := searchEngine.SearchEssentialOilsByEffects(ctx, form.Items())
			if err != nil {
				applog.Error(ctx, "effect search failed", "error", err)
				data.Message = "We could not complete the search. Please try again."
			} else {
				data.Result = &result
			}
		}
	}

	if isHTMX(r) {
		renderComponent(w, r, pages.SearchResults(data))
		return
	}
	renderComponent(w, r, pages.Search(data))
}

type searchRequest struct {
	Effects []models.SearchEffectItem `json:"effects"`
}

// SearchAPI runs an effect search from a JSON body and returns the ranked result.
func SearchAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if searchEngine == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "search unavailable")
		return
	}

	var payload searchRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(r.Context(), "invalid search payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := searchEngine.SearchEssentialOilsByEffects(r.Context(), payload.Effects)
	if err != nil {
		applog.Error(r.Context(), "effect search failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to search essential oils")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func effectNames(r *http.Request) []string {
	if services.Effects == nil {
		return nil
	}
	effects, err := services.Effects.List(r.Context())
	if err != nil {
		applog.Error(r.Context(), "failed to list effects for search form", "error", err)
		return nil
	}
	names := make([]string, 0, len(effects))
	for _, effect := range effects {
		names = append(names, effect.Name)
	}
	return names
}
