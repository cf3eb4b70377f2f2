package handlers

import (
	"net/http"

	applog "oleum/internal/log"
	"oleum/internal/views/pages"
)

// Dashboard renders the catalog overview once a user is authenticated.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if services.EssentialOils == nil {
		http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		return
	}

	data, err := loadDashboardData(r)
	if err != nil {
		applog.Error(r.Context(), "failed to load catalog overview", "error", err)
		http.Error(w, "unable to load catalog", http.StatusInternalServerError)
		return
	}
	renderComponent(w, r, pages.Dashboard(data))
}

func loadDashboardData(r *http.Request) (pages.DashboardData, error) {
	ctx := r.Context()
	data := pages.DashboardData{}
	if sessionManager != nil {
		data.UserName = sessionManager.GetString(ctx, sessionUserNameKey)
		if data.UserName == "" {
			data.UserName = sessionManager.GetString(ctx, sessionUserEmailKey)
		}
	}

	var err error
	if data.EssentialOils, err = services.EssentialOils.List(ctx); err != nil {
		return data, err
	}
	if data.Effects, err = services.Effects.List(ctx); err != nil {
		return data, err
	}
	if data.Molecules, err = services.Molecules.List(ctx); err != nil {
		return data, err
	}
	return data, nil
}
