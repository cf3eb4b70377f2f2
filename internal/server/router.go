package server

import (
	"context"
	"net/http"

	"oleum/internal/handlers"
	applog "oleum/internal/log"
)

type catalogRoute struct {
	prefix  string
	handler http.HandlerFunc
}

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/login", handlers.Login)
	applog.Debug(context.Background(), "route registered", "path", "/login")
	mux.HandleFunc("/signup", handlers.Signup)
	applog.Debug(context.Background(), "route registered", "path", "/signup")
	mux.HandleFunc("/logout", handlers.Logout)
	applog.Debug(context.Background(), "route registered", "path", "/logout")
	mux.HandleFunc("/search", handlers.Search)
	mux.HandleFunc("/api/search", handlers.SearchAPI)
	applog.Debug(context.Background(), "route registered", "path", "/search", "api", "/api/search")

	mux.Handle("/app", handlers.RequireAuthentication(http.HandlerFunc(handlers.Dashboard)))
	applog.Debug(context.Background(), "route registered", "path", "/app", "protected", true)
	for _, route := range []catalogRoute{
		{prefix: "/app/api/essential-oils", handler: handlers.EssentialOilResource},
		{prefix: "/app/api/effects", handler: handlers.EffectResource},
		{prefix: "/app/api/molecules", handler: handlers.MoleculeResource},
		{prefix: "/app/api/substances", handler: handlers.SubstanceResource},
		{prefix: "/app/api/categories", handler: handlers.CategoryResource},
	} {
		protected := handlers.RequireAuthentication(route.handler)
		mux.Handle(route.prefix, protected)
		mux.Handle(route.prefix+"/", protected)
		applog.Debug(context.Background(), "route registered", "path", route.prefix, "protected", true)
	}

	mux.HandleFunc("/", handlers.Home)
	applog.Debug(context.Background(), "route registered", "path", "/")
	return mux
}
