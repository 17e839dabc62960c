package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	httpapi "github.com/yourorg/listings-api/http"
)

func BuildRouter(fetcher httpapi.Fetcher, reportDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(httprate.LimitByIP(100, 1*time.Minute)) // protect upstream quota
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"ok":true}`)) })

	httpapi.RegisterPages(r, httpapi.PageDeps{Fetcher: fetcher})

	// JSON API
	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		httpapi.RegisterSearch(r, httpapi.SearchDeps{Fetcher: fetcher})
		httpapi.RegisterReport(r, httpapi.ReportDeps{Fetcher: fetcher, OutputDir: reportDir})
	})

	return r
}
