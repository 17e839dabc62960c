package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/yourorg/listings-api/listing"
)

// Fetcher aggregates listings for a location.
type Fetcher interface {
	FetchAll(ctx context.Context, loc listing.Location) []listing.Property
}

type SearchDeps struct {
	Fetcher Fetcher
}

type SearchRequest struct {
	City  string `json:"city"`
	State string `json:"state"`
}

func RegisterSearch(r chi.Router, d SearchDeps) {
	// POST: JSON body
	r.Post("/search", func(w http.ResponseWriter, req *http.Request) {
		var body SearchRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		handleSearchRequest(w, req, d, body)
	})

	// GET: query params (compatibility)
	r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		body := SearchRequest{
			City:  q.Get("city"),
			State: q.Get("state"),
		}
		handleSearchRequest(w, req, d, body)
	})
}

func handleSearchRequest(w http.ResponseWriter, req *http.Request, d SearchDeps, body SearchRequest) {
	loc, ok := parseLocation(body)
	if !ok {
		render.Status(req, http.StatusBadRequest)
		render.JSON(w, req, map[string]any{"error": "location_required", "detail": "city and state are required"})
		return
	}
	props := d.Fetcher.FetchAll(req.Context(), loc)
	render.JSON(w, req, map[string]any{
		"ok":         true,
		"count":      len(props),
		"properties": props,
	})
}

func parseLocation(body SearchRequest) (listing.Location, bool) {
	loc := listing.Location{
		City:  strings.TrimSpace(body.City),
		State: strings.ToUpper(strings.TrimSpace(body.State)),
	}
	return loc, loc.City != "" && loc.State != ""
}
