package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/yourorg/listings-api/report"
)

type ReportDeps struct {
	Fetcher   Fetcher
	OutputDir string
}

// RegisterReport wires POST /report, which aggregates a location and writes
// the standalone HTML report file.
func RegisterReport(r chi.Router, d ReportDeps) {
	r.Post("/report", func(w http.ResponseWriter, req *http.Request) {
		var body SearchRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		loc, ok := parseLocation(body)
		if !ok {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "location_required", "detail": "city and state are required"})
			return
		}
		props := d.Fetcher.FetchAll(req.Context(), loc)
		if len(props) == 0 {
			render.Status(req, http.StatusNotFound)
			render.JSON(w, req, map[string]any{"error": "no_results", "detail": "no properties found for location"})
			return
		}
		path := report.FilePath(d.OutputDir, loc)
		data := report.Data{
			City:        loc.City,
			State:       loc.State,
			GeneratedAt: time.Now(),
			Properties:  props,
		}
		if err := report.Write(path, data); err != nil {
			render.Status(req, http.StatusInternalServerError)
			render.JSON(w, req, map[string]any{"error": "report_error", "detail": err.Error()})
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "count": len(props), "path": path})
	})
}
