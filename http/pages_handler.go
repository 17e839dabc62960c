package httpapi

import (
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yourorg/listings-api/listing"
	"github.com/yourorg/listings-api/report"
)

type PageDeps struct {
	Fetcher Fetcher
}

var indexPage = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Property Search</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 500px; margin: 40px auto; padding: 20px; }
        label { display: block; margin-top: 10px; }
        input[type=text] { width: 100%; padding: 6px; }
        button { margin-top: 15px; padding: 8px 16px; }
        .error { color: #b00; }
    </style>
</head>
<body>
    <h1>Property Search</h1>
    {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
    <form method="POST" action="/properties">
        <label for="city">City</label>
        <input type="text" id="city" name="city" placeholder="Jersey City">
        <label for="state">State</label>
        <input type="text" id="state" name="state" placeholder="NJ" maxlength="2">
        <button type="submit">Search</button>
    </form>
</body>
</html>
`))

// RegisterPages wires the HTML search form and results page.
func RegisterPages(r chi.Router, d PageDeps) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		renderIndex(w, "")
	})

	r.Post("/properties", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseForm(); err != nil {
			renderIndex(w, "Please enter both city and state")
			return
		}
		city := strings.TrimSpace(req.FormValue("city"))
		state := strings.ToUpper(strings.TrimSpace(req.FormValue("state")))
		if city == "" || state == "" {
			renderIndex(w, "Please enter both city and state")
			return
		}
		loc := listing.Location{City: city, State: state}
		log.Printf("[INFO] fetching properties for %s, %s", city, state)
		props := d.Fetcher.FetchAll(req.Context(), loc)
		data := report.Data{
			City:        city,
			State:       state,
			GeneratedAt: time.Now(),
			Properties:  props,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := report.Render(w, data); err != nil {
			log.Printf("[WARN] results page render failed: %v", err)
		}
	})

	// Direct GETs go back to the form.
	r.Get("/properties", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/", http.StatusSeeOther)
	})
}

func renderIndex(w http.ResponseWriter, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexPage.Execute(w, struct{ Error string }{Error: errMsg}); err != nil {
		log.Printf("[WARN] index page render failed: %v", err)
	}
}
