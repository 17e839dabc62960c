package report

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yourorg/listings-api/listing"
)

// Data is everything the report page needs.
type Data struct {
	City        string
	State       string
	GeneratedAt time.Time
	Properties  []listing.Property
}

var funcs = template.FuncMap{
	"money":  money,
	"commas": commas,
	"count":  count,
}

var page = template.Must(template.New("report").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.City}}, {{.State}} Properties Report</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            line-height: 1.6;
        }
        .property-card {
            border: 1px solid #ddd;
            margin-bottom: 20px;
            padding: 15px;
            display: flex;
            align-items: start;
        }
        .property-thumbnail {
            width: 200px;
            height: 150px;
            object-fit: cover;
            margin-right: 15px;
        }
        .property-details {
            flex-grow: 1;
        }
        .property-price {
            font-size: 1.2em;
            font-weight: bold;
            color: #333;
        }
        .property-link {
            display: inline-block;
            background-color: #4CAF50;
            color: white;
            padding: 5px 10px;
            text-decoration: none;
            margin-top: 10px;
        }
    </style>
</head>
<body>
    <h1>{{.City}}, {{.State}} Properties Report</h1>
    <p>Generated on: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
{{range .Properties}}
    <div class="property-card">
        {{if .ThumbnailURL}}<img src="{{.ThumbnailURL}}" alt="Property Thumbnail" class="property-thumbnail">{{end}}
        <div class="property-details">
            <h2>{{.Address}}</h2>
            {{if .Neighborhood}}<p><strong>Neighborhood:</strong> {{.Neighborhood}}</p>{{end}}
            <p class="property-price">${{money .Price}}</p>
            <p>{{count .Bedrooms}} beds | {{count .Bathrooms}} baths | {{commas .Sqft}} sq ft</p>
            {{with .MonthlyCosts}}<p><strong>Monthly Non-Mortgage Costs:</strong> ${{money .Total}}</p>{{end}}
            {{if .ListingURL}}<a href="{{.ListingURL}}" class="property-link" target="_blank">View Listing</a>{{end}}
        </div>
    </div>
{{end}}
</body>
</html>
`))

// Render writes the report HTML for data to w.
func Render(w io.Writer, data Data) error {
	return page.Execute(w, data)
}

// Write renders the report to its own file, creating or truncating path.
func Write(path string, data Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FilePath derives the per-location report path under dir, e.g.
// "jersey_city_nj_properties.html".
func FilePath(dir string, loc listing.Location) string {
	name := fmt.Sprintf("%s_%s_properties.html", slug(loc.City), slug(loc.State))
	return filepath.Join(dir, name)
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "_")
}

// money formats a currency amount with thousands separators and two decimals.
func money(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	return groupDigits(s[:dot]) + s[dot:]
}

// commas formats the integer part of v with thousands separators.
func commas(v float64) string {
	return groupDigits(strconv.FormatFloat(math.Floor(v), 'f', 0, 64))
}

func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// count trims a bed/bath count to its shortest form ("3", "2.5").
func count(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
