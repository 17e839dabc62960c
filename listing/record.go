package listing

import "context"

// Location identifies the search target. State is a two-letter code.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Property is the canonical record every source normalizes into.
type Property struct {
	Price        float64       `json:"price"`
	Address      string        `json:"address"`
	Bedrooms     float64       `json:"bedrooms"`
	Bathrooms    float64       `json:"bathrooms"`
	Sqft         float64       `json:"sqft"`
	LotSize      string        `json:"lotsize,omitempty"` // formatted, e.g. "0.25 acres" or "N/A"
	PropertyType string        `json:"property_type"`
	Tags         []string      `json:"tags,omitempty"`
	ThumbnailURL string        `json:"thumbnail_url"`
	ListingURL   string        `json:"listing_url"`
	Neighborhood string        `json:"neighborhood,omitempty"`
	Source       string        `json:"source"` // e.g. "realtor", "zillow"
	MonthlyCosts *MonthlyCosts `json:"monthly_costs,omitempty"`
}

// Source is one upstream property-search integration. Fetch returns the raw
// response body; Normalize maps it into canonical records. The two halves are
// separate so normalization stays testable without a network.
type Source interface {
	Name() string
	Fetch(ctx context.Context, loc Location) ([]byte, error)
	Normalize(loc Location, raw []byte) ([]Property, error)
}
