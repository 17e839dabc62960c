package realtor

import (
	"context"
	"net/url"

	"github.com/yourorg/listings-api/internal/geo"
	"github.com/yourorg/listings-api/internal/rapidapi"
	"github.com/yourorg/listings-api/listing"
)

const (
	sourceName = "realtor"
	apiHost    = "us-real-estate.p.rapidapi.com"
)

// Client searches for-sale listings on the US Real Estate provider.
type Client struct {
	API *rapidapi.Client

	// MinBeds drops results whose known bedroom count is below it. Zero or
	// missing counts are treated as unknown and always pass.
	MinBeds float64

	// Neighborhoods, when configured, resolves each result's coordinates to a
	// neighborhood name. Left nil, records fall back to the queried city.
	Neighborhoods *geo.Resolver
}

func NewClient(apiKey string) *Client {
	return &Client{
		API:     rapidapi.NewClient(apiKey, apiHost),
		MinBeds: 3,
	}
}

func (c *Client) Name() string { return sourceName }

// Fetch runs the for-sale search for a city/state and returns the raw body.
func (c *Client) Fetch(ctx context.Context, loc listing.Location) ([]byte, error) {
	q := url.Values{}
	q.Set("city", loc.City)
	q.Set("state_code", loc.State)
	q.Set("offset", "0")
	q.Set("limit", "200")
	q.Set("sort", "newest")
	return c.API.Get(ctx, "/v2/for-sale", q)
}

func (c *Client) Normalize(loc listing.Location, raw []byte) ([]listing.Property, error) {
	return MapSearchPayload(loc, raw, c.MinBeds, c.Neighborhoods)
}
