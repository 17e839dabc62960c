package zillow

import (
	"context"
	"net/url"

	"github.com/yourorg/listings-api/internal/rapidapi"
	"github.com/yourorg/listings-api/listing"
)

const (
	sourceName = "zillow"
	apiHost    = "zillow-com1.p.rapidapi.com"
)

// Client searches for-sale houses via the Zillow extended search provider.
type Client struct {
	API *rapidapi.Client

	// MinBeds drops props whose known bedroom count is below it. The provider
	// default is 0: unlike the realtor source, no bedroom filter applies.
	MinBeds float64
}

func NewClient(apiKey string) *Client {
	return &Client{API: rapidapi.NewClient(apiKey, apiHost)}
}

func (c *Client) Name() string { return sourceName }

// Fetch runs the extended search for a combined "City, ST" location string.
func (c *Client) Fetch(ctx context.Context, loc listing.Location) ([]byte, error) {
	q := url.Values{}
	q.Set("location", loc.City+", "+loc.State)
	q.Set("status_type", "ForSale")
	q.Set("home_type", "Houses")
	return c.API.Get(ctx, "/propertyExtendedSearch", q)
}

func (c *Client) Normalize(loc listing.Location, raw []byte) ([]listing.Property, error) {
	return MapSearchPayload(loc, raw, c.MinBeds)
}
