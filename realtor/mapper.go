package realtor

import (
	"encoding/json"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/yourorg/listings-api/internal/geo"
	"github.com/yourorg/listings-api/listing"
)

const detailURLPrefix = "https://www.realtor.com/realestateandhomes-detail/"

const sqftPerAcre = 43560

// MapSearchPayload maps a for-sale search payload into canonical records.
// The payload nests results under data.home_search.results; a missing layer
// means an empty batch, not an error. Individual results that fail to decode
// are skipped and the rest of the batch continues.
func MapSearchPayload(loc listing.Location, raw []byte, minBeds float64, hoods *geo.Resolver) ([]listing.Property, error) {
	var root struct {
		Data *struct {
			HomeSearch *struct {
				Results []json.RawMessage `json:"results"`
			} `json:"home_search"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	if root.Data == nil {
		log.Printf("[WARN] realtor: no data key in response")
		return []listing.Property{}, nil
	}
	if root.Data.HomeSearch == nil {
		log.Printf("[WARN] realtor: no home_search data found")
		return []listing.Property{}, nil
	}
	results := root.Data.HomeSearch.Results
	if len(results) == 0 {
		log.Printf("[WARN] realtor: no results in home_search data")
		return []listing.Property{}, nil
	}

	out := make([]listing.Property, 0, len(results))
	for i, res := range results {
		prop, ok := mapResult(loc, res, i, minBeds, hoods)
		if !ok {
			continue
		}
		out = append(out, prop)
	}
	log.Printf("[INFO] realtor: parsed %d of %d results", len(out), len(results))
	return out, nil
}

func mapResult(loc listing.Location, raw json.RawMessage, idx int, minBeds float64, hoods *geo.Resolver) (listing.Property, bool) {
	var res struct {
		ListPrice   float64  `json:"list_price"`
		Permalink   string   `json:"permalink"`
		Tags        []string `json:"tags"`
		Description *struct {
			Beds    float64 `json:"beds"`
			Baths   float64 `json:"baths"`
			Sqft    float64 `json:"sqft"`
			LotSqft float64 `json:"lot_sqft"`
			Type    string  `json:"type"`
		} `json:"description"`
		Location struct {
			Address struct {
				Line       string `json:"line"`
				City       string `json:"city"`
				StateCode  string `json:"state_code"`
				Coordinate *struct {
					Lat float64 `json:"lat"`
					Lon float64 `json:"lon"`
				} `json:"coordinate"`
			} `json:"address"`
		} `json:"location"`
		PrimaryPhoto struct {
			Href string `json:"href"`
		} `json:"primary_photo"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		log.Printf("[WARN] realtor: skipping result %d: %v", idx, err)
		return listing.Property{}, false
	}

	desc := res.Description
	if desc == nil {
		return listing.Property{}, false
	}
	// A known bedroom count below the minimum is filtered out; zero means the
	// provider doesn't know, which is not grounds for dropping the listing.
	if desc.Beds > 0 && desc.Beds < minBeds {
		return listing.Property{}, false
	}

	addr := res.Location.Address
	address := joinFields(addr.Line, addr.City, addr.StateCode)
	if address == "" {
		address = "N/A"
	}

	listingURL := ""
	if res.Permalink != "" {
		listingURL = detailURLPrefix + res.Permalink
	}

	propertyType := desc.Type
	if propertyType == "" {
		propertyType = "Unknown"
	}

	neighborhood := loc.City
	if hoods != nil && addr.Coordinate != nil {
		neighborhood = hoods.Nearest(addr.Coordinate.Lat, addr.Coordinate.Lon)
	}

	costs := listing.EstimateMonthlyCosts(res.ListPrice, desc.Sqft, propertyType)

	return listing.Property{
		Price:        res.ListPrice,
		Address:      address,
		Bedrooms:     desc.Beds,
		Bathrooms:    desc.Baths,
		Sqft:         desc.Sqft,
		LotSize:      formatLotSize(desc.LotSqft),
		PropertyType: propertyType,
		Tags:         res.Tags,
		ThumbnailURL: res.PrimaryPhoto.Href,
		ListingURL:   listingURL,
		Neighborhood: neighborhood,
		Source:       sourceName,
		MonthlyCosts: &costs,
	}, true
}

// formatLotSize converts a lot size in square feet to a display string in
// acres, rounded to 4 decimals.
func formatLotSize(lotSqft float64) string {
	if lotSqft <= 0 {
		return "N/A"
	}
	acres := math.Round(lotSqft/sqftPerAcre*10000) / 10000
	return strconv.FormatFloat(acres, 'f', -1, 64) + " acres"
}

func joinFields(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
