package zillow

import (
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/yourorg/listings-api/listing"
)

const searchURLPrefix = "https://www.zillow.com/homes/"

type prop struct {
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	Bedrooms     float64 `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	LivingArea   float64 `json:"livingArea"`
	LotAreaValue float64 `json:"lotAreaValue"`
	LotAreaUnit  string  `json:"lotAreaUnit"`
	PropertyType string  `json:"propertyType"`
	Neighborhood string  `json:"neighborhood"`
	DetailURL    string  `json:"detailUrl"`
	ImgSrc       string  `json:"imgSrc"`
	Image        string  `json:"image"`
	Photo        string  `json:"photo"`
	PrimaryPhoto struct {
		Href string `json:"href"`
	} `json:"primary_photo"`
	Images []struct {
		Href string `json:"href"`
	} `json:"images"`
}

// MapSearchPayload maps an extended-search payload (a flat props array) into
// canonical records. Props that fail to decode are skipped and the rest of
// the batch continues.
func MapSearchPayload(loc listing.Location, raw []byte, minBeds float64) ([]listing.Property, error) {
	var root struct {
		Props []json.RawMessage `json:"props"`
	}
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, err
	}

	out := make([]listing.Property, 0, len(root.Props))
	for i, rawProp := range root.Props {
		var p prop
		if err := json.Unmarshal(rawProp, &p); err != nil {
			log.Printf("[WARN] zillow: skipping prop %d: %v", i, err)
			continue
		}
		if p.Bedrooms > 0 && p.Bedrooms < minBeds {
			continue
		}
		out = append(out, mapProp(loc, p))
	}
	log.Printf("[INFO] zillow: parsed %d of %d props", len(out), len(root.Props))
	return out, nil
}

func mapProp(loc listing.Location, p prop) listing.Property {
	address := strings.TrimSpace(p.Address)
	if address == "" {
		address = "N/A"
	}

	listingURL := p.DetailURL
	if listingURL == "" {
		// No detail page from the provider; point at a search for the address.
		slug := strings.ReplaceAll(address, " ", "-")
		listingURL = searchURLPrefix + url.PathEscape(slug)
	}

	propertyType := p.PropertyType
	if propertyType == "" {
		propertyType = "Single Family"
	}

	neighborhood := p.Neighborhood
	if neighborhood == "" {
		neighborhood = loc.City
	}

	costs := listing.EstimateMonthlyCosts(p.Price, p.LivingArea, propertyType)

	return listing.Property{
		Price:        p.Price,
		Address:      address,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Sqft:         p.LivingArea,
		LotSize:      formatLotSize(p.LotAreaValue, p.LotAreaUnit),
		PropertyType: propertyType,
		Tags:         []string{},
		ThumbnailURL: resolveThumbnail(p),
		ListingURL:   listingURL,
		Neighborhood: neighborhood,
		Source:       sourceName,
		MonthlyCosts: &costs,
	}
}

// formatLotSize concatenates the provider's lot area value and unit verbatim;
// this source does no unit conversion.
func formatLotSize(value float64, unit string) string {
	if value <= 0 {
		return "N/A"
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	return s
}
