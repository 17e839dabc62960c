package aggregator

import (
	"context"
	"log"

	"github.com/yourorg/listings-api/listing"
)

// Aggregator fans a search out to every configured source and merges whatever
// comes back. It holds no per-call state: FetchAll builds a fresh result
// slice every time, so one value is safe to share across requests.
type Aggregator struct {
	Sources []listing.Source
}

func New(sources ...listing.Source) *Aggregator {
	return &Aggregator{Sources: sources}
}

// FetchAll queries all sources concurrently and concatenates their records in
// completion order. A source that fails to fetch or normalize contributes
// nothing; FetchAll itself never fails, and both sources coming back empty is
// simply an empty result.
func (a *Aggregator) FetchAll(ctx context.Context, loc listing.Location) []listing.Property {
	results := make(chan []listing.Property, len(a.Sources))
	for _, src := range a.Sources {
		go func(s listing.Source) {
			results <- fetchOne(ctx, s, loc)
		}(src)
	}

	merged := make([]listing.Property, 0)
	for range a.Sources {
		merged = append(merged, <-results...)
	}
	return merged
}

func fetchOne(ctx context.Context, s listing.Source, loc listing.Location) []listing.Property {
	raw, err := s.Fetch(ctx, loc)
	if err != nil {
		log.Printf("[WARN] %s: fetch failed: %v", s.Name(), err)
		return nil
	}
	log.Printf("[INFO] %s: fetched data for %s, %s", s.Name(), loc.City, loc.State)

	props, err := s.Normalize(loc, raw)
	if err != nil {
		log.Printf("[WARN] %s: normalize failed: %v", s.Name(), err)
		return nil
	}
	return props
}
