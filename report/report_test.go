package report

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/listings-api/listing"
)

func sampleData() Data {
	costs := listing.EstimateMonthlyCosts(750000, 2100, "single family")
	return Data{
		City:        "Jersey City",
		State:       "NJ",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Properties: []listing.Property{
			{
				Price:        750000,
				Address:      "123 Main St Jersey City NJ",
				Bedrooms:     4,
				Bathrooms:    2.5,
				Sqft:         2100,
				PropertyType: "single_family",
				ThumbnailURL: "https://photos.example.com/1.jpg",
				ListingURL:   "https://www.realtor.com/realestateandhomes-detail/x",
				Neighborhood: "Hamilton Park",
				Source:       "realtor",
				MonthlyCosts: &costs,
			},
		},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleData()))
	out := buf.String()

	assert.Contains(t, out, "Jersey City, NJ Properties Report")
	assert.Contains(t, out, "Generated on: 2025-06-01 12:00:00")
	assert.Contains(t, out, "123 Main St Jersey City NJ")
	assert.Contains(t, out, "$750,000.00")
	assert.Contains(t, out, "4 beds | 2.5 baths | 2,100 sq ft")
	assert.Contains(t, out, "Hamilton Park")
	assert.Contains(t, out, `src="https://photos.example.com/1.jpg"`)
	assert.Contains(t, out, `href="https://www.realtor.com/realestateandhomes-detail/x"`)
}

func TestRenderOmitsMissingPieces(t *testing.T) {
	data := sampleData()
	data.Properties[0].ThumbnailURL = ""
	data.Properties[0].ListingURL = ""
	data.Properties[0].MonthlyCosts = nil

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, data))
	out := buf.String()

	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "View Listing")
	assert.NotContains(t, out, "Monthly Non-Mortgage Costs")
}

func TestFilePath(t *testing.T) {
	loc := listing.Location{City: "Jersey City", State: "NJ"}
	assert.Equal(t, filepath.Join("/tmp", "jersey_city_nj_properties.html"), FilePath("/tmp", loc))
}

func TestMoneyFormatting(t *testing.T) {
	assert.Equal(t, "1,234,567.89", money(1234567.89))
	assert.Equal(t, "750,000.00", money(750000))
	assert.Equal(t, "0.00", money(0))
	assert.Equal(t, "999.50", money(999.5))
}

type stubFetcher struct {
	props []listing.Property
	calls int
}

func (s *stubFetcher) FetchAll(ctx context.Context, loc listing.Location) []listing.Property {
	s.calls++
	return s.props
}

type fetchFunc func(ctx context.Context, loc listing.Location) []listing.Property

func (f fetchFunc) FetchAll(ctx context.Context, loc listing.Location) []listing.Property {
	return f(ctx, loc)
}

func TestJobRun(t *testing.T) {
	t.Run("interval mode keeps ticking past a failed iteration and stops clean on cancel", func(t *testing.T) {
		dir := t.TempDir()
		loc := listing.Location{City: "Jersey City", State: "NJ"}

		var mu sync.Mutex
		calls := 0
		ran := make(chan int, 16)
		fetcher := fetchFunc(func(ctx context.Context, _ listing.Location) []listing.Property {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			ran <- n
			if n == 2 {
				// One empty aggregation mid-run; the job should log and continue.
				return nil
			}
			return sampleData().Properties
		})

		var logs bytes.Buffer
		job := &Job{
			Fetcher: fetcher,
			Logger:  log.New(&logs, "", 0),
			Config: Config{
				Location:  loc,
				OutputDir: dir,
				Interval:  5 * time.Millisecond,
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- job.Run(ctx) }()

		for n := range ran {
			if n >= 3 {
				break
			}
		}
		cancel()
		require.NoError(t, <-done)

		assert.Contains(t, logs.String(), "iteration error")
		assert.Contains(t, logs.String(), "no properties found")
		b, err := os.ReadFile(FilePath(dir, loc))
		require.NoError(t, err)
		assert.Contains(t, string(b), "123 Main St Jersey City NJ")
	})
}

func TestJobRunOnce(t *testing.T) {
	t.Run("writes the per-location report file", func(t *testing.T) {
		dir := t.TempDir()
		job := &Job{
			Fetcher: &stubFetcher{props: sampleData().Properties},
			Config: Config{
				Location:  listing.Location{City: "Jersey City", State: "NJ"},
				OutputDir: dir,
			},
		}

		require.NoError(t, job.RunOnce(context.Background()))

		b, err := os.ReadFile(filepath.Join(dir, "jersey_city_nj_properties.html"))
		require.NoError(t, err)
		assert.Contains(t, string(b), "123 Main St Jersey City NJ")
	})

	t.Run("empty aggregation is an error", func(t *testing.T) {
		job := &Job{
			Fetcher: &stubFetcher{},
			Config: Config{
				Location:  listing.Location{City: "Jersey City", State: "NJ"},
				OutputDir: t.TempDir(),
			},
		}
		err := job.RunOnce(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no properties found")
	})

	t.Run("blank location is rejected", func(t *testing.T) {
		job := &Job{Fetcher: &stubFetcher{}}
		assert.Error(t, job.RunOnce(context.Background()))
	})
}
