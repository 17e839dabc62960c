package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourorg/listings-api/listing"
)

// Fetcher aggregates listings for a location.
type Fetcher interface {
	FetchAll(ctx context.Context, loc listing.Location) []listing.Property
}

type Config struct {
	Location  listing.Location
	OutputDir string
	// Interval between regenerations; zero means run once.
	Interval time.Duration
}

// Job regenerates the report file for one location, either once or on an
// interval.
type Job struct {
	Fetcher Fetcher
	Logger  *log.Logger
	Config  Config
}

func (j *Job) logf(format string, args ...any) {
	if j.Logger != nil {
		j.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (j *Job) validate() error {
	if j == nil {
		return errors.New("nil report job")
	}
	if j.Fetcher == nil {
		return errors.New("report job missing fetcher")
	}
	if j.Config.Location.City == "" || j.Config.Location.State == "" {
		return errors.New("report job requires a city and state")
	}
	if j.Config.OutputDir == "" {
		j.Config.OutputDir = "."
	}
	return nil
}

func (j *Job) Run(ctx context.Context) error {
	if err := j.validate(); err != nil {
		return err
	}
	interval := j.Config.Interval
	if interval <= 0 {
		return j.RunOnce(ctx)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	j.logf("[INFO] report job starting with interval %s for %s, %s", interval, j.Config.Location.City, j.Config.Location.State)
	if err := j.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
		j.logf("[WARN] report job initial run error: %v", err)
	}
	for {
		select {
		case <-ctx.Done():
			j.logf("[INFO] report job stopping: %v", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			if err := j.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				j.logf("[WARN] report job iteration error: %v", err)
			}
		}
	}
}

// RunOnce fetches the location once and writes the report file. An empty
// aggregation is reported as an error so once-mode callers can exit nonzero,
// but interval mode just logs it and waits for the next tick.
func (j *Job) RunOnce(ctx context.Context) error {
	if err := j.validate(); err != nil {
		return err
	}
	loc := j.Config.Location
	props := j.Fetcher.FetchAll(ctx, loc)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if len(props) == 0 {
		return fmt.Errorf("no properties found for %s, %s", loc.City, loc.State)
	}
	path := FilePath(j.Config.OutputDir, loc)
	data := Data{
		City:        loc.City,
		State:       loc.State,
		GeneratedAt: time.Now(),
		Properties:  props,
	}
	if err := Write(path, data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	j.logf("[INFO] report generated at %s (%d properties)", path, len(props))
	return nil
}
