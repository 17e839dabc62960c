package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/yourorg/listings-api/aggregator"
	"github.com/yourorg/listings-api/internal/env"
	"github.com/yourorg/listings-api/listing"
	"github.com/yourorg/listings-api/realtor"
	"github.com/yourorg/listings-api/report"
	"github.com/yourorg/listings-api/zillow"
)

func main() {
	apiKey := env.Must("RAPIDAPI_KEY")
	city := env.Must("REPORT_CITY")
	state := strings.ToUpper(env.Must("REPORT_STATE"))

	outputDir := env.Get("REPORT_OUTPUT_DIR", defaultOutputDir())
	interval := parseDuration(os.Getenv("REPORT_INTERVAL"), 0)
	runOnce := parseBool(os.Getenv("REPORT_RUN_ONCE"), interval <= 0)
	minBeds := parseInt(os.Getenv("REPORT_MIN_BEDS"), 3)
	requestTimeout := parseDuration(os.Getenv("REPORT_REQUEST_TIMEOUT"), 10*time.Second)

	realtorClient := realtor.NewClient(apiKey)
	realtorClient.MinBeds = float64(minBeds)
	realtorClient.API.SetTimeout(requestTimeout)
	zillowClient := zillow.NewClient(apiKey)
	zillowClient.API.SetTimeout(requestTimeout)

	job := &report.Job{
		Fetcher: aggregator.New(realtorClient, zillowClient),
		Config: report.Config{
			Location:  listing.Location{City: city, State: state},
			OutputDir: outputDir,
			Interval:  interval,
		},
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runOnce {
		if err := job.RunOnce(rootCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("report run failed: %v", err)
		}
		return
	}

	if err := job.Run(rootCtx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("report job stopped with error: %v", err)
	}
}

func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func parseDuration(v string, def time.Duration) time.Duration {
	if v == "" {
		return def
	}
	dur, err := time.ParseDuration(v)
	if err == nil {
		return dur
	}
	if i, err2 := strconv.Atoi(v); err2 == nil {
		return time.Duration(i) * time.Second
	}
	return def
}

func parseInt(v string, def int) int {
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func parseBool(v string, def bool) bool {
	if v == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
