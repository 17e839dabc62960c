package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/yourorg/listings-api/aggregator"
	"github.com/yourorg/listings-api/internal/env"
	"github.com/yourorg/listings-api/realtor"
	"github.com/yourorg/listings-api/zillow"
)

func main() {
	port := env.GetInt("PORT", 4002)
	apiKey := env.Must("RAPIDAPI_KEY")
	reportDir := env.Get("REPORT_OUTPUT_DIR", defaultReportDir())

	agg := aggregator.New(realtor.NewClient(apiKey), zillow.NewClient(apiKey))
	router := BuildRouter(agg, reportDir)

	log.Printf("listings-api listening on :%d", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), router); err != nil {
		log.Fatal(err)
	}
}

func defaultReportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
