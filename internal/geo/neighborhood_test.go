package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverNearest(t *testing.T) {
	r := &Resolver{
		Centroids: []Centroid{
			{Name: "The Heights", Lat: 40.7485, Lon: -74.0453},
			{Name: "Newport", Lat: 40.7266, Lon: -74.0341},
			{Name: "Downtown", Lat: 40.7142, Lon: -74.0119},
		},
		Fallback: "Jersey City",
	}

	t.Run("picks the closest centroid", func(t *testing.T) {
		assert.Equal(t, "Newport", r.Nearest(40.7270, -74.0350))
		assert.Equal(t, "Downtown", r.Nearest(40.7150, -74.0100))
	})

	t.Run("exact centroid match", func(t *testing.T) {
		assert.Equal(t, "The Heights", r.Nearest(40.7485, -74.0453))
	})

	t.Run("no centroids falls back", func(t *testing.T) {
		empty := &Resolver{Fallback: "Jersey City"}
		assert.Equal(t, "Jersey City", empty.Nearest(40.7, -74.0))
	})
}
