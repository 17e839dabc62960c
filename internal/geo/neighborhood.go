package geo

// Centroid is a named neighborhood center point.
type Centroid struct {
	Name string
	Lat  float64
	Lon  float64
}

// Resolver maps coordinates to the nearest configured neighborhood centroid.
// Distance is squared euclidean over raw degrees, which is fine at
// neighborhood scale.
type Resolver struct {
	Centroids []Centroid
	Fallback  string
}

// Nearest returns the closest centroid name, or the fallback when no centroids
// are configured.
func (r *Resolver) Nearest(lat, lon float64) string {
	best := r.Fallback
	bestDist := -1.0
	for _, c := range r.Centroids {
		d := (lat-c.Lat)*(lat-c.Lat) + (lon-c.Lon)*(lon-c.Lon)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = c.Name
		}
	}
	return best
}
