package zillow

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const placeholderBase = "https://via.placeholder.com/200x150.png?text="

// resolveThumbnail picks the best image for a prop: the primary imgSrc, then
// each fallback field in priority order, accepting the first non-empty
// candidate that isn't itself a provider placeholder. When nothing usable is
// found it synthesizes a placeholder describing the bed/bath counts.
func resolveThumbnail(p prop) string {
	if p.ImgSrc != "" {
		return p.ImgSrc
	}
	for _, cand := range imageCandidates(p) {
		if cand != "" && !strings.Contains(strings.ToLower(cand), "placeholder") {
			return cand
		}
	}
	return placeholderURL(p.Bedrooms, p.Bathrooms)
}

// imageCandidates lists the fallback image fields in the order they are
// probed.
func imageCandidates(p prop) []string {
	first := ""
	if len(p.Images) > 0 {
		first = p.Images[0].Href
	}
	return []string{p.Image, p.Photo, p.PrimaryPhoto.Href, first}
}

func placeholderURL(beds, baths float64) string {
	text := fmt.Sprintf("%s Bed %s Bath", formatCount(beds), formatCount(baths))
	return placeholderBase + url.PathEscape(text)
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
