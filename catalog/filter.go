package catalog

import (
	"strings"

	"lapangin-web/models"
	"lapangin-web/models/venue"
)

// Matches reports whether v satisfies every criterion supplied in q.
// Criteria that are empty or not numeric never exclude a venue.
func Matches(v venue.Venue, q models.VenueQuery) bool {
	if name := strings.ToLower(strings.TrimSpace(q.Name)); name != "" {
		if !strings.Contains(strings.ToLower(v.Name), name) {
			return false
		}
	}
	if category := strings.TrimSpace(q.Category); category != "" {
		if !strings.EqualFold(v.Category, category) {
			return false
		}
	}
	if location := strings.ToLower(strings.TrimSpace(q.Location)); location != "" {
		if !strings.Contains(strings.ToLower(v.Address), location) {
			return false
		}
	}

	price := v.EffectivePrice()
	if min, ok := models.ParsedFloat(q.MinPrice); ok && price < min {
		return false
	}
	if max, ok := models.ParsedFloat(q.MaxPrice); ok && price > max {
		return false
	}

	return matchesRating(v, q.MinRating)
}

// Filter returns the venues matching q, in their original order.
func Filter(venues []venue.Venue, q models.VenueQuery) []venue.Venue {
	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if Matches(v, q) {
			out = append(out, v)
		}
	}
	return out
}

// FilterByRating applies only the minimum rating criterion. It is the
// re-check run on server results, which are already filtered otherwise.
func FilterByRating(venues []venue.Venue, minRating string) []venue.Venue {
	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if matchesRating(v, minRating) {
			out = append(out, v)
		}
	}
	return out
}

func matchesRating(v venue.Venue, minRating string) bool {
	min, ok := models.ParsedFloat(minRating)
	return !ok || v.AvgRating >= min
}
