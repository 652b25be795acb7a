package catalog

import (
	"sort"

	"lapangin-web/models"
	"lapangin-web/models/venue"
)

// Sort returns a sorted copy of venues. Unknown keys keep server order.
func Sort(venues []venue.Venue, key string) []venue.Venue {
	out := make([]venue.Venue, len(venues))
	copy(out, venues)

	var less func(a, b venue.Venue) bool
	switch key {
	case models.SortPriceLow:
		less = func(a, b venue.Venue) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case models.SortPriceHigh:
		less = func(a, b venue.Venue) bool { return a.EffectivePrice() > b.EffectivePrice() }
	case models.SortRating:
		less = func(a, b venue.Venue) bool {
			if a.AvgRating != b.AvgRating {
				return a.AvgRating > b.AvgRating
			}
			return a.RatingCount > b.RatingCount
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
