package models

import (
	"time"

	"lapangin-web/models/venue"
)

// VenueSnapshot is the full venue list injected into list pages so they can
// fall back to local filtering when the server returns nothing.
type VenueSnapshot struct {
	Venues      []venue.Venue `json:"venues"`
	RefreshedAt time.Time     `json:"refreshed_at"`
}
