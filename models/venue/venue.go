package venue

import (
	"encoding/json"
	"fmt"
)

// Facility is an amenity offered by a venue.
type Facility struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Court is a bookable sub-unit of a venue.
type Court struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// Venue is a bookable sports facility as returned by the backend.
// Optional fields are defaulted while decoding so read sites never
// need to guard against absence.
type Venue struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	CategoryIcon string     `json:"category_icon,omitempty"`
	Address      string     `json:"address"`
	LocationURL  string     `json:"location_url,omitempty"`
	Description  string     `json:"description"`
	Contact      string     `json:"contact"`
	PricePerHour float64    `json:"price_per_hour"`
	Price        float64    `json:"price,omitempty"`
	AvgRating    float64    `json:"avg_rating"`
	HasRating    bool       `json:"-"`
	RatingCount  int        `json:"rating_count"`
	Images       []string   `json:"images"`
	Facilities   []Facility `json:"facilities"`
	Courts       []Court    `json:"courts"`
}

type rawVenue struct {
	ID           json.RawMessage `json:"id"`
	Name         *string         `json:"name"`
	Category     *string         `json:"category"`
	CategoryIcon *string         `json:"category_icon"`
	Address      *string         `json:"address"`
	LocationURL  *string         `json:"location_url"`
	Description  *string         `json:"description"`
	Contact      *string         `json:"contact"`
	PricePerHour *float64        `json:"price_per_hour"`
	Price        *float64        `json:"price"`
	AvgRating    *float64        `json:"avg_rating"`
	RatingCount  *int            `json:"rating_count"`
	Images       []string        `json:"images"`
	Facilities   []Facility      `json:"facilities"`
	Courts       []rawCourt      `json:"courts"`
}

type rawCourt struct {
	ID       json.RawMessage `json:"id"`
	Name     *string         `json:"name"`
	IsActive *bool           `json:"is_active"`
}

// UnmarshalJSON applies the record defaults at the decoding boundary.
func (v *Venue) UnmarshalJSON(data []byte) error {
	var raw rawVenue
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal venue: %w", err)
	}

	*v = Venue{
		ID:           decodeID(raw.ID),
		Name:         str(raw.Name),
		Category:     str(raw.Category),
		CategoryIcon: str(raw.CategoryIcon),
		Address:      str(raw.Address),
		LocationURL:  str(raw.LocationURL),
		Description:  str(raw.Description),
		Contact:      str(raw.Contact),
		PricePerHour: nonNegative(raw.PricePerHour),
		Price:        nonNegative(raw.Price),
		HasRating:    raw.AvgRating != nil,
		Images:       raw.Images,
		Facilities:   raw.Facilities,
	}
	if raw.AvgRating != nil {
		v.AvgRating = *raw.AvgRating
	}
	if raw.RatingCount != nil && *raw.RatingCount > 0 {
		v.RatingCount = *raw.RatingCount
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	if v.Facilities == nil {
		v.Facilities = []Facility{}
	}
	v.Courts = make([]Court, 0, len(raw.Courts))
	for _, c := range raw.Courts {
		court := Court{ID: decodeID(c.ID), Name: str(c.Name)}
		if c.IsActive != nil {
			court.IsActive = *c.IsActive
		}
		v.Courts = append(v.Courts, court)
	}
	return nil
}

// MarshalJSON omits avg_rating when it was absent so cached copies decode
// back to the same record.
func (v Venue) MarshalJSON() ([]byte, error) {
	type alias Venue
	out := struct {
		alias
		AvgRating *float64 `json:"avg_rating,omitempty"`
	}{alias: alias(v)}
	if v.HasRating {
		rating := v.AvgRating
		out.AvgRating = &rating
	}
	return json.Marshal(out)
}

// EffectivePrice is price_per_hour, falling back to the legacy price, then 0.
func (v Venue) EffectivePrice() float64 {
	if v.PricePerHour > 0 {
		return v.PricePerHour
	}
	if v.Price > 0 {
		return v.Price
	}
	return 0
}

// PrimaryImage returns the first image or the given placeholder.
func (v Venue) PrimaryImage(placeholder string) string {
	if len(v.Images) > 0 && v.Images[0] != "" {
		return v.Images[0]
	}
	return placeholder
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, category=%s, price=%.0f)",
		v.ID, v.Name, v.Category, v.EffectivePrice())
}

// decodeID accepts string or numeric identifiers.
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nonNegative(p *float64) float64 {
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}
