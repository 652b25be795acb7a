package models

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
)

// VenueQuery mirrors the listing form. Values are kept as submitted; empty
// strings mean "not supplied".
type VenueQuery struct {
	Name      string
	Category  string
	Location  string
	MinPrice  string
	MaxPrice  string
	MinRating string
	Sort      string
}

// query arg names shared by the backend and the front routes
const (
	NameArg      = "name"
	CategoryArg  = "category"
	LocationArg  = "location"
	MinPriceArg  = "min_price"
	MaxPriceArg  = "max_price"
	MinRatingArg = "min_rating"
	SortArg      = "sort"
	PageArg      = "page"
	PageSizeArg  = "page_size"
)

// VenueQueryFromValues reads a query from form or URL values.
func VenueQueryFromValues(vals url.Values) VenueQuery {
	return VenueQuery{
		Name:      vals.Get(NameArg),
		Category:  vals.Get(CategoryArg),
		Location:  vals.Get(LocationArg),
		MinPrice:  vals.Get(MinPriceArg),
		MaxPrice:  vals.Get(MaxPriceArg),
		MinRating: vals.Get(MinRatingArg),
		Sort:      vals.Get(SortArg),
	}
}

// ToValues returns the non-empty entries only.
func (q VenueQuery) ToValues() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if strings.TrimSpace(value) != "" {
			v.Set(key, value)
		}
	}
	set(NameArg, q.Name)
	set(CategoryArg, q.Category)
	set(LocationArg, q.Location)
	set(MinPriceArg, q.MinPrice)
	set(MaxPriceArg, q.MaxPrice)
	set(MinRatingArg, q.MinRating)
	set(SortArg, q.Sort)
	return v
}

// PageValues is ToValues plus the pagination args.
func (q VenueQuery) PageValues(page, pageSize int) url.Values {
	v := q.ToValues()
	v.Set(PageArg, strconv.Itoa(page))
	v.Set(PageSizeArg, strconv.Itoa(pageSize))
	return v
}

// IsEmpty reports whether no filter criterion is supplied. Sort is not a filter.
func (q VenueQuery) IsEmpty() bool {
	f := q
	f.Sort = ""
	return len(f.ToValues()) == 0
}

// ParsedFloat returns the numeric value of a criterion, or false when it is
// absent or not a finite number.
func ParsedFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
