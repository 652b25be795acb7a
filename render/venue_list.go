package render

import (
	"strconv"

	"lapangin-web/catalog"
	"lapangin-web/models"
	"lapangin-web/models/venue"
)

// Card is the display form of a venue in the listing grid.
type Card struct {
	Href        string
	Image       string
	Name        string
	Category    string
	Rating      string
	RatingCount int
	Address     string
	Price       string
}

const NoAddress = "Alamat tidak tersedia"

func NewCard(v venue.Venue, placeholder string) Card {
	address := catalog.TruncateText(v.Address, catalog.AddressMaxRunes)
	if address == "" {
		address = NoAddress
	}
	return Card{
		Href:        catalog.DetailPath(v),
		Image:       v.PrimaryImage(placeholder),
		Name:        v.Name,
		Category:    v.Category,
		Rating:      catalog.FormatRating(v.AvgRating),
		RatingCount: v.RatingCount,
		Address:     address,
		Price:       catalog.PriceLabel(v),
	}
}

// ListFragment collects what the list controller shows during one load and
// renders it as the swappable list region.
type ListFragment struct {
	ViewID     string
	Count      string
	Cards      []Card
	Empty      string
	Pagination *catalog.PageControl

	placeholder string
	shown       bool
}

func (r *Renderer) NewListFragment(viewID string) *ListFragment {
	return &ListFragment{ViewID: viewID, placeholder: r.Placeholder()}
}

func (f *ListFragment) ShowVenues(venues []venue.Venue, count int, pagination models.Pagination) {
	f.Cards = make([]Card, 0, len(venues))
	for _, v := range venues {
		f.Cards = append(f.Cards, NewCard(v, f.placeholder))
	}
	f.Count = strconv.Itoa(count)
	f.Empty = ""
	f.Pagination = catalog.PageWindow(pagination.Page, pagination.TotalPages)
	f.shown = true
}

// ShowEmpty replaces the grid with a message, zeroes the count and clears
// the pagination control.
func (f *ListFragment) ShowEmpty(message string) {
	f.Cards = nil
	f.Count = "0"
	f.Empty = message
	f.Pagination = nil
	f.shown = true
}

// Shown reports whether the controller drew anything into the fragment.
func (f *ListFragment) Shown() bool {
	return f.shown
}

type SortOption struct {
	Value string
	Label string
}

var SortOptions = []SortOption{
	{Value: "", Label: "Urutan default"},
	{Value: models.SortPriceLow, Label: "Harga terendah"},
	{Value: models.SortPriceHigh, Label: "Harga tertinggi"},
	{Value: models.SortRating, Label: "Rating tertinggi"},
}

var RatingOptions = []string{"1", "2", "3", "4", "4.5"}

// ListPage is the full venue listing page.
type ListPage struct {
	Page
	Query         models.VenueQuery
	Categories    []string
	RatingOptions []string
	SortOptions   []SortOption
	List          *ListFragment
}

func NewListPage(list *ListFragment, query models.VenueQuery, categories []string) *ListPage {
	return &ListPage{
		Page:          Page{Title: "Cari Lapangan", ViewID: list.ViewID},
		Query:         query,
		Categories:    categories,
		RatingOptions: RatingOptions,
		SortOptions:   SortOptions,
		List:          list,
	}
}
