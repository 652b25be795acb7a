package render

import (
	"fmt"
	"net/url"

	"lapangin-web/catalog"
	"lapangin-web/config"
	"lapangin-web/models/review"
	"lapangin-web/models/venue"
)

const (
	UnnamedVenue    = "Unnamed Venue"
	NoContact       = "-"
	CourtActive     = "Tersedia"
	CourtInactive   = "Tidak Aktif"
	MaxThumbnails   = 4
	ratingsRouteFmt = "%s/%s/ratings"
)

type CourtRow struct {
	Name   string
	Label  string
	Active bool
}

// Detail is the display form of a venue on its own page.
type Detail struct {
	ID           string
	Name         string
	Category     string
	CategoryIcon string
	Rating       string
	RatingCount  int
	Price        string
	MainImage    string
	Thumbnails   []string
	Street       string
	City         string
	MapsURL      string
	Paragraphs   []string
	Contact      string
	Facilities   []venue.Facility
	Courts       []CourtRow
	RatingsHref  string
}

func NewDetail(v venue.Venue, staticBase string) *Detail {
	d := &Detail{
		ID:          v.ID,
		Name:        v.Name,
		Category:    v.Category,
		Rating:      catalog.RatingLabel(v),
		RatingCount: v.RatingCount,
		MainImage:   v.PrimaryImage(staticBase + PlaceholderImage),
		MapsURL:     catalog.MapsURL(v),
		Paragraphs:  catalog.Paragraphs(v.Description),
		Contact:     v.Contact,
		RatingsHref: fmt.Sprintf(ratingsRouteFmt, config.DETAIL_ROUTE, url.PathEscape(v.ID)),
	}
	if d.Name == "" {
		d.Name = UnnamedVenue
	}
	if d.Contact == "" {
		d.Contact = NoContact
	}
	if price := v.EffectivePrice(); price > 0 {
		d.Price = catalog.FormatRupiah(price)
	}
	if v.CategoryIcon != "" {
		d.CategoryIcon = staticBase + v.CategoryIcon
	}
	d.Street, d.City = catalog.SplitAddress(v.Address)

	thumbs := v.Images
	if len(thumbs) > MaxThumbnails {
		thumbs = thumbs[:MaxThumbnails]
	}
	d.Thumbnails = thumbs

	for _, f := range v.Facilities {
		if f.Icon != "" {
			f.Icon = staticBase + f.Icon
		}
		d.Facilities = append(d.Facilities, f)
	}
	for _, c := range v.Courts {
		row := CourtRow{Name: c.Name, Active: c.IsActive, Label: CourtInactive}
		if c.IsActive {
			row.Label = CourtActive
		}
		d.Courts = append(d.Courts, row)
	}
	return d
}

type ScoreRow struct {
	ID      string
	Label   string
	Score   string
	Percent string
}

type ReviewItem struct {
	User    string
	Stars   []bool
	Date    string
	Comment string
}

// ReviewsView is the review summary plus the list of reviews.
type ReviewsView struct {
	VenueID string
	Count   int
	Average string
	Stars   []bool
	Scores  []ScoreRow
	Reviews []ReviewItem
	Error   string
}

func NewReviewsView(venueID string, reviews []review.Review, s catalog.ReviewSummary) *ReviewsView {
	rv := &ReviewsView{
		VenueID: venueID,
		Count:   s.Count,
		Average: catalog.FormatRating(s.Average),
		Stars:   catalog.StarFill(s.Average),
		Scores: []ScoreRow{
			scoreRow("cleanliness", "Kebersihan", s.Cleanliness),
			scoreRow("court-condition", "Kondisi Lapangan", s.CourtCondition),
			scoreRow("communication", "Komunikasi", s.Communication),
		},
	}
	for _, r := range reviews {
		rv.Reviews = append(rv.Reviews, ReviewItem{
			User:    r.User,
			Stars:   catalog.StarFill(float64(r.Rating)),
			Date:    catalog.FormatDateID(r.CreatedAt),
			Comment: r.Comment,
		})
	}
	return rv
}

func scoreRow(id, label string, score float64) ScoreRow {
	return ScoreRow{
		ID:      id,
		Label:   label,
		Score:   catalog.FormatRating(score),
		Percent: catalog.FormatRating(catalog.ScorePercent(score)),
	}
}

type ReviewForm struct {
	Action        string
	RatingChoices []int
	CSRFToken     string
}

// DetailPage collects what the detail loader shows and renders the page.
type DetailPage struct {
	Page
	NotFound   string
	Venue      *Detail
	Reviews    *ReviewsView
	ReviewForm *ReviewForm
	Location   string
}

func (r *Renderer) NewDetailPage() *DetailPage {
	return &DetailPage{Page: Page{Title: "Detail Lapangan", Static: r.staticBase}}
}

func (p *DetailPage) ShowVenue(v venue.Venue) {
	p.Venue = NewDetail(v, p.Static)
	p.Title = p.Venue.Name
}

func (p *DetailPage) ShowNotFound(message string) {
	p.NotFound = message
	p.Venue = nil
}

func (p *DetailPage) ShowReviews(venueID string, reviews []review.Review, summary catalog.ReviewSummary) {
	p.Reviews = NewReviewsView(venueID, reviews, summary)
}

func (p *DetailPage) ShowReviewsError(venueID, message string) {
	p.Reviews = &ReviewsView{VenueID: venueID, Error: message}
}

func (p *DetailPage) ShowReviewForm(venueID string) {
	p.ReviewForm = &ReviewForm{
		Action:        fmt.Sprintf("%s/%s/reviews", config.DETAIL_ROUTE, url.PathEscape(venueID)),
		RatingChoices: []int{1, 2, 3, 4, 5},
	}
}

func (p *DetailPage) Redirect(location string) {
	p.Location = location
}
