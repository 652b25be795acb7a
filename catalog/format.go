package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"lapangin-web/models/venue"
)

const (
	NoRatingLabel = "-"
	// AddressMaxRunes bounds the address shown on a card.
	AddressMaxRunes = 80
)

// FormatRupiah renders an IDR amount with Indonesian digit grouping.
func FormatRupiah(amount float64) string {
	if amount < 0 || math.IsNaN(amount) {
		amount = 0
	}
	return "Rp " + humanize.FormatInteger("#.###,", int(math.Round(amount)))
}

// PriceLabel is the hourly price shown on cards.
func PriceLabel(v venue.Venue) string {
	return FormatRupiah(v.EffectivePrice()) + "/jam"
}

// FormatRating renders a score with one decimal.
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// RatingLabel is the detail page rating, "-" when the backend sent none.
func RatingLabel(v venue.Venue) string {
	if !v.HasRating {
		return NoRatingLabel
	}
	return FormatRating(v.AvgRating)
}

// TruncateText cuts s to at most max runes, marking the cut with "...".
func TruncateText(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])) + "..."
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDateID renders a date the way id-ID long dates read, e.g. "2 Oktober 2025".
// The zero time renders as "".
func FormatDateID(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.Itoa(t.Day()) + " " + indonesianMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// SplitAddress returns the first two comma-separated parts of an address.
func SplitAddress(address string) (street, city string) {
	parts := strings.Split(address, ",")
	street = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		city = strings.TrimSpace(parts[1])
	}
	return street, city
}

// MapsURL is the venue's own location link or a Google Maps search.
func MapsURL(v venue.Venue) string {
	if v.LocationURL != "" {
		return v.LocationURL
	}
	q := v.Address
	if q == "" {
		q = v.Name
	}
	return "https://www.google.com/maps/search/" + url.PathEscape(q)
}

// Paragraphs splits text into its non-blank trimmed lines.
func Paragraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
