package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapangin-web/catalog"
	"lapangin-web/models"
	"lapangin-web/models/review"
	"lapangin-web/models/venue"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer("/static/")
	require.NoError(t, err)
	return r
}

func TestNewCard(t *testing.T) {
	tests := []struct {
		name  string
		venue venue.Venue
		want  Card
	}{
		{
			name: "uuid venue with image",
			venue: venue.Venue{
				ID: "a1b2c3d4-e5f6-7890-aaaa-bbbbccccdddd", Name: "Futsal Arena Jakarta", Category: "Futsal",
				Address: "Jl. Sudirman No. 1, Jakarta", PricePerHour: 150000, AvgRating: 4.56, RatingCount: 12,
				Images: []string{"https://cdn.lapangin.id/a.jpg"},
			},
			want: Card{
				Href: "/lapangan/a1b2c3d4-e5f6-7890-aaaa-bbbbccccdddd/", Image: "https://cdn.lapangin.id/a.jpg",
				Name: "Futsal Arena Jakarta", Category: "Futsal", Rating: "4.6", RatingCount: 12,
				Address: "Jl. Sudirman No. 1, Jakarta", Price: "Rp 150.000/jam",
			},
		},
		{
			name:  "slug venue without image or address",
			venue: venue.Venue{ID: "dummy-1", Name: "Lapangan Futsal Kemang", Price: 90000},
			want: Card{
				Href: "/lapangan/Lapangan%20Futsal%20Kemang/", Image: "/static/img/no-image.png",
				Name: "Lapangan Futsal Kemang", Rating: "0.0", Address: NoAddress, Price: "Rp 90.000/jam",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, NewCard(test.venue, "/static/img/no-image.png"))
		})
	}
}

func TestListFragment_RendersCardsAndPagination(t *testing.T) {
	r := newRenderer(t)
	f := r.NewListFragment("view-1")
	total := 30

	f.ShowVenues([]venue.Venue{{ID: "dummy-1", Name: "GOR <Depok>", PricePerHour: 50000}}, total, models.Pagination{Page: 2, TotalPages: 4, TotalCount: &total})

	var buf bytes.Buffer
	require.NoError(t, r.ListFragment(&buf, f))
	out := buf.String()

	assert.True(t, f.Shown())
	assert.Contains(t, out, `<div id="venue-count" class="text-sm text-neutral-600">30</div>`)
	assert.Contains(t, out, "GOR &lt;Depok&gt;")
	assert.Contains(t, out, `data-total-pages="4"`)
	assert.Contains(t, out, "page-current")
	assert.NotContains(t, out, "empty-state")
}

func TestListFragment_Empty(t *testing.T) {
	r := newRenderer(t)
	f := r.NewListFragment("view-1")
	f.ShowVenues([]venue.Venue{{Name: "A"}}, 1, models.Pagination{Page: 1, TotalPages: 3})

	f.ShowEmpty("Tidak ada venue yang sesuai dengan pencarian.")

	var buf bytes.Buffer
	require.NoError(t, r.ListFragment(&buf, f))
	out := buf.String()

	assert.Contains(t, out, "Tidak ada venue yang sesuai dengan pencarian.")
	assert.Contains(t, out, `<div id="venue-count" class="text-sm text-neutral-600">0</div>`)
	assert.NotContains(t, out, "<nav")
}

func TestListPage_SelectsSubmittedValues(t *testing.T) {
	r := newRenderer(t)
	f := r.NewListFragment("view-9")
	page := NewListPage(f, models.VenueQuery{Category: "Futsal", Sort: models.SortRating}, []string{"Badminton", "Futsal"})

	var buf bytes.Buffer
	require.NoError(t, r.ListPage(&buf, page))
	out := buf.String()

	assert.Contains(t, out, `name="view" value="view-9"`)
	assert.Contains(t, out, `<option value="Futsal" selected>Futsal</option>`)
	assert.Contains(t, out, `<option value="rating" selected>Rating tertinggi</option>`)
	assert.Contains(t, out, `href="/static/css/output.css"`)
}

func TestNewDetail_Defaults(t *testing.T) {
	d := NewDetail(venue.Venue{
		ID:      "dummy-2",
		Address: "Jl. Margonda Raya 100, Depok, Jawa Barat",
		Images:  []string{"1", "2", "3", "4", "5"},
		Courts:  []venue.Court{{Name: "A", IsActive: true}, {Name: "B"}},
	}, "/static/")

	assert.Equal(t, UnnamedVenue, d.Name)
	assert.Equal(t, NoContact, d.Contact)
	assert.Equal(t, catalog.NoRatingLabel, d.Rating)
	assert.Empty(t, d.Price)
	assert.Equal(t, "Jl. Margonda Raya 100", d.Street)
	assert.Equal(t, "Depok", d.City)
	assert.Len(t, d.Thumbnails, MaxThumbnails)
	assert.Equal(t, []CourtRow{{Name: "A", Label: CourtActive, Active: true}, {Name: "B", Label: CourtInactive}}, d.Courts)
	assert.Equal(t, "/lapangan/dummy-2/ratings", d.RatingsHref)
}

func TestDetailPage_Render(t *testing.T) {
	r := newRenderer(t)
	page := r.NewDetailPage()
	five := 5
	reviews := []review.Review{
		{User: "budi", Rating: 5, Comment: "Bersih", CreatedAt: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), Cleanliness: &five},
		{User: "sari", Rating: 4, Comment: "Oke"},
	}

	page.ShowVenue(venue.Venue{ID: "v-1", Name: "GOR Sudirman", Description: "Baris satu\n\nBaris dua"})
	page.ShowReviews("v-1", reviews, catalog.SummarizeReviews(reviews))
	page.ShowReviewForm("v-1")
	page.ShowToast("success", "Review berhasil dikirim")
	page.CSRFToken = "detailtoken"

	var buf bytes.Buffer
	require.NoError(t, r.DetailPage(&buf, page))
	out := buf.String()

	assert.Contains(t, out, `<input type="hidden" name="csrfmiddlewaretoken" value="detailtoken">`)

	assert.Contains(t, out, "<title>GOR Sudirman | LapangIN</title>")
	assert.Contains(t, out, `<p class="mb-2 text-neutral-600">Baris dua</p>`)
	assert.Contains(t, out, "Tidak ada fasilitas tersedia")
	assert.Contains(t, out, `<span id="avg-rating">4.5</span>`)
	assert.Contains(t, out, `<span id="cleanliness-score">4.5</span>`)
	assert.Contains(t, out, "1 September 2025")
	assert.Contains(t, out, `action="/lapangan/v-1/reviews"`)
	assert.Contains(t, out, "toast-success")
}

func TestDetailPage_NotFoundAndReviewError(t *testing.T) {
	r := newRenderer(t)
	page := r.NewDetailPage()
	page.ShowNotFound("Venue tidak ditemukan.")

	var buf bytes.Buffer
	require.NoError(t, r.DetailPage(&buf, page))
	assert.Contains(t, buf.String(), `<div id="venue-not-found" class="text-center py-16 text-neutral-500">Venue tidak ditemukan.</div>`)

	page = r.NewDetailPage()
	page.ShowReviewsError("v-1", "Gagal memuat ulasan.")
	buf.Reset()
	require.NoError(t, r.Reviews(&buf, page))
	assert.Contains(t, buf.String(), "Gagal memuat ulasan.")
	assert.NotContains(t, buf.String(), "<!DOCTYPE html>")
}

func TestMitraPage(t *testing.T) {
	r := newRenderer(t)
	page := r.NewMitraPage()

	var buf bytes.Buffer
	require.NoError(t, r.MitraPage(&buf, page))
	assert.NotContains(t, buf.String(), "Belum ada mitra.", "nothing loaded yet")

	page.ShowMitra(nil, models.DefaultMitraSort)
	buf.Reset()
	require.NoError(t, r.MitraPage(&buf, page))
	assert.Contains(t, buf.String(), "Belum ada mitra.")

	registered := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	page.ShowMitra([]models.Mitra{{ID: "m-1", Nama: "PT Sarana", Status: models.MitraPending, TanggalDaftar: &registered}}, models.MitraSort{Key: models.MitraSortNama, Dir: models.SortAsc})
	page.ShowRowStatus(models.Mitra{ID: "m-1", Status: models.MitraRejected, Reason: "Dokumen kurang"})
	page.CSRFToken = "mitratoken"
	buf.Reset()
	require.NoError(t, r.MitraPage(&buf, page))
	out := buf.String()

	// approve and reject forms
	assert.Equal(t, 2, strings.Count(out, `name="csrfmiddlewaretoken" value="mitratoken"`))

	assert.Contains(t, out, "&#10006; Rejected")
	assert.Contains(t, out, "Dokumen kurang")
	assert.Contains(t, out, "1 Oktober 2025")
	assert.Contains(t, out, "sorted-asc")
	assert.Contains(t, out, "?sort=nama&amp;dir=desc")
}

func TestProfilePage(t *testing.T) {
	r := newRenderer(t)
	page := r.NewProfilePage()
	page.ShowProfile(models.Profile{FirstName: "Budi", Address: "Jl. Merdeka"})
	page.CSRFToken = "profiletoken"

	var buf bytes.Buffer
	require.NoError(t, r.ProfilePage(&buf, page))

	// save and delete forms
	assert.Equal(t, 2, strings.Count(buf.String(), `name="csrfmiddlewaretoken" value="profiletoken"`))

	assert.Contains(t, buf.String(), `name="first_name" value="Budi"`)
	assert.Contains(t, buf.String(), "Jl. Merdeka</textarea>")
}
