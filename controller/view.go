// Package controller orchestrates backend calls and drives views. Every
// failure ends up as a localized message on a view; nothing is returned to
// the caller as an error.
package controller

import (
	"lapangin-web/catalog"
	"lapangin-web/models"
	"lapangin-web/models/review"
	"lapangin-web/models/venue"
)

// toast kinds
const (
	ToastSuccess = "success"
	ToastWarning = "warning"
	ToastError   = "error"
)

// user-facing messages
const (
	MsgNoVenues            = "Tidak ada venue yang sesuai dengan pencarian."
	MsgVenueLoadFailed     = "Gagal memuat data venue."
	MsgVenueNotFound       = "Venue tidak ditemukan."
	MsgReviewsLoadFailed   = "Gagal memuat ulasan."
	MsgPickRating          = "Silakan pilih rating terlebih dahulu"
	MsgWriteReview         = "Silakan tulis ulasan terlebih dahulu"
	MsgReviewFailed        = "Gagal kirim review"
	MsgReviewSent          = "Review berhasil dikirim"
	MsgMitraLoadFailed     = "Gagal memuat daftar mitra"
	MsgMitraUpdateFailed   = "Gagal mengubah status"
	MsgMitraUpdated        = "Berhasil"
	MsgProfileBadFormat    = "Format response profil tidak dikenali"
	MsgProfileLoadFailed   = "Gagal memuat profil"
	MsgProfileSaved        = "Profil diperbarui"
	MsgProfileSaveFailed   = "Gagal menyimpan profil"
	MsgAccountDeleted      = "Akun dihapus. Mengarahkan ke beranda..."
	MsgAccountDeleteFailed = "Gagal menghapus akun"
)

// ListView is the venue grid, its count and its pagination control.
type ListView interface {
	ShowVenues(venues []venue.Venue, count int, pagination models.Pagination)
	ShowEmpty(message string)
}

type Toaster interface {
	ShowToast(kind, message string)
}

type DetailView interface {
	Toaster
	ShowVenue(v venue.Venue)
	ShowNotFound(message string)
	ShowReviews(venueID string, reviews []review.Review, summary catalog.ReviewSummary)
	ShowReviewsError(venueID, message string)
	ShowReviewForm(venueID string)
	Redirect(location string)
}

type MitraView interface {
	Toaster
	ShowMitra(rows []models.Mitra, sort models.MitraSort)
	ShowRowStatus(m models.Mitra)
}

type ProfileView interface {
	Toaster
	ShowProfile(p models.Profile)
	Redirect(location string)
}
