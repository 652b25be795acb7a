package lapangin

import (
	"context"
	"errors"

	"lapangin-web/api"
	"lapangin-web/models"
	"lapangin-web/models/review"
	"lapangin-web/models/venue"
)

// backend endpoints
const (
	VenueListEndpoint   = "/api/public/venues/"
	VenueDetailEndpoint = "/venue/"
	ReviewPostEndpoint  = "/backend/venues/%s/reviews/"
	UserStatusEndpoint  = "/api/user-status/"
	MitraListEndpoint   = "/api/mitra_list/"
	MitraDetailEndpoint = "/api/mitra_detail/%s/"
	ProfileEndpoint     = "/api/profile/"
)

// ErrVenueNotFound is returned when a detail lookup yields no record.
var ErrVenueNotFound = errors.New("venue not found")

// IsVenueNotFound covers both a backend 404 and an empty detail payload.
func IsVenueNotFound(err error) bool {
	return errors.Is(err, ErrVenueNotFound) || api.IsNotFound(err)
}

// LapanginAPI defines the interface for interacting with the LapangIN backend
type LapanginAPI interface {
	ListVenues(ctx context.Context, query models.VenueQuery, page, pageSize int) (*models.VenueListResponse, error)
	GetVenue(ctx context.Context, venueID string) (*venue.Venue, error)
	SearchVenuesByName(ctx context.Context, name string) ([]venue.Venue, error)
	GetReviews(ctx context.Context, venueID string) ([]review.Review, error)
	PostReview(ctx context.Context, venueID string, req models.ReviewRequest) (*models.StatusResponse, error)
	GetUserStatus(ctx context.Context) (*models.UserStatus, error)
	ListMitra(ctx context.Context) ([]models.Mitra, error)
	UpdateMitraStatus(ctx context.Context, mitraID string, update models.MitraStatusUpdate) (*models.MitraStatusResponse, error)
	GetProfile(ctx context.Context) (*models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (*models.ProfileResponse, error)
	DeleteProfile(ctx context.Context) (*models.ProfileResponse, error)
}

var (
	_ LapanginAPI = (*LapanginApiClient)(nil)
	_ LapanginAPI = (*LapanginApiClientMock)(nil)
)
