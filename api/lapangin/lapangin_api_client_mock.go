package lapangin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"lapangin-web/api"
	"lapangin-web/catalog"
	"lapangin-web/config"
	"lapangin-web/models"
	"lapangin-web/models/review"
	"lapangin-web/models/venue"
	"lapangin-web/util"
)

var (
	VENUE_LIST_RESPONSE_PATH   = config.GetResourcePath(config.VENUE_LIST_RESPONSE_RESOURCE)
	VENUE_DETAIL_RESPONSE_PATH = config.GetResourcePath(config.VENUE_DETAIL_RESPONSE_RESOURCE)
	REVIEWS_RESPONSE_PATH      = config.GetResourcePath(config.REVIEWS_RESPONSE_RESOURCE)
	MITRA_LIST_RESPONSE_PATH   = config.GetResourcePath(config.MITRA_LIST_RESPONSE_RESOURCE)
	PROFILE_RESPONSE_PATH      = config.GetResourcePath(config.PROFILE_RESPONSE_RESOURCE)
)

// LapanginApiClientMock serves the JSON fixtures under resources/ and keeps
// mutations in memory, so the front can run without a backend.
type LapanginApiClientMock struct {
	mu            sync.Mutex
	postedReviews map[string][]review.Review
	mitraUpdates  map[string]models.MitraStatusUpdate
	profile       *models.Profile
	profileGone   bool
}

// NewLapanginApiClientMock creates a new instance of LapanginApiClientMock
func NewLapanginApiClientMock() *LapanginApiClientMock {
	return &LapanginApiClientMock{
		postedReviews: make(map[string][]review.Review),
		mitraUpdates:  make(map[string]models.MitraStatusUpdate),
	}
}

// ListVenues filters and paginates the fixture list the way the backend does.
func (c *LapanginApiClientMock) ListVenues(ctx context.Context, query models.VenueQuery, page, pageSize int) (*models.VenueListResponse, error) {
	fixture, err := util.ReadVenueListResponseFromJSON(VENUE_LIST_RESPONSE_PATH)
	if err != nil {
		log.Println("[LapanginApiClientMock] Could not read venue list response from json")
		return nil, err
	}

	matched := catalog.Sort(catalog.Filter(fixture.Data, query), query.Sort)
	pagination := models.LocalPagination(page, pageSize, len(matched))

	start := (pagination.Page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := min(start+pageSize, len(matched))
	if page > pagination.TotalPages {
		start, end = 0, 0
	}

	return &models.VenueListResponse{
		Data:       matched[start:end],
		Pagination: pagination,
	}, nil
}

// GetVenue resolves ids against the detail fixture first, then the list.
func (c *LapanginApiClientMock) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	detail, err := util.ReadVenueFromJSON(VENUE_DETAIL_RESPONSE_PATH)
	if err != nil {
		log.Println("[LapanginApiClientMock] Could not read venue detail response from json")
		return nil, err
	}
	if detail.ID == venueID {
		return detail, nil
	}

	list, err := util.ReadVenueListResponseFromJSON(VENUE_LIST_RESPONSE_PATH)
	if err != nil {
		return nil, err
	}
	for i := range list.Data {
		if list.Data[i].ID == venueID {
			return &list.Data[i], nil
		}
	}
	return nil, notFound(http.MethodGet, VenueDetailEndpoint+venueID+"/")
}

func (c *LapanginApiClientMock) SearchVenuesByName(ctx context.Context, name string) ([]venue.Venue, error) {
	list, err := util.ReadVenueListResponseFromJSON(VENUE_LIST_RESPONSE_PATH)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(list.Data, models.VenueQuery{Name: name}), nil
}

func (c *LapanginApiClientMock) GetReviews(ctx context.Context, venueID string) ([]review.Review, error) {
	reviews, err := util.ReadReviewsFromJSON(REVIEWS_RESPONSE_PATH)
	if err != nil {
		log.Println("[LapanginApiClientMock] Could not read reviews response from json")
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	posted := c.postedReviews[venueID]
	out := make([]review.Review, 0, len(posted)+len(reviews))
	return append(append(out, posted...), reviews...), nil
}

func (c *LapanginApiClientMock) PostReview(ctx context.Context, venueID string, req models.ReviewRequest) (*models.StatusResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	posted := review.Review{
		ID:        fmt.Sprintf("local-%d", len(c.postedReviews[venueID])+1),
		User:      "budi",
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	c.postedReviews[venueID] = append([]review.Review{posted}, c.postedReviews[venueID]...)
	return &models.StatusResponse{Status: models.StatusOK, Message: "Review berhasil dikirim"}, nil
}

func (c *LapanginApiClientMock) GetUserStatus(ctx context.Context) (*models.UserStatus, error) {
	if creds, _ := api.CredentialsFrom(ctx); creds.SessionID == "" {
		return &models.UserStatus{Authenticated: false}, nil
	}
	return &models.UserStatus{
		Authenticated: true,
		User:          &models.StatusUser{Username: "budi", Email: "budi@example.com"},
	}, nil
}

func (c *LapanginApiClientMock) ListMitra(ctx context.Context) ([]models.Mitra, error) {
	mitra, err := util.ReadMitraListFromJSON(MITRA_LIST_RESPONSE_PATH)
	if err != nil {
		log.Println("[LapanginApiClientMock] Could not read mitra list response from json")
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range mitra {
		if update, ok := c.mitraUpdates[mitra[i].ID]; ok {
			mitra[i].Status = update.Status
			mitra[i].Reason = update.Reason
		}
	}
	return mitra, nil
}

func (c *LapanginApiClientMock) UpdateMitraStatus(ctx context.Context, mitraID string, update models.MitraStatusUpdate) (*models.MitraStatusResponse, error) {
	mitra, err := c.ListMitra(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range mitra {
		if m.ID != mitraID {
			continue
		}
		c.mu.Lock()
		c.mitraUpdates[mitraID] = update
		c.mu.Unlock()

		m.Status = update.Status
		m.Reason = update.Reason
		return &models.MitraStatusResponse{
			Status:  models.StatusOK,
			Message: "Status mitra diperbarui menjadi " + strings.ToLower(update.Status),
			Data:    &m,
		}, nil
	}
	return nil, notFound(http.MethodPatch, fmt.Sprintf(MitraDetailEndpoint, mitraID))
}

func (c *LapanginApiClientMock) GetProfile(ctx context.Context) (*models.ProfileResponse, error) {
	c.mu.Lock()
	profile, gone := c.profile, c.profileGone
	c.mu.Unlock()

	if gone {
		return nil, notFound(http.MethodGet, ProfileEndpoint)
	}
	if profile != nil {
		return profileResponse(*profile, ""), nil
	}

	resp, err := util.ReadProfileResponseFromJSON(PROFILE_RESPONSE_PATH)
	if err != nil {
		log.Println("[LapanginApiClientMock] Could not read profile response from json")
		return nil, err
	}
	return resp, nil
}

func (c *LapanginApiClientMock) UpdateProfile(ctx context.Context, profile models.Profile) (*models.ProfileResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profileGone {
		return nil, notFound(http.MethodPut, ProfileEndpoint)
	}
	c.profile = &profile
	return profileResponse(profile, "Profil berhasil diperbarui"), nil
}

func (c *LapanginApiClientMock) DeleteProfile(ctx context.Context) (*models.ProfileResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profileGone = true
	return &models.ProfileResponse{Success: true, Message: "Akun berhasil dihapus"}, nil
}

func profileResponse(profile models.Profile, message string) *models.ProfileResponse {
	resp := &models.ProfileResponse{Success: true, Message: message}
	resp.Data = &struct {
		User *models.Profile `json:"user"`
	}{User: &profile}
	return resp
}

func notFound(method, endpoint string) error {
	return &api.StatusError{
		Method:     method,
		URL:        endpoint,
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
	}
}
