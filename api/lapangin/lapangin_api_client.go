package lapangin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"lapangin-web/api"
	"lapangin-web/models"
	"lapangin-web/models/review"
	"lapangin-web/models/venue"
)

// LapanginApiClient embeds the common HTTPClient
type LapanginApiClient struct {
	*api.HTTPClient
}

// NewLapanginApiClient creates a new instance of LapanginApiClient
func NewLapanginApiClient(httpClient *api.HTTPClient) *LapanginApiClient {
	return &LapanginApiClient{
		HTTPClient: httpClient,
	}
}

// ListVenues fetches one page of venues matching the non-empty query entries.
func (c *LapanginApiClient) ListVenues(ctx context.Context, query models.VenueQuery, page, pageSize int) (*models.VenueListResponse, error) {
	var response models.VenueListResponse
	err := c.Request(ctx, http.MethodGet, VenueListEndpoint, query.PageValues(page, pageSize), nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVenue retrieves a venue by its identifier.
func (c *LapanginApiClient) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	var response models.VenueDetailResponse
	err := c.Request(ctx, http.MethodGet, VenueDetailEndpoint+url.PathEscape(venueID)+"/", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	if response.Data == nil {
		return nil, fmt.Errorf("venue %q: %w", venueID, ErrVenueNotFound)
	}
	return response.Data, nil
}

// SearchVenuesByName runs the name-search query used when an id lookup misses.
func (c *LapanginApiClient) SearchVenuesByName(ctx context.Context, name string) ([]venue.Venue, error) {
	var response models.VenueListResponse
	err := c.Request(ctx, http.MethodGet, VenueDetailEndpoint, url.Values{models.NameArg: {name}}, nil, &response)
	if err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *LapanginApiClient) GetReviews(ctx context.Context, venueID string) ([]review.Review, error) {
	var response models.ReviewListResponse
	endpoint := VenueDetailEndpoint + url.PathEscape(venueID) + "/reviews/"
	if err := c.Request(ctx, http.MethodGet, endpoint, nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *LapanginApiClient) PostReview(ctx context.Context, venueID string, req models.ReviewRequest) (*models.StatusResponse, error) {
	var response models.StatusResponse
	endpoint := fmt.Sprintf(ReviewPostEndpoint, url.PathEscape(venueID))
	if err := c.Request(ctx, http.MethodPost, endpoint, nil, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *LapanginApiClient) GetUserStatus(ctx context.Context) (*models.UserStatus, error) {
	var response models.UserStatus
	if err := c.Request(ctx, http.MethodGet, UserStatusEndpoint, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *LapanginApiClient) ListMitra(ctx context.Context) ([]models.Mitra, error) {
	var response models.MitraListResponse
	if err := c.Request(ctx, http.MethodGet, MitraListEndpoint, nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

func (c *LapanginApiClient) UpdateMitraStatus(ctx context.Context, mitraID string, update models.MitraStatusUpdate) (*models.MitraStatusResponse, error) {
	var response models.MitraStatusResponse
	endpoint := fmt.Sprintf(MitraDetailEndpoint, url.PathEscape(mitraID))
	if err := c.Request(ctx, http.MethodPatch, endpoint, nil, update, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *LapanginApiClient) GetProfile(ctx context.Context) (*models.ProfileResponse, error) {
	return c.profileRequest(ctx, http.MethodGet, nil)
}

func (c *LapanginApiClient) UpdateProfile(ctx context.Context, profile models.Profile) (*models.ProfileResponse, error) {
	return c.profileRequest(ctx, http.MethodPut, profile)
}

func (c *LapanginApiClient) DeleteProfile(ctx context.Context) (*models.ProfileResponse, error) {
	return c.profileRequest(ctx, http.MethodDelete, nil)
}

func (c *LapanginApiClient) profileRequest(ctx context.Context, method string, body interface{}) (*models.ProfileResponse, error) {
	var response models.ProfileResponse
	if err := c.Request(ctx, method, ProfileEndpoint, nil, body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
