package controller

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"lapangin-web/api"
	"lapangin-web/api/lapangin"
	"lapangin-web/catalog"
	"lapangin-web/models"
	"lapangin-web/models/review"
	"lapangin-web/models/venue"
)

var errBackendDown = errors.New("backend down")

func notFoundErr() error {
	return &api.StatusError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}
}

// stubAPI implements only what each test sets; anything else panics on the
// nil embedded interface.
type stubAPI struct {
	lapangin.LapanginAPI

	listVenues    func(ctx context.Context, q models.VenueQuery, page, pageSize int) (*models.VenueListResponse, error)
	getReviews    func(ctx context.Context, venueID string) ([]review.Review, error)
	postReview    func(ctx context.Context, venueID string, req models.ReviewRequest) (*models.StatusResponse, error)
	userStatus    func(ctx context.Context) (*models.UserStatus, error)
	listMitra     func(ctx context.Context) ([]models.Mitra, error)
	updateMitra   func(ctx context.Context, id string, u models.MitraStatusUpdate) (*models.MitraStatusResponse, error)
	getProfile    func(ctx context.Context) (*models.ProfileResponse, error)
	saveProfile   func(ctx context.Context, p models.Profile) (*models.ProfileResponse, error)
	deleteProfile func(ctx context.Context) (*models.ProfileResponse, error)

	mu    sync.Mutex
	calls []string
}

func (s *stubAPI) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

func (s *stubAPI) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *stubAPI) ListVenues(ctx context.Context, q models.VenueQuery, page, pageSize int) (*models.VenueListResponse, error) {
	s.record("ListVenues")
	return s.listVenues(ctx, q, page, pageSize)
}

func (s *stubAPI) GetReviews(ctx context.Context, venueID string) ([]review.Review, error) {
	s.record("GetReviews")
	return s.getReviews(ctx, venueID)
}

func (s *stubAPI) PostReview(ctx context.Context, venueID string, req models.ReviewRequest) (*models.StatusResponse, error) {
	s.record("PostReview")
	return s.postReview(ctx, venueID, req)
}

func (s *stubAPI) GetUserStatus(ctx context.Context) (*models.UserStatus, error) {
	s.record("GetUserStatus")
	return s.userStatus(ctx)
}

func (s *stubAPI) ListMitra(ctx context.Context) ([]models.Mitra, error) {
	s.record("ListMitra")
	return s.listMitra(ctx)
}

func (s *stubAPI) UpdateMitraStatus(ctx context.Context, id string, u models.MitraStatusUpdate) (*models.MitraStatusResponse, error) {
	s.record("UpdateMitraStatus")
	return s.updateMitra(ctx, id, u)
}

func (s *stubAPI) GetProfile(ctx context.Context) (*models.ProfileResponse, error) {
	s.record("GetProfile")
	return s.getProfile(ctx)
}

func (s *stubAPI) UpdateProfile(ctx context.Context, p models.Profile) (*models.ProfileResponse, error) {
	s.record("UpdateProfile")
	return s.saveProfile(ctx, p)
}

func (s *stubAPI) DeleteProfile(ctx context.Context) (*models.ProfileResponse, error) {
	s.record("DeleteProfile")
	return s.deleteProfile(ctx)
}

// stubLookup stands in for the cached venue service.
type stubLookup struct {
	byID        map[string]venue.Venue
	byName      map[string][]venue.Venue
	getErr      error
	searchErr   error
	invalidated []string
}

func (s *stubLookup) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.byID[venueID]
	if !ok {
		return nil, notFoundErr()
	}
	return &v, nil
}

func (s *stubLookup) SearchVenuesByName(ctx context.Context, name string) ([]venue.Venue, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.byName[name], nil
}

func (s *stubLookup) InvalidateVenue(venueID string) {
	s.invalidated = append(s.invalidated, venueID)
}

type toast struct {
	Kind    string
	Message string
}

// recordingView implements every view interface and keeps what it was told.
type recordingView struct {
	venues     []venue.Venue
	count      int
	pagination models.Pagination
	empty      string
	renders    int

	venue       *venue.Venue
	notFound    string
	reviews     []review.Review
	summary     catalog.ReviewSummary
	reviewsID   string
	reviewsErr  string
	reviewForm  string
	redirect    string
	toasts      []toast
	mitra       []models.Mitra
	mitraSort   models.MitraSort
	rowStatuses []models.Mitra
	profile     *models.Profile
}

func (v *recordingView) ShowVenues(venues []venue.Venue, count int, pagination models.Pagination) {
	v.renders++
	v.venues, v.count, v.pagination, v.empty = venues, count, pagination, ""
}

func (v *recordingView) ShowEmpty(message string) {
	v.venues, v.count, v.pagination, v.empty = nil, 0, models.Pagination{}, message
}

func (v *recordingView) ShowToast(kind, message string) {
	v.toasts = append(v.toasts, toast{Kind: kind, Message: message})
}

func (v *recordingView) ShowVenue(shown venue.Venue) { v.venue = &shown }

func (v *recordingView) ShowNotFound(message string) { v.notFound = message }

func (v *recordingView) ShowReviews(venueID string, reviews []review.Review, summary catalog.ReviewSummary) {
	v.reviewsID, v.reviews, v.summary, v.reviewsErr = venueID, reviews, summary, ""
}

func (v *recordingView) ShowReviewsError(venueID, message string) {
	v.reviewsID, v.reviewsErr = venueID, message
}

func (v *recordingView) ShowReviewForm(venueID string) { v.reviewForm = venueID }

func (v *recordingView) Redirect(location string) { v.redirect = location }

func (v *recordingView) ShowMitra(rows []models.Mitra, sort models.MitraSort) {
	v.mitra, v.mitraSort = rows, sort
}

func (v *recordingView) ShowRowStatus(m models.Mitra) { v.rowStatuses = append(v.rowStatuses, m) }

func (v *recordingView) ShowProfile(p models.Profile) { v.profile = &p }

func (v *recordingView) lastToast() toast {
	if len(v.toasts) == 0 {
		return toast{}
	}
	return v.toasts[len(v.toasts)-1]
}

var (
	_ ListView    = (*recordingView)(nil)
	_ DetailView  = (*recordingView)(nil)
	_ MitraView   = (*recordingView)(nil)
	_ ProfileView = (*recordingView)(nil)
)

func rated(id, name, category string, price, rating float64, count int) venue.Venue {
	return venue.Venue{
		ID: id, Name: name, Category: category, PricePerHour: price,
		AvgRating: rating, HasRating: true, RatingCount: count,
	}
}

func intPtr(i int) *int { return &i }
