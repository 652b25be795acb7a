package controller

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"sync"

	"lapangin-web/api"
	"lapangin-web/api/lapangin"
	"lapangin-web/catalog"
	"lapangin-web/config"
	"lapangin-web/models"
	"lapangin-web/models/review"
	"lapangin-web/models/venue"
)

// VenueLookup resolves venue records, usually through the detail cache.
type VenueLookup interface {
	GetVenue(ctx context.Context, venueID string) (*venue.Venue, error)
	SearchVenuesByName(ctx context.Context, name string) ([]venue.Venue, error)
	InvalidateVenue(venueID string)
}

// DetailLoader fills the venue detail page.
type DetailLoader struct {
	venues VenueLookup
	api    lapangin.LapanginAPI
}

func NewDetailLoader(venues VenueLookup, api lapangin.LapanginAPI) *DetailLoader {
	return &DetailLoader{venues: venues, api: api}
}

// Load resolves the venue named by the trailing segment of path, shows it,
// then fetches reviews and the login status side by side.
func (d *DetailLoader) Load(ctx context.Context, view DetailView, path string) {
	venueID, ok := d.showVenue(ctx, view, path)
	if !ok {
		return
	}

	var (
		wg         sync.WaitGroup
		reviews    []review.Review
		reviewsErr error
		status     *models.UserStatus
		statusErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		reviews, reviewsErr = d.api.GetReviews(ctx, venueID)
	}()
	go func() {
		defer wg.Done()
		status, statusErr = d.api.GetUserStatus(ctx)
	}()
	wg.Wait()

	d.showReviews(view, venueID, reviews, reviewsErr)
	if statusErr != nil {
		log.Printf("[DetailLoader] Login status check failed: %v", statusErr)
		return
	}
	if status.Authenticated {
		view.ShowReviewForm(venueID)
	}
}

// LoadReviews refreshes only the reviews section.
func (d *DetailLoader) LoadReviews(ctx context.Context, view DetailView, venueID string) {
	reviews, err := d.api.GetReviews(ctx, venueID)
	d.showReviews(view, venueID, reviews, err)
}

// SubmitReview resolves the venue at path, posts the review and shows the
// page with the reviews fetched after the post. Anonymous users are sent to
// the login page with path as the return address.
func (d *DetailLoader) SubmitReview(ctx context.Context, view DetailView, path string, rating int, comment string) {
	venueID, ok := d.showVenue(ctx, view, path)
	if !ok {
		return
	}

	status, err := d.api.GetUserStatus(ctx)
	if err != nil || !status.Authenticated {
		view.Redirect(config.LOGIN_ROUTE + "?next=" + url.QueryEscape(path))
		return
	}
	view.ShowReviewForm(venueID)

	if d.postReview(ctx, view, venueID, rating, comment) {
		d.venues.InvalidateVenue(venueID)
	}
	d.LoadReviews(ctx, view, venueID)
}

// postReview validates and sends one review, reporting the outcome as a toast.
func (d *DetailLoader) postReview(ctx context.Context, view DetailView, venueID string, rating int, comment string) bool {
	if rating < 1 || rating > catalog.MaxStars {
		view.ShowToast(ToastWarning, MsgPickRating)
		return false
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		view.ShowToast(ToastWarning, MsgWriteReview)
		return false
	}

	resp, err := d.api.PostReview(ctx, venueID, models.ReviewRequest{Rating: rating, Comment: comment})
	if err != nil {
		log.Printf("[DetailLoader] Failed to post review for %s: %v", venueID, err)
		view.ShowToast(ToastError, backendMessage(err, MsgReviewFailed))
		return false
	}
	if !resp.OK() {
		view.ShowToast(ToastError, orDefault(resp.Message, MsgReviewFailed))
		return false
	}

	view.ShowToast(ToastSuccess, orDefault(resp.Message, MsgReviewSent))
	return true
}

// showVenue resolves and shows the venue named by path and returns the id
// its reviews live under.
func (d *DetailLoader) showVenue(ctx context.Context, view DetailView, path string) (string, bool) {
	segment := catalog.TrailingSegment(path)
	if segment == "" {
		view.ShowNotFound(MsgVenueNotFound)
		return "", false
	}
	key, err := url.PathUnescape(segment)
	if err != nil {
		key = segment
	}

	v, err := d.resolve(ctx, key)
	if err != nil {
		log.Printf("[DetailLoader] Failed to load venue %q: %v", key, err)
		view.ShowNotFound(MsgVenueLoadFailed)
		return "", false
	}
	if v == nil {
		view.ShowNotFound(MsgVenueNotFound)
		return "", false
	}
	view.ShowVenue(*v)

	if v.ID == "" {
		return key, true
	}
	return v.ID, true
}

// resolve looks key up as an id, then as a name. A nil venue with a nil
// error means nothing matched.
func (d *DetailLoader) resolve(ctx context.Context, key string) (*venue.Venue, error) {
	v, err := d.venues.GetVenue(ctx, key)
	if err == nil {
		return v, nil
	}
	if !lapangin.IsVenueNotFound(err) {
		return nil, err
	}

	matches, err := d.venues.SearchVenuesByName(ctx, key)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (d *DetailLoader) showReviews(view DetailView, venueID string, reviews []review.Review, err error) {
	if err != nil {
		log.Printf("[DetailLoader] Failed to load reviews for %s: %v", venueID, err)
		view.ShowReviewsError(venueID, MsgReviewsLoadFailed)
		return
	}
	view.ShowReviews(venueID, reviews, catalog.SummarizeReviews(reviews))
}

// backendMessage prefers the "message" of a backend error body.
func backendMessage(err error, fallback string) string {
	var se *api.StatusError
	if errors.As(err, &se) {
		return orDefault(se.Message(), fallback)
	}
	return fallback
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
