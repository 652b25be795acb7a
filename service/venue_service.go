package services

import (
	"context"
	"log"
	"time"

	"lapangin-web/api/lapangin"
	"lapangin-web/config"
	"lapangin-web/dao/redis"
	"lapangin-web/models/venue"
)

type VenueService struct {
	venueDao    *redis.RedisVenueDAO
	lapanginApi lapangin.LapanginAPI
	detailTTL   time.Duration
}

// NewVenueService constructs a new VenueService with Redis dependency injection.
func NewVenueService(
	venueDao *redis.RedisVenueDAO,
	lapanginApi lapangin.LapanginAPI) *VenueService {

	return &VenueService{
		venueDao:    venueDao,
		lapanginApi: lapanginApi,
		detailTTL:   config.VENUE_DETAIL_CACHE_TTL_MINUTES * time.Minute,
	}
}

// GetSnapshot returns the cached venue snapshot. A missing or unreadable
// snapshot yields nil, which list pages treat as "no fallback".
func (vs *VenueService) GetSnapshot() []venue.Venue {
	snapshot, err := vs.venueDao.GetSnapshot()
	if err != nil {
		log.Printf("[VenueService] Failed to read venue snapshot: %v", err)
		return nil
	}
	if snapshot == nil {
		return nil
	}
	return snapshot.Venues
}

// GetVenue reads through the detail cache. Cache failures fall back to the
// backend and are only logged.
func (vs *VenueService) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	cached, err := vs.venueDao.GetVenue(venueID)
	if err != nil {
		log.Printf("[VenueService] Detail cache read failed for %s: %v", venueID, err)
	}
	if cached != nil {
		return cached, nil
	}

	v, err := vs.lapanginApi.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if err := vs.venueDao.SetVenue(venueID, *v, vs.detailTTL); err != nil {
		log.Printf("[VenueService] Detail cache write failed for %s: %v", venueID, err)
	}
	return v, nil
}

// SearchVenuesByName is not cached; it only runs after an id lookup misses.
func (vs *VenueService) SearchVenuesByName(ctx context.Context, name string) ([]venue.Venue, error) {
	return vs.lapanginApi.SearchVenuesByName(ctx, name)
}

// InvalidateVenue drops the cached detail, e.g. after a review changes its rating.
func (vs *VenueService) InvalidateVenue(venueID string) {
	if err := vs.venueDao.DeleteVenue(venueID); err != nil {
		log.Printf("[VenueService] Failed to invalidate %s: %v", venueID, err)
	}
}
