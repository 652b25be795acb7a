package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"lapangin-web/api/lapangin"
	"lapangin-web/config"
	"lapangin-web/dao/redis"
	"lapangin-web/models"
	"lapangin-web/models/venue"
)

// VenuesRefresherService periodically rebuilds the venue snapshot from the backend.
type VenuesRefresherService struct {
	venueDao    *redis.RedisVenueDAO
	lapanginApi lapangin.LapanginAPI
	pageSize    int
	maxPages    int
	now         func() time.Time
}

// NewVenuesRefresherService constructs a new Refresher with dependencies.
func NewVenuesRefresherService(
	venueDao *redis.RedisVenueDAO,
	lapanginApi lapangin.LapanginAPI,
) *VenuesRefresherService {
	return &VenuesRefresherService{
		venueDao:    venueDao,
		lapanginApi: lapanginApi,
		pageSize:    config.VENUES_SNAPSHOT_PAGE_SIZE,
		maxPages:    config.VENUES_SNAPSHOT_MAX_PAGES,
		now:         time.Now,
	}
}

// StartPeriodicJob launches the background loop at the given interval. The
// loop stops when ctx is cancelled.
func (vr *VenuesRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go vr.startPeriodicJob(ctx, interval)
}

func (vr *VenuesRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[VenuesRefresherService] Stopping periodic venues refresher job.")
			return
		case <-ticker.C:
		}

		log.Println("[VenuesRefresherService] Running periodic venues refresher job.")
		if err := vr.RefreshSnapshot(ctx); err != nil {
			log.Printf("[VenuesRefresherService] RefreshSnapshot returned error: %v", err)
		} else {
			log.Println("[VenuesRefresherService] RefreshSnapshot completed successfully.")
		}
		if err := vr.RefreshCachedVenues(ctx); err != nil {
			log.Printf("[VenuesRefresherService] RefreshCachedVenues returned error: %v", err)
		}
	}
}

// RefreshSnapshot pages through the public listing and stores every venue as
// the new snapshot. A failed first page keeps the previous snapshot.
func (vr *VenuesRefresherService) RefreshSnapshot(ctx context.Context) error {
	venues, err := vr.collectVenues(ctx)
	if err != nil && len(venues) == 0 {
		return fmt.Errorf("failed to fetch venues for snapshot: %w", err)
	}
	if err != nil {
		log.Printf("[VenuesRefresherService] Partial snapshot after error: %v", err)
	}

	snapshot := models.VenueSnapshot{Venues: venues, RefreshedAt: vr.now().UTC()}
	if err := vr.venueDao.SetSnapshot(snapshot); err != nil {
		return err
	}
	log.Printf("[VenuesRefresherService] Snapshot refreshed with %d venues", len(venues))
	return nil
}

// collectVenues walks the listing pages, dropping duplicate ids.
func (vr *VenuesRefresherService) collectVenues(ctx context.Context) ([]venue.Venue, error) {
	seenIDs := make(map[string]struct{})
	venues := []venue.Venue{}

	for page := 1; page <= vr.maxPages; page++ {
		resp, err := vr.lapanginApi.ListVenues(ctx, models.VenueQuery{}, page, vr.pageSize)
		if err != nil {
			return venues, fmt.Errorf("page %d: %w", page, err)
		}

		for _, v := range resp.Data {
			if v.ID != "" {
				if _, dup := seenIDs[v.ID]; dup {
					log.Printf("[VenuesRefresherService] Skipping duplicate venue ID=%s", v.ID)
					continue
				}
				seenIDs[v.ID] = struct{}{}
			}
			venues = append(venues, v)
		}

		if len(resp.Data) == 0 || page >= resp.Pagination.TotalPages {
			break
		}
	}
	return venues, nil
}

// RefreshCachedVenues re-fetches every cached venue detail and drops the
// entries the backend no longer knows.
func (vr *VenuesRefresherService) RefreshCachedVenues(ctx context.Context) error {
	ids, err := vr.venueDao.ListCachedVenueIDs()
	if err != nil {
		log.Printf("[VenuesRefresherService] Error listing cached venue IDs: %v", err)
		return err
	}
	log.Printf("[VenuesRefresherService] Found %d cached venue entries", len(ids))

	ttl := config.VENUE_DETAIL_CACHE_TTL_MINUTES * time.Minute
	for _, id := range ids {
		v, err := vr.lapanginApi.GetVenue(ctx, id)
		if lapangin.IsVenueNotFound(err) {
			log.Printf("[VenuesRefresherService] Venue %s is gone, removing cache", id)
			if err := vr.venueDao.DeleteVenue(id); err != nil {
				log.Printf("[VenuesRefresherService] Failed to delete stale venue %s: %v", id, err)
			}
			continue
		}
		if err != nil {
			log.Printf("[VenuesRefresherService] GetVenue failed for %s: %v", id, err)
			continue
		}
		if err := vr.venueDao.SetVenue(id, *v, ttl); err != nil {
			log.Printf("[VenuesRefresherService] SetVenue failed for %s: %v", id, err)
		}
	}
	return nil
}
