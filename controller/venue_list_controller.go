package controller

import (
	"context"
	"log"
	"sync"

	"lapangin-web/api/lapangin"
	"lapangin-web/catalog"
	"lapangin-web/config"
	"lapangin-web/models"
	"lapangin-web/models/venue"
)

// LoadOutcome tells the caller what a load did to the view.
type LoadOutcome int

const (
	LoadRendered LoadOutcome = iota
	LoadEmpty
	LoadFailed
	// LoadSuperseded means a newer load started while this one was in
	// flight; the view and the cache were left untouched.
	LoadSuperseded
	// LoadIgnored means the request was out of range and nothing happened.
	LoadIgnored
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadRendered:
		return "rendered"
	case LoadEmpty:
		return "empty"
	case LoadFailed:
		return "failed"
	case LoadSuperseded:
		return "superseded"
	case LoadIgnored:
		return "ignored"
	}
	return "unknown"
}

// VenueListController holds the query state of one listing page view and
// runs the fetch, fallback, filter, sort and render pipeline.
//
// Overlapping loads resolve as latest-request-wins: each load takes a
// generation number and only the newest one may touch the view or cache.
type VenueListController struct {
	api      lapangin.LapanginAPI
	pageSize int

	mu         sync.Mutex
	query      models.VenueQuery
	page       int
	pagination models.Pagination
	venues     []venue.Venue
	snapshot   []venue.Venue
	generation uint64
}

func NewVenueListController(api lapangin.LapanginAPI, snapshot []venue.Venue) *VenueListController {
	return &VenueListController{
		api:      api,
		pageSize: config.VENUES_PAGE_SIZE,
		page:     1,
		snapshot: snapshot,
	}
}

// SetSnapshot replaces the injected fallback list.
func (c *VenueListController) SetSnapshot(venues []venue.Venue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = venues
}

func (c *VenueListController) Query() models.VenueQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

func (c *VenueListController) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *VenueListController) Pagination() models.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

// Venues returns a copy of the venues currently displayed.
func (c *VenueListController) Venues() []venue.Venue {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]venue.Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// Snapshot returns the injected fallback list.
func (c *VenueListController) Snapshot() []venue.Venue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// SubmitFilters stores q and loads its first page.
func (c *VenueListController) SubmitFilters(ctx context.Context, view ListView, q models.VenueQuery) LoadOutcome {
	c.setQuery(q)
	return c.LoadPage(ctx, view, q, 1)
}

// ChangeCategory is a filter submission triggered by the category control.
func (c *VenueListController) ChangeCategory(ctx context.Context, view ListView, q models.VenueQuery) LoadOutcome {
	return c.SubmitFilters(ctx, view, q)
}

// ChangeSort reloads the first page of q ordered by key.
func (c *VenueListController) ChangeSort(ctx context.Context, view ListView, q models.VenueQuery, key string) LoadOutcome {
	q.Sort = key
	return c.SubmitFilters(ctx, view, q)
}

// GoToPage loads page with the stored query. Pages outside the current
// envelope are ignored.
func (c *VenueListController) GoToPage(ctx context.Context, view ListView, page int) LoadOutcome {
	c.mu.Lock()
	total := c.pagination.TotalPages
	if total < 1 {
		total = 1
	}
	q := c.query
	c.mu.Unlock()

	if page < 1 || page > total {
		return LoadIgnored
	}
	return c.LoadPage(ctx, view, q, page)
}

// Bootstrap shows the snapshot right away, then loads the unfiltered first page.
func (c *VenueListController) Bootstrap(ctx context.Context, view ListView) LoadOutcome {
	c.mu.Lock()
	c.query = models.VenueQuery{}
	snapshot := c.snapshot
	c.mu.Unlock()

	if len(snapshot) > 0 {
		pagination := models.LocalPagination(1, c.pageSize, len(snapshot))
		view.ShowVenues(pageOf(snapshot, 1, c.pageSize), len(snapshot), pagination)
	}
	return c.LoadPage(ctx, view, models.VenueQuery{}, 1)
}

// LoadPage fetches one page for q and renders it. Exactly one request is
// made and it is never retried.
func (c *VenueListController) LoadPage(ctx context.Context, view ListView, q models.VenueQuery, page int) LoadOutcome {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	snapshot := c.snapshot
	c.mu.Unlock()

	resp, err := c.api.ListVenues(ctx, q, page, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		log.Printf("[VenueListController] Dropping superseded load of page %d", page)
		return LoadSuperseded
	}
	if err != nil {
		log.Printf("[VenueListController] Failed to load page %d: %v", page, err)
		view.ShowEmpty(MsgVenueLoadFailed)
		return LoadFailed
	}

	venues := resp.Data
	pagination := resp.Pagination
	if pagination.Page < 1 {
		pagination.Page = page
	}
	count, hasCount := pagination.Count()

	if len(venues) == 0 && len(snapshot) > 0 {
		// server data is no longer in use, so the envelope is derived locally
		matched := catalog.Sort(catalog.Filter(snapshot, q), q.Sort)
		pagination = models.LocalPagination(page, c.pageSize, len(matched))
		venues = pageOf(matched, pagination.Page, c.pageSize)
		count, hasCount = len(matched), true
	} else {
		venues = catalog.Sort(catalog.FilterByRating(venues, q.MinRating), q.Sort)
	}

	if len(venues) == 0 {
		c.venues = nil
		c.pagination = models.Pagination{}
		c.page = 1
		view.ShowEmpty(MsgNoVenues)
		return LoadEmpty
	}

	if !hasCount {
		count = len(venues)
	}
	c.venues = venues
	c.pagination = pagination
	c.page = pagination.Page
	view.ShowVenues(venues, count, pagination)
	return LoadRendered
}

func (c *VenueListController) setQuery(q models.VenueQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
}

// pageOf returns the 1-based page of venues, or nil past the end.
func pageOf(venues []venue.Venue, page, pageSize int) []venue.Venue {
	start := (page - 1) * pageSize
	if start < 0 || start >= len(venues) {
		return nil
	}
	end := min(start+pageSize, len(venues))
	return venues[start:end]
}
