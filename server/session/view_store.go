// Package session keeps the per-page-view list controllers between requests.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"lapangin-web/controller"
)

type entry struct {
	controller *controller.VenueListController
	lastSeen   time.Time
}

// ViewStore maps page-view ids to their list controllers. Views idle for
// longer than the ttl are dropped.
type ViewStore struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	views map[string]*entry
}

func NewViewStore(ttl time.Duration) *ViewStore {
	return &ViewStore{
		ttl:   ttl,
		now:   time.Now,
		views: make(map[string]*entry),
	}
}

// Create registers c under a fresh id.
func (s *ViewStore) Create(c *controller.VenueListController) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[id] = &entry{controller: c, lastSeen: s.now()}
	return id
}

// Get returns the controller for id and marks the view as used.
func (s *ViewStore) Get(id string) (*controller.VenueListController, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.views[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.views, id)
		return nil, false
	}
	e.lastSeen = now
	return e.controller, true
}

func (s *ViewStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// Sweep drops expired views and returns how many were removed.
func (s *ViewStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.views {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.views, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until ctx is done.
func (s *ViewStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[ViewStore] Sweeper stopped")
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					log.Printf("[ViewStore] Dropped %d idle page views", n)
				}
			}
		}
	}()
}
