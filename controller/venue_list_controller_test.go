package controller

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapangin-web/models"
	"lapangin-web/models/venue"
)

func serverPage(venues []venue.Venue, page, totalPages int, total *int) func(context.Context, models.VenueQuery, int, int) (*models.VenueListResponse, error) {
	return func(ctx context.Context, q models.VenueQuery, p, size int) (*models.VenueListResponse, error) {
		return &models.VenueListResponse{
			Data:       venues,
			Pagination: models.Pagination{Page: page, TotalPages: totalPages, TotalCount: total},
		}, nil
	}
}

func manyVenues(n int) []venue.Venue {
	out := make([]venue.Venue, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, rated(fmt.Sprintf("dummy-%d", i), fmt.Sprintf("Lapangan %d", i), "Futsal", float64(i*10000), 4, i))
	}
	return out
}

func TestLoadPage_RendersServerDataWithRatingCheckAndSort(t *testing.T) {
	stub := &stubAPI{listVenues: serverPage([]venue.Venue{
		rated("a", "Arena A", "Futsal", 150000, 4.5, 10),
		rated("b", "Arena B", "Futsal", 90000, 3.2, 4),
		rated("c", "Arena C", "Futsal", 120000, 4.8, 2),
	}, 1, 3, intPtr(25))}
	c := NewVenueListController(stub, nil)
	view := &recordingView{}

	outcome := c.LoadPage(context.Background(), view, models.VenueQuery{MinRating: "4", Sort: models.SortPriceLow}, 1)

	require.Equal(t, LoadRendered, outcome)
	require.Len(t, view.venues, 2)
	assert.Equal(t, "c", view.venues[0].ID)
	assert.Equal(t, "a", view.venues[1].ID)
	assert.Equal(t, 25, view.count)
	assert.Equal(t, 3, view.pagination.TotalPages)
	assert.Equal(t, []string{"c", "a"}, ids(c.Venues()))
	assert.Equal(t, 1, c.Page())
}

func TestLoadPage_CountFallsBackToLocalLength(t *testing.T) {
	stub := &stubAPI{listVenues: serverPage(manyVenues(3), 1, 1, intPtr(0))}
	view := &recordingView{}

	outcome := NewVenueListController(stub, nil).LoadPage(context.Background(), view, models.VenueQuery{}, 1)

	require.Equal(t, LoadRendered, outcome)
	assert.Equal(t, 3, view.count)
}

func TestLoadPage_FailureShowsLoadError(t *testing.T) {
	stub := &stubAPI{listVenues: func(context.Context, models.VenueQuery, int, int) (*models.VenueListResponse, error) {
		return nil, errBackendDown
	}}
	view := &recordingView{}

	outcome := NewVenueListController(stub, manyVenues(3)).LoadPage(context.Background(), view, models.VenueQuery{}, 1)

	assert.Equal(t, LoadFailed, outcome)
	assert.Equal(t, MsgVenueLoadFailed, view.empty)
	assert.Equal(t, []string{"ListVenues"}, stub.Calls())
}

func TestLoadPage_EmptyServerDataFallsBackToSnapshot(t *testing.T) {
	snapshot := append(manyVenues(12), rated("x", "Kolam Renang", "Renang", 50000, 5, 1))
	stub := &stubAPI{listVenues: serverPage(nil, 2, 7, intPtr(60))}
	c := NewVenueListController(stub, snapshot)
	view := &recordingView{}

	outcome := c.LoadPage(context.Background(), view, models.VenueQuery{Category: "futsal", Sort: models.SortPriceHigh}, 2)

	require.Equal(t, LoadRendered, outcome)
	// 12 futsal venues, 9 per page, second page holds the 3 cheapest
	assert.Equal(t, []string{"dummy-3", "dummy-2", "dummy-1"}, ids(view.venues))
	assert.Equal(t, 12, view.count)
	assert.Equal(t, 2, view.pagination.Page)
	assert.Equal(t, 2, view.pagination.TotalPages)
}

func TestLoadPage_NothingMatches(t *testing.T) {
	tests := []struct {
		name     string
		data     []venue.Venue
		snapshot []venue.Venue
		query    models.VenueQuery
	}{
		{name: "empty without snapshot"},
		{name: "snapshot filtered out", snapshot: manyVenues(4), query: models.VenueQuery{Name: "tenis"}},
		{name: "rating re-check empties page", data: manyVenues(2), query: models.VenueQuery{MinRating: "4.5"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stub := &stubAPI{listVenues: serverPage(manyVenues(1), 1, 1, intPtr(1))}
			c := NewVenueListController(stub, nil)
			view := &recordingView{}
			require.Equal(t, LoadRendered, c.LoadPage(context.Background(), view, models.VenueQuery{}, 1))

			stub.listVenues = serverPage(test.data, 1, 1, nil)
			c.SetSnapshot(test.snapshot)
			outcome := c.LoadPage(context.Background(), view, test.query, 1)

			assert.Equal(t, LoadEmpty, outcome)
			assert.Equal(t, MsgNoVenues, view.empty)
			assert.Empty(t, c.Venues())
			assert.Equal(t, models.Pagination{}, c.Pagination())
		})
	}
}

func TestLoadPage_LatestRequestWins(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	stub := &stubAPI{}
	stub.listVenues = func(ctx context.Context, q models.VenueQuery, page, size int) (*models.VenueListResponse, error) {
		if q.Name == "slow" {
			close(started)
			<-release
			return &models.VenueListResponse{Data: []venue.Venue{rated("slow", "Slow", "Futsal", 1, 5, 1)}}, nil
		}
		return &models.VenueListResponse{Data: []venue.Venue{rated("fast", "Fast", "Futsal", 1, 5, 1)}}, nil
	}
	c := NewVenueListController(stub, nil)
	view := &recordingView{}

	var wg sync.WaitGroup
	var slowOutcome LoadOutcome
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowOutcome = c.SubmitFilters(context.Background(), view, models.VenueQuery{Name: "slow"})
	}()
	<-started

	fastOutcome := c.SubmitFilters(context.Background(), view, models.VenueQuery{Name: "fast"})
	close(release)
	wg.Wait()

	assert.Equal(t, LoadRendered, fastOutcome)
	assert.Equal(t, LoadSuperseded, slowOutcome)
	assert.Equal(t, []string{"fast"}, ids(view.venues))
	assert.Equal(t, []string{"fast"}, ids(c.Venues()))
	assert.Equal(t, 1, view.renders)
}

func TestGoToPage(t *testing.T) {
	var requested []int
	stub := &stubAPI{}
	stub.listVenues = func(ctx context.Context, q models.VenueQuery, page, size int) (*models.VenueListResponse, error) {
		requested = append(requested, page)
		return &models.VenueListResponse{
			Data:       manyVenues(2),
			Pagination: models.Pagination{Page: page, TotalPages: 3},
		}, nil
	}
	c := NewVenueListController(stub, nil)
	view := &recordingView{}

	assert.Equal(t, LoadIgnored, c.GoToPage(context.Background(), view, 2), "envelope unknown, only page 1 exists")
	require.Equal(t, LoadRendered, c.ChangeSort(context.Background(), view, models.VenueQuery{Name: "lapangan"}, models.SortRating))
	assert.Equal(t, models.SortRating, c.Query().Sort)

	assert.Equal(t, LoadRendered, c.GoToPage(context.Background(), view, 3))
	assert.Equal(t, 3, c.Page())
	assert.Equal(t, LoadIgnored, c.GoToPage(context.Background(), view, 4))
	assert.Equal(t, LoadIgnored, c.GoToPage(context.Background(), view, 0))
	assert.Equal(t, []int{1, 3}, requested)
}

func TestChangeCategory_ResetsToFirstPage(t *testing.T) {
	var got models.VenueQuery
	var gotPage int
	stub := &stubAPI{listVenues: func(ctx context.Context, q models.VenueQuery, page, size int) (*models.VenueListResponse, error) {
		got, gotPage = q, page
		return &models.VenueListResponse{Data: manyVenues(1)}, nil
	}}
	c := NewVenueListController(stub, nil)

	c.ChangeCategory(context.Background(), &recordingView{}, models.VenueQuery{Category: "Badminton"})

	assert.Equal(t, "Badminton", got.Category)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, "Badminton", c.Query().Category)
}

func TestBootstrap_ShowsSnapshotBeforeLoading(t *testing.T) {
	stub := &stubAPI{listVenues: func(context.Context, models.VenueQuery, int, int) (*models.VenueListResponse, error) {
		return nil, errBackendDown
	}}
	c := NewVenueListController(stub, manyVenues(11))
	view := &recordingView{}

	outcome := c.Bootstrap(context.Background(), view)

	assert.Equal(t, LoadFailed, outcome)
	assert.Equal(t, 1, view.renders)
	assert.Equal(t, MsgVenueLoadFailed, view.empty)
}

func TestLoadOutcome_String(t *testing.T) {
	assert.Equal(t, "superseded", LoadSuperseded.String())
	assert.Equal(t, "unknown", LoadOutcome(42).String())
}

func ids(venues []venue.Venue) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.ID)
	}
	return out
}
