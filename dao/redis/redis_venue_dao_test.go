package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapangin-web/db"
	"lapangin-web/models"
	"lapangin-web/models/venue"
)

func TestRedisVenueDAO_Snapshot(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	missing, err := dao.GetSnapshot()
	require.NoError(t, err)
	assert.Nil(t, missing)

	snapshot := models.VenueSnapshot{
		Venues: []venue.Venue{
			{ID: "dummy-1", Name: "Futsal Kemang", Images: []string{}, Facilities: []venue.Facility{}, Courts: []venue.Court{}},
		},
		RefreshedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}

	// Act
	require.NoError(t, dao.SetSnapshot(snapshot))
	got, err := dao.GetSnapshot()

	// Assert
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snapshot, *got)
}

func TestRedisVenueDAO_SetVenue_StoresJSON(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	testVenue := venue.Venue{ID: "venue123", Name: "Test Venue", AvgRating: 4.2, HasRating: true}
	require.NoError(t, dao.SetVenue("venue123", testVenue, time.Minute))

	storedValue, err := mockClient.Get("venue_v1:venue123")
	require.NoError(t, err)

	var stored venue.Venue
	require.NoError(t, json.Unmarshal([]byte(storedValue), &stored))
	assert.Equal(t, "venue123", stored.ID)
	assert.True(t, stored.HasRating)
}

func TestRedisVenueDAO_GetVenue(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	miss, err := dao.GetVenue("Futsal Arena")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, dao.SetVenue("Futsal Arena", venue.Venue{ID: "a", Name: "Futsal Arena"}, 0))
	hit, err := dao.GetVenue("Futsal Arena")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "a", hit.ID)
}

func TestRedisVenueDAO_GetVenue_CorruptEntry(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)
	require.NoError(t, mockClient.Set("venue_v1:bad", "{not json", 0))

	_, err := dao.GetVenue("bad")

	assert.Error(t, err)
}

func TestRedisVenueDAO_ListAndDelete(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)
	require.NoError(t, dao.SetSnapshot(models.VenueSnapshot{}))
	for _, id := range []string{"b", "a"} {
		require.NoError(t, dao.SetVenue(id, venue.Venue{ID: id}, 0))
	}

	ids, err := dao.ListCachedVenueIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, dao.DeleteVenue("a"))
	ids, err = dao.ListCachedVenueIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}
