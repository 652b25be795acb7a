package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lapangin-web/db"
	"lapangin-web/models"
	"lapangin-web/models/venue"
)

const VENUES_SNAPSHOT_KEY_V1 = "venues_snapshot_v1"

// VENUE_DETAIL_KEY_FORMAT_V1 is used to cache venue details per id.
const VENUE_DETAIL_KEY_FORMAT_V1 = "venue_v1:%s"

// RedisVenueDAO handles venue operations using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// SetSnapshot replaces the cached venue snapshot. It never expires; the
// refresher overwrites it.
func (dao *RedisVenueDAO) SetSnapshot(s models.VenueSnapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal venue snapshot: %w", err)
	}
	if err := dao.client.Set(VENUES_SNAPSHOT_KEY_V1, string(data), 0); err != nil {
		return fmt.Errorf("failed to set venue snapshot in redis: %w", err)
	}
	log.Printf("[RedisVenueDAO] Stored snapshot with %d venues", len(s.Venues))
	return nil
}

// GetSnapshot returns the cached snapshot, or nil when none was stored yet.
func (dao *RedisVenueDAO) GetSnapshot() (*models.VenueSnapshot, error) {
	str, err := dao.client.Get(VENUES_SNAPSHOT_KEY_V1)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue snapshot from redis: %w", err)
	}
	var s models.VenueSnapshot
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue snapshot JSON: %w", err)
	}
	return &s, nil
}

// SetVenue caches a venue detail under the id it was requested by.
func (dao *RedisVenueDAO) SetVenue(key string, v venue.Venue, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal venue %s: %w", key, err)
	}
	if err := dao.client.Set(fmt.Sprintf(VENUE_DETAIL_KEY_FORMAT_V1, key), string(data), ttl); err != nil {
		return fmt.Errorf("failed to set venue in redis: %w", err)
	}
	return nil
}

// GetVenue returns the cached venue, or nil on a cache miss.
func (dao *RedisVenueDAO) GetVenue(key string) (*venue.Venue, error) {
	str, err := dao.client.Get(fmt.Sprintf(VENUE_DETAIL_KEY_FORMAT_V1, key))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue from redis: %w", err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// ListCachedVenueIDs returns the keys of all cached venue details.
func (dao *RedisVenueDAO) ListCachedVenueIDs() ([]string, error) {
	keys, err := dao.client.Keys(fmt.Sprintf(VENUE_DETAIL_KEY_FORMAT_V1, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}

	prefix := fmt.Sprintf(VENUE_DETAIL_KEY_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

func (dao *RedisVenueDAO) DeleteVenue(key string) error {
	redisKey := fmt.Sprintf(VENUE_DETAIL_KEY_FORMAT_V1, key)
	if err := dao.client.Del(redisKey); err != nil {
		return fmt.Errorf("failed to delete venue key %s: %w", redisKey, err)
	}
	log.Printf("[RedisVenueDAO] Deleted venue cache for %s", key)
	return nil
}
