package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/contactbook/contactbook/internal/model"
)

const (
	// userViewPrefix is the Redis key prefix for cached public user views.
	userViewPrefix = "user:view:"
	// userViewTTL bounds staleness. Users are append-only, so a cached
	// view can only go stale through out-of-band deletion.
	userViewTTL = 5 * time.Minute
)

func userViewKey(id int64) string {
	return userViewPrefix + strconv.FormatInt(id, 10)
}

// GetUserView retrieves a cached public user view.
// Returns nil on a cache miss; misses are not errors.
func (c *Cache) GetUserView(ctx context.Context, id int64) (*model.PublicUser, error) {
	data, err := c.client.Get(ctx, userViewKey(id)).Bytes()
	if err != nil {
		return nil, nil //nolint:nilerr
	}

	var view model.PublicUser
	if err := json.Unmarshal(data, &view); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &view, nil
}

// SetUserView caches a public user view.
func (c *Cache) SetUserView(ctx context.Context, view *model.PublicUser) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshal user view: %w", err)
	}

	return c.client.Set(ctx, userViewKey(view.ID), data, userViewTTL).Err()
}
