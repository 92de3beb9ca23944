package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	UserKeyPrefix           = "user:%d"
	RecommendationKeyPrefix = "reco:%d"
)

const (
	UserTTL           = 5 * time.Minute
	RecommendationTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func RecommendationKey(userID uint) string {
	return fmt.Sprintf(RecommendationKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, RecommendationKey(userID))
}

// Aside implements the cache-aside pattern: try the cache, fall back to load,
// then populate. Cache failures never fail the read; a nil client degrades to
// a plain load.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, load func() error) error {
	if client != nil {
		if raw, err := client.Get(ctx, key).Bytes(); err == nil {
			if json.Unmarshal(raw, dest) == nil {
				return nil
			}
			// Corrupt entry; drop it and reload.
			client.Del(ctx, key)
		}
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if buf, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, buf, ttl)
		}
	}
	return nil
}
