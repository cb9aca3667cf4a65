package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/futureuniv/campusfeed/domain"
)

const (
	KeyProfiles = "profile:%s"

	// Profile snapshots are denormalized into every feed row anyway, so a
	// short TTL is enough to absorb repeat lookups without staleness risk.
	profileTTL = 10 * time.Minute
)

type profileCache struct {
	client *redis.Client
}

var _ domain.ProfileCache = (*profileCache)(nil)

func NewProfileCache(client *redis.Client) *profileCache {
	return &profileCache{
		client,
	}
}

func (c *profileCache) GetProfile(ctx context.Context, id string) (res domain.Profile, err error) {
	key := fmt.Sprintf(KeyProfiles, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Profile{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Profile{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Profile{}, err
	}
	return
}

func (c *profileCache) SetProfile(ctx context.Context, p *domain.Profile) (err error) {
	key := fmt.Sprintf(KeyProfiles, p.ID)
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, profileTTL).Err()
	return
}

func (c *profileCache) DeleteProfile(ctx context.Context, id string) error {
	key := fmt.Sprintf(KeyProfiles, id)
	return c.client.Del(ctx, key).Err()
}
