package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/futureuniv/campusfeed/domain"
)

// profileRepository coordinates the remote profile store and the cache.
// The remote store stays authoritative; the cache only absorbs repeat
// reads and is invalidated on every write.
type profileRepository struct {
	store domain.ProfileStore
	cache domain.ProfileCache
	group singleflight.Group
}

var _ domain.ProfileRepository = (*profileRepository)(nil)

// NewProfileRepository creates the coordinating repository.
func NewProfileRepository(store domain.ProfileStore, cache domain.ProfileCache) *profileRepository {
	return &profileRepository{
		store: store,
		cache: cache,
	}
}

// GetByID retrieves a profile, serving from cache when possible. Concurrent
// misses for the same profile collapse into a single remote call.
func (r *profileRepository) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	profile, err := r.cache.GetProfile(ctx, id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("profile cache get error: %v", err)
	}

	result, err, _ := r.group.Do(id, func() (any, error) {
		p, err := r.store.GetProfile(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := r.cache.SetProfile(ctx, &p); err != nil {
			logrus.Warnf("failed to set profile cache: %v", err)
		}
		return p, nil
	})
	if err != nil {
		return domain.Profile{}, err
	}

	return result.(domain.Profile), nil
}

// Update writes through to the store and invalidates the cached snapshot.
func (r *profileRepository) Update(ctx context.Context, token, id string, changes domain.ProfileChanges) error {
	if err := r.store.UpdateProfile(ctx, token, id, changes); err != nil {
		return err
	}

	go func(id string) {
		if err := r.cache.DeleteProfile(context.Background(), id); err != nil {
			logrus.Warnf("failed to invalidate profile cache: %v", err)
		}
	}(id)

	return nil
}
