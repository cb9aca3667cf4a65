package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futureuniv/campusfeed/domain"
	"github.com/futureuniv/campusfeed/internal/repository"
)

type fakeProfileStore struct {
	mu          sync.Mutex
	profile     domain.Profile
	getErr      error
	updateErr   error
	getCalls    int
	updateCalls int
}

func (s *fakeProfileStore) GetProfile(_ context.Context, _ string) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.getErr != nil {
		return domain.Profile{}, s.getErr
	}
	return s.profile, nil
}

func (s *fakeProfileStore) UpdateProfile(_ context.Context, _, _ string, _ domain.ProfileChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++
	return s.updateErr
}

type fakeProfileCache struct {
	mu      sync.Mutex
	entries map[string]domain.Profile
	setErr  error
	deletes int
}

func newFakeProfileCache() *fakeProfileCache {
	return &fakeProfileCache{entries: make(map[string]domain.Profile)}
}

func (c *fakeProfileCache) GetProfile(_ context.Context, id string) (domain.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[id]
	if !ok {
		return domain.Profile{}, domain.ErrCacheMiss
	}
	return p, nil
}

func (c *fakeProfileCache) SetProfile(_ context.Context, p *domain.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[p.ID] = *p
	return nil
}

func (c *fakeProfileCache) DeleteProfile(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	c.deletes++
	return nil
}

func fixtureProfile() domain.Profile {
	return domain.Profile{
		ID:       faker.UUIDHyphenated(),
		Name:     faker.Name(),
		Username: faker.Username(),
	}
}

func TestGetByIDCacheHit(t *testing.T) {
	want := fixtureProfile()
	store := &fakeProfileStore{}
	cache := newFakeProfileCache()
	cache.entries[want.ID] = want

	repo := repository.NewProfileRepository(store, cache)

	got, err := repo.GetByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Zero(t, store.getCalls, "cache hit must not reach the store")
}

func TestGetByIDCacheMissFillsCache(t *testing.T) {
	want := fixtureProfile()
	store := &fakeProfileStore{profile: want}
	cache := newFakeProfileCache()

	repo := repository.NewProfileRepository(store, cache)

	got, err := repo.GetByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, store.getCalls)

	cached, err := cache.GetProfile(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, cached)
}

func TestGetByIDCacheSetFailureStillServes(t *testing.T) {
	want := fixtureProfile()
	store := &fakeProfileStore{profile: want}
	cache := newFakeProfileCache()
	cache.setErr = assert.AnError

	repo := repository.NewProfileRepository(store, cache)

	got, err := repo.GetByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetByIDStoreError(t *testing.T) {
	store := &fakeProfileStore{getErr: domain.ErrNotFound}
	repo := repository.NewProfileRepository(store, newFakeProfileCache())

	_, err := repo.GetByID(context.Background(), faker.UUIDHyphenated())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateInvalidatesCache(t *testing.T) {
	p := fixtureProfile()
	store := &fakeProfileStore{}
	cache := newFakeProfileCache()
	cache.entries[p.ID] = p

	repo := repository.NewProfileRepository(store, cache)

	bio := "updated"
	require.NoError(t, repo.Update(context.Background(), "token", p.ID, domain.ProfileChanges{Bio: &bio}))
	assert.Equal(t, 1, store.updateCalls)

	// invalidation runs in the background
	assert.Eventually(t, func() bool {
		_, err := cache.GetProfile(context.Background(), p.ID)
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestUpdateStoreFailureKeepsCache(t *testing.T) {
	p := fixtureProfile()
	store := &fakeProfileStore{updateErr: domain.ErrForbidden}
	cache := newFakeProfileCache()
	cache.entries[p.ID] = p

	repo := repository.NewProfileRepository(store, cache)

	bio := "updated"
	err := repo.Update(context.Background(), "token", p.ID, domain.ProfileChanges{Bio: &bio})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	cached, err := cache.GetProfile(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, cached)
}
