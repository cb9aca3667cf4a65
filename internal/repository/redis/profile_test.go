package redis_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futureuniv/campusfeed/domain"
	redisCache "github.com/futureuniv/campusfeed/internal/repository/redis"
)

func fixtureProfile() domain.Profile {
	return domain.Profile{
		ID:        faker.UUIDHyphenated(),
		Name:      faker.Name(),
		Username:  faker.Username(),
		Bio:       faker.Sentence(),
		AvatarRef: "avatar1",
	}
}

func TestGetProfileHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisCache.NewProfileCache(client)

	want := fixtureProfile()
	data, err := json.Marshal(want)
	require.NoError(t, err)

	key := fmt.Sprintf(redisCache.KeyProfiles, want.ID)
	mock.ExpectGet(key).SetVal(string(data))

	got, err := cache.GetProfile(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisCache.NewProfileCache(client)

	id := faker.UUIDHyphenated()
	mock.ExpectGet(fmt.Sprintf(redisCache.KeyProfiles, id)).RedisNil()

	_, err := cache.GetProfile(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetProfile(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisCache.NewProfileCache(client)

	p := fixtureProfile()
	data, err := json.Marshal(&p)
	require.NoError(t, err)

	key := fmt.Sprintf(redisCache.KeyProfiles, p.ID)
	mock.ExpectSet(key, data, 10*time.Minute).SetVal("OK")

	require.NoError(t, cache.SetProfile(context.Background(), &p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProfile(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisCache.NewProfileCache(client)

	id := faker.UUIDHyphenated()
	mock.ExpectDel(fmt.Sprintf(redisCache.KeyProfiles, id)).SetVal(1)

	require.NoError(t, cache.DeleteProfile(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
