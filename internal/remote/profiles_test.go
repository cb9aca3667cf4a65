package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futureuniv/campusfeed/domain"
)

func TestGetProfile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "u1", "name": "Ada", "username": "ada", "bio": "hi", "avatar_url": "avatar3"}]`))
	}))

	p, err := client.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "avatar3", p.AvatarRef)
}

func TestGetProfileNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProfileSendsOnlyChangedFields(t *testing.T) {
	var gotPatch map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPatch))
		w.WriteHeader(http.StatusNoContent)
	}))

	bio := "new bio"
	err := client.UpdateProfile(context.Background(), "user-token", "u1", domain.ProfileChanges{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"bio": "new bio"}, gotPatch, "untouched fields must stay out of the patch")
}

func TestUpdateProfileEmptyChangesIsNoop(t *testing.T) {
	calls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	require.NoError(t, client.UpdateProfile(context.Background(), "user-token", "u1", domain.ProfileChanges{}))
	assert.Zero(t, calls)
}

func TestUpdateProfileUnauthenticated(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	name := "x"
	err := client.UpdateProfile(context.Background(), "stale-token", "u1", domain.ProfileChanges{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
