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

func TestSignUp(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "u1"}`))
	}))

	require.NoError(t, client.SignUp(context.Background(), "ada@example.com", "secret99", "Ada"))
	assert.Equal(t, "ada@example.com", gotBody["email"])
	assert.Equal(t, map[string]any{"name": "Ada"}, gotBody["data"])
}

func TestSignUpConflict(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"msg": "email already registered"}`))
	}))

	err := client.SignUp(context.Background(), "ada@example.com", "secret99", "Ada")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSignIn(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "jwt-token",
			"refresh_token": "refresh",
			"expires_in": 3600,
			"user": {"id": "u1", "email": "ada@example.com"}
		}`))
	}))

	session, err := client.SignIn(context.Background(), "ada@example.com", "secret99")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.AccessToken)
	assert.EqualValues(t, 3600, session.ExpiresIn)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "ada@example.com", session.Email)
}

func TestSignInBadCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error_description": "Invalid login credentials"}`))
	}))

	_, err := client.SignIn(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
