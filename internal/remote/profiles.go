package remote

import (
	"context"

	"github.com/futureuniv/campusfeed/domain"
	"github.com/futureuniv/campusfeed/internal/remote/model"
)

const pathProfiles = "/rest/v1/profiles"

var _ domain.ProfileStore = (*Client)(nil)

// GetProfile retrieves a single profile row by identity.
func (c *Client) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	var rows []model.Profile
	res, err := c.r(ctx, "").
		SetQueryParam("select", "id,name,username,bio,avatar_url,updated_at").
		SetQueryParam("id", "eq."+id).
		SetResult(&rows).
		Get(pathProfiles)
	if err != nil || res.IsError() {
		return domain.Profile{}, fail("get profile", res, err)
	}
	if len(rows) == 0 {
		return domain.Profile{}, domain.ErrNotFound
	}
	return rows[0].ToDomain(), nil
}

// UpdateProfile applies a field-level patch to the caller's row. Row-level
// authorization on the store decides whether the write is allowed.
func (c *Client) UpdateProfile(ctx context.Context, token, id string, changes domain.ProfileChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	res, err := c.r(ctx, token).
		SetQueryParam("id", "eq."+id).
		SetBody(model.NewProfilePatchFromDomain(changes)).
		Patch(pathProfiles)
	if err != nil || res.IsError() {
		return fail("update profile", res, err)
	}
	return nil
}
