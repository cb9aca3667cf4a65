package remote

import (
	"context"

	"github.com/futureuniv/campusfeed/domain"
	"github.com/futureuniv/campusfeed/internal/remote/model"
)

const (
	pathSignUp = "/auth/v1/signup"
	pathToken  = "/auth/v1/token"
)

var _ domain.AuthStore = (*Client)(nil)

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type passwordGrant struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new account. The backend creates the matching profile
// row once the email is confirmed; nothing to persist locally.
func (c *Client) SignUp(ctx context.Context, email, password, name string) error {
	res, err := c.r(ctx, "").
		SetBody(signUpRequest{
			Email:    email,
			Password: password,
			Data:     map[string]any{"name": name},
		}).
		Post(pathSignUp)
	if err != nil || res.IsError() {
		return fail("sign up", res, err)
	}
	return nil
}

// SignIn exchanges credentials for an access-token session.
func (c *Client) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	var session model.Session
	res, err := c.r(ctx, "").
		SetQueryParam("grant_type", "password").
		SetBody(passwordGrant{Email: email, Password: password}).
		SetResult(&session).
		Post(pathToken)
	if err != nil || res.IsError() {
		return domain.Session{}, fail("sign in", res, err)
	}
	return session.ToDomain(), nil
}
