package user

import (
	"context"
	"strings"

	"github.com/futureuniv/campusfeed/domain"
)

const minPasswordLen = 6

type Service struct {
	auth domain.AuthStore
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(auth domain.AuthStore) *Service {
	return &Service{
		auth: auth,
	}
}

// Register creates a new account on the remote auth surface. The matching
// profile row is created by the backend once the account is confirmed.
func (s *Service) Register(ctx context.Context, email, password, name string) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) < minPasswordLen {
		return domain.ErrBadParamInput
	}
	return s.auth.SignUp(ctx, email, password, name)
}

// Login exchanges credentials for an access-token session. Credentials are
// never stored.
func (s *Service) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if email == "" || password == "" {
		return domain.Session{}, domain.ErrBadParamInput
	}
	return s.auth.SignIn(ctx, strings.TrimSpace(email), password)
}
