package domain

import "context"

// Identity is the authenticated viewer, as derived from the access token.
// A zero Identity means the viewer is anonymous.
type Identity struct {
	ID    string
	Email string
	Token string // raw access token, forwarded on user-scoped store calls
}

// IsAnonymous reports whether there is no signed-in user.
func (i Identity) IsAnonymous() bool {
	return i.ID == ""
}

// Session is what the remote auth surface returns on a successful login.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	UserID       string
	Email        string
}

// AuthStore is the remote authentication surface. Credentials are never
// stored by this application; both calls are pass-throughs.
type AuthStore interface {
	// SignUp registers a new account. The backend creates the matching
	// profile once the account is confirmed.
	// Returns ErrConflict if the email is already registered.
	SignUp(ctx context.Context, email, password, name string) error

	// SignIn verifies credentials and returns an access token session.
	SignIn(ctx context.Context, email, password string) (Session, error)
}

// UserUsecase defines the business logic contract for account operations.
type UserUsecase interface {
	Register(ctx context.Context, email, password, name string) error
	Login(ctx context.Context, email, password string) (Session, error)
}
