package response

import "github.com/futureuniv/campusfeed/domain"

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
}

// NewSessionFromDomain: Domain -> Response
func NewSessionFromDomain(s *domain.Session) Session {
	return Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		UserID:       s.UserID,
		Email:        s.Email,
	}
}
