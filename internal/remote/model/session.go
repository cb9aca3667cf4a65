package model

import "github.com/futureuniv/campusfeed/domain"

// Session is the token response of the auth surface.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (m *Session) ToDomain() domain.Session {
	return domain.Session{
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
		ExpiresIn:    m.ExpiresIn,
		UserID:       m.User.ID,
		Email:        m.User.Email,
	}
}
