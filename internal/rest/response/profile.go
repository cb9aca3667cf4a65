package response

import "github.com/futureuniv/campusfeed/domain"

type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Avatar   Avatar `json:"avatar"`
}

// NewProfileFromDomain: Domain -> Response
func NewProfileFromDomain(p *domain.Profile, avatar domain.AvatarView) Profile {
	return Profile{
		ID:       p.ID,
		Name:     p.Name,
		Username: p.Username,
		Bio:      p.Bio,
		Avatar:   NewAvatarFromView(avatar),
	}
}
