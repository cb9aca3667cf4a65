package request

import "github.com/futureuniv/campusfeed/domain"

// EditProfile is a field-level patch; absent fields stay untouched.
type EditProfile struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
}

// ToDomain: Request -> Domain
func (r *EditProfile) ToDomain() domain.ProfileChanges {
	return domain.ProfileChanges{
		Name:     r.Name,
		Username: r.Username,
		Bio:      r.Bio,
	}
}

// SelectAvatar picks one of the predefined avatars. The avatartag rule is
// registered at startup against the predefined set.
type SelectAvatar struct {
	Tag string `json:"tag" binding:"required,avatartag"`
}
