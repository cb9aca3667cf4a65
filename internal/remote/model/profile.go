package model

import (
	"time"

	"github.com/futureuniv/campusfeed/domain"
)

type Profile struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (m *Profile) ToDomain() domain.Profile {
	return domain.Profile{
		ID:        m.ID,
		Name:      m.Name,
		Username:  m.Username,
		Bio:       m.Bio,
		AvatarRef: m.AvatarURL,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProfilePatch is the partial row sent on field-level edits; omitted fields
// are left untouched by the store.
type ProfilePatch struct {
	Name      *string `json:"name,omitempty"`
	Username  *string `json:"username,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func NewProfilePatchFromDomain(c domain.ProfileChanges) ProfilePatch {
	return ProfilePatch{
		Name:      c.Name,
		Username:  c.Username,
		Bio:       c.Bio,
		AvatarURL: c.AvatarRef,
	}
}
