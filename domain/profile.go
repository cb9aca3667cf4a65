package domain

import (
	"context"
	"time"
)

// Profile represents a user profile in the system.
// Profiles are created by the remote backend when an account is confirmed;
// this application only reads and edits them, never deletes.
type Profile struct {
	ID        string    // Matches the auth identity
	Name      string    // Display name
	Username  string    // Public handle
	Bio       string    // Free-form text
	AvatarRef string    // Predefined tag (avatar1..avatar6) or uploaded storage path
	UpdatedAt time.Time // Last profile update timestamp
}

// ProfileChanges is a field-level patch; nil fields are left untouched.
type ProfileChanges struct {
	Name      *string
	Username  *string
	Bio       *string
	AvatarRef *string
}

// IsEmpty reports whether the patch would change nothing.
func (c ProfileChanges) IsEmpty() bool {
	return c.Name == nil && c.Username == nil && c.Bio == nil && c.AvatarRef == nil
}

// ProfileStore is the remote system of record for profiles.
type ProfileStore interface {
	// GetProfile retrieves a profile by its identity.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id string) (Profile, error)

	// UpdateProfile applies a field-level patch scoped to the caller's
	// identity. Row-level authorization is enforced server side.
	UpdateProfile(ctx context.Context, token, id string, changes ProfileChanges) error
}

// ProfileCache is the read-through cache in front of the profile store.
type ProfileCache interface {
	// GetProfile returns ErrCacheMiss when the profile is not cached.
	GetProfile(ctx context.Context, id string) (Profile, error)
	SetProfile(ctx context.Context, p *Profile) error
	DeleteProfile(ctx context.Context, id string) error
}

// ProfileRepository is the cached read/write surface the usecase layer sees.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (Profile, error)
	Update(ctx context.Context, token, id string, changes ProfileChanges) error
}

// ProfileUsecase defines the business logic contract for profile operations.
type ProfileUsecase interface {
	// Get retrieves a profile for display.
	Get(ctx context.Context, id string) (Profile, error)

	// Edit applies field-level changes to the caller's own profile.
	Edit(ctx context.Context, token, id string, changes ProfileChanges) error

	// SelectAvatar sets the avatar to one of the predefined tags.
	// Returns ErrBadParamInput for an unknown tag.
	SelectAvatar(ctx context.Context, token, id, tag string) error

	// UploadAvatar stores the image in the avatars bucket and points the
	// profile at the uploaded path.
	UploadAvatar(ctx context.Context, token, id string, image *Upload) (string, error)
}
