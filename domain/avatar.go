package domain

// AvatarKind discriminates how an avatar reference should be rendered.
type AvatarKind string

const (
	// AvatarPredefined renders one of the built-in iconographic avatars.
	AvatarPredefined AvatarKind = "predefined"
	// AvatarRemote renders an uploaded image from its public URL.
	AvatarRemote AvatarKind = "remote"
	// AvatarPlaceholder renders the neutral fallback.
	AvatarPlaceholder AvatarKind = "placeholder"
)

// AvatarView is the render descriptor produced by the avatar resolver.
// Exactly one of Tag or URL is set, depending on Kind.
type AvatarView struct {
	Kind AvatarKind
	Tag  string
	URL  string
}
