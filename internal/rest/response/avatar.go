package response

import "github.com/futureuniv/campusfeed/domain"

// Avatar is the render descriptor sent to the page. Exactly one of Tag or
// URL is set, depending on Kind.
type Avatar struct {
	Kind string `json:"kind"`
	Tag  string `json:"tag,omitempty"`
	URL  string `json:"url,omitempty"`
}

// NewAvatarFromView: Domain -> Response
func NewAvatarFromView(v domain.AvatarView) Avatar {
	return Avatar{
		Kind: string(v.Kind),
		Tag:  v.Tag,
		URL:  v.URL,
	}
}
