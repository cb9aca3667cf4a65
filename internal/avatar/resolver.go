package avatar

import "github.com/futureuniv/campusfeed/domain"

// tags is the fixed set of built-in iconographic avatars selectable
// without uploading a file.
var tags = []string{"avatar1", "avatar2", "avatar3", "avatar4", "avatar5", "avatar6"}

var tagSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}()

// IsPredefined reports whether ref names a built-in avatar.
func IsPredefined(ref string) bool {
	_, ok := tagSet[ref]
	return ok
}

// Tags returns the predefined tag set for the selection library.
func Tags() []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// urlResolver is the slice of the object store the resolver needs: the
// pure public-URL derivation, no uploads.
type urlResolver interface {
	PublicURL(bucket, path string) string
}

// Resolver maps an avatar reference to a render descriptor. Total and
// side-effect free: predefined tags resolve without touching the store,
// any other non-empty reference is treated as an uploaded storage path,
// and everything else degrades to the placeholder.
type Resolver struct {
	store urlResolver
}

func NewResolver(store urlResolver) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) Resolve(ref string) domain.AvatarView {
	switch {
	case ref == "":
		return domain.AvatarView{Kind: domain.AvatarPlaceholder}
	case IsPredefined(ref):
		return domain.AvatarView{Kind: domain.AvatarPredefined, Tag: ref}
	default:
		return domain.AvatarView{
			Kind: domain.AvatarRemote,
			URL:  r.store.PublicURL(domain.BucketAvatars, ref),
		}
	}
}
