package domain

import "context"

// Storage bucket names on the remote object store.
const (
	BucketAvatars    = "avatars"
	BucketPostImages = "post-images"
)

// ObjectStore is the remote object storage surface.
type ObjectStore interface {
	// Upload stores the object and returns its path within the bucket.
	Upload(ctx context.Context, token, bucket, path string, u *Upload) (string, error)

	// PublicURL derives the public URL for an object. Pure base-URL
	// concatenation, no network round-trip.
	PublicURL(bucket, path string) string
}
