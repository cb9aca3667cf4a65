package domain

import (
	"context"
	"time"
)

// Post is representing a single feed entry as shown to a viewer.
// LikeCount is authoritative on the remote store only; the feed reconciler
// layers pending optimistic deltas on top and discards them on any full
// refetch.
type Post struct {
	ID          string    // Opaque unique identifier assigned by the store
	Content     string    // Post body
	ImageRef    string    // Storage path inside the post-images bucket, may be empty
	LikeCount   int64     // Total claps, server truth plus pending local delta
	AuthorID    string    // Identity of the author
	CreatedAt   time.Time // Creation timestamp, feed order is descending on this
	Author      Profile   // Denormalized author snapshot taken at query time
	ViewerClaps int64     // Claps by the current viewer, derived from ClapRecord
}

// FeedStore is the slice of the remote store the feed reconciler depends on.
// Every call is a single-shot HTTP round-trip with no transactional linkage
// to caller-held in-memory state; the store always wins on conflict after a
// refetch.
type FeedStore interface {
	// QueryPosts returns the full feed, newest first, with the author
	// profile snapshot and the viewer's clap records joined in. An empty
	// viewerID yields ViewerClaps == 0 on every post.
	QueryPosts(ctx context.Context, viewerID string) ([]Post, error)

	// InvokeClap increments the caller's clap record for the post.
	// Identity and any clap limit are enforced server side.
	InvokeClap(ctx context.Context, token, postID string) error

	// InvokeDelete removes a post. Ownership is enforced server side;
	// the local precondition check is advisory only.
	InvokeDelete(ctx context.Context, token, postID string) error
}

// PostStore extends FeedStore with the write path used outside the
// reconciler.
type PostStore interface {
	FeedStore

	// InsertPost creates a new post row. The store backfills ID and
	// CreatedAt on success.
	InsertPost(ctx context.Context, token string, p *Post) error
}

// PostUsecase defines the business logic contract for post operations.
type PostUsecase interface {
	// Create stores a new post, uploading the optional image first and
	// recording its storage path on the post.
	Create(ctx context.Context, token string, p *Post, image *Upload) error

	// Snapshot fetches the authoritative feed for a viewer.
	Snapshot(ctx context.Context, viewerID string) ([]Post, error)
}

// Upload is an in-memory file handed to the object store.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}
