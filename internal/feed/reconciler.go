package feed

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/futureuniv/campusfeed/domain"
)

// Reconciler owns the in-memory post list for the lifetime of one page
// view and applies optimistic mutations ahead of remote confirmation.
//
// The list order is the server-provided order (descending creation time)
// and is never re-sorted locally. The remote store is the system of record
// and always wins on conflict after a refetch: Load replaces the whole
// list, which implicitly resets every pending optimistic delta.
//
// Operations are serialized by a mutex; mutations suspend only at the
// network-call boundary, so the optimistic effect of Clap is visible
// before the remote call resolves.
type Reconciler struct {
	store domain.FeedStore

	mu     sync.Mutex
	viewer domain.Identity
	posts  []domain.Post
	loaded bool
}

// NewReconciler creates a reconciler for one viewer's page view. The store
// is injected at construction time; there is no global client handle.
func NewReconciler(store domain.FeedStore, viewer domain.Identity) *Reconciler {
	return &Reconciler{
		store:  store,
		viewer: viewer,
	}
}

// Viewer returns the identity this view was opened with.
func (r *Reconciler) Viewer() domain.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewer
}

// updateToken refreshes the access token carried on store calls. The
// identity itself never changes for a live view; a login or logout starts
// a new one.
func (r *Reconciler) updateToken(token string) {
	r.mu.Lock()
	r.viewer.Token = token
	r.mu.Unlock()
}

// Load replaces the entire local list with a server snapshot and marks the
// view loaded. Idempotent.
func (r *Reconciler) Load(posts []domain.Post) {
	snapshot := make([]domain.Post, len(posts))
	copy(snapshot, posts)

	r.mu.Lock()
	r.posts = snapshot
	r.loaded = true
	r.mu.Unlock()
}

// Loaded reports whether this view has received a server snapshot. An empty
// list is a valid loaded state; a legitimately empty feed must not be
// mistaken for a never-initialized view.
func (r *Reconciler) Loaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded
}

// Refresh reloads the authoritative list from the remote store.
func (r *Reconciler) Refresh(ctx context.Context) error {
	posts, err := r.store.QueryPosts(ctx, r.Viewer().ID)
	if err != nil {
		return err
	}
	r.Load(posts)
	return nil
}

// Posts returns a copy of the current view state.
func (r *Reconciler) Posts() []domain.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]domain.Post, len(r.posts))
	copy(snapshot, r.posts)
	return snapshot
}

// Clap optimistically increments the post's like count and the viewer's
// own clap count, then confirms with the remote store. On remote failure
// consistency is restored by a full authoritative reload rather than a
// targeted rollback, so several in-flight optimistic updates cannot
// compound into drift.
//
// Without a signed-in viewer the operation is refused before any mutation
// or remote call.
func (r *Reconciler) Clap(ctx context.Context, postID string) error {
	r.mu.Lock()
	viewer := r.viewer
	if viewer.IsAnonymous() {
		r.mu.Unlock()
		return domain.ErrUnauthenticated
	}
	i := r.indexLocked(postID)
	if i < 0 {
		r.mu.Unlock()
		return domain.ErrNotFound
	}
	r.posts[i].LikeCount++
	r.posts[i].ViewerClaps++
	r.mu.Unlock()

	if err := r.store.InvokeClap(ctx, viewer.Token, postID); err != nil {
		if rerr := r.Refresh(ctx); rerr != nil {
			// The next successful load reconstructs truth; nothing else
			// to repair here.
			logrus.Errorf("failed to reload feed after clap failure: %v", rerr)
		}
		return err
	}
	return nil
}

// Delete removes a post. The local entry is dropped only after the remote
// store confirms, so from this view's perspective the delete is atomic:
// either the entry is removed or the list is untouched. The ownership check
// here only mirrors the authoritative server-side one.
//
// Callers are expected to have collected an explicit user confirmation
// before invoking Delete.
func (r *Reconciler) Delete(ctx context.Context, postID string) error {
	r.mu.Lock()
	viewer := r.viewer
	if viewer.IsAnonymous() {
		r.mu.Unlock()
		return domain.ErrUnauthenticated
	}
	i := r.indexLocked(postID)
	if i < 0 {
		r.mu.Unlock()
		return domain.ErrNotFound
	}
	if r.posts[i].AuthorID != viewer.ID {
		r.mu.Unlock()
		return domain.ErrForbidden
	}
	r.mu.Unlock()

	if err := r.store.InvokeDelete(ctx, viewer.Token, postID); err != nil {
		return err
	}

	r.mu.Lock()
	if i := r.indexLocked(postID); i >= 0 {
		r.posts = append(r.posts[:i], r.posts[i+1:]...)
	}
	r.mu.Unlock()
	return nil
}

// indexLocked finds a post by id. Caller holds r.mu.
func (r *Reconciler) indexLocked(postID string) int {
	for i := range r.posts {
		if r.posts[i].ID == postID {
			return i
		}
	}
	return -1
}
