package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/futureuniv/campusfeed/domain"
	"github.com/futureuniv/campusfeed/internal/avatar"
	"github.com/futureuniv/campusfeed/internal/feed"
	"github.com/futureuniv/campusfeed/internal/rest/request"
	"github.com/futureuniv/campusfeed/internal/rest/response"
)

// FeedHandler represent the httphandler for the feed page: rendering the
// snapshot and the two reconciled mutations, clap and delete.
type FeedHandler struct {
	Views    *feed.Manager
	Service  domain.PostUsecase
	Resolver *avatar.Resolver
	Objects  domain.ObjectStore
}

func NewFeedHandler(views *feed.Manager, svc domain.PostUsecase, resolver *avatar.Resolver, objects domain.ObjectStore) *FeedHandler {
	return &FeedHandler{
		Views:    views,
		Service:  svc,
		Resolver: resolver,
		Objects:  objects,
	}
}

// Fetch renders the feed for the (possibly anonymous) viewer. An existing
// page view keeps its state, pending optimistic deltas included; only a
// never-loaded view fetches the authoritative snapshot.
func (h *FeedHandler) Fetch(c *gin.Context) {
	ident := identityFrom(c)
	rec := h.Views.View(viewSession(c, ident), ident)

	if !rec.Loaded() {
		if err := h.load(c, rec, ident); err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, h.renderPosts(rec.Posts(), ident.ID))
}

// Refresh discards the view state and re-renders from server truth.
func (h *FeedHandler) Refresh(c *gin.Context) {
	ident := identityFrom(c)
	rec := h.Views.View(viewSession(c, ident), ident)

	if err := h.load(c, rec, ident); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.renderPosts(rec.Posts(), ident.ID))
}

// Clap applies the optimistic increment and confirms with the store. The
// response carries the post counts as this view now sees them; after a
// remote failure those come from the recovery reload.
func (h *FeedHandler) Clap(c *gin.Context) {
	postID := c.Param("id")
	ident := identityFrom(c)
	rec := h.Views.View(viewSession(c, ident), ident)

	if !rec.Loaded() {
		if err := h.load(c, rec, ident); err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}
	}

	if err := rec.Clap(c.Request.Context(), postID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	for _, p := range rec.Posts() {
		if p.ID == postID {
			c.JSON(http.StatusOK, gin.H{
				"id":           p.ID,
				"like_count":   p.LikeCount,
				"viewer_claps": p.ViewerClaps,
			})
			return
		}
	}
	c.Status(http.StatusOK)
}

// Delete removes a post after explicit confirmation. On failure the list
// is untouched and the error is surfaced; there is no partial mutation.
func (h *FeedHandler) Delete(c *gin.Context) {
	var req request.DeletePost
	_ = c.ShouldBindQuery(&req)
	if !req.Confirm {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "delete requires explicit confirmation"})
		return
	}

	postID := c.Param("id")
	ident := identityFrom(c)
	rec := h.Views.View(viewSession(c, ident), ident)

	if !rec.Loaded() {
		if err := h.load(c, rec, ident); err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}
	}

	if err := rec.Delete(c.Request.Context(), postID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FeedHandler) load(c *gin.Context, rec *feed.Reconciler, ident domain.Identity) error {
	posts, err := h.Service.Snapshot(c.Request.Context(), ident.ID)
	if err != nil {
		return err
	}
	rec.Load(posts)
	return nil
}

func (h *FeedHandler) renderPosts(posts []domain.Post, viewerID string) []response.Post {
	res := make([]response.Post, len(posts))
	for i := range posts {
		p := &posts[i]
		imageURL := ""
		if p.ImageRef != "" {
			imageURL = h.Objects.PublicURL(domain.BucketPostImages, p.ImageRef)
		}
		res[i] = response.NewPostFromDomain(p, viewerID, h.Resolver.Resolve(p.Author.AvatarRef), imageURL)
	}
	return res
}
