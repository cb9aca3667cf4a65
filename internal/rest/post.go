package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/futureuniv/campusfeed/domain"
	"github.com/futureuniv/campusfeed/internal/avatar"
	"github.com/futureuniv/campusfeed/internal/feed"
	"github.com/futureuniv/campusfeed/internal/rest/request"
	"github.com/futureuniv/campusfeed/internal/rest/response"
)

// maxImageBytes caps the in-memory read of an attached image.
const maxImageBytes = 8 << 20

// PostHandler represent the httphandler for creating posts
type PostHandler struct {
	Service  domain.PostUsecase
	Views    *feed.Manager
	Resolver *avatar.Resolver
	Objects  domain.ObjectStore
}

func NewPostHandler(svc domain.PostUsecase, views *feed.Manager, resolver *avatar.Resolver, objects domain.ObjectStore) *PostHandler {
	return &PostHandler{
		Service:  svc,
		Views:    views,
		Resolver: resolver,
		Objects:  objects,
	}
}

// Store creates a post from a multipart form with an optional image part.
func (h *PostHandler) Store(c *gin.Context) {
	var req request.CreatePost
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident := identityFrom(c)
	if ident.IsAnonymous() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
		return
	}

	image, err := h.readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := domain.Post{
		Content:  req.Content,
		AuthorID: ident.ID,
	}
	if err := h.Service.Create(c.Request.Context(), ident.Token, &p, image); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	// The stale page view would hide the new post; drop it so the next
	// fetch reloads from the store.
	h.Views.Drop(viewSession(c, ident))

	imageURL := ""
	if p.ImageRef != "" {
		imageURL = h.Objects.PublicURL(domain.BucketPostImages, p.ImageRef)
	}
	c.JSON(http.StatusCreated, response.NewPostFromDomain(&p, ident.ID, h.Resolver.Resolve(""), imageURL))
}

// readImage pulls the optional image part out of the multipart form.
func (h *PostHandler) readImage(c *gin.Context) (*domain.Upload, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil // no image attached
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes))
	if err != nil {
		return nil, err
	}

	return &domain.Upload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
