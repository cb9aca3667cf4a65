package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/futureuniv/campusfeed/domain"
	"github.com/futureuniv/campusfeed/internal/avatar"
	"github.com/futureuniv/campusfeed/internal/rest/request"
	"github.com/futureuniv/campusfeed/internal/rest/response"
)

type profileHandler struct {
	Service  domain.ProfileUsecase
	Resolver *avatar.Resolver
}

func NewProfileHandler(svc domain.ProfileUsecase, resolver *avatar.Resolver) *profileHandler {
	return &profileHandler{
		Service:  svc,
		Resolver: resolver,
	}
}

// Me returns the signed-in user's own profile.
func (h *profileHandler) Me(c *gin.Context) {
	ident := identityFrom(c)

	profile, err := h.Service.Get(c.Request.Context(), ident.ID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewProfileFromDomain(&profile, h.Resolver.Resolve(profile.AvatarRef)))
}

// GetByID returns a public profile page.
func (h *profileHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	profile, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewProfileFromDomain(&profile, h.Resolver.Resolve(profile.AvatarRef)))
}

// Edit applies field-level changes to the caller's own profile.
func (h *profileHandler) Edit(c *gin.Context) {
	var req request.EditProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident := identityFrom(c)
	if err := h.Service.Edit(c.Request.Context(), ident.Token, ident.ID, req.ToDomain()); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// SelectAvatar sets the avatar to a predefined tag from the library.
func (h *profileHandler) SelectAvatar(c *gin.Context) {
	var req request.SelectAvatar
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident := identityFrom(c)
	if err := h.Service.SelectAvatar(c.Request.Context(), ident.Token, ident.ID, req.Tag); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewAvatarFromView(h.Resolver.Resolve(req.Tag)))
}

// UploadAvatar stores an uploaded image and points the profile at it.
func (h *profileHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "you must select an image to upload"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident := identityFrom(c)
	ref, err := h.Service.UploadAvatar(c.Request.Context(), ident.Token, ident.ID, &domain.Upload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewAvatarFromView(h.Resolver.Resolve(ref)))
}

// Library lists the predefined avatar tags the selector offers.
func (h *profileHandler) Library(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"avatars": avatar.Tags()})
}
