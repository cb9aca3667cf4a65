package request

// CreatePost is the multipart form for new posts; the optional image part
// is read separately by the handler.
type CreatePost struct {
	Content string `form:"content" binding:"required"`
}

// DeletePost carries the explicit confirmation flag; deletes without it
// are refused before anything else happens.
type DeletePost struct {
	Confirm bool `form:"confirm"`
}
