package response

import "github.com/futureuniv/campusfeed/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   Avatar `json:"avatar"`
}

type Post struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url,omitempty"`
	LikeCount   int64  `json:"like_count"`
	ViewerClaps int64  `json:"viewer_claps"`
	Mine        bool   `json:"mine"`
	Author      Author `json:"author"`
	CreatedAt   string `json:"created_at"`
}

// NewPostFromDomain: Domain -> Response. The avatar view and public image
// URL are resolved by the handler; this mapping stays pure.
func NewPostFromDomain(p *domain.Post, viewerID string, authorAvatar domain.AvatarView, imageURL string) Post {
	return Post{
		ID:          p.ID,
		Content:     p.Content,
		ImageURL:    imageURL,
		LikeCount:   p.LikeCount,
		ViewerClaps: p.ViewerClaps,
		Mine:        viewerID != "" && viewerID == p.AuthorID,
		Author: Author{
			ID:       p.AuthorID,
			Name:     p.Author.Name,
			Username: p.Author.Username,
			Avatar:   NewAvatarFromView(authorAvatar),
		},
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
	}
}
