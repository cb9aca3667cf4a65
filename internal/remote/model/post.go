package model

import (
	"time"

	"github.com/futureuniv/campusfeed/domain"
)

// Post is a feed row as the table surface returns it, with the author
// profile and the clap records embedded by the select expression. Rows are
// mapped to domain types right here and never passed further as-is.
type Post struct {
	ID        string    `json:"id,omitempty"`
	Content   string    `json:"content"`
	LikeCount int64     `json:"like_count"`
	UserID    string    `json:"user_id"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	Profile   *Profile  `json:"profiles,omitempty"`
	Likes     []Clap    `json:"likes,omitempty"`
}

// Clap is an embedded clap record row.
type Clap struct {
	UserID    string `json:"user_id"`
	ClapCount int64  `json:"clap_count"`
}

func (m *Post) ToDomain(viewerID string) domain.Post {
	p := domain.Post{
		ID:        m.ID,
		Content:   m.Content,
		LikeCount: m.LikeCount,
		AuthorID:  m.UserID,
		ImageRef:  m.ImageURL,
		CreatedAt: m.CreatedAt,
	}
	if m.Profile != nil {
		p.Author = m.Profile.ToDomain()
		p.Author.ID = m.UserID
	}
	if viewerID != "" {
		for _, l := range m.Likes {
			if l.UserID == viewerID {
				p.ViewerClaps = l.ClapCount
				break
			}
		}
	}
	return p
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		Content:   p.Content,
		LikeCount: p.LikeCount,
		UserID:    p.AuthorID,
		ImageURL:  p.ImageRef,
	}
}
