package remote

import (
	"context"

	"github.com/samber/lo"

	"github.com/futureuniv/campusfeed/domain"
	"github.com/futureuniv/campusfeed/internal/remote/model"
)

const (
	pathPosts         = "/rest/v1/posts"
	pathRPCAddClap    = "/rest/v1/rpc/add_clap"
	pathRPCDeletePost = "/rest/v1/rpc/delete_post"

	// feedSelect embeds the author snapshot and the clap records so the
	// whole feed is a single round-trip.
	feedSelect = "id,content,like_count,created_at,user_id,image_url," +
		"profiles!left(name,username,bio,avatar_url),likes(user_id,clap_count)"
)

var _ domain.PostStore = (*Client)(nil)

// QueryPosts returns the authoritative feed, descending by creation time.
func (c *Client) QueryPosts(ctx context.Context, viewerID string) ([]domain.Post, error) {
	var rows []model.Post
	res, err := c.r(ctx, "").
		SetQueryParam("select", feedSelect).
		SetQueryParam("order", "created_at.desc").
		SetResult(&rows).
		Get(pathPosts)
	if err != nil || res.IsError() {
		return nil, fail("query posts", res, err)
	}

	return lo.Map(rows, func(row model.Post, _ int) domain.Post {
		return row.ToDomain(viewerID)
	}), nil
}

// InvokeClap calls the add_clap procedure. The server enforces identity and
// any per-user clap limit; the client holds no authority over either.
func (c *Client) InvokeClap(ctx context.Context, token, postID string) error {
	res, err := c.r(ctx, token).
		SetBody(map[string]string{"post_id_input": postID}).
		Post(pathRPCAddClap)
	if err != nil || res.IsError() {
		return fail("invoke clap", res, err)
	}
	return nil
}

// InvokeDelete calls the delete_post procedure. Ownership is enforced
// server side.
func (c *Client) InvokeDelete(ctx context.Context, token, postID string) error {
	res, err := c.r(ctx, token).
		SetBody(map[string]string{"post_id_input": postID}).
		Post(pathRPCDeletePost)
	if err != nil || res.IsError() {
		return fail("invoke delete", res, err)
	}
	return nil
}

// InsertPost creates a post row and backfills the assigned ID and
// timestamp.
func (c *Client) InsertPost(ctx context.Context, token string, p *domain.Post) error {
	var rows []model.Post
	res, err := c.r(ctx, token).
		SetHeader("Prefer", "return=representation").
		SetBody(model.NewPostFromDomain(p)).
		SetResult(&rows).
		Post(pathPosts)
	if err != nil || res.IsError() {
		return fail("insert post", res, err)
	}

	if len(rows) > 0 {
		p.ID = rows[0].ID
		p.CreatedAt = rows[0].CreatedAt
	}
	return nil
}
