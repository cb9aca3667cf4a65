package remote

import (
	"context"
	"fmt"

	"github.com/futureuniv/campusfeed/domain"
)

var _ domain.ObjectStore = (*Client)(nil)

// Upload stores an object and returns the path it is addressable under
// within the bucket.
func (c *Client) Upload(ctx context.Context, token, bucket, path string, u *domain.Upload) (string, error) {
	contentType := u.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	res, err := c.r(ctx, token).
		SetHeader("Content-Type", contentType).
		SetBody(u.Data).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", bucket, path))
	if err != nil || res.IsError() {
		return "", fail("upload object", res, err)
	}
	return path, nil
}

// PublicURL derives the public URL of an object. By contract this is pure
// base-URL concatenation, no round-trip.
func (c *Client) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, path)
}
