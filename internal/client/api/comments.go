package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
)

// Comments lists the comments of a video.
func (c *Client) Comments(ctx context.Context, videoID int64) ([]*models.Comment, error) {
	var out []*models.Comment
	if err := c.do(ctx, request{method: http.MethodGet, path: videoPath(videoID) + "/comments"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostComment creates a comment on a video.
func (c *Client) PostComment(ctx context.Context, videoID int64, content string) (*models.Comment, error) {
	body := map[string]string{"content": content}
	var out models.Comment
	req := request{method: http.MethodPost, path: videoPath(videoID) + "/comments", body: body}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes one of the caller's comments.
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/comments/%d", commentID)}, nil)
}
