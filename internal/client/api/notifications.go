package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
)

// Notifications fetches the caller's notification list, newest first.
func (c *Client) Notifications(ctx context.Context) ([]*models.Notification, error) {
	var out []*models.Notification
	if err := c.do(ctx, request{method: http.MethodGet, path: "/notifications"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, request{method: http.MethodPost, path: fmt.Sprintf("/notifications/%d/read", id)}, nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/notifications/read-all"}, nil)
}
