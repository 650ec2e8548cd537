package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
)

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req *models.RegisterRequest) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/users/register", body: req}, nil)
}

// Login exchanges username/password for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out models.LoginResult
	if err := c.do(ctx, request{method: http.MethodPost, path: "/users/login", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the authenticated user's own profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users/me"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe patches the authenticated user's profile fields.
func (c *Client) UpdateMe(ctx context.Context, update *models.ProfileUpdate) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, request{method: http.MethodPatch, path: "/users/me", body: update}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClaimDaily claims the daily fish reward and returns the new balance.
func (c *Client) ClaimDaily(ctx context.Context) (*models.ClaimResult, error) {
	var out models.ClaimResult
	if err := c.do(ctx, request{method: http.MethodPost, path: "/users/me/claim-daily"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAvatar uploads a new avatar image (multipart field "avatar").
func (c *Client) UpdateAvatar(ctx context.Context, filename string, avatar io.Reader) (*models.User, error) {
	var out models.User
	req := request{
		method: http.MethodPost,
		path:   "/users/me/avatar",
		multipart: &multipartPayload{
			files: []filePart{{field: "avatar", filename: filename, reader: avatar}},
		},
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword changes the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.do(ctx, request{method: http.MethodPost, path: "/users/me/password", body: body}, nil)
}

// UserProfile fetches a user's public profile by username.
func (c *Client) UserProfile(ctx context.Context, username string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users/" + username}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserVideos lists a user's videos, paginated.
func (c *Client) UserVideos(ctx context.Context, userID int64, page, size int) (*models.VideoPage, error) {
	var out models.VideoPage
	req := request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/users/%d/videos", userID),
		query:  pageQuery("", page, size),
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchUsers searches users by keyword, paginated.
func (c *Client) SearchUsers(ctx context.Context, q string, page, size int) (*models.UserPage, error) {
	var out models.UserPage
	req := request{method: http.MethodGet, path: "/users/search", query: pageQuery(q, page, size)}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendVerificationCode asks the server to email a registration code.
func (c *Client) SendVerificationCode(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, request{method: http.MethodPost, path: "/users/send-verification-code", body: body}, nil)
}
