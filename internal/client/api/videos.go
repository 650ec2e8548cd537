package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
)

// UploadRequest describes a video upload: metadata plus the video file and
// its cover image.
type UploadRequest struct {
	Title       string
	Description string
	FileName    string
	File        io.Reader
	CoverName   string
	Cover       io.Reader
}

// Upload posts a new video through the multipart endpoint. The call uses the
// extended upload timeout; progress may be nil.
func (c *Client) Upload(ctx context.Context, up *UploadRequest, progress ProgressFunc) (*models.Video, error) {
	var out models.Video
	req := request{
		method: http.MethodPost,
		path:   "/videos/upload",
		multipart: &multipartPayload{
			fields: map[string]string{
				"title":       up.Title,
				"description": up.Description,
			},
			files: []filePart{
				{field: "file", filename: up.FileName, reader: up.File},
				{field: "cover", filename: up.CoverName, reader: up.Cover},
			},
			progress: progress,
		},
		timeout: c.uploadTimeout,
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Videos lists videos, paginated. sortBy is one of latest, views, popularity.
func (c *Client) Videos(ctx context.Context, page, size int, sortBy string) (*models.VideoPage, error) {
	query := pageQuery("", page, size)
	if sortBy != "" {
		query.Set("sortBy", sortBy)
	}
	var out models.VideoPage
	if err := c.do(ctx, request{method: http.MethodGet, path: "/videos", query: query}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Video fetches one video's details.
func (c *Client) Video(ctx context.Context, videoID int64) (*models.Video, error) {
	var out models.Video
	if err := c.do(ctx, request{method: http.MethodGet, path: videoPath(videoID)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchVideos searches videos by keyword, paginated.
func (c *Client) SearchVideos(ctx context.Context, q string, page, size int) (*models.VideoPage, error) {
	var out models.VideoPage
	req := request{method: http.MethodGet, path: "/videos/search", query: pageQuery(q, page, size)}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVideo removes one of the caller's videos.
func (c *Client) DeleteVideo(ctx context.Context, videoID int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: videoPath(videoID)}, nil)
}

// FeedFish spends one fish coin on the video ("feed" reward).
func (c *Client) FeedFish(ctx context.Context, videoID int64) (*models.FeedResult, error) {
	var out models.FeedResult
	if err := c.do(ctx, request{method: http.MethodPost, path: videoPath(videoID) + "/feed"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVideo patches a video's title/description.
func (c *Client) UpdateVideo(ctx context.Context, videoID int64, update *models.VideoUpdate) (*models.Video, error) {
	var out models.Video
	req := request{method: http.MethodPatch, path: videoPath(videoID), body: update}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func videoPath(videoID int64) string {
	return "/videos/" + url.PathEscape(fmt.Sprint(videoID))
}
