package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuyuwang/yuyu-cli/internal/client/api"
	"github.com/yuyuwang/yuyu-cli/internal/client/models"
)

func (a *App) ListVideos(ctx context.Context, sortBy string) error {
	page, err := a.api.Videos(ctx, 1, 20, sortBy)
	if err != nil {
		return err
	}
	if len(page.Items) == 0 {
		fmt.Fprintln(a.out, "No videos.")
		return nil
	}
	for _, v := range page.Items {
		uploader := ""
		if v.Uploader != nil {
			uploader = " by " + v.Uploader.Username
		}
		fmt.Fprintf(a.out, "  [%d] %s%s (%d views, %d fish)\n", v.ID, v.Title, uploader, v.Views, v.FishCount)
	}
	return nil
}

func (a *App) ShowVideo(ctx context.Context, videoID int64) error {
	v, err := a.api.Video(ctx, videoID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n", v.Title)
	if v.Description != "" {
		fmt.Fprintln(a.out, v.Description)
	}
	if v.Uploader != nil {
		fmt.Fprintf(a.out, "uploader: %s\n", v.Uploader.Username)
	}
	fmt.Fprintf(a.out, "%d views, %d fish\n", v.Views, v.FishCount)
	return nil
}

func (a *App) SearchVideos(ctx context.Context, q string) error {
	page, err := a.api.SearchVideos(ctx, q, 1, 20)
	if err != nil {
		return err
	}
	if len(page.Items) == 0 {
		fmt.Fprintln(a.out, "No videos found.")
		return nil
	}
	for _, v := range page.Items {
		fmt.Fprintf(a.out, "  [%d] %s (%d views)\n", v.ID, v.Title, v.Views)
	}
	return nil
}

// Upload collects video metadata and file paths, then posts the multipart
// upload with a progress meter.
func (a *App) Upload(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	videoPath, err := GetSimpleText(a.reader, "Path to video file", a.out)
	if err != nil {
		return err
	}
	coverPath, err := GetSimpleText(a.reader, "Path to cover image", a.out)
	if err != nil {
		return err
	}

	videoFile, err := os.Open(videoPath)
	if err != nil {
		return err
	}
	defer videoFile.Close()
	coverFile, err := os.Open(coverPath)
	if err != nil {
		return err
	}
	defer coverFile.Close()

	progress := func(sent, total int64) {
		fmt.Fprintf(a.out, "\ruploading... %d%%", sent*100/total)
	}

	v, err := a.api.Upload(ctx, &api.UploadRequest{
		Title:       title,
		Description: description,
		FileName:    filepath.Base(videoPath),
		File:        videoFile,
		CoverName:   filepath.Base(coverPath),
		Cover:       coverFile,
	}, progress)
	fmt.Fprintln(a.out)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded as video %d.\n", v.ID)
	return nil
}

func (a *App) EditVideo(ctx context.Context, videoID int64) error {
	title, err := GetSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "New description (empty to keep)", a.out)
	if err != nil {
		return err
	}

	update := &models.VideoUpdate{}
	if title != "" {
		update.Title = &title
	}
	if description != "" {
		update.Description = &description
	}
	if update.Title == nil && update.Description == nil {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	if _, err := a.api.UpdateVideo(ctx, videoID, update); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Video updated.")
	return nil
}

func (a *App) DeleteVideo(ctx context.Context, videoID int64) error {
	if err := a.api.DeleteVideo(ctx, videoID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Video deleted.")
	return nil
}

// FeedFish spends a fish coin on the video and records the spend locally
// from the server-confirmed result.
func (a *App) FeedFish(ctx context.Context, videoID int64) error {
	before := a.session.Profile().FishBalance
	result, err := a.api.FeedFish(ctx, videoID)
	if err != nil {
		return err
	}
	a.session.RecordSpend(before - result.FishBalance)
	fmt.Fprintf(a.out, "Fed a fish. Video now has %d fish; your balance is %d.\n",
		result.FishCount, result.FishBalance)
	return nil
}
