package cli

import (
	"context"
	"fmt"
)

func (a *App) ListComments(ctx context.Context, videoID int64) error {
	comments, err := a.api.Comments(ctx, videoID)
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		fmt.Fprintln(a.out, "No comments.")
		return nil
	}
	for _, c := range comments {
		author := "?"
		if c.Author != nil {
			author = c.Author.Username
		}
		fmt.Fprintf(a.out, "  [%d] %s: %s\n", c.ID, author, c.Content)
	}
	return nil
}

func (a *App) PostComment(ctx context.Context, videoID int64) error {
	content, err := GetSimpleText(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}
	if _, err := a.api.PostComment(ctx, videoID, content); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Comment posted.")
	return nil
}

func (a *App) DeleteComment(ctx context.Context, commentID int64) error {
	if err := a.api.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Comment deleted.")
	return nil
}
