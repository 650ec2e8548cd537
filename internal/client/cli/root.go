package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	p := a.session.Profile()
	s := p.Username
	if unread := a.notif.UnreadCount(); unread > 0 {
		s = fmt.Sprintf("%s, %d unread", s, unread)
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Yuyu CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "yuyu %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := a.dispatch(ctx, cmd, args); err != nil {
			a.log.Warn(ctx, "command failed", "cmd", cmd, "error", err)
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.printHelp()
		return nil

	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)

	case "videos":
		sortBy := "latest"
		if len(args) > 0 {
			sortBy = args[0]
		}
		return a.ListVideos(ctx, sortBy)
	case "video":
		id, err := requireID(args, "Usage: video <id>")
		if err != nil {
			return err
		}
		if err := a.ShowVideo(ctx, id); err != nil {
			return err
		}
		return a.ListComments(ctx, id)
	case "search":
		if len(args) == 0 {
			return fmt.Errorf("Usage: search <keywords>")
		}
		return a.SearchVideos(ctx, strings.Join(args, " "))
	case "users":
		if len(args) == 0 {
			return fmt.Errorf("Usage: users <keywords>")
		}
		return a.SearchUsers(ctx, strings.Join(args, " "))
	case "user":
		if len(args) == 0 {
			return fmt.Errorf("Usage: user <username>")
		}
		return a.ShowUser(ctx, args[0])

	case "me":
		return a.Me(ctx)
	case "profile":
		return a.EditProfile(ctx)
	case "password":
		return a.ChangePassword(ctx)
	case "avatar":
		return a.UpdateAvatar(ctx)
	case "claim":
		return a.ClaimDaily(ctx)

	case "upload":
		return a.Upload(ctx)
	case "edit":
		id, err := requireID(args, "Usage: edit <video-id>")
		if err != nil {
			return err
		}
		return a.EditVideo(ctx, id)
	case "delete":
		id, err := requireID(args, "Usage: delete <video-id>")
		if err != nil {
			return err
		}
		return a.DeleteVideo(ctx, id)
	case "feed":
		id, err := requireID(args, "Usage: feed <video-id>")
		if err != nil {
			return err
		}
		return a.FeedFish(ctx, id)

	case "comment":
		id, err := requireID(args, "Usage: comment <video-id>")
		if err != nil {
			return err
		}
		return a.PostComment(ctx, id)
	case "delcomment":
		id, err := requireID(args, "Usage: delcomment <comment-id>")
		if err != nil {
			return err
		}
		return a.DeleteComment(ctx, id)

	case "notifications":
		return a.ShowNotifications(ctx)
	case "read":
		id, err := requireID(args, "Usage: read <notification-id>")
		if err != nil {
			return err
		}
		return a.MarkNotificationRead(ctx, id)
	case "readall":
		return a.MarkAllNotificationsRead(ctx)

	case "open":
		if len(args) == 0 {
			return fmt.Errorf("Usage: open <path>")
		}
		return a.Open(ctx, args[0])

	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		printlnFn("Available commands: videos, video <id>, search, users, user, me, profile, password, avatar, claim, upload, edit <id>, delete <id>, feed <id>, comment <id>, delcomment <id>, notifications, read <id>, readall, open <path>, logout, exit")
	} else {
		printlnFn("Available commands: register, login, videos, video <id>, search, users, user, open <path>, exit")
	}
}

func requireID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%s", usage)
	}
	return parseID(args[0])
}
