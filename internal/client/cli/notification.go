package cli

import (
	"context"
	"fmt"
)

func (a *App) ShowNotifications(ctx context.Context) error {
	a.notif.Fetch(ctx)
	items := a.notif.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}
	fmt.Fprintf(a.out, "%d unread\n", a.notif.UnreadCount())
	for _, n := range items {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s [%d] %s: %s\n", marker, n.ID, n.Type, n.Content)
	}
	return nil
}

func (a *App) MarkNotificationRead(ctx context.Context, id int64) error {
	return a.notif.MarkAsRead(ctx, id)
}

func (a *App) MarkAllNotificationsRead(ctx context.Context) error {
	return a.notif.MarkAllAsRead(ctx)
}
