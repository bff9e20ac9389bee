package cli

import (
	"context"
	"fmt"
	"log"
)

// Notifications refreshes and prints the notification feed.
func (a *App) Notifications(ctx context.Context) error {
	if err := a.notifications.Refresh(ctx); err != nil {
		log.Printf("refreshing notifications: %v", err)
	}
	feed := a.notifications.Feed()
	if len(feed) == 0 {
		printlnFn("No notifications.")
		return nil
	}
	printlnFn(fmt.Sprintf("Unread: %d", a.notifications.UnreadCount()))
	for _, n := range feed {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %s — %s", mark, n.ID, n.Title, n.Content))
	}
	return nil
}

// MarkRead marks one notification as read.
func (a *App) MarkRead(ctx context.Context, id string) error {
	if err := a.notifications.MarkRead(ctx, id); err != nil {
		log.Printf("marking notification read: %v", err)
		return err
	}
	return nil
}
