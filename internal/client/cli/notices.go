package cli

import (
	"context"
	"errors"
	"fmt"
)

// Notices manages the local per-user notification list:
//
//	notices            list, newest first
//	notices read       mark everything read
//	notices rm <id>    remove one entry
//	notices clear      remove everything
func (a *App) Notices(ctx context.Context, args []string) error {
	u := a.state.CurrentUser()
	if u == nil {
		return errors.New("no user record, run 'login' again")
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		items, err := a.notices.List(ctx, u.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No notifications")
			return nil
		}
		for _, n := range items {
			mark := "*"
			if n.Read {
				mark = " "
			}
			fmt.Printf("%s [%s] %s: %s\n", mark, n.CreatedAt.Format("2006-01-02 15:04"), n.Title, n.Body)
		}
		unread, err := a.notices.UnreadCount(ctx, u.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%d unread\n", unread)
		return nil
	case "read":
		return a.notices.MarkAllRead(ctx, u.ID)
	case "rm":
		if len(args) < 2 {
			return errors.New("usage: notices rm <id>")
		}
		return a.notices.Remove(ctx, u.ID, args[1])
	case "clear":
		return a.notices.Clear(ctx, u.ID)
	default:
		return fmt.Errorf("unknown subcommand %q, want list|read|rm|clear", sub)
	}
}
