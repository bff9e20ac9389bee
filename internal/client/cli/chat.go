package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/stadtwache/patrol/internal/client/models"
	"github.com/stadtwache/patrol/internal/common"
)

func printConversation(msgs []models.Message) {
	if len(msgs) == 0 {
		printlnFn("No messages.")
		return
	}
	for _, m := range msgs {
		mark := ""
		if m.Delivery == models.DeliveryPending {
			mark = " (sending...)"
		}
		printlnFn(fmt.Sprintf("[%s] %s: %s%s", m.CreatedAt.Format("15:04"), m.SenderName, m.Content, mark))
	}
}

// Inbox refreshes and prints the private conversation.
func (a *App) Inbox(ctx context.Context) error {
	if err := a.chat.RefreshPrivate(ctx); err != nil {
		log.Printf("refreshing private messages: %v", err)
	}
	printConversation(a.chat.Conversation(ctx, common.ChannelPrivate))
	return nil
}

// Send sends a direct message. args is the raw REPL argument list:
// recipient ID first, the message text after it.
func (a *App) Send(ctx context.Context, args []string) error {
	recipient := args[0]
	content := strings.Join(args[1:], " ")

	if _, err := a.chat.SendPrivate(ctx, recipient, content); err != nil {
		log.Printf("sending message: %v", err)
		return err
	}
	return nil
}

// Channel switches the watched channel (when a name is given) and prints its
// conversation. Switching re-registers the channel polling task.
func (a *App) Channel(ctx context.Context, name string) error {
	if name != "" && name != a.channel {
		a.watchChannel(name)
	}
	if err := a.chat.RefreshChannel(ctx, a.channel); err != nil {
		log.Printf("refreshing channel %s: %v", a.channel, err)
	}
	printlnFn("# " + a.channel)
	printConversation(a.chat.Conversation(ctx, a.channel))
	return nil
}

// Say sends a message to the currently watched channel.
func (a *App) Say(ctx context.Context, args []string) error {
	content := strings.Join(args, " ")
	if _, err := a.chat.SendChannel(ctx, a.channel, content); err != nil {
		log.Printf("sending to channel %s: %v", a.channel, err)
		return err
	}
	return nil
}
