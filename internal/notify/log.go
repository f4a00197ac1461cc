package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier writes notifications to a logger instead of a notification tray
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify implements the Notifier interface
func (n *LogNotifier) Notify(ctx context.Context, notification Notification) error {
	n.log.Info().
		Uint32("notification_id", notification.ID).
		Str("channel", notification.Channel.Name).
		Str("sound", notification.Channel.Sound).
		Str("title", notification.Title).
		Msg(notification.Content)
	return nil
}

// Cancel implements the Notifier interface
func (n *LogNotifier) Cancel(ctx context.Context, id uint32) error {
	n.log.Info().Uint32("notification_id", id).Msg("Notification cancelled")
	return nil
}

// LogClipboard writes copied text to a logger
type LogClipboard struct {
	log zerolog.Logger
}

func NewLogClipboard(log zerolog.Logger) *LogClipboard {
	return &LogClipboard{log: log}
}

// Copy implements the Clipboard interface
func (c *LogClipboard) Copy(ctx context.Context, label, text string) error {
	c.log.Info().Str("label", label).Str("text", text).Msg("Copied to clipboard")
	return nil
}

var (
	_ Notifier  = (*LogNotifier)(nil)
	_ Clipboard = (*LogClipboard)(nil)
)
