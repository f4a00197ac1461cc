package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/speech"
)

// Clipboard receives OTP codes
type Clipboard interface {
	Copy(ctx context.Context, label, text string) error
}

// Speaker queues text for speech; *speech.Speaker implements it
type Speaker interface {
	Speak(ctx context.Context, text string) (uuid.UUID, error)
}

// Notifier posts and cancels notifications
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
	Cancel(ctx context.Context, id uint32) error
}

// Dispatcher performs the side effects of a classification
type Dispatcher struct {
	clipboard Clipboard
	speaker   Speaker
	notifier  Notifier
	muted     map[int64]bool
	custom    []int64
	log       zerolog.Logger
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithMutedThreads suppresses every effect for messages in the given threads
func WithMutedThreads(threadIDs ...int64) DispatcherOption {
	return func(d *Dispatcher) {
		for _, id := range threadIDs {
			d.muted[id] = true
		}
	}
}

// WithCustomThreads gives plain messages of the given threads their own channel
func WithCustomThreads(threadIDs ...int64) DispatcherOption {
	return func(d *Dispatcher) {
		d.custom = append(d.custom, threadIDs...)
	}
}

func WithLogger(log zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// NewDispatcher creates a Dispatcher. Clipboard and speaker may be nil.
func NewDispatcher(clipboard Clipboard, speaker Speaker, notifier Notifier, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		clipboard: clipboard,
		speaker:   speaker,
		notifier:  notifier,
		muted:     make(map[int64]bool),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle copies OTPs, speaks transactions and posts the notification.
// Clipboard and speech failures are logged and never stop the notification.
func (d *Dispatcher) Handle(ctx context.Context, msg domain.Message, c domain.Classification) error {
	if d.muted[msg.ThreadID] {
		d.log.Debug().Int64("thread_id", msg.ThreadID).Msg("Thread is muted, skipping")
		return nil
	}

	switch {
	case c.IsOTP():
		if d.clipboard != nil {
			if err := d.clipboard.Copy(ctx, "OTP", c.Code); err != nil {
				d.log.Warn().Err(err).Msg("Failed to copy OTP to clipboard")
			}
		}
	case c.IsTransaction():
		if d.speaker != nil {
			text := speech.BuildUtterance(*c.Transaction)
			if _, err := d.speaker.Speak(ctx, text); err != nil {
				d.log.Warn().Err(err).Msg("Failed to queue transaction speech")
			}
		}
	}

	n := Route(msg, c, d.custom...)
	if err := d.notifier.Notify(ctx, n); err != nil {
		return fmt.Errorf("posting notification %d: %w", n.ID, err)
	}

	d.log.Debug().
		Uint32("notification_id", n.ID).
		Str("channel", n.Channel.ID).
		Bool("silent", n.Silent()).
		Msg("Notification posted")
	return nil
}

// MarkAsRead cancels the notification posted for msg
func (d *Dispatcher) MarkAsRead(ctx context.Context, msg domain.Message, c domain.Classification) error {
	id := NotificationID(msg, c)
	if err := d.notifier.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancelling notification %d: %w", id, err)
	}
	return nil
}

var _ Speaker = (*speech.Speaker)(nil)
