package notify

import (
	"hash/fnv"
	"slices"
	"strconv"

	"github.com/tirasundara/sms-alert-classifier/internal/domain"
)

// Channel is a notification channel with its alert policy
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Sound names the alert sound; empty means silent
	Sound string `json:"sound,omitempty"`
}

// Channels
var (
	OTPChannel         = Channel{ID: "otp_channel", Name: "OTP Notifications", Sound: "otp"}
	TransactionChannel = Channel{ID: "transaction_channel", Name: "Transaction Notifications"}
	DefaultChannel     = Channel{ID: "default_channel", Name: "Received messages", Sound: "message"}
)

// ThreadChannel is the channel of a thread with its own notification settings.
// Its id is the thread id so the settings survive restarts.
func ThreadChannel(threadID int64) Channel {
	id := strconv.FormatInt(threadID, 10)
	return Channel{ID: id, Name: "Thread " + id, Sound: DefaultChannel.Sound}
}

// Notification is what gets posted for one message
type Notification struct {
	ID       uint32  `json:"id"`
	Channel  Channel `json:"channel"`
	ThreadID int64   `json:"thread_id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
}

// Silent reports whether the notification plays no sound
func (n Notification) Silent() bool {
	return n.Channel.Sound == ""
}

// Route builds the notification for msg. OTPs go to a dedicated channel with
// the code on top, transactions to a silent channel since they are spoken.
// Other messages on one of customThreads go to that thread's own channel.
func Route(msg domain.Message, c domain.Classification, customThreads ...int64) Notification {
	n := Notification{
		ID:       NotificationID(msg, c),
		ThreadID: msg.ThreadID,
		Title:    msg.Address,
		Content:  msg.Body,
	}

	switch {
	case c.IsOTP():
		n.Channel = OTPChannel
		n.Content = "OTP: " + c.Code + "\n" + msg.Body
	case c.IsTransaction():
		n.Channel = TransactionChannel
	case slices.Contains(customThreads, msg.ThreadID):
		n.Channel = ThreadChannel(msg.ThreadID)
	default:
		n.Channel = DefaultChannel
	}
	return n
}

// NotificationID derives a stable id so a later action on the same message
// can find the notification again
func NotificationID(msg domain.Message, c domain.Classification) uint32 {
	var key string
	switch {
	case c.IsOTP():
		key = "otp:" + c.Code
	case c.IsTransaction():
		key = "txn:" + recordKey(*c.Transaction)
	default:
		key = "thread:" + strconv.FormatInt(msg.ThreadID, 10)
	}

	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}

func recordKey(rec domain.TransactionRecord) string {
	return rec.Amount.String() + "|" + string(rec.Direction) + "|" + rec.Source + "|" +
		rec.Participant + "|" + strconv.FormatBool(rec.IsInterest)
}
