package domain

import "context"

// MessageRepository defines the interface for reading messages from an SMS export
type MessageRepository interface {
	// GetMessages returns every message in the source, oldest first when the source has dates
	GetMessages(ctx context.Context) ([]Message, error)

	// GetSourceIdentifier returns a short name for the source, used in logs and reports
	GetSourceIdentifier() string
}
