package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/logger"
	_ "modernc.org/sqlite"
)

const selectReceivedSMS = `SELECT _id, thread_id, address, body, date
	FROM sms
	WHERE type = 1
	ORDER BY date, _id`

// SQLiteMessageRepository implements the MessageRepository interface for an
// Android mmssms.db export. The database is opened read-only.
type SQLiteMessageRepository struct {
	FilePath string
}

// NewSQLiteMessageRepository creates a new SQLiteMessageRepository
func NewSQLiteMessageRepository(fp string) *SQLiteMessageRepository {
	return &SQLiteMessageRepository{FilePath: fp}
}

func (r *SQLiteMessageRepository) GetSourceIdentifier() string {
	return sourceName(r.FilePath)
}

func (r *SQLiteMessageRepository) dsn() string {
	return "file:" + r.FilePath + "?mode=ro"
}

// GetMessages returns the received messages, oldest first
func (r *SQLiteMessageRepository) GetMessages(ctx context.Context) ([]domain.Message, error) {
	log := logger.FromContext(ctx).With().Str("source", r.GetSourceIdentifier()).Logger()

	db, err := sql.Open("sqlite", r.dsn())
	if err != nil {
		return nil, fmt.Errorf("opening sqlite export: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectReceivedSMS)
	if err != nil {
		return nil, fmt.Errorf("querying sms table: %w", err)
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var (
			id       int64
			threadID sql.NullInt64
			address  sql.NullString
			body     sql.NullString
			date     sql.NullInt64
		)
		if err := rows.Scan(&id, &threadID, &address, &body, &date); err != nil {
			return nil, fmt.Errorf("scanning sms row: %w", err)
		}

		if strings.TrimSpace(body.String) == "" {
			log.Warn().Int64("id", id).Msg("Skipping message with empty body")
			continue
		}

		msg := domain.Message{
			ID:       strconv.FormatInt(id, 10),
			ThreadID: threadID.Int64,
			Address:  address.String,
			Body:     body.String,
		}
		if date.Valid {
			msg.Date = time.UnixMilli(date.Int64).UTC()
		}
		msgs = append(msgs, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sms rows: %w", err)
	}

	return msgs, nil
}

var _ domain.MessageRepository = (*SQLiteMessageRepository)(nil)
