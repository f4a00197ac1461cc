package repository

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/logger"
)

// smsReceived is the message type of inbox rows in Android exports
const smsReceived = "1"

// backupSMS is one <sms> element of an "SMS Backup & Restore" file
type backupSMS struct {
	Address  string `xml:"address,attr"`
	Body     string `xml:"body,attr"`
	Date     string `xml:"date,attr"`
	Type     string `xml:"type,attr"`
	ThreadID string `xml:"thread_id,attr"`
}

type backupFile struct {
	XMLName xml.Name    `xml:"smses"`
	SMS     []backupSMS `xml:"sms"`
}

// XMLBackupRepository implements the MessageRepository interface for "SMS Backup & Restore" XML files
type XMLBackupRepository struct {
	FilePath string

	// IncludeSent keeps outgoing messages, which are skipped by default
	IncludeSent bool
}

// NewXMLBackupRepository creates a new XMLBackupRepository
func NewXMLBackupRepository(fp string) *XMLBackupRepository {
	return &XMLBackupRepository{FilePath: fp}
}

func (r *XMLBackupRepository) GetSourceIdentifier() string {
	return sourceName(r.FilePath)
}

// GetMessages returns the received messages of the backup in file order
func (r *XMLBackupRepository) GetMessages(ctx context.Context) ([]domain.Message, error) {
	log := logger.FromContext(ctx).With().Str("source", r.GetSourceIdentifier()).Logger()

	data, err := os.ReadFile(r.FilePath)
	if err != nil {
		return nil, fmt.Errorf("reading xml backup: %w", err)
	}

	var backup backupFile
	if err := xml.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("parsing xml backup: %w", err)
	}

	var msgs []domain.Message
	for i, sms := range backup.SMS {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !r.IncludeSent && sms.Type != "" && sms.Type != smsReceived {
			continue
		}
		if strings.TrimSpace(sms.Body) == "" {
			log.Warn().Int("index", i).Msg("Skipping message with empty body")
			continue
		}

		date, err := parseDate(sms.Date, DefaultDateFormat)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("Skipping message with invalid date")
			continue
		}

		threadID, _ := strconv.ParseInt(sms.ThreadID, 10, 64)

		msgs = append(msgs, domain.Message{
			ID:       strconv.Itoa(i + 1),
			ThreadID: threadID,
			Address:  sms.Address,
			Body:     sms.Body,
			Date:     date,
		})
	}

	log.Debug().Int("total", len(backup.SMS)).Int("kept", len(msgs)).Msg("Backup loaded")
	return msgs, nil
}

var _ domain.MessageRepository = (*XMLBackupRepository)(nil)
