package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/internal/logger"
	"github.com/tirasundara/sms-alert-classifier/pkg/fileutil"
)

var (
	messageHeaderFields  = []string{"address", "body"}
	messageOptionalField = []string{"id", "thread_id", "date"}
)

// CSVMessageRepository implements the MessageRepository interface for CSV exports
type CSVMessageRepository struct {
	FilePath   string
	DateFormat string
}

// NewCSVMessageRepository creates a new CSVMessageRepository
func NewCSVMessageRepository(fp, dateFormat string) *CSVMessageRepository {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	return &CSVMessageRepository{
		FilePath:   fp,
		DateFormat: dateFormat,
	}
}

func (r *CSVMessageRepository) GetSourceIdentifier() string {
	return sourceName(r.FilePath)
}

// GetMessages reads every row with a body. Rows with an empty body or a bad date are skipped with a warning.
func (r *CSVMessageRepository) GetMessages(ctx context.Context) ([]domain.Message, error) {
	log := logger.FromContext(ctx).With().Str("source", r.GetSourceIdentifier()).Logger()
	reader := fileutil.NewCSVReader(r.FilePath)

	header, err := reader.ReadHeader()
	if err != nil {
		return nil, fmt.Errorf("reading message header: %w", err)
	}

	columnMap, err := createHeaderMap(header, messageHeaderFields, messageOptionalField)
	if err != nil {
		return nil, fmt.Errorf("mapping CSV columns: %w", err)
	}

	var msgs []domain.Message
	var rowProcessorFn = func(line int, row []string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, ok := r.parseRow(log, line, row, columnMap)
		if ok {
			msgs = append(msgs, msg)
		}
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return nil, fmt.Errorf("reading and processing messages: %w", err)
	}

	return msgs, nil
}

func (r *CSVMessageRepository) parseRow(log zerolog.Logger, line int, row []string, columnMap map[string]int) (domain.Message, bool) {
	body := field(row, columnMap, "body")
	if strings.TrimSpace(body) == "" {
		log.Warn().Int("line", line).Msg("Skipping message with empty body")
		return domain.Message{}, false
	}

	date, err := parseDate(field(row, columnMap, "date"), r.DateFormat)
	if err != nil {
		log.Warn().Err(err).Int("line", line).Msg("Skipping message with invalid date")
		return domain.Message{}, false
	}

	id := field(row, columnMap, "id")
	if id == "" {
		id = strconv.Itoa(line)
	}

	var threadID int64
	if v := field(row, columnMap, "thread_id"); v != "" {
		threadID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("Ignoring invalid thread id")
		}
	}

	return domain.Message{
		ID:       id,
		ThreadID: threadID,
		Address:  strings.TrimSpace(field(row, columnMap, "address")),
		Body:     body,
		Date:     date,
	}, true
}

var _ domain.MessageRepository = (*CSVMessageRepository)(nil)
