package repository_test

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tirasundara/sms-alert-classifier/internal/logger"
	"github.com/tirasundara/sms-alert-classifier/internal/repository"
	_ "modernc.org/sqlite"
)

func TestCSVMessageRepository_GetMessages(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := logger.WithContext(context.Background(), logger.NewWithWriter(buf))
	repo := repository.NewCSVMessageRepository("../../test/testdata/messages.csv", "")

	msgs, err := repo.GetMessages(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Empty body and invalid date rows are skipped
	if len(msgs) != 4 {
		t.Fatalf("Expected 4 messages, got %d", len(msgs))
	}

	if msgs[0].ID != "m1" || msgs[0].Address != "VM-HDFCBK" || msgs[0].ThreadID != 11 {
		t.Errorf("Unexpected first message: %+v", msgs[0])
	}
	if !msgs[0].Date.Equal(time.UnixMilli(1705050000000)) {
		t.Errorf("Expected epoch millis date, got %s", msgs[0].Date)
	}

	if !strings.Contains(msgs[1].Body, "AMAZON PAY") {
		t.Errorf("Expected quoted body with commas, got %q", msgs[1].Body)
	}
	if msgs[1].Date.Format(repository.DefaultDateFormat) != "2024-01-12 10:30:00" {
		t.Errorf("Expected layout date, got %s", msgs[1].Date)
	}

	if msgs[2].Date.Format(time.RFC3339) != "2024-01-12T11:00:00Z" {
		t.Errorf("Expected RFC 3339 date, got %s", msgs[2].Date)
	}

	if msgs[3].ID != "7" || !msgs[3].Date.IsZero() {
		t.Errorf("Expected line number id and zero date for last row, got %+v", msgs[3])
	}

	if repo.GetSourceIdentifier() != "messages" {
		t.Errorf("Expected source identifier 'messages', got %s", repo.GetSourceIdentifier())
	}

	if got := strings.Count(buf.String(), `"level":"warn"`); got != 2 {
		t.Errorf("Expected 2 warnings for skipped rows, got %d: %s", got, buf.String())
	}
}

func TestCSVMessageRepository_MissingColumn(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(fp, []byte("sender,text\nHDFCBK,hello\n"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	_, err := repository.NewCSVMessageRepository(fp, "").GetMessages(context.Background())
	if err == nil || !strings.Contains(err.Error(), "address") {
		t.Errorf("Expected missing column error, got %v", err)
	}
}

func TestCSVMessageRepository_CaseInsensitiveHeader(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "upper.csv")
	if err := os.WriteFile(fp, []byte("Body,ADDRESS\nhello,HDFCBK\n"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	msgs, err := repository.NewCSVMessageRepository(fp, "").GetMessages(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Address != "HDFCBK" || msgs[0].Body != "hello" {
		t.Errorf("Expected one message from HDFCBK, got %+v", msgs)
	}
}

func TestXMLBackupRepository_GetMessages(t *testing.T) {
	repo := repository.NewXMLBackupRepository("../../test/testdata/backup.xml")

	msgs, err := repo.GetMessages(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The sent message and the empty body are skipped
	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Address != "VM-HDFCBK" || msgs[0].ThreadID != 11 {
		t.Errorf("Unexpected first message: %+v", msgs[0])
	}
	if !msgs[1].Date.Equal(time.UnixMilli(1705051000000)) {
		t.Errorf("Expected epoch millis date, got %s", msgs[1].Date)
	}

	repo.IncludeSent = true
	msgs, err = repo.GetMessages(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(msgs) != 3 {
		t.Errorf("Expected 3 messages with sent ones included, got %d", len(msgs))
	}

	if repo.GetSourceIdentifier() != "backup" {
		t.Errorf("Expected source identifier 'backup', got %s", repo.GetSourceIdentifier())
	}
}

func TestXMLBackupRepository_Malformed(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "broken.xml")
	if err := os.WriteFile(fp, []byte("<smses><sms address="), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := repository.NewXMLBackupRepository(fp).GetMessages(context.Background()); err == nil {
		t.Error("Expected parse error, got nil")
	}
}

func createSMSDatabase(t *testing.T) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "mmssms.db")

	db, err := sql.Open("sqlite", fp)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE sms (_id INTEGER PRIMARY KEY, thread_id INTEGER, address TEXT, body TEXT, date INTEGER, type INTEGER)`,
		`INSERT INTO sms VALUES (1, 12, 'HDFCBK', 'Rs.2,500.00 debited from your HDFC Bank A/c XX1234 to AMAZON PAY.', 1705051000000, 1)`,
		`INSERT INTO sms VALUES (2, 11, 'VM-HDFCBK', 'Your OTP for login is 483920.', 1705050000000, 1)`,
		`INSERT INTO sms VALUES (3, 16, '+919876543210', 'On my way', 1705052000000, 2)`,
		`INSERT INTO sms VALUES (4, 14, 'SBIINB', NULL, 1705053000000, 1)`,
		`INSERT INTO sms VALUES (5, NULL, NULL, 'Rs 10 credited', NULL, 1)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to prepare database: %v", err)
		}
	}
	return fp
}

func TestSQLiteMessageRepository_GetMessages(t *testing.T) {
	repo := repository.NewSQLiteMessageRepository(createSMSDatabase(t))

	msgs, err := repo.GetMessages(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Sent and empty messages are skipped; NULL dates sort first
	if len(msgs) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].ID != "5" || !msgs[0].Date.IsZero() || msgs[0].Address != "" {
		t.Errorf("Expected message 5 without date or address first, got %+v", msgs[0])
	}
	if msgs[1].ID != "2" || msgs[2].ID != "1" {
		t.Errorf("Expected messages ordered by date, got %s then %s", msgs[1].ID, msgs[2].ID)
	}
	if msgs[2].ThreadID != 12 || !msgs[2].Date.Equal(time.UnixMilli(1705051000000)) {
		t.Errorf("Unexpected transaction message: %+v", msgs[2])
	}

	if repo.GetSourceIdentifier() != "mmssms" {
		t.Errorf("Expected source identifier 'mmssms', got %s", repo.GetSourceIdentifier())
	}
}

func TestSQLiteMessageRepository_MissingFile(t *testing.T) {
	repo := repository.NewSQLiteMessageRepository(filepath.Join(t.TempDir(), "missing.db"))

	if _, err := repo.GetMessages(context.Background()); err == nil {
		t.Error("Expected error for missing database, got nil")
	}
}
