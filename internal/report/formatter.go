package report

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/tirasundara/sms-alert-classifier/internal/domain"
	"github.com/tirasundara/sms-alert-classifier/pkg/fileutil"
)

// OutputFormatter defines the interface for formatting classification results
type OutputFormatter interface {
	Format(results []domain.Result) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats classification results as JSON, with a summary
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

type jsonReport struct {
	Summary Summary         `json:"summary"`
	Results []domain.Result `json:"results"`
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(results []domain.Result) ([]byte, error) {
	if results == nil {
		results = []domain.Result{}
	}
	report := jsonReport{Summary: Summarize(results), Results: results}

	if f.PrettyPrint {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

var csvHeader = []string{
	"id", "sender", "kind", "reason", "code",
	"amount", "direction", "source", "participant", "interest", "tts",
}

// CSVFormatter formats classification results as one CSV row per message
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format implements the OutputFormatter interface for CSV
func (f *CSVFormatter) Format(results []domain.Result) ([]byte, error) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, csvRow(r))
	}

	var buf bytes.Buffer
	if err := fileutil.WriteCSV(&buf, csvHeader, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *CSVFormatter) FileExtension() string {
	return "csv"
}

func csvRow(r domain.Result) []string {
	c := r.Classification
	row := []string{
		r.Message.ID, r.Message.Address, string(c.Kind), string(c.Reason), c.Code,
		"", "", "", "", "", "",
	}

	if c.IsTransaction() {
		rec := c.Transaction
		row[5] = rec.DisplayAmount
		row[6] = string(rec.Direction)
		row[7] = rec.Source
		row[8] = rec.Participant
		row[9] = strconv.FormatBool(rec.IsInterest)
		row[10] = rec.TTSAmount
	}
	return row
}
