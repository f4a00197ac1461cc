package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tirasundara/sms-alert-classifier/internal/speech"
)

// Message sources
const (
	SourceCSV    = "csv"
	SourceXML    = "xml"
	SourceSQLite = "sqlite"
)

// Output formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Config holds the runtime settings of the command line tool
type Config struct {
	Debug bool

	// Scan settings
	Source     string
	Format     string
	Output     string
	Workers    int
	BatchSize  int
	DateFormat string
	Pretty     bool

	// Side effects
	Speak         bool
	MutedThreads  []int64
	CustomThreads []int64
	Speech        speech.Settings
}

// Default returns the configuration used when no flags are given
func Default() Config {
	return Config{
		Format:    FormatJSON,
		Workers:   4,
		BatchSize: 100,
		Pretty:    true,
		Speech:    speech.DefaultSettings(),
	}
}

// Validate checks the values a user can get wrong
func (c Config) Validate() error {
	var errs []error

	switch c.Source {
	case "", SourceCSV, SourceXML, SourceSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown source %q, want csv, xml or sqlite", c.Source))
	}

	switch c.Format {
	case FormatJSON, FormatCSV:
	default:
		errs = append(errs, fmt.Errorf("unknown format %q, want json or csv", c.Format))
	}

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.BatchSize < 1 {
		errs = append(errs, fmt.Errorf("batch size must be at least 1, got %d", c.BatchSize))
	}
	if c.Speech.Pitch < 0 {
		errs = append(errs, fmt.Errorf("speech pitch must not be negative, got %v", c.Speech.Pitch))
	}

	return errors.Join(errs...)
}

// SpeechSettings returns the speech settings with out of range values reset
func (c Config) SpeechSettings() speech.Settings {
	return c.Speech.Normalize()
}

// ResolveSource returns the configured source, or infers it from the file extension
func (c Config) ResolveSource(path string) (string, error) {
	if c.Source != "" {
		return c.Source, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return SourceCSV, nil
	case ".xml":
		return SourceXML, nil
	case ".db", ".sqlite", ".sqlite3":
		return SourceSQLite, nil
	default:
		return "", fmt.Errorf("cannot infer source from %q, use --source", path)
	}
}
