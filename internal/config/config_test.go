package config_test

import (
	"strings"
	"testing"

	"github.com/tirasundara/sms-alert-classifier/internal/config"
	"github.com/tirasundara/sms-alert-classifier/internal/speech"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if cfg.Speech.Rate != speech.DefaultRate || cfg.Speech.Pitch != speech.DefaultPitch {
		t.Errorf("Expected default speech settings, got %+v", cfg.Speech)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr string
	}{
		{"bad source", func(c *config.Config) { c.Source = "mbox" }, "unknown source"},
		{"bad format", func(c *config.Config) { c.Format = "xml" }, "unknown format"},
		{"no workers", func(c *config.Config) { c.Workers = 0 }, "workers"},
		{"no batch", func(c *config.Config) { c.BatchSize = -1 }, "batch size"},
		{"negative pitch", func(c *config.Config) { c.Speech.Pitch = -1 }, "pitch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "yaml"
	cfg.Workers = 0

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "format") || !strings.Contains(err.Error(), "workers") {
		t.Errorf("Expected both errors, got %v", err)
	}
}

func TestSpeechSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Speech.Rate = 0.8

	if got := cfg.SpeechSettings().Rate; got != speech.DefaultRate {
		t.Errorf("Expected slow rate reset to %v, got %v", speech.DefaultRate, got)
	}
}

func TestResolveSource(t *testing.T) {
	tests := []struct {
		source string
		path   string
		want   string
		ok     bool
	}{
		{"", "export.csv", config.SourceCSV, true},
		{"", "backup.XML", config.SourceXML, true},
		{"", "mmssms.db", config.SourceSQLite, true},
		{"xml", "export.txt", config.SourceXML, true},
		{"", "export.txt", "", false},
	}

	for _, tt := range tests {
		cfg := config.Default()
		cfg.Source = tt.source

		got, err := cfg.ResolveSource(tt.path)
		if (err == nil) != tt.ok {
			t.Errorf("ResolveSource(%q) error = %v, want ok=%v", tt.path, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveSource(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
