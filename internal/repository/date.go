package repository

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultDateFormat is tried after epoch milliseconds and RFC 3339
const DefaultDateFormat = "2006-01-02 15:04:05"

// parseDate reads Android style epoch milliseconds, RFC 3339, or layout. Empty values give the zero time.
func parseDate(value, layout string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// sourceName strips the directory and extension from a file path
func sourceName(fp string) string {
	base := filepath.Base(fp)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
