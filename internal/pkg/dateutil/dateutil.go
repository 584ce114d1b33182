package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the calendar-date format used by the API and fixtures.
const Layout = "2006-01-02"

// Parse reads a YYYY-MM-DD date in UTC.
func Parse(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	t, err := time.Parse(Layout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
	}
	return t, nil
}

// ParseOptional returns nil for an empty string.
func ParseOptional(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Layout)
}

// FormatOptional returns nil for a nil date so JSON renders null.
func FormatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(Layout)
	return &s
}
