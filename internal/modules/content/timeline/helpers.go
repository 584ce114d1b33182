package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/mx-space/portfolio/internal/pkg/dateutil"
)

func requireText(field string, v *string, required bool) (string, error) {
	if v == nil {
		if required {
			return "", fmt.Errorf("%w: %s is required", ErrInvalid, field)
		}
		return "", nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" && required {
		return "", fmt.Errorf("%w: %s is required", ErrInvalid, field)
	}
	return trimmed, nil
}

func parseStart(v *string) (time.Time, error) {
	if v == nil {
		return time.Time{}, fmt.Errorf("%w: start_date is required", ErrInvalid)
	}
	t, err := dateutil.Parse(*v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return t, nil
}

func parseEnd(v *string, start time.Time) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := dateutil.ParseOptional(*v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if t != nil && !start.IsZero() && t.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrInvalid)
	}
	return t, nil
}
