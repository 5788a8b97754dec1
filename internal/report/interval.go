package report

import (
	"fmt"
	"strings"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Interval is the bucket width of a trend series.
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalMonth Interval = "month"
)

// ParseInterval accepts "day" or "month"; empty means month.
func ParseInterval(s string) (Interval, error) {
	switch Interval(strings.ToLower(strings.TrimSpace(s))) {
	case "", IntervalMonth:
		return IntervalMonth, nil
	case IntervalDay:
		return IntervalDay, nil
	default:
		return "", fmt.Errorf("unsupported interval %q", s)
	}
}

func (i Interval) bucket(d models.Date) models.Date {
	if i == IntervalDay {
		return d
	}
	return models.NewDate(d.Year(), d.Month(), 1)
}

func (i Interval) label(d models.Date) string {
	if i == IntervalDay {
		return d.Format("02 Jan")
	}
	return d.Format("Jan 2006")
}
