package models

import (
	"bytes"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Layouts accepted from the backend. Zone-less values are read as UTC.
var wireLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	dateLayout,
}

func parseWireTime(b []byte) (time.Time, bool, error) {
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return time.Time{}, false, nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return time.Time{}, false, fmt.Errorf("expected a quoted date, got %s", b)
	}
	s := string(b[1 : len(b)-1])
	if s == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range wireLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognised date %q", s)
}

// Date is a calendar date (due dates, lease start/end).
type Date struct {
	time.Time
}

// NewDate truncates t to its UTC calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// DateOf returns the UTC calendar day containing t.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, ok, err := parseWireTime(b)
	if err != nil {
		return err
	}
	if !ok {
		*d = Date{}
		return nil
	}
	*d = DateOf(t)
	return nil
}

// Timestamp is an instant (paid-at, created-at).
type Timestamp struct {
	time.Time
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.UTC().Format(time.RFC3339) + `"`), nil
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	t, _, err := parseWireTime(b)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

// DaysBetween returns the whole number of calendar days from a to b (negative when b is earlier).
func DaysBetween(a, b time.Time) int {
	da, db := DateOf(a), DateOf(b)
	return int(db.Sub(da.Time).Hours() / 24)
}
