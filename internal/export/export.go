// Package export renders the rent roll as downloadable files.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/rent-portal/internal/models"
)

// Format is a supported export file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXML  Format = "xml"
)

// ParseFormat accepts "xlsx" or "xml"; empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatXML:
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatXML {
		return "application/xml"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Filename names the download, e.g. rent-roll-2024-06-15.xlsx.
func (f Format) Filename(generatedAt time.Time) string {
	return fmt.Sprintf("rent-roll-%s.%s", generatedAt.UTC().Format("2006-01-02"), f)
}

// RentRoll renders rows in the given format.
func RentRoll(f Format, rows []models.RentRollItem, generatedAt time.Time) ([]byte, error) {
	switch f {
	case FormatXLSX:
		return RentRollXLSX(rows, generatedAt)
	case FormatXML:
		return RentRollXML(rows, generatedAt)
	default:
		return nil, fmt.Errorf("unsupported export format %q", f)
	}
}

func dateString(d *models.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func timestampString(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
