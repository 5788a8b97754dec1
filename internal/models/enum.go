package models

import (
	"encoding/json"
	"strings"
)

// unmarshalEnum reads a JSON string enum, normalised to upper case.
func unmarshalEnum(b []byte) (string, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(s)), nil
}
