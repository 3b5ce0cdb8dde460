package quran

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// MissingFieldError reports a required field that is absent or null
type MissingFieldError struct {
	Type  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Type, e.Field)
}

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// requireFields checks that data is an object holding every named field
// with a non-null value.
func requireFields(data []byte, typ string, fields ...string) error {
	if isNull(data) {
		return fmt.Errorf("%s: expected object, got null", typ)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", typ, err)
	}

	for _, field := range fields {
		if isNull(raw[field]) {
			return &MissingFieldError{Type: typ, Field: field}
		}
	}
	return nil
}
