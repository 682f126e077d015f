package models

import (
	"encoding/json"

	"github.com/Belphemur/popcorn/internal/apperrors"
)

// requireFields checks that data is a JSON object carrying every listed
// field with a non-null value. encoding/json has no notion of required
// fields, and the success/failure payloads are told apart only by which
// fields are present.
func requireFields(data []byte, typeName string, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, field := range fields {
		value, ok := raw[field]
		if !ok || string(value) == "null" {
			return &apperrors.MissingFieldError{Type: typeName, Field: field}
		}
	}
	return nil
}
