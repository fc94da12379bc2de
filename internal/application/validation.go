package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateIndex checks that index addresses an element of a list of the given length
func ValidateIndex(fieldName string, index, length int) error {
	if index < 0 || index >= length {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s %d out of range (have %d)", formatFieldName(fieldName), index, length),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "playlistIndex" -> "playlist index")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"filename":      "filename",
		"name":          "name",
		"query":         "query",
		"content":       "content",
		"playlistIndex": "playlist index",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
