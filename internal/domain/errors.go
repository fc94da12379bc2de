package domain

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the content repository
var (
	ErrInvalidFilename = errors.New("invalid filename")
	ErrInvalidJSON     = errors.New("invalid JSON")
	ErrAlreadyExists   = errors.New("file already exists")
	ErrNotFound        = errors.New("not found")
	ErrInvalidCategory = errors.New("invalid category")
)

// Issue is a single schema violation. Field is a dotted path such as
// "playlists.2.year"; it is empty for problems with the document itself.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaError reports every violation found in a category document
type SchemaError struct {
	Issues []Issue
}

func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.Message
	}
	return "validation error: " + strings.Join(msgs, ", ")
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidCategory
}
