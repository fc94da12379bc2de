package application

import (
	"errors"
	"fmt"

	"github.com/Tanay2920003/sitelink/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = domain.ErrNotFound
	ErrNoFileOpen     = errors.New("no file open")
	ErrUnsavedChanges = errors.New("unsaved changes")
	ErrSuperseded     = errors.New("superseded by a newer request")
	ErrBusy           = errors.New("operation already in progress")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NavigationError is returned when leaving the open file would drop edits
type NavigationError struct {
	From string
	To   string
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("cannot open %s: %s has unsaved changes", e.To, e.From)
}

func (e *NavigationError) Is(target error) bool {
	return target == ErrUnsavedChanges
}
