package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "Web Development",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "name",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "filename",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateIndex(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		length  int
		wantErr bool
	}{
		{"first element", 0, 3, false},
		{"last element", 2, 3, false},
		{"past the end", 3, 3, true},
		{"negative", -1, 3, true},
		{"empty list", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIndex("playlistIndex", tt.index, tt.length)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIndex(%d, %d) error = %v, wantErr %v", tt.index, tt.length, err, tt.wantErr)
			}
			if err != nil && err.Error() == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestNavigationErrorIsUnsavedChanges(t *testing.T) {
	err := error(&NavigationError{From: "go.json", To: "rust.json"})

	if !errors.Is(err, ErrUnsavedChanges) {
		t.Error("expected NavigationError to match ErrUnsavedChanges")
	}
	if err.Error() != "cannot open rust.json: go.json has unsaved changes" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
