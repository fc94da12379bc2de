package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Tanay2920003/sitelink/internal/domain"
)

func TestCreateCategoryCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid name",
			input:   "Machine Learning",
			wantErr: false,
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "whitespace name",
			input:   "   ",
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "punctuation only",
			input:   "!!!",
			wantErr: true,
			errMsg:  "no letters or digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateCategoryCommand{Name: tt.input}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestCreateCategoryCommand_Execute(t *testing.T) {
	repo := newMemRepo(nil)

	result, err := NewCreateCategoryCommand(repo, "  Web Dev ").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Filename != "web-dev.json" {
		t.Errorf("expected web-dev.json, got %s", result.Filename)
	}
	if result.Message != "Created web-dev" {
		t.Errorf("unexpected message: %s", result.Message)
	}
	if result.Category.Name != "Web Dev" || result.Category.Description != domain.DefaultDescription {
		t.Errorf("unexpected category: %+v", result.Category)
	}

	stored, err := domain.ParseCategory(repo.files["web-dev.json"])
	if err != nil {
		t.Fatalf("stored file does not parse: %v", err)
	}
	if stored.Icon != domain.NewCategoryIcon || len(stored.Playlists) != 0 {
		t.Errorf("unexpected skeleton: %+v", stored)
	}

	_, err = NewCreateCategoryCommand(repo, "Web Dev").Execute(context.Background())
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateCategoryCommand_FromContent(t *testing.T) {
	repo := newMemRepo(nil)

	cmd := NewCreateCategoryCommand(repo, "Go")
	cmd.Content = []byte(categoryJSON("Go", "go", playlistJSON("Tour", "")))

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Category.Playlists) != 1 {
		t.Errorf("expected provided content to be stored, got %+v", result.Category)
	}

	bad := NewCreateCategoryCommand(repo, "Rust")
	bad.Content = []byte(`{"name": ""}`)
	if _, err := bad.Execute(context.Background()); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
	if _, ok := repo.files["rust.json"]; ok {
		t.Error("invalid content was written")
	}
}
