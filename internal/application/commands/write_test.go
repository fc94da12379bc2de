package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Tanay2920003/sitelink/internal/domain"
)

func TestWriteCategoryCommand(t *testing.T) {
	original := categoryJSON("Web Dev", "web-dev", playlistJSON("React Basics", "intro"))
	repo := newMemRepo(map[string]string{"web-dev.json": original})

	t.Run("rejects schema violations", func(t *testing.T) {
		bad := strings.Replace(original, `"year":2023`, `"year":1999`, 1)

		_, err := NewWriteCategoryCommand(repo, "web-dev.json", []byte(bad)).Execute(context.Background())

		var schemaErr *domain.SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("expected SchemaError, got %v", err)
		}
		if !bytes.Equal(repo.files["web-dev.json"], []byte(original)) {
			t.Error("file changed after rejected write")
		}
		if repo.writes != 0 {
			t.Errorf("expected no writes, got %d", repo.writes)
		}
	})

	t.Run("missing arguments", func(t *testing.T) {
		_, err := NewWriteCategoryCommand(repo, "", []byte(original)).Execute(context.Background())
		if err == nil || !strings.Contains(err.Error(), "filename is required") {
			t.Errorf("expected filename error, got %v", err)
		}
	})

	t.Run("writes valid content", func(t *testing.T) {
		updated := categoryJSON("Web Development", "web-dev", playlistJSON("React Basics", "intro"), playlistJSON("Vue", ""))

		result, err := NewWriteCategoryCommand(repo, "web-dev.json", []byte(updated)).Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if result.Category.Name != "Web Development" || len(result.Category.Playlists) != 2 {
			t.Errorf("unexpected result: %+v", result.Category)
		}
		if result.Message != "Saved web-dev.json (2 playlists)" {
			t.Errorf("unexpected message: %s", result.Message)
		}
	})
}

func TestAddPlaylistCommand(t *testing.T) {
	repo := newMemRepo(map[string]string{
		"go.json": categoryJSON("Go", "go", playlistJSON("Tour", "")),
	})

	p := domain.Playlist{
		Title:      "Concurrency",
		Creator:    "Gopher",
		URL:        "https://go.dev/blog",
		Language:   "English",
		Difficulty: domain.DifficultyAdvanced,
		VideoCount: 3,
		Year:       2025,
	}

	result, err := NewAddPlaylistCommand(repo, "go.json", p).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Category.Playlists) != 2 || result.Category.Playlists[1].Title != "Concurrency" {
		t.Errorf("expected playlist appended last, got %+v", result.Category.Playlists)
	}

	invalid := p
	invalid.URL = "not a url"
	_, err = NewAddPlaylistCommand(repo, "go.json", invalid).Execute(context.Background())
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}

	_, err = NewAddPlaylistCommand(repo, "rust.json", p).Execute(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestValidateFilesCommand(t *testing.T) {
	repo := newMemRepo(map[string]string{
		"go.json":     categoryJSON("Go", "go", playlistJSON("Tour", "")),
		"golang.json": categoryJSON("Golang", "go"),
		"bad.json":    strings.Replace(categoryJSON("Bad", "bad", playlistJSON("", "")), `"year":2023`, `"year":1990`, 1),
	})

	result, err := NewValidateFilesCommand(repo, nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(result.Reports))
	}
	bad := result.Reports[0]
	if bad.Filename != "bad.json" || bad.Valid || len(bad.Issues) != 2 {
		t.Errorf("expected two issues for bad.json, got %+v", bad)
	}
	if !result.Reports[1].Valid || !result.Reports[2].Valid {
		t.Errorf("expected go.json and golang.json to be valid")
	}
	if len(result.Conflicts) != 1 || result.Conflicts[0].Slug != "go" {
		t.Errorf("expected conflict on go, got %v", result.Conflicts)
	}
	if result.Valid() {
		t.Error("expected overall result to be invalid")
	}

	single, err := NewValidateFilesCommand(repo, nil, "missing.json").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if single.Reports[0].Valid || single.Reports[0].Error == "" {
		t.Errorf("expected read error for missing file, got %+v", single.Reports[0])
	}
}
