package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Tanay2920003/sitelink/internal/domain"
)

var testNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

// memRepo is an in-memory ports.CategoryRepository
type memRepo struct {
	files  map[string][]byte
	writes int
}

func newMemRepo(files map[string]string) *memRepo {
	r := &memRepo{files: make(map[string][]byte)}
	for name, content := range files {
		r.files[name] = []byte(content)
	}
	return r
}

func (r *memRepo) ListFiles() []string {
	names := []string{}
	for name := range r.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *memRepo) ListFilesWithMetadata() []domain.FileMetadata {
	var out []domain.FileMetadata
	for _, name := range r.ListFiles() {
		meta := domain.FileMetadata{Filename: name, Name: strings.TrimSuffix(name, ".json"), Icon: domain.WarningIcon}
		if c, err := domain.ParseCategory(r.files[name]); err == nil {
			meta.Name, meta.Icon = c.Name, c.Icon
		}
		out = append(out, meta)
	}
	return out
}

func (r *memRepo) ReadFile(filename string) ([]byte, error) {
	content, ok := r.files[filename]
	if !ok {
		return nil, fmt.Errorf("failed to read %s: %w", filename, domain.ErrNotFound)
	}
	return content, nil
}

func (r *memRepo) WriteFile(filename string, jsonText []byte) error {
	if _, err := r.Validate(jsonText); err != nil {
		return err
	}
	r.files[filename] = jsonText
	r.writes++
	return nil
}

func (r *memRepo) CreateFile(filename string, jsonText []byte) (string, error) {
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}
	if _, ok := r.files[filename]; ok {
		return "", domain.ErrAlreadyExists
	}
	if err := r.WriteFile(filename, jsonText); err != nil {
		return "", err
	}
	return filename, nil
}

func (r *memRepo) Validate(jsonText []byte) (domain.Category, error) {
	return domain.DecodeCategory(jsonText, testNow)
}

func (r *memRepo) Path(filename string) (string, error) {
	return "/data/" + filename, nil
}

func categoryJSON(name, slug string, playlists ...string) string {
	return fmt.Sprintf(`{"name":%q,"slug":%q,"description":"","icon":"📁","playlists":[%s]}`,
		name, slug, strings.Join(playlists, ","))
}

func playlistJSON(title, description string) string {
	return fmt.Sprintf(`{"title":%q,"creator":"Acme","url":"https://x.com","language":"English","difficulty":"beginner","videoCount":10,"description":%q,"year":2023}`,
		title, description)
}
