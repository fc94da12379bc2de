package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanay2920003/sitelink/internal/application"
	"github.com/Tanay2920003/sitelink/internal/domain"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	files     map[string][]byte
	onRead    func(filename string)
	onWrite   func(filename string)
	readCount int
}

func newFakeRepo(files map[string]string) *fakeRepo {
	r := &fakeRepo{files: make(map[string][]byte)}
	for name, content := range files {
		r.files[name] = []byte(content)
	}
	return r
}

func (r *fakeRepo) ListFiles() []string {
	names := []string{}
	for name := range r.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *fakeRepo) ListFilesWithMetadata() []domain.FileMetadata {
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

func (r *fakeRepo) ReadFile(filename string) ([]byte, error) {
	r.readCount++
	if r.onRead != nil {
		hook := r.onRead
		r.onRead = nil
		hook(filename)
	}
	content, ok := r.files[filename]
	if !ok {
		return nil, fmt.Errorf("failed to read %s: %w", filename, domain.ErrNotFound)
	}
	return content, nil
}

func (r *fakeRepo) WriteFile(filename string, jsonText []byte) error {
	if r.onWrite != nil {
		hook := r.onWrite
		r.onWrite = nil
		hook(filename)
	}
	if _, err := r.Validate(jsonText); err != nil {
		return err
	}
	r.files[filename] = jsonText
	return nil
}

func (r *fakeRepo) CreateFile(filename string, jsonText []byte) (string, error) {
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}
	if _, ok := r.files[filename]; ok {
		return "", fmt.Errorf("failed to create %s: %w", filename, domain.ErrAlreadyExists)
	}
	return filename, r.WriteFile(filename, jsonText)
}

func (r *fakeRepo) Validate(jsonText []byte) (domain.Category, error) {
	return domain.DecodeCategory(jsonText, testNow)
}

func (r *fakeRepo) Path(filename string) (string, error) {
	return "/data/" + filename, nil
}

const webDev = `{"name":"Web Dev","slug":"web-dev","description":"","icon":"🌐","playlists":[
	{"title":"React Basics","creator":"Acme","url":"https://x.com","language":"English","difficulty":"beginner","videoCount":10,"description":"intro","year":2023}
]}`

const goLang = `{"name":"Go","slug":"go","description":"","icon":"🐹","playlists":[]}`

func newTestSession(t *testing.T, files map[string]string) (*Session, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo(files)
	s := New(repo, nil)
	s.now = func() time.Time { return testNow }
	s.Refresh()
	return s, repo
}

func noteTexts(s *Session) []string {
	var texts []string
	for _, n := range s.Notifications() {
		texts = append(texts, n.Text)
	}
	return texts
}

func TestSession_DirtyTracking(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestSession(t, map[string]string{"web-dev.json": webDev})

	assert.Equal(t, StateEmpty, s.State())

	require.NoError(t, s.Open(ctx, "web-dev.json"))
	assert.Equal(t, StateLoaded, s.State())
	assert.False(t, s.Dirty())

	require.NoError(t, s.Edit(func(c *domain.Category) { c.Description = "Frontend" }))
	assert.True(t, s.Dirty())
	assert.Equal(t, StateEditing, s.State())

	require.NoError(t, s.Save(ctx))
	assert.False(t, s.Dirty())
	assert.Equal(t, StateLoaded, s.State())
	assert.True(t, s.ReminderPending())
	assert.Contains(t, noteTexts(s), MsgSaved)

	saved, err := domain.ParseCategory(repo.files["web-dev.json"])
	require.NoError(t, err)
	assert.Equal(t, "Frontend", saved.Description)

	s.DismissReminder()
	assert.False(t, s.ReminderPending())
}

func TestSession_EditBackToOriginalIsClean(t *testing.T) {
	s, _ := newTestSession(t, map[string]string{"web-dev.json": webDev})
	require.NoError(t, s.Open(context.Background(), "web-dev.json"))

	require.NoError(t, s.Edit(func(c *domain.Category) { c.Name = "Changed" }))
	require.NoError(t, s.Edit(func(c *domain.Category) { c.Name = "Web Dev" }))

	assert.False(t, s.Dirty())
}

func TestSession_UnsavedChangesGate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, map[string]string{"web-dev.json": webDev, "go.json": goLang})

	require.NoError(t, s.Open(ctx, "web-dev.json"))
	require.NoError(t, s.Edit(func(c *domain.Category) { c.Name = "Edited" }))

	err := s.Open(ctx, "go.json")

	var navErr *application.NavigationError
	require.True(t, errors.As(err, &navErr))
	assert.ErrorIs(t, err, application.ErrUnsavedChanges)
	assert.Equal(t, "web-dev.json", navErr.From)
	assert.Equal(t, "go.json", navErr.To)

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Edited", current.Name)
	assert.Equal(t, "web-dev.json", s.Filename())
	assert.Equal(t, "go.json", s.Pending())

	t.Run("same file is a no-op", func(t *testing.T) {
		require.NoError(t, s.Open(ctx, "web-dev.json"))
		assert.True(t, s.Dirty())
	})

	t.Run("cancel keeps edits", func(t *testing.T) {
		s.CancelNavigation()
		assert.Empty(t, s.Pending())
		assert.True(t, s.Dirty())
	})

	t.Run("confirm discards edits and opens target", func(t *testing.T) {
		require.Error(t, s.Open(ctx, "go.json"))
		require.NoError(t, s.ConfirmNavigation(ctx))

		assert.Equal(t, "go.json", s.Filename())
		assert.Empty(t, s.Pending())
		assert.False(t, s.Dirty())
	})

	t.Run("confirm without pending target", func(t *testing.T) {
		require.NoError(t, s.ConfirmNavigation(ctx))
		assert.Equal(t, "go.json", s.Filename())
	})
}

func TestSession_OpenFailures(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, map[string]string{"web-dev.json": webDev, "broken.json": "{"})

	require.NoError(t, s.Open(ctx, "web-dev.json"))

	err := s.Open(ctx, "broken.json")
	require.Error(t, err)
	assert.Equal(t, StateEmpty, s.State())
	assert.Empty(t, s.Filename())
	assert.Contains(t, noteTexts(s), MsgParseFailed)

	err = s.Open(ctx, "missing.json")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, noteTexts(s), MsgLoadFailed)
}

func TestSession_SupersededLoad(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestSession(t, map[string]string{"web-dev.json": webDev, "go.json": goLang})

	var nestedErr error
	repo.onRead = func(string) {
		nestedErr = s.Open(ctx, "go.json")
	}

	err := s.Open(ctx, "web-dev.json")

	assert.ErrorIs(t, err, application.ErrSuperseded)
	require.NoError(t, nestedErr)
	assert.Equal(t, "go.json", s.Filename())
}

func TestSession_SaveFailureKeepsEdits(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestSession(t, map[string]string{"web-dev.json": webDev})
	require.NoError(t, s.Open(ctx, "web-dev.json"))

	require.NoError(t, s.UpdatePlaylist(0, func(p *domain.Playlist) { p.Year = 1999 }))

	err := s.Save(ctx)

	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.True(t, s.Dirty())
	assert.False(t, s.ReminderPending())
	assert.Equal(t, webDev, string(repo.files["web-dev.json"]))

	texts := noteTexts(s)
	require.NotEmpty(t, texts)
	assert.True(t, strings.HasPrefix(texts[len(texts)-1], "validation error:"))

	current, _ := s.Current()
	assert.Equal(t, 1999, current.Playlists[0].Year)
}

func TestSession_SaveWhileSaving(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestSession(t, map[string]string{"web-dev.json": webDev})
	require.NoError(t, s.Open(ctx, "web-dev.json"))
	require.NoError(t, s.Edit(func(c *domain.Category) { c.Icon = "🕸️" }))

	var nestedErr error
	repo.onWrite = func(string) {
		nestedErr = s.Save(ctx)
	}

	require.NoError(t, s.Save(ctx))
	assert.ErrorIs(t, nestedErr, application.ErrBusy)
}

func TestSession_SaveWithoutFile(t *testing.T) {
	s, _ := newTestSession(t, nil)

	assert.ErrorIs(t, s.Save(context.Background()), application.ErrNoFileOpen)
	assert.ErrorIs(t, s.Edit(func(*domain.Category) {}), application.ErrNoFileOpen)
	_, err := s.AddPlaylist()
	assert.ErrorIs(t, err, application.ErrNoFileOpen)
	_, err = s.RawJSON()
	assert.ErrorIs(t, err, application.ErrNoFileOpen)
}

func TestSession_PlaylistEdits(t *testing.T) {
	s, _ := newTestSession(t, map[string]string{"web-dev.json": webDev})
	require.NoError(t, s.Open(context.Background(), "web-dev.json"))

	index, err := s.AddPlaylist()
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	current, _ := s.Current()
	require.Len(t, current.Playlists, 2)
	assert.Equal(t, "New Playlist", current.Playlists[1].Title)
	assert.Equal(t, 2026, current.Playlists[1].Year)

	require.NoError(t, s.UpdatePlaylist(1, func(p *domain.Playlist) { p.Title = "Vue" }))
	require.NoError(t, s.DeletePlaylist(0))

	current, _ = s.Current()
	require.Len(t, current.Playlists, 1)
	assert.Equal(t, "Vue", current.Playlists[0].Title)

	var verr *application.ValidationError
	assert.True(t, errors.As(s.DeletePlaylist(5), &verr))
	assert.True(t, errors.As(s.UpdatePlaylist(-1, func(*domain.Playlist) {}), &verr))

	d := s.Diff()
	assert.Equal(t, 1, d.PlaylistsBefore)
	assert.Equal(t, 1, d.PlaylistsAfter)

	s.Discard()
	assert.False(t, s.Dirty())
}

func TestSession_CreateAndOpen(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestSession(t, nil)

	filename, err := s.CreateAndOpen(ctx, "Web Dev")
	require.NoError(t, err)

	assert.Equal(t, "web-dev.json", filename)
	assert.Equal(t, "web-dev.json", s.Filename())
	assert.False(t, s.Dirty())
	assert.Contains(t, noteTexts(s), "Created web-dev")
	require.Len(t, s.Files(), 1)
	assert.Equal(t, "Web Dev", s.Files()[0].Name)

	current, _ := s.Current()
	assert.Equal(t, domain.NewCategoryIcon, current.Icon)
	assert.Empty(t, current.Playlists)
	assert.Contains(t, string(repo.files["web-dev.json"]), "\n    \"slug\": \"web-dev\"")

	_, err = s.CreateAndOpen(ctx, "web dev")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestSession_CreateAndOpenWhileDirty(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, map[string]string{"go.json": goLang})
	require.NoError(t, s.Open(ctx, "go.json"))
	require.NoError(t, s.Edit(func(c *domain.Category) { c.Name = "Golang" }))

	filename, err := s.CreateAndOpen(ctx, "Rust")

	assert.ErrorIs(t, err, application.ErrUnsavedChanges)
	assert.Equal(t, "rust.json", filename)
	assert.Equal(t, "rust.json", s.Pending())
	assert.Equal(t, "go.json", s.Filename())
}

func TestSession_Reload(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestSession(t, map[string]string{"go.json": goLang})

	assert.ErrorIs(t, s.Reload(ctx), application.ErrNoFileOpen)

	require.NoError(t, s.Open(ctx, "go.json"))
	repo.files["go.json"] = []byte(strings.Replace(goLang, `"Go"`, `"Golang"`, 1))
	require.NoError(t, s.Reload(ctx))

	current, _ := s.Current()
	assert.Equal(t, "Golang", current.Name)

	require.NoError(t, s.Edit(func(c *domain.Category) { c.Slug = "golang" }))
	assert.ErrorIs(t, s.Reload(ctx), application.ErrUnsavedChanges)
}

func TestSession_FilteredFiles(t *testing.T) {
	s, _ := newTestSession(t, map[string]string{
		"web-dev.json": webDev,
		"go.json":      goLang,
		"Misc.json":    `{"name":"Other","icon":"x"}`,
	})

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Misc.json", "go.json", "web-dev.json"}},
		{"web", []string{"web-dev.json"}},
		{"WEB", []string{"web-dev.json"}},
		{"Misc", []string{"Misc.json"}},
		{"misc", []string{}},
		{".json", []string{"Misc.json", "go.json", "web-dev.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, f := range s.FilteredFiles(tt.query) {
				got = append(got, f.Filename)
			}
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession_RawJSON(t *testing.T) {
	s, _ := newTestSession(t, map[string]string{"go.json": goLang})
	require.NoError(t, s.Open(context.Background(), "go.json"))

	raw, err := s.RawJSON()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n    \"name\": \"Go\""))
	assert.True(t, strings.HasSuffix(string(raw), "}\n"))
}
