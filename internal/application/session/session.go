// Package session holds the editor's working copy of one category file.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Tanay2920003/sitelink/internal/application"
	"github.com/Tanay2920003/sitelink/internal/application/commands"
	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// State is the lifecycle state of the working copy
type State int

const (
	StateEmpty State = iota
	StateLoaded
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateEditing:
		return "editing"
	default:
		return "empty"
	}
}

// User-facing notification texts
const (
	MsgSaved       = "Saved successfully!"
	MsgLoadFailed  = "Failed to load file"
	MsgParseFailed = "Failed to parse file content"
)

// ReminderText is shown after every successful save
const ReminderText = "Changes saved locally. Commit them with git, push to your fork and open a pull request to publish them."

// Session is the single editor session over a category repository.
// Repository calls run outside the lock so front ends stay responsive.
type Session struct {
	repo   ports.CategoryRepository
	logger *slog.Logger
	now    func() time.Time
	notes  *Notifier

	mu         sync.Mutex
	files      []domain.FileMetadata
	open       bool
	filename   string
	current    domain.Category
	initial    domain.Category
	pending    string
	generation uint64
	saving     bool
	reminder   bool
}

// New creates an empty session.
// A nil logger falls back to slog.Default().
func New(repo ports.CategoryRepository, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		repo:   repo,
		logger: logger.With("component", "session"),
		now:    time.Now,
		notes:  NewNotifier(NotificationTTL),
		files:  []domain.FileMetadata{},
	}
}

// Refresh re-reads the file listing from the repository
func (s *Session) Refresh() []domain.FileMetadata {
	files := s.repo.ListFilesWithMetadata()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = files
	return append([]domain.FileMetadata(nil), files...)
}

// Files returns the last listing
func (s *Session) Files() []domain.FileMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.FileMetadata(nil), s.files...)
}

// FilteredFiles returns the listed files whose name contains query ignoring
// case, or whose filename contains query exactly
func (s *Session) FilteredFiles(query string) []domain.FileMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(query)
	out := []domain.FileMetadata{}
	for _, f := range s.files {
		if strings.Contains(strings.ToLower(f.Name), lower) || strings.Contains(f.Filename, query) {
			out = append(out, f)
		}
	}
	return out
}

// State reports whether a file is open and whether it has edits
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() State {
	switch {
	case !s.open:
		return StateEmpty
	case s.dirty():
		return StateEditing
	default:
		return StateLoaded
	}
}

// Dirty reports whether the working copy differs from the last load or save
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty()
}

func (s *Session) dirty() bool {
	return s.open && !s.current.Equal(s.initial)
}

// Filename returns the open file, or "" when none is open
func (s *Session) Filename() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filename
}

// Current returns a copy of the working copy
func (s *Session) Current() (domain.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return domain.Category{}, false
	}
	return s.current.Clone(), true
}

// Pending returns the file waiting behind the unsaved changes gate
func (s *Session) Pending() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Open loads filename into the working copy. With unsaved edits on another
// file nothing changes: the target is parked as pending and a
// *application.NavigationError is returned.
func (s *Session) Open(ctx context.Context, filename string) error {
	s.mu.Lock()
	if s.dirty() {
		if filename == s.filename {
			s.mu.Unlock()
			return nil
		}
		s.pending = filename
		from := s.filename
		s.mu.Unlock()
		return &application.NavigationError{From: from, To: filename}
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	return s.load(ctx, filename, gen)
}

// ConfirmNavigation drops the unsaved edits and opens the pending file
func (s *Session) ConfirmNavigation(ctx context.Context) error {
	s.mu.Lock()
	target := s.pending
	if target == "" {
		s.mu.Unlock()
		return nil
	}
	s.pending = ""
	s.reset()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	s.logger.Info("discarded unsaved changes", "next", target)
	return s.load(ctx, target, gen)
}

// CancelNavigation forgets the pending file and keeps the edits
func (s *Session) CancelNavigation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = ""
}

// Reload re-reads the open file, for example after an external editor
// changed it. Refused while there are unsaved edits.
func (s *Session) Reload(ctx context.Context) error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return application.ErrNoFileOpen
	}
	if s.dirty() {
		s.mu.Unlock()
		return application.ErrUnsavedChanges
	}
	filename := s.filename
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	return s.load(ctx, filename, gen)
}

// Discard reverts the working copy to the last loaded or saved state
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		s.current = s.initial.Clone()
	}
}

func (s *Session) load(ctx context.Context, filename string, gen uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, readErr := s.repo.ReadFile(filename)
	var cat domain.Category
	var parseErr error
	if readErr == nil {
		cat, parseErr = domain.ParseCategory(content)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("discarding superseded load", "file", filename)
		return application.ErrSuperseded
	}

	switch {
	case readErr != nil:
		s.reset()
		s.push(KindError, MsgLoadFailed)
		s.logger.Warn("failed to load category", "file", filename, "error", readErr)
		return fmt.Errorf("failed to open %s: %w", filename, readErr)
	case parseErr != nil:
		s.reset()
		s.push(KindError, MsgParseFailed)
		s.logger.Warn("failed to parse category", "file", filename, "error", parseErr)
		return fmt.Errorf("failed to open %s: %w", filename, parseErr)
	}

	s.open = true
	s.filename = filename
	s.current = cat
	s.initial = cat.Clone()
	s.pending = ""
	return nil
}

// reset empties the working copy; callers hold the lock
func (s *Session) reset() {
	s.open = false
	s.filename = ""
	s.current = domain.Category{}
	s.initial = domain.Category{}
}

// Edit applies mutate to a copy of the working copy and keeps the result
func (s *Session) Edit(mutate func(*domain.Category)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return application.ErrNoFileOpen
	}
	next := s.current.Clone()
	mutate(&next)
	s.current = next
	return nil
}

// AddPlaylist appends a template playlist and returns its index
func (s *Session) AddPlaylist() (int, error) {
	index := -1
	err := s.Edit(func(c *domain.Category) {
		c.Playlists = append(c.Playlists, domain.NewPlaylistTemplate(s.now()))
		index = len(c.Playlists) - 1
	})
	return index, err
}

// UpdatePlaylist applies mutate to the playlist at index
func (s *Session) UpdatePlaylist(index int, mutate func(*domain.Playlist)) error {
	return s.editAt(index, func(c *domain.Category) {
		mutate(&c.Playlists[index])
	})
}

// DeletePlaylist removes the playlist at index, keeping the order of the rest
func (s *Session) DeletePlaylist(index int) error {
	return s.editAt(index, func(c *domain.Category) {
		c.Playlists = append(c.Playlists[:index], c.Playlists[index+1:]...)
	})
}

func (s *Session) editAt(index int, mutate func(*domain.Category)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return application.ErrNoFileOpen
	}
	if err := application.ValidateIndex("playlistIndex", index, len(s.current.Playlists)); err != nil {
		return err
	}
	next := s.current.Clone()
	mutate(&next)
	s.current = next
	return nil
}

// Save writes the working copy through the repository. On failure the edits
// stay in place; on success they become the new clean state.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return application.ErrNoFileOpen
	}
	if s.saving {
		s.mu.Unlock()
		return application.ErrBusy
	}
	s.saving = true
	filename := s.filename
	snapshot := s.current.Clone()
	s.mu.Unlock()

	err := ctx.Err()
	if err == nil {
		var data []byte
		data, err = domain.EncodeCategory(snapshot)
		if err == nil {
			err = s.repo.WriteFile(filename, data)
		}
	}

	s.mu.Lock()
	s.saving = false
	if err != nil {
		s.push(KindError, err.Error())
		s.mu.Unlock()
		s.logger.Warn("save failed", "file", filename, "error", err)
		return err
	}
	if s.open && s.filename == filename {
		s.initial = snapshot
	}
	s.reminder = true
	s.push(KindSuccess, MsgSaved)
	s.mu.Unlock()

	s.Refresh()
	return nil
}

// CreateAndOpen creates a category file from name and opens it
func (s *Session) CreateAndOpen(ctx context.Context, name string) (string, error) {
	result, err := commands.NewCreateCategoryCommand(s.repo, name).Execute(ctx)
	if err != nil {
		s.Notify(KindError, err.Error())
		return "", err
	}

	s.Refresh()
	if err := s.Open(ctx, result.Filename); err != nil {
		return result.Filename, err
	}
	s.Notify(KindSuccess, result.Message)
	return result.Filename, nil
}

// Diff compares the working copy with the last loaded or saved state
func (s *Session) Diff() domain.Diff {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.DiffCategories(s.initial, s.current)
}

// RawJSON returns the working copy as it would be written
func (s *Session) RawJSON() ([]byte, error) {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return nil, application.ErrNoFileOpen
	}
	snapshot := s.current.Clone()
	s.mu.Unlock()

	return domain.EncodeCategory(snapshot)
}

// Notify adds a notification
func (s *Session) Notify(kind Kind, text string) Notification {
	return s.notes.Push(kind, text, s.now())
}

func (s *Session) push(kind Kind, text string) {
	s.notes.Push(kind, text, s.now())
}

// Notifications returns the notifications that have not expired
func (s *Session) Notifications() []Notification {
	return s.notes.Active(s.now())
}

// Notifier exposes the notification list for dismissal
func (s *Session) Notifier() *Notifier {
	return s.notes
}

// ReminderPending reports whether the git reminder should be shown
func (s *Session) ReminderPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminder
}

// DismissReminder hides the git reminder until the next save
func (s *Session) DismissReminder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminder = false
}
