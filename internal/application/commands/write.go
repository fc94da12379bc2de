package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Tanay2920003/sitelink/internal/application"
	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// WriteCategoryResult contains the result of replacing a category file
type WriteCategoryResult struct {
	Filename string
	Category domain.Category
	Message  string
}

// WriteCategoryCommand validates a document and replaces a category file with it
type WriteCategoryCommand struct {
	repo     ports.CategoryRepository
	Filename string
	Content  []byte
}

// NewWriteCategoryCommand creates a new WriteCategoryCommand
func NewWriteCategoryCommand(repo ports.CategoryRepository, filename string, content []byte) *WriteCategoryCommand {
	return &WriteCategoryCommand{
		repo:     repo,
		Filename: filename,
		Content:  content,
	}
}

// Validate checks if the write operation is valid
func (c *WriteCategoryCommand) Validate() error {
	if err := application.ValidateRequired("filename", c.Filename); err != nil {
		return err
	}
	return application.ValidateRequired("content", string(c.Content))
}

// Execute runs the write category command
func (c *WriteCategoryCommand) Execute(ctx context.Context) (*WriteCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cat, err := c.repo.Validate(c.Content)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.repo.WriteFile(c.Filename, c.Content); err != nil {
		return nil, err
	}

	return &WriteCategoryResult{
		Filename: c.Filename,
		Category: cat,
		Message:  fmt.Sprintf("Saved %s (%d playlists)", c.Filename, len(cat.Playlists)),
	}, nil
}

// AddPlaylistCommand appends a playlist to an existing category file
type AddPlaylistCommand struct {
	repo     ports.CategoryRepository
	Filename string
	Playlist domain.Playlist
}

// NewAddPlaylistCommand creates a new AddPlaylistCommand
func NewAddPlaylistCommand(repo ports.CategoryRepository, filename string, playlist domain.Playlist) *AddPlaylistCommand {
	return &AddPlaylistCommand{
		repo:     repo,
		Filename: filename,
		Playlist: playlist,
	}
}

// NewPlaylist returns the template used for playlists added without details
func NewPlaylist() domain.Playlist {
	return domain.NewPlaylistTemplate(time.Now())
}

// Validate checks if the add operation is valid
func (c *AddPlaylistCommand) Validate() error {
	return application.ValidateRequired("filename", c.Filename)
}

// Execute runs the add playlist command. The whole category is validated
// before the file is replaced.
func (c *AddPlaylistCommand) Execute(ctx context.Context) (*WriteCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, err := c.repo.ReadFile(c.Filename)
	if err != nil {
		return nil, err
	}

	cat, err := domain.ParseCategory(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.Filename, err)
	}

	cat.Playlists = append(cat.Playlists, c.Playlist)

	updated, err := domain.EncodeCategory(cat)
	if err != nil {
		return nil, fmt.Errorf("failed to encode category: %w", err)
	}

	result, err := NewWriteCategoryCommand(c.repo, c.Filename, updated).Execute(ctx)
	if err != nil {
		return nil, err
	}
	result.Message = fmt.Sprintf("Added %q to %s", c.Playlist.Title, c.Filename)
	return result, nil
}
