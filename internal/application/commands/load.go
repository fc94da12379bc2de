package commands

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// ListFilesCommand lists the content files with their display metadata
type ListFilesCommand struct {
	repo ports.CategoryRepository
}

// NewListFilesCommand creates a new ListFilesCommand
func NewListFilesCommand(repo ports.CategoryRepository) *ListFilesCommand {
	return &ListFilesCommand{repo: repo}
}

// Execute runs the list files command
func (c *ListFilesCommand) Execute(ctx context.Context) ([]domain.FileMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.repo.ListFilesWithMetadata(), nil
}

// LoadAllResult contains every category that could be parsed
type LoadAllResult struct {
	Categories []domain.Category
	Files      []domain.CategoryFile
	Skipped    []string
	Conflicts  []domain.SlugConflict
}

// BySlug returns the category with the given slug.
// With duplicate slugs the first one in name order wins.
func (r *LoadAllResult) BySlug(slug string) (domain.Category, bool) {
	for _, c := range r.Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return domain.Category{}, false
}

// LoadAllCommand reads and parses every content file
type LoadAllCommand struct {
	repo   ports.CategoryRepository
	logger *slog.Logger
}

// NewLoadAllCommand creates a new LoadAllCommand.
// A nil logger falls back to slog.Default().
func NewLoadAllCommand(repo ports.CategoryRepository, logger *slog.Logger) *LoadAllCommand {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadAllCommand{repo: repo, logger: logger}
}

// Execute loads all categories sorted by name. Files that cannot be read or
// parsed are logged and skipped.
func (c *LoadAllCommand) Execute(ctx context.Context) (*LoadAllResult, error) {
	result := &LoadAllResult{
		Categories: []domain.Category{},
		Skipped:    []string{},
	}

	for _, file := range c.repo.ListFiles() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := c.repo.ReadFile(file)
		if err != nil {
			c.logger.Warn("skipping unreadable category file", "file", file, "error", err)
			result.Skipped = append(result.Skipped, file)
			continue
		}

		cat, err := domain.ParseCategory(content)
		if err != nil {
			c.logger.Warn("skipping malformed category file", "file", file, "error", err)
			result.Skipped = append(result.Skipped, file)
			continue
		}

		result.Files = append(result.Files, domain.CategoryFile{Filename: file, Category: cat})
	}

	col := collate.New(language.Und)
	sort.SliceStable(result.Files, func(i, j int) bool {
		return col.CompareString(result.Files[i].Category.Name, result.Files[j].Category.Name) < 0
	})

	for _, f := range result.Files {
		result.Categories = append(result.Categories, f.Category)
	}

	result.Conflicts = domain.FindSlugConflicts(result.Files)
	for _, conflict := range result.Conflicts {
		c.logger.Warn("duplicate category slug", "slug", conflict.Slug, "files", conflict.Files)
	}

	return result, nil
}
