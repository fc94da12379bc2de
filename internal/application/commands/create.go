package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tanay2920003/sitelink/internal/application"
	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// CreateCategoryResult contains the result of creating a category file
type CreateCategoryResult struct {
	Filename string
	Category domain.Category
	Message  string
}

// CreateCategoryCommand creates a new category file named after its slug
type CreateCategoryCommand struct {
	repo ports.CategoryRepository
	Name string
	// Content replaces the default skeleton when set
	Content []byte
}

// NewCreateCategoryCommand creates a new CreateCategoryCommand
func NewCreateCategoryCommand(repo ports.CategoryRepository, name string) *CreateCategoryCommand {
	return &CreateCategoryCommand{
		repo: repo,
		Name: name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateCategoryCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}

	if strings.Trim(domain.DeriveSlug(strings.TrimSpace(c.Name)), "-") == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("%q has no letters or digits to build a slug from", c.Name),
		}
	}

	return nil
}

// Execute runs the create category command
func (c *CreateCategoryCommand) Execute(ctx context.Context) (*CreateCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(c.Name)
	slug := domain.DeriveSlug(name)

	content := c.Content
	if len(content) == 0 {
		var err error
		content, err = domain.EncodeCategory(domain.NewDefaultCategory(name))
		if err != nil {
			return nil, fmt.Errorf("failed to encode category: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filename, err := c.repo.CreateFile(slug, content)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	cat, err := domain.ParseCategory(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created category: %w", err)
	}

	return &CreateCategoryResult{
		Filename: filename,
		Category: cat,
		Message:  fmt.Sprintf("Created %s", slug),
	}, nil
}
