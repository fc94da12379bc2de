package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// FileReport is the validation outcome for one content file
type FileReport struct {
	Filename string         `json:"filename"`
	Valid    bool           `json:"valid"`
	Issues   []domain.Issue `json:"issues,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// ValidateResult contains per-file reports and cross-file slug conflicts
type ValidateResult struct {
	Reports   []FileReport          `json:"reports"`
	Conflicts []domain.SlugConflict `json:"conflicts"`
}

// Valid reports whether every file passed and no slug is shared
func (r *ValidateResult) Valid() bool {
	for _, rep := range r.Reports {
		if !rep.Valid {
			return false
		}
	}
	return len(r.Conflicts) == 0
}

// ValidateFilesCommand checks content files against the category schema
type ValidateFilesCommand struct {
	repo   ports.CategoryRepository
	logger *slog.Logger
	// Filenames limits the check; empty means every file
	Filenames []string
}

// NewValidateFilesCommand creates a new ValidateFilesCommand
func NewValidateFilesCommand(repo ports.CategoryRepository, logger *slog.Logger, filenames ...string) *ValidateFilesCommand {
	return &ValidateFilesCommand{
		repo:      repo,
		logger:    logger,
		Filenames: filenames,
	}
}

// Execute runs the validate command
func (c *ValidateFilesCommand) Execute(ctx context.Context) (*ValidateResult, error) {
	files := c.Filenames
	if len(files) == 0 {
		files = c.repo.ListFiles()
	}

	result := &ValidateResult{Reports: make([]FileReport, 0, len(files))}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Reports = append(result.Reports, c.check(file))
	}

	loaded, err := NewLoadAllCommand(c.repo, c.logger).Execute(ctx)
	if err != nil {
		return nil, err
	}
	result.Conflicts = loaded.Conflicts

	return result, nil
}

func (c *ValidateFilesCommand) check(file string) FileReport {
	report := FileReport{Filename: file}

	content, err := c.repo.ReadFile(file)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	if _, err := c.repo.Validate(content); err != nil {
		var schemaErr *domain.SchemaError
		if errors.As(err, &schemaErr) {
			report.Issues = schemaErr.Issues
		}
		report.Error = err.Error()
		return report
	}

	report.Valid = true
	return report
}
