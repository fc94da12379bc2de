package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Tanay2920003/sitelink/internal/domain"
)

// Repository implements ports.CategoryRepository on a directory of JSON files
type Repository struct {
	dataDir string
	logger  *slog.Logger
	now     func() time.Time
}

// NewRepository creates a new filesystem repository.
// A nil logger falls back to slog.Default().
func NewRepository(dataDir string, logger *slog.Logger) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~") {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, dataDir[1:])
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		dataDir: filepath.Clean(dataDir),
		logger:  logger.With("component", "repository"),
		now:     time.Now,
	}
}

// DataDir returns the content directory the repository works on
func (r *Repository) DataDir() string {
	return r.dataDir
}

// SanitizeFilename reduces name to its last path element and rejects
// empty names, "." and "..", and hidden files. Backslashes count as
// separators so Windows-style traversal collapses too.
func SanitizeFilename(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "" || base == "." || base == ".." || base == "/" || strings.HasPrefix(base, ".") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFilename, name)
	}
	return base, nil
}

// Path resolves a sanitized filename inside the content directory
func (r *Repository) Path(filename string) (string, error) {
	name, err := SanitizeFilename(filename)
	if err != nil {
		return "", err
	}

	full := filepath.Join(r.dataDir, name)
	if filepath.Dir(full) != r.dataDir {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFilename, filename)
	}
	return full, nil
}

// ListFiles returns the JSON files in the content directory, sorted by name
func (r *Repository) ListFiles() []string {
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("failed to read data directory", "dir", r.dataDir, "error", err)
		}
		return []string{}
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), domain.FileExtension) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files
}

// ListFilesWithMetadata returns name and icon for every content file.
// Files that fail to parse are listed with their stem and a warning icon.
func (r *Repository) ListFilesWithMetadata() []domain.FileMetadata {
	files := r.ListFiles()
	list := make([]domain.FileMetadata, 0, len(files))

	for _, file := range files {
		stem := strings.TrimSuffix(file, domain.FileExtension)

		content, err := os.ReadFile(filepath.Join(r.dataDir, file))
		if err == nil {
			var c domain.Category
			c, err = domain.ParseCategory(content)
			if err == nil {
				list = append(list, metadataFor(file, stem, c))
				continue
			}
		}

		r.logger.Warn("failed to read file metadata", "file", file, "error", err)
		list = append(list, domain.FileMetadata{
			Filename: file,
			Name:     stem,
			Icon:     domain.WarningIcon,
		})
	}

	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(list, func(i, j int) bool {
		return col.CompareString(list[i].Name, list[j].Name) < 0
	})
	return list
}

func metadataFor(filename, stem string, c domain.Category) domain.FileMetadata {
	meta := domain.FileMetadata{Filename: filename, Name: c.Name, Icon: c.Icon}
	if meta.Name == "" {
		meta.Name = stem
	}
	if meta.Icon == "" {
		meta.Icon = domain.DefaultIcon
	}
	return meta
}

// ReadFile returns the raw content of a category file.
// Missing files yield an error wrapping domain.ErrNotFound.
func (r *Repository) ReadFile(filename string) ([]byte, error) {
	path, err := r.Path(filename)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return content, nil
}

// Validate parses and checks jsonText without touching the filesystem
func (r *Repository) Validate(jsonText []byte) (domain.Category, error) {
	return domain.DecodeCategory(jsonText, r.now())
}

// WriteFile validates jsonText and replaces the file with its four-space
// indented form. The target is left untouched unless every check passes.
func (r *Repository) WriteFile(filename string, jsonText []byte) error {
	path, err := r.Path(filename)
	if err != nil {
		return err
	}

	formatted, err := r.prepare(jsonText)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := writeAtomic(path, formatted); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}

	r.logger.Info("category saved", "file", filepath.Base(path))
	return nil
}

// CreateFile writes a new category file and returns its final name.
// The ".json" extension is appended when missing. Existing files are never
// overwritten.
func (r *Repository) CreateFile(filename string, jsonText []byte) (string, error) {
	name, err := SanitizeFilename(filename)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(name, domain.FileExtension) {
		name += domain.FileExtension
	}

	path, err := r.Path(name)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("failed to create %s: %w", name, domain.ErrAlreadyExists)
	}

	formatted, err := r.prepare(jsonText)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to create %s: %w", name, domain.ErrAlreadyExists)
		}
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}

	if _, err := f.Write(formatted); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	r.logger.Info("category created", "file", name)
	return name, nil
}

// prepare validates jsonText and returns the bytes to store
func (r *Repository) prepare(jsonText []byte) ([]byte, error) {
	if _, err := r.Validate(jsonText); err != nil {
		return nil, err
	}
	return domain.FormatJSON(jsonText)
}

// writeAtomic writes data to a temp file next to path and renames it over
// the target, so readers see either the old or the new content.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".sitelink-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
