package ports

import "github.com/Tanay2920003/sitelink/internal/domain"

// CategoryRepository defines the storage operations for category files.
// Listing calls never fail: a missing or unreadable content directory
// yields an empty result.
type CategoryRepository interface {
	// Listing
	ListFiles() []string
	ListFilesWithMetadata() []domain.FileMetadata

	// Single file access; every filename is sanitized first
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, jsonText []byte) error
	CreateFile(filename string, jsonText []byte) (string, error)

	// Validate parses and checks a document without touching the filesystem
	Validate(jsonText []byte) (domain.Category, error)

	// Path resolves a sanitized filename inside the content directory
	Path(filename string) (string, error)
}
