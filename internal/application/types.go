package application

import "github.com/Tanay2920003/sitelink/internal/domain"

// Re-export domain types for use by adapters
type (
	Category     = domain.Category
	Playlist     = domain.Playlist
	Difficulty   = domain.Difficulty
	FileMetadata = domain.FileMetadata
	Resource     = domain.Resource
	Diff         = domain.Diff
	Issue        = domain.Issue
	SlugConflict = domain.SlugConflict
)

// Difficulties lists the accepted playlist levels in display order
func Difficulties() []Difficulty {
	return append([]Difficulty(nil), domain.Difficulties...)
}

// DeriveSlug returns the slug a new category named name would receive
func DeriveSlug(name string) string {
	return domain.DeriveSlug(name)
}
