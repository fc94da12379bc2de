package domain

import "sort"

// CategoryFile pairs a parsed category with the file it came from
type CategoryFile struct {
	Filename string
	Category Category
}

// SlugConflict lists the content files that share one slug
type SlugConflict struct {
	Slug  string   `json:"slug"`
	Files []string `json:"files"`
}

// FindSlugConflicts reports every slug used by more than one file.
// Conflicts are ordered by slug and files keep their input order.
func FindSlugConflicts(files []CategoryFile) []SlugConflict {
	bySlug := make(map[string][]string)
	for _, f := range files {
		bySlug[f.Category.Slug] = append(bySlug[f.Category.Slug], f.Filename)
	}

	var conflicts []SlugConflict
	for slug, names := range bySlug {
		if len(names) > 1 {
			conflicts = append(conflicts, SlugConflict{Slug: slug, Files: names})
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Slug < conflicts[j].Slug
	})
	return conflicts
}
