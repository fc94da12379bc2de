package domain

// FieldChange is a metadata field whose value differs between two versions
type FieldChange struct {
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Diff summarises the changes between a saved category and its working copy
type Diff struct {
	Changes         []FieldChange `json:"changes"`
	PlaylistsBefore int           `json:"playlistsBefore"`
	PlaylistsAfter  int           `json:"playlistsAfter"`
}

// PlaylistDelta is the change in playlist count
func (d Diff) PlaylistDelta() int {
	return d.PlaylistsAfter - d.PlaylistsBefore
}

// Empty reports whether nothing in the summary changed. Edits inside
// existing playlists are not covered by the summary.
func (d Diff) Empty() bool {
	return len(d.Changes) == 0 && d.PlaylistDelta() == 0
}

// DiffCategories compares the metadata fields and playlist counts
func DiffCategories(before, after Category) Diff {
	d := Diff{
		PlaylistsBefore: len(before.Playlists),
		PlaylistsAfter:  len(after.Playlists),
	}

	fields := []struct {
		name          string
		before, after string
	}{
		{"name", before.Name, after.Name},
		{"slug", before.Slug, after.Slug},
		{"description", before.Description, after.Description},
		{"icon", before.Icon, after.Icon},
	}
	for _, f := range fields {
		if f.before != f.after {
			d.Changes = append(d.Changes, FieldChange{Field: f.name, Before: f.before, After: f.after})
		}
	}
	return d
}
