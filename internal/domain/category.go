package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"slices"
	"strings"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Difficulty is the skill level a playlist targets
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists the accepted levels in display order
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Valid reports whether d is one of the accepted levels
func (d Difficulty) Valid() bool {
	return slices.Contains(Difficulties, d)
}

// Fields holds JSON members the typed model does not know about, in file order.
type Fields = orderedmap.OrderedMap[string, json.RawMessage]

// Playlist is a single external learning resource inside a category.
// Playlists have no ID; they are addressed by their index in the parent list.
type Playlist struct {
	Title       string
	Creator     string
	URL         string
	Language    string
	Difficulty  Difficulty
	VideoCount  int
	Description string
	Year        int

	Extra *Fields
}

// Category is the root entity stored one per content file
type Category struct {
	Name        string
	Slug        string
	Description string
	Icon        string
	Playlists   []Playlist

	Extra *Fields
}

// FileMetadata is the sidebar view of a content file
type FileMetadata struct {
	Filename string `json:"filename"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
}

const (
	// FileExtension marks content files inside the data directory
	FileExtension = ".json"

	DefaultIcon        = "📄"
	WarningIcon        = "⚠️"
	NewCategoryIcon    = "📁"
	DefaultDescription = "Description"
	jsonIndent         = "    "
)

var (
	playlistKeys = []string{"title", "creator", "url", "language", "difficulty", "videoCount", "description", "year"}
	categoryKeys = []string{"name", "slug", "description", "icon", "playlists"}

	nonSlugChars = regexp.MustCompile(`[^a-z0-9]`)
)

// DeriveSlug lowercases name and replaces every character outside [a-z0-9]
// with a hyphen. Runs of hyphens are kept as they are.
func DeriveSlug(name string) string {
	return nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
}

// NewDefaultCategory returns the skeleton written for a freshly created file
func NewDefaultCategory(name string) Category {
	return Category{
		Name:        name,
		Slug:        DeriveSlug(name),
		Description: DefaultDescription,
		Icon:        NewCategoryIcon,
		Playlists:   []Playlist{},
	}
}

// NewPlaylistTemplate returns the placeholder playlist appended by the editor.
// The URL is left empty so the entry fails validation until it is filled in.
func NewPlaylistTemplate(now time.Time) Playlist {
	return Playlist{
		Title:       "New Playlist",
		Creator:     "Creator",
		URL:         "",
		Language:    "English",
		Difficulty:  DifficultyBeginner,
		VideoCount:  0,
		Description: "",
		Year:        now.Year(),
	}
}

// MarshalJSON writes the known fields in schema order followed by the extras
func (p Playlist) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("title", p.Title)
	w.field("creator", p.Creator)
	w.field("url", p.URL)
	w.field("language", p.Language)
	w.field("difficulty", p.Difficulty)
	w.field("videoCount", p.VideoCount)
	w.field("description", p.Description)
	w.field("year", p.Year)
	w.extras(p.Extra)
	return w.bytes()
}

// UnmarshalJSON reads the known fields and keeps everything else in Extra
func (p *Playlist) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var known struct {
		Title       string     `json:"title"`
		Creator     string     `json:"creator"`
		URL         string     `json:"url"`
		Language    string     `json:"language"`
		Difficulty  Difficulty `json:"difficulty"`
		VideoCount  int        `json:"videoCount"`
		Description string     `json:"description"`
		Year        int        `json:"year"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	extra, err := extraFields(data, playlistKeys)
	if err != nil {
		return err
	}

	*p = Playlist{
		Title:       known.Title,
		Creator:     known.Creator,
		URL:         known.URL,
		Language:    known.Language,
		Difficulty:  known.Difficulty,
		VideoCount:  known.VideoCount,
		Description: known.Description,
		Year:        known.Year,
		Extra:       extra,
	}
	return nil
}

// MarshalJSON writes the known fields in schema order followed by the extras.
// A nil playlist slice is written as an empty list.
func (c Category) MarshalJSON() ([]byte, error) {
	playlists := c.Playlists
	if playlists == nil {
		playlists = []Playlist{}
	}

	var w objectWriter
	w.field("name", c.Name)
	w.field("slug", c.Slug)
	w.field("description", c.Description)
	w.field("icon", c.Icon)
	w.field("playlists", playlists)
	w.extras(c.Extra)
	return w.bytes()
}

// UnmarshalJSON reads the known fields and keeps everything else in Extra
func (c *Category) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var known struct {
		Name        string     `json:"name"`
		Slug        string     `json:"slug"`
		Description string     `json:"description"`
		Icon        string     `json:"icon"`
		Playlists   []Playlist `json:"playlists"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	extra, err := extraFields(data, categoryKeys)
	if err != nil {
		return err
	}

	*c = Category{
		Name:        known.Name,
		Slug:        known.Slug,
		Description: known.Description,
		Icon:        known.Icon,
		Playlists:   known.Playlists,
		Extra:       extra,
	}
	return nil
}

// ParseCategory decodes a content file without applying the schema.
// It is the lenient read path used for listings and the editor.
func ParseCategory(data []byte) (Category, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Category{}, errors.New("category must be a JSON object")
	}

	var c Category
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return Category{}, err
	}
	return c, nil
}

// EncodeCategory renders c with four-space indentation and a trailing newline
func EncodeCategory(c Category) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatJSON re-indents raw JSON text with four spaces, keeping key order
func FormatJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", jsonIndent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Clone returns a deep copy of c
func (c Category) Clone() Category {
	out := c
	out.Extra = cloneFields(c.Extra)
	if c.Playlists != nil {
		out.Playlists = make([]Playlist, len(c.Playlists))
		for i, p := range c.Playlists {
			out.Playlists[i] = p.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of p
func (p Playlist) Clone() Playlist {
	out := p
	out.Extra = cloneFields(p.Extra)
	return out
}

// Equal compares two categories by their canonical JSON form
func (c Category) Equal(other Category) bool {
	a, errA := json.Marshal(c)
	b, errB := json.Marshal(other)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// IconIsURL reports whether the icon is an image link rather than an emoji
func (c Category) IconIsURL() bool {
	return strings.HasPrefix(c.Icon, "http")
}

func cloneFields(f *Fields) *Fields {
	if f == nil {
		return nil
	}
	out := orderedmap.New[string, json.RawMessage]()
	for pair := f.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, bytes.Clone(pair.Value))
	}
	return out
}

// extraFields collects the members of a JSON object whose key is not one of
// known. Matching is case-insensitive because encoding/json already folded
// such keys into the typed fields.
func extraFields(data []byte, known []string) (*Fields, error) {
	all := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, all); err != nil {
		return nil, err
	}

	var extra *Fields
	for pair := all.Oldest(); pair != nil; pair = pair.Next() {
		if slices.ContainsFunc(known, func(k string) bool { return strings.EqualFold(k, pair.Key) }) {
			continue
		}
		if extra == nil {
			extra = orderedmap.New[string, json.RawMessage]()
		}
		extra.Set(pair.Key, pair.Value)
	}
	return extra, nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// objectWriter builds a JSON object with a fixed member order.
// HTML characters are left unescaped so URLs stay readable on disk.
type objectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func (w *objectWriter) field(key string, value any) {
	if w.err != nil {
		return
	}
	raw, err := marshalUnescaped(value)
	if err != nil {
		w.err = err
		return
	}
	w.raw(key, raw)
}

func (w *objectWriter) raw(key string, value []byte) {
	if w.err != nil {
		return
	}
	k, err := marshalUnescaped(key)
	if err != nil {
		w.err = err
		return
	}
	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(value)
	w.n++
}

func (w *objectWriter) extras(f *Fields) {
	if f == nil {
		return
	}
	for pair := f.Oldest(); pair != nil; pair = pair.Next() {
		w.raw(pair.Key, pair.Value)
	}
}

func (w *objectWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.n == 0 {
		return []byte("{}"), nil
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
