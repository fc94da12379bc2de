package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// MinYear is the earliest accepted playlist year
const MinYear = 2000

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Validate checks a decoded JSON document against the category schema and
// returns every violation, playlists included. Numbers must have been
// decoded with UseNumber so integer checks see the literal value.
func Validate(node any, now time.Time) []Issue {
	obj, ok := node.(map[string]any)
	if !ok {
		return []Issue{{Message: "Category must be a JSON object"}}
	}

	s := &schemaCheck{maxYear: now.Year() + 1}
	s.nonEmpty(obj, "", "name", "Name is required")
	if slug, ok := s.nonEmpty(obj, "", "slug", "Slug is required"); ok && !slugPattern.MatchString(slug) {
		s.add("slug", "Slug must be kebab-case")
	}
	s.str(obj, "", "description", "Description is required")
	s.str(obj, "", "icon", "Icon is required")

	list, ok := obj["playlists"].([]any)
	if !ok {
		s.add("playlists", "Playlists must be a list")
		return s.issues
	}
	for i, item := range list {
		s.playlist(fmt.Sprintf("playlists.%d", i), item)
	}
	return s.issues
}

// DecodeCategory parses jsonText, validates it, and returns the typed value.
// Syntax errors wrap ErrInvalidJSON; schema violations are a *SchemaError.
func DecodeCategory(jsonText []byte, now time.Time) (Category, error) {
	node, err := decodeNode(jsonText)
	if err != nil {
		return Category{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if issues := Validate(node, now); len(issues) > 0 {
		return Category{}, &SchemaError{Issues: issues}
	}

	return ParseCategory(jsonText)
}

func decodeNode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return node, nil
}

type schemaCheck struct {
	maxYear int
	issues  []Issue
}

func (s *schemaCheck) add(field, message string) {
	s.issues = append(s.issues, Issue{Field: field, Message: message})
}

func (s *schemaCheck) str(obj map[string]any, prefix, key, missing string) (string, bool) {
	v, ok := obj[key].(string)
	if !ok {
		s.add(join(prefix, key), missing)
	}
	return v, ok
}

func (s *schemaCheck) nonEmpty(obj map[string]any, prefix, key, message string) (string, bool) {
	v, ok := obj[key].(string)
	if !ok || v == "" {
		s.add(join(prefix, key), message)
		return "", false
	}
	return v, true
}

// integer returns the value of an integral JSON number. Literals with a
// fraction or exponent are rejected because the typed model stores ints.
func (s *schemaCheck) integer(obj map[string]any, prefix, key, message string) (int, bool) {
	n, ok := obj[key].(json.Number)
	if !ok {
		s.add(join(prefix, key), message)
		return 0, false
	}
	i, err := n.Int64()
	if err != nil || i > math.MaxInt32 || i < math.MinInt32 {
		s.add(join(prefix, key), message)
		return 0, false
	}
	return int(i), true
}

func (s *schemaCheck) playlist(prefix string, node any) {
	obj, ok := node.(map[string]any)
	if !ok {
		s.add(prefix, "Playlist must be a JSON object")
		return
	}

	s.nonEmpty(obj, prefix, "title", "Title is required")
	s.nonEmpty(obj, prefix, "creator", "Creator is required")
	if raw, ok := obj["url"].(string); !ok || !isAbsoluteURL(raw) {
		s.add(join(prefix, "url"), "Invalid URL")
	}
	s.nonEmpty(obj, prefix, "language", "Language is required")

	if d, ok := obj["difficulty"].(string); !ok || !Difficulty(d).Valid() {
		s.add(join(prefix, "difficulty"), "Difficulty must be one of beginner, intermediate, advanced")
	}

	countMsg := "Video count must be a non-negative integer"
	if n, ok := s.integer(obj, prefix, "videoCount", countMsg); ok && n < 0 {
		s.add(join(prefix, "videoCount"), countMsg)
	}

	s.str(obj, prefix, "description", "Description is required")

	yearMsg := fmt.Sprintf("Year must be between %d and %d", MinYear, s.maxYear)
	if y, ok := s.integer(obj, prefix, "year", yearMsg); ok && (y < MinYear || y > s.maxYear) {
		s.add(join(prefix, "year"), yearMsg)
	}
}

func isAbsoluteURL(raw string) bool {
	if strings.TrimSpace(raw) != raw || raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
