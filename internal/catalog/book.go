package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrEmptyTitle    = errors.New("book title cannot be empty")
	ErrEmptyAuthor   = errors.New("book author cannot be empty")
	ErrInvalidStatus = errors.New("invalid book status")
	ErrBadEntry      = errors.New("malformed book entry")
)

// Status is the lending state of a book. The literal values are the
// on-disk contract and must never change.
type Status string

const (
	StatusAvailable  Status = "в наличии"
	StatusCheckedOut Status = "выдана"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusCheckedOut:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidStatus, s, StatusAvailable, StatusCheckedOut)
}

// Book is a single catalog record. The ID is assigned by the catalog
// and everything except Status is immutable after creation.
type Book struct {
	ID     int
	Title  string
	Author string
	Year   int
	Status Status
}

// ValidateEntry checks a decoded storage entry for the exact book
// shape: all five fields present, correctly typed, status one of the
// permitted literals. Entries that fail are skipped on load.
func ValidateEntry(entry map[string]any) error {
	id, ok := intValue(entry["id"])
	if !ok {
		return fmt.Errorf("%w: field %q missing or not an integer", ErrBadEntry, "id")
	}
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrBadEntry, id)
	}

	title, ok := entry["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: field %q missing or empty", ErrBadEntry, "title")
	}

	author, ok := entry["author"].(string)
	if !ok || strings.TrimSpace(author) == "" {
		return fmt.Errorf("%w: field %q missing or empty", ErrBadEntry, "author")
	}

	if _, ok := intValue(entry["year"]); !ok {
		return fmt.Errorf("%w: field %q missing or not an integer", ErrBadEntry, "year")
	}

	status, ok := entry["status"].(string)
	if !ok {
		return fmt.Errorf("%w: field %q missing or not a string", ErrBadEntry, "status")
	}
	if _, err := ParseStatus(status); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEntry, err)
	}

	return nil
}

// BookFromEntry builds a Book from a storage entry. Callers must run
// ValidateEntry first; this constructor does not re-check.
func BookFromEntry(entry map[string]any) Book {
	id, _ := intValue(entry["id"])
	year, _ := intValue(entry["year"])
	return Book{
		ID:     id,
		Title:  entry["title"].(string),
		Author: entry["author"].(string),
		Year:   year,
		Status: Status(entry["status"].(string)),
	}
}

// Entry is the inverse of BookFromEntry: the five-field serializable
// form written to storage.
func (b Book) Entry() map[string]any {
	return map[string]any{
		"id":     b.ID,
		"title":  b.Title,
		"author": b.Author,
		"year":   b.Year,
		"status": string(b.Status),
	}
}

// intValue coerces the numeric shapes the codecs produce. JSON decodes
// integers as float64, YAML as int or uint64; a fractional number is
// not an integer field.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func matchesKeyword(b Book, keyword string) bool {
	lowered := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(b.Title), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Author), lowered) {
		return true
	}
	return fmt.Sprintf("%d", b.Year) == keyword
}
