// Package catalog provides read-only queries over the book catalog.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/readersbay/bookclub/pkg/types"
)

// Filterable book fields.
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldGenre  = "genre"
)

// Filter keeps the books whose field contains term, case-insensitively,
// preserving input order. An empty term matches every book. An unknown
// field matches nothing.
func Filter(books []types.Book, field, term string) []types.Book {
	if term == "" {
		return books
	}
	needle := strings.ToLower(term)
	var results []types.Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(fieldValue(b, field)), needle) {
			results = append(results, b)
		}
	}
	return results
}

// fieldValue returns the filterable string field of a book, or "" for
// unknown fields.
func fieldValue(b types.Book, field string) string {
	switch field {
	case FieldTitle:
		return b.Title
	case FieldAuthor:
		return b.Author
	case FieldGenre:
		return b.Genre
	default:
		return ""
	}
}

// FindByID returns the catalog entry with the given id.
// Returns ErrNotFound if no book carries it.
func FindByID(books []types.Book, id int) (types.Book, error) {
	for _, b := range books {
		if b.ID == id {
			return b, nil
		}
	}
	return types.Book{}, fmt.Errorf("book %d: %w", id, types.ErrNotFound)
}

// ParseID converts raw caller input into a record id. Unparseable input
// is an ErrInvalidID, not a failed lookup.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, raw)
	}
	return id, nil
}
