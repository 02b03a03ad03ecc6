package catalog

import "errors"

var ErrNotFound = errors.New("book not found")

// Catalog owns an ordered collection of books backed by a single file.
// Every mutating operation persists the full collection before it
// returns; a persistence failure is reported to the caller and the
// in-memory state keeps the mutation.
type Catalog interface {
	Add(title, author string, year int) (Book, error)
	Get(id int) (Book, error)
	Remove(id int) error
	UpdateStatus(id int, status Status) error
	Search(keyword string) []Book
	List() []Book
	Count() int
	Save() error
	Load() error
}
